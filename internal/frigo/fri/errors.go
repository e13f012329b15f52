package fri

import "errors"

// Sentinel error kinds from the error handling design. All are fatal:
// there is no partial acceptance and no retry inside a single
// verification.
var (
	// ErrConfigInvalid means a FriConfig failed ValidateConfig; the
	// prover refuses to run.
	ErrConfigInvalid = errors.New("fri: config invalid")

	// ErrDomainUnavailable means a requested domain size exceeds the
	// field's two-adicity.
	ErrDomainUnavailable = errors.New("fri: domain unavailable")

	// ErrProofMalformed covers a missing opening for a derived query,
	// a wrong fiber length, a cap size mismatch, or final evaluations
	// of the wrong length.
	ErrProofMalformed = errors.New("fri: proof malformed")

	// ErrMerkleMismatch means an authentication path does not hash up
	// to the published cap.
	ErrMerkleMismatch = errors.New("fri: merkle mismatch")

	// ErrConsistencyMismatch means the folded value at level l
	// disagrees with the opened leaf at level l+1.
	ErrConsistencyMismatch = errors.New("fri: consistency mismatch")

	// ErrDegreeTooHigh means the inverse-DFT of the final layer
	// produced coefficients above the stated bound.
	ErrDegreeTooHigh = errors.New("fri: degree too high")
)
