package frigo

import (
	"errors"

	"github.com/friostark/frigo/internal/frigo/fri"
)

// ValidateConfig reports whether cfg's preconditions hold for a
// polynomial of the given degree: the terminal cap-Merkle layer has
// room for at least two leaves per cap slot, and the configured fold
// arities reduce polyDegree to at most cfg.LastPolynomialDegree.
func ValidateConfig(cfg Config, polyDegree int) bool {
	return fri.ValidateConfig(cfg, polyDegree)
}

// Prove runs the FRI prover against p under cfg, returning a Proof an
// honest verifier holding the same cfg and degree bound will accept.
func Prove(p *Polynomial, cfg Config, hasher Hasher) (*Proof, error) {
	proof, err := fri.Prove(p, cfg, hasher)
	if err != nil {
		switch {
		case errors.Is(err, fri.ErrConfigInvalid):
			return nil, wrapError(ErrInvalidConfig, "FRI configuration rejected", err)
		default:
			return nil, wrapError(ErrProofGeneration, "FRI proving failed", err)
		}
	}
	return proof, nil
}

// Verify replays the Fiat-Shamir transcript embedded in proof, checks
// every Merkle opening and fold-consistency constraint, and bounds the
// terminal layer's degree. A nil return means proof is accepted.
func Verify(cfg Config, degree int, proof *Proof, hasher Hasher) error {
	if err := fri.Verify(cfg, degree, proof, hasher); err != nil {
		return wrapError(ErrProofVerification, "FRI verification rejected the proof", err)
	}
	return nil
}
