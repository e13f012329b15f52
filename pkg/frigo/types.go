package frigo

import (
	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/fri"
	"github.com/friostark/frigo/internal/frigo/hash"
	"github.com/friostark/frigo/internal/frigo/poly"
)

// FieldElement is an element of the Goldilocks prime field, the
// concrete field this module's FRI instance runs over.
type FieldElement = field.Element

// Polynomial is a dense coefficient-form univariate polynomial over
// FieldElement.
type Polynomial = poly.Polynomial

// Config is the FRI configuration: query count, blow-up factor, the
// terminal degree bound, the cap-Merkle truncation depth, and the
// per-level folding arities.
type Config = fri.Config

// Proof is a complete FRI low-degree proof: final-round evaluations,
// per-level Merkle caps, and the query openings needed to check fold
// consistency.
type Proof = fri.Proof

// Hasher abstracts the leaf/compression hash a cap-Merkle tree and the
// Fiat-Shamir transcript are built on.
type Hasher = hash.Hasher

// NewPolynomial builds a Polynomial from its coefficients in increasing
// degree order, trimming trailing zero coefficients.
func NewPolynomial(coeffs []*FieldElement) *Polynomial {
	return poly.New(coeffs)
}

// NewFieldElement returns the field element congruent to v modulo the
// field's modulus.
func NewFieldElement(v int64) *FieldElement {
	return field.NewFromInt64(v)
}

// NewSha3Hasher returns a Hasher built on SHA3-256.
func NewSha3Hasher() Hasher {
	return hash.NewSha3Hasher()
}

// NewPoseidonHasher returns a Hasher built on a Poseidon permutation
// over the Goldilocks field.
func NewPoseidonHasher() Hasher {
	return hash.NewPoseidonHasher()
}
