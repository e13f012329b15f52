// Package hash defines the Hash & Permutation contract the cap-Merkle tree
// and transcript build on, plus two interchangeable implementations.
package hash

import (
	"golang.org/x/crypto/sha3"

	"github.com/friostark/frigo/internal/frigo/field"
)

// Digest is an opaque hash output, fixed at 32 bytes.
type Digest [32]byte

// Hasher is the contract from spec §4.2: a collision-resistant hash from
// field elements, a two-to-one compression function over digests, and a
// way to funnel a digest back into a field element for transcript
// absorption.
type Hasher interface {
	Hash(xs []*field.Element) Digest
	Compress(a, b Digest) Digest
	HashAsField(d Digest) *field.Element
}

// Sha3Hasher implements Hasher on top of SHA3-256, the teacher's own
// transcript hash.
type Sha3Hasher struct{}

// NewSha3Hasher constructs the default hasher.
func NewSha3Hasher() *Sha3Hasher { return &Sha3Hasher{} }

// Hash absorbs the little-endian encoding of each field element and
// returns a SHA3-256 digest.
func (Sha3Hasher) Hash(xs []*field.Element) Digest {
	h := sha3.New256()
	for _, x := range xs {
		h.Write(x.ToBytesLE())
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Compress two-to-one compresses a and b.
func (Sha3Hasher) Compress(a, b Digest) Digest {
	h := sha3.New256()
	h.Write(a[:])
	h.Write(b[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// HashAsField reduces a digest modulo the field order.
func (Sha3Hasher) HashAsField(d Digest) *field.Element {
	return field.FromBytesLEModOrder(d[:])
}
