package hash

import (
	"github.com/friostark/frigo/internal/frigo/field"
)

// PoseidonHasher implements Hasher with a field-friendly sponge, adapted
// from a basic arity-2 Poseidon sponge: capacity/rate state of two field
// elements, alternating full and partial rounds with a degree-5 S-box.
// It exists as an interchangeable alternative to Sha3Hasher for
// deployments that want an arithmetic-circuit-friendly commitment hash;
// both satisfy the same Hasher contract.
type PoseidonHasher struct {
	roundsFull    int
	roundsPartial int
	sboxPower     int
}

// NewPoseidonHasher constructs a Poseidon hasher with standard
// parameters for a 2-element state.
func NewPoseidonHasher() *PoseidonHasher {
	return &PoseidonHasher{
		roundsFull:    8,
		roundsPartial: 57,
		sboxPower:     5,
	}
}

// Hash absorbs xs one at a time into the rate element and permutes after
// each absorption, returning the capacity element encoded as a digest.
func (p *PoseidonHasher) Hash(xs []*field.Element) Digest {
	state := [2]*field.Element{field.Zero(), field.Zero()}
	for _, x := range xs {
		state[1] = state[1].Add(x)
		state = p.permute(state)
	}
	return elementToDigest(state[0])
}

// Compress absorbs both digests (reduced back to field elements) as a
// single two-to-one mixing step.
func (p *PoseidonHasher) Compress(a, b Digest) Digest {
	fa := p.HashAsField(a)
	fb := p.HashAsField(b)
	state := [2]*field.Element{fa, fb}
	state = p.permute(state)
	return elementToDigest(state[0])
}

// HashAsField reduces a digest back into a field element.
func (p *PoseidonHasher) HashAsField(d Digest) *field.Element {
	return field.FromBytesLEModOrder(d[:])
}

func elementToDigest(e *field.Element) Digest {
	var out Digest
	copy(out[:8], e.ToBytesLE())
	return out
}

func (p *PoseidonHasher) permute(state [2]*field.Element) [2]*field.Element {
	for round := 0; round < p.roundsFull/2; round++ {
		state = p.fullRound(state, round)
	}
	for round := 0; round < p.roundsPartial; round++ {
		state = p.partialRound(state, round)
	}
	for round := 0; round < p.roundsFull/2; round++ {
		state = p.fullRound(state, round)
	}
	return state
}

func (p *PoseidonHasher) fullRound(state [2]*field.Element, round int) [2]*field.Element {
	rc := field.NewFromInt64(int64(round + 1))
	for i := range state {
		state[i] = p.sbox(state[i].Add(rc))
	}
	state[0] = state[0].Add(state[1])
	state[1] = state[1].Add(state[0])
	return state
}

func (p *PoseidonHasher) partialRound(state [2]*field.Element, round int) [2]*field.Element {
	rc := field.NewFromInt64(int64(round + 100))
	state[0] = p.sbox(state[0].Add(rc))
	state[0] = state[0].Add(state[1])
	state[1] = state[1].Add(state[0])
	return state
}

func (p *PoseidonHasher) sbox(x *field.Element) *field.Element {
	result := x
	for i := 1; i < p.sboxPower; i++ {
		result = result.Mul(x)
	}
	return result
}
