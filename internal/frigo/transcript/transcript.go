// Package transcript implements the duplex Fiat-Shamir channel the FRI
// prover and verifier replay identically: observe absorbs bytes, challenge
// and challenge_indices squeeze them back out.
//
// The running state is a 32-byte digest chained forward on every
// absorb and squeeze, in the same state-chaining idiom as the teacher's
// own Fiat-Shamir channel (utils/channel.go: state = hash(state||data)).
// Squeezing goes through golang.org/x/crypto/sha3's SHAKE256 XOF seeded
// from the current state, which lets challenge_indices draw an
// arbitrary number of bytes in one call — something a fixed-output hash
// chain cannot do without looping — and the squeezed bytes are folded
// back into the state so the sequence remains a true duplex (every
// observe/challenge strictly sequences what follows).
package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/friostark/frigo/internal/frigo/field"
)

// Transcript is a linear duplex sponge: every Observe/Challenge call
// strictly sequences the state, and absorption is label-tagged for
// domain separation.
type Transcript struct {
	state [32]byte
}

// New starts a fresh transcript from the zero state.
func New() *Transcript {
	return &Transcript{}
}

func writeLabel(w interface{ Write([]byte) (int, error) }, label string) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(label)))
	w.Write(lenBuf[:])
	w.Write([]byte(label))
}

func (t *Transcript) absorb(label string, data []byte) {
	h := sha3.New256()
	h.Write(t.state[:])
	writeLabel(h, label)
	h.Write(data)
	copy(t.state[:], h.Sum(nil))
}

func (t *Transcript) squeeze(label string, n int) []byte {
	xof := sha3.NewShake256()
	xof.Write(t.state[:])
	writeLabel(xof, label)
	out := make([]byte, n)
	xof.Read(out)

	h := sha3.New256()
	h.Write(t.state[:])
	h.Write(out)
	copy(t.state[:], h.Sum(nil))

	return out
}

// Observe absorbs a single field element under label.
func (t *Transcript) Observe(label string, x *field.Element) {
	t.absorb(label, x.ToBytesLE())
}

// ObserveMany absorbs a sequence of field elements under one label.
func (t *Transcript) ObserveMany(label string, xs []*field.Element) {
	buf := make([]byte, 0, 8*len(xs))
	for _, x := range xs {
		buf = append(buf, x.ToBytesLE()...)
	}
	t.absorb(label, buf)
}

// ObserveBytes absorbs raw bytes under label. The FRI prover and
// verifier do not call it: they absorb cap digests as field elements
// via ObserveMany.
func (t *Transcript) ObserveBytes(label string, data []byte) {
	t.absorb(label, data)
}

// fieldByteLen is ceil(log2(|F|)/8); the Goldilocks field fits in 8 bytes.
const fieldByteLen = 8

// Challenge squeezes ceil(log2(|F|)/8) bytes under label and reduces them
// modulo the field order.
func (t *Transcript) Challenge(label string) *field.Element {
	out := t.squeeze(label, fieldByteLen)
	return field.FromBytesLEModOrder(out)
}

// ChallengeIndices squeezes 4n bytes under label and decodes each 4-byte
// little-endian chunk as a u32, widened to u64.
func (t *Transcript) ChallengeIndices(label string, n int) []uint64 {
	out := t.squeeze(label, 4*n)
	indices := make([]uint64, n)
	for i := 0; i < n; i++ {
		indices[i] = uint64(binary.LittleEndian.Uint32(out[4*i : 4*i+4]))
	}
	return indices
}
