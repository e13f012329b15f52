// Package field implements the prime field the FRI engine runs over.
//
// The modulus is the Goldilocks prime p = 2^64 - 2^32 + 1. It is fixed
// rather than parametric: the FRI core only ever needs the PrimeField
// contract (arithmetic, a generator, byte serialization, two-adicity),
// and a concrete field keeps the rest of the module free of generics the
// surrounding ecosystem does not use either.
package field

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Modulus is the Goldilocks prime 2^64 - 2^32 + 1.
var Modulus = computeModulus()

func computeModulus() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 64)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Add(p, big.NewInt(1))
	return p
}

// generatorValue is a fixed multiplicative generator of F*.
const generatorValue = 7

// twoAdicity is the largest k such that 2^k divides p-1.
// p-1 = 2^32 * (2^32 - 1), so two-adicity is 32.
const twoAdicity = 32

// Element is a value in the Goldilocks prime field, reduced modulo Modulus.
type Element struct {
	value *big.Int
}

// Zero is the additive identity.
func Zero() *Element { return &Element{value: big.NewInt(0)} }

// One is the multiplicative identity.
func One() *Element { return &Element{value: big.NewInt(1)} }

// Generator returns the field's fixed multiplicative generator.
func Generator() *Element { return NewFromUint64(generatorValue) }

// TwoAdicity returns the largest k with 2^k | (p-1).
func TwoAdicity() int { return twoAdicity }

// New reduces an arbitrary big.Int into the field.
func New(v *big.Int) *Element {
	return &Element{value: new(big.Int).Mod(v, Modulus)}
}

// NewFromUint64 lifts a uint64 into the field.
func NewFromUint64(v uint64) *Element {
	return New(new(big.Int).SetUint64(v))
}

// NewFromInt64 lifts an int64 into the field.
func NewFromInt64(v int64) *Element {
	return New(big.NewInt(v))
}

// FromBytesLEModOrder interprets data as a little-endian integer and
// reduces it modulo the field order.
func FromBytesLEModOrder(data []byte) *Element {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return New(new(big.Int).SetBytes(be))
}

// ToBytesLE returns the canonical little-endian encoding, fixed at 8 bytes
// (the field fits in a uint64).
func (e *Element) ToBytesLE() []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], e.Uint64())
	return buf[:]
}

// Uint64 returns the element's canonical representative as a uint64.
func (e *Element) Uint64() uint64 {
	return e.value.Uint64()
}

// Big returns a copy of the element's value.
func (e *Element) Big() *big.Int {
	return new(big.Int).Set(e.value)
}

// Add returns e + other.
func (e *Element) Add(other *Element) *Element {
	return New(new(big.Int).Add(e.value, other.value))
}

// Sub returns e - other.
func (e *Element) Sub(other *Element) *Element {
	return New(new(big.Int).Sub(e.value, other.value))
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return New(new(big.Int).Neg(e.value))
}

// Mul returns e * other.
func (e *Element) Mul(other *Element) *Element {
	return New(new(big.Int).Mul(e.value, other.value))
}

// Square returns e * e.
func (e *Element) Square() *Element {
	return e.Mul(e)
}

// Inv returns the multiplicative inverse of e. Panics on zero, mirroring
// the fatal-programmer-error treatment of division by zero elsewhere in
// the protocol (callers never invert an element they have not checked).
func (e *Element) Inv() *Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	return New(new(big.Int).ModInverse(e.value, Modulus))
}

// Div returns e / other.
func (e *Element) Div(other *Element) *Element {
	return e.Mul(other.Inv())
}

// Pow returns e^exp via square-and-multiply.
func (e *Element) Pow(exp uint64) *Element {
	result := One()
	base := e
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Equal reports whether e and other have the same canonical value.
func (e *Element) Equal(other *Element) bool {
	return e.value.Cmp(other.value) == 0
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// String renders the element's canonical decimal representative.
func (e *Element) String() string {
	return e.value.String()
}

// RootOfUnity returns a primitive n-th root of unity, where n is a power
// of two not exceeding the field's two-adicity. Callers that exceed the
// field's 2-adicity receive an error rather than a silently wrong root.
func RootOfUnity(n uint64) (*Element, error) {
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("field: domain size %d is not a power of two", n)
	}
	k := bitLen(n) - 1
	if k > twoAdicity {
		return nil, fmt.Errorf("field: domain size %d exceeds field two-adicity %d", n, twoAdicity)
	}
	// Generator is a generator of the full multiplicative group F*, of
	// order p-1 = 2^32 * (2^32-1). Raising it to (p-1)/n yields an
	// element of order exactly n, i.e. a primitive n-th root of unity.
	pMinus1 := new(big.Int).Sub(Modulus, big.NewInt(1))
	exp := new(big.Int).Div(pMinus1, new(big.Int).SetUint64(n))
	return New(new(big.Int).Exp(big.NewInt(generatorValue), exp, Modulus)), nil
}

func bitLen(n uint64) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}
	return bits
}
