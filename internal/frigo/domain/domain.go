// Package domain implements the coset-capable evaluation domain D(n,
// offset) the FRI engine evaluates and folds polynomials over.
package domain

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/poly"
)

// Domain is the sequence offset*omega^i for i in [0,n), where omega is the
// canonical primitive n-th root of unity.
type Domain struct {
	Size      uint64
	Offset    *field.Element
	Generator *field.Element
}

// New returns D(n, 1), the canonical subgroup of size n. Fails with
// DomainUnavailable semantics (a wrapped error) if n is not a power of
// two or log2(n) exceeds the field's two-adicity.
func New(n uint64) (*Domain, error) {
	return Coset(n, field.One())
}

// Coset returns D(n, offset).
func Coset(n uint64, offset *field.Element) (*Domain, error) {
	omega, err := field.RootOfUnity(n)
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}
	return &Domain{Size: n, Offset: offset, Generator: omega}, nil
}

// Element returns the i-th domain point, offset*omega^i.
func (d *Domain) Element(i uint64) *field.Element {
	return d.Offset.Mul(d.Generator.Pow(i))
}

// EvalPoly evaluates p at every point of the domain, parallelized across
// a worker pool since each evaluation is independent and side-effect
// free (no transcript interaction occurs during domain evaluation).
func (d *Domain) EvalPoly(p *poly.Polynomial) []*field.Element {
	out := make([]*field.Element, d.Size)

	workers := runtime.NumCPU()
	if uint64(workers) > d.Size {
		workers = int(d.Size)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (int(d.Size) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= int(d.Size) {
			break
		}
		if end > int(d.Size) {
			end = int(d.Size)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = p.Eval(d.Element(uint64(i)))
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// IFFT recovers the coefficient vector of the unique polynomial of degree
// < len(values) whose evaluations on d equal values, via the closed-form
// inverse DFT:
//
//	c_k = n^-1 * offset^-k * sum_i values[i] * omega^(-i*k)
//
// This module does not require an NTT-speed transform (multi-threaded FFT
// is explicitly out of scope); it is only ever called once, on the final
// FRI layer, whose size is small relative to the initial domain.
func (d *Domain) IFFT(values []*field.Element) ([]*field.Element, error) {
	n := uint64(len(values))
	if n != d.Size {
		return nil, fmt.Errorf("domain: IFFT expected %d values, got %d", d.Size, n)
	}

	omegaInv := d.Generator.Inv()
	nInv := field.NewFromUint64(n).Inv()
	offsetInv := d.Offset.Inv()

	coeffs := make([]*field.Element, n)
	for k := uint64(0); k < n; k++ {
		acc := field.Zero()
		omegaInvPowK := omegaInv.Pow(k)
		power := field.One()
		for i := uint64(0); i < n; i++ {
			acc = acc.Add(values[i].Mul(power))
			power = power.Mul(omegaInvPowK)
		}
		coeffs[k] = acc.Mul(nInv).Mul(offsetInv.Pow(k))
	}
	return coeffs, nil
}
