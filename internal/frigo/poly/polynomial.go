// Package poly implements coefficient-form univariate polynomials over
// field.Element, the currency shared by the domain, prover, and verifier.
package poly

import (
	"fmt"

	"github.com/friostark/frigo/internal/frigo/field"
)

// Polynomial is a coefficient vector c_0 + c_1*x + ... + c_d*x^d.
type Polynomial struct {
	coeffs []*field.Element
}

// New builds a polynomial from coefficients, lowest degree first, trimming
// trailing zero coefficients. An empty slice yields the zero polynomial.
func New(coeffs []*field.Element) *Polynomial {
	trimmed := trim(coeffs)
	return &Polynomial{coeffs: trimmed}
}

func trim(coeffs []*field.Element) []*field.Element {
	end := len(coeffs)
	for end > 0 && coeffs[end-1].IsZero() {
		end--
	}
	if end == 0 {
		return []*field.Element{field.Zero()}
	}
	out := make([]*field.Element, end)
	copy(out, coeffs[:end])
	return out
}

// Degree returns the polynomial's degree (0 for the zero polynomial).
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Len returns the number of coefficients (Degree()+1).
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Coefficients returns a copy of the coefficient vector, lowest degree first.
func (p *Polynomial) Coefficients() []*field.Element {
	out := make([]*field.Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coefficient returns the coefficient of the given degree, or zero if out
// of range.
func (p *Polynomial) Coefficient(degree int) *field.Element {
	if degree < 0 || degree >= len(p.coeffs) {
		return field.Zero()
	}
	return p.coeffs[degree]
}

// Eval evaluates the polynomial at x via Horner's method.
func (p *Polynomial) Eval(x *field.Element) *field.Element {
	result := field.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// FoldHorner folds r-sized consecutive coefficient blocks at challenge
// alpha, producing a polynomial of degree floor(deg(p)/r):
//
//	next_i = c_{i*r} + alpha*c_{i*r+1} + alpha^2*c_{i*r+2} + ... + alpha^(r-1)*c_{i*r+r-1}
//
// This is the coefficient-domain Horner fold the FRI prover performs at
// each level; p.Len() need not be a multiple of r (missing high
// coefficients are treated as zero, consistent with Coefficient's
// out-of-range behavior).
func (p *Polynomial) FoldHorner(alpha *field.Element, r int) (*Polynomial, error) {
	if r <= 0 || r&(r-1) != 0 {
		return nil, fmt.Errorf("poly: fold arity %d must be a positive power of two", r)
	}
	numBlocks := (p.Len() + r - 1) / r
	out := make([]*field.Element, numBlocks)
	for i := 0; i < numBlocks; i++ {
		acc := field.Zero()
		for j := r - 1; j >= 0; j-- {
			acc = acc.Mul(alpha).Add(p.Coefficient(i*r + j))
		}
		out[i] = acc
	}
	return New(out), nil
}

// LagrangeAt interpolates the unique polynomial of degree < len(xs) through
// (xs[i], ys[i]) and evaluates it at z, using the barycentric form. All xs
// must be distinct.
func LagrangeAt(xs, ys []*field.Element, z *field.Element) (*field.Element, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("poly: mismatched point count %d vs %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("poly: need at least one point to interpolate")
	}

	// weights[i] = 1 / prod_{j != i} (xs[i] - xs[j])
	weights := make([]*field.Element, len(xs))
	for i := range xs {
		denom := field.One()
		for j := range xs {
			if i == j {
				continue
			}
			diff := xs[i].Sub(xs[j])
			if diff.IsZero() {
				return nil, fmt.Errorf("poly: duplicate interpolation point at index %d", i)
			}
			denom = denom.Mul(diff)
		}
		weights[i] = denom.Inv()
	}

	// If z coincides with a node, return its value directly rather than
	// dividing by zero in the barycentric formula.
	for i := range xs {
		if z.Equal(xs[i]) {
			return ys[i], nil
		}
	}

	numerator := field.Zero()
	denominator := field.Zero()
	for i := range xs {
		term := weights[i].Div(z.Sub(xs[i]))
		numerator = numerator.Add(term.Mul(ys[i]))
		denominator = denominator.Add(term)
	}
	return numerator.Div(denominator), nil
}
