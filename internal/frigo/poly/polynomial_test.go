package poly

import (
	"testing"

	"github.com/friostark/frigo/internal/frigo/field"
)

func fe(v int64) *field.Element { return field.NewFromInt64(v) }

func TestEvalHorner(t *testing.T) {
	// P(x) = 19 + 56x + 34x^2
	p := New([]*field.Element{fe(19), fe(56), fe(34)})
	got := p.Eval(fe(2))
	want := fe(19 + 56*2 + 34*4)
	if !got.Equal(want) {
		t.Fatalf("Eval = %s, want %s", got, want)
	}
}

func TestTrimsTrailingZeros(t *testing.T) {
	p := New([]*field.Element{fe(1), fe(0), fe(0)})
	if p.Degree() != 0 {
		t.Fatalf("expected degree 0 after trimming, got %d", p.Degree())
	}
}

func TestFoldHornerArityTwo(t *testing.T) {
	// P(x) = 19 + 56x + 34x^2 + 48x^3
	p := New([]*field.Element{fe(19), fe(56), fe(34), fe(48)})
	alpha := fe(3)
	folded, err := p.FoldHorner(alpha, 2)
	if err != nil {
		t.Fatal(err)
	}
	// next_0 = 19 + 3*56 = 187; next_1 = 34 + 3*48 = 178
	want := New([]*field.Element{fe(19 + 3*56), fe(34 + 3*48)})
	if folded.Degree() != want.Degree() {
		t.Fatalf("degree mismatch: got %d want %d", folded.Degree(), want.Degree())
	}
	for i := 0; i <= want.Degree(); i++ {
		if !folded.Coefficient(i).Equal(want.Coefficient(i)) {
			t.Fatalf("coeff %d: got %s want %s", i, folded.Coefficient(i), want.Coefficient(i))
		}
	}
}

func TestFoldHornerRejectsNonPowerOfTwoArity(t *testing.T) {
	p := New([]*field.Element{fe(1), fe(2), fe(3)})
	if _, err := p.FoldHorner(fe(1), 3); err == nil {
		t.Fatal("expected error for non-power-of-two arity")
	}
}

func TestLagrangeAtReconstructsPolynomial(t *testing.T) {
	// P(x) = 1 + 2x + 3x^2, sample at x = 0,1,2 then interpolate at x = 5.
	p := New([]*field.Element{fe(1), fe(2), fe(3)})
	xs := []*field.Element{fe(0), fe(1), fe(2)}
	ys := make([]*field.Element, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}
	got, err := LagrangeAt(xs, ys, fe(5))
	if err != nil {
		t.Fatal(err)
	}
	want := p.Eval(fe(5))
	if !got.Equal(want) {
		t.Fatalf("LagrangeAt = %s, want %s", got, want)
	}
}

func TestLagrangeAtOnNodeReturnsExactValue(t *testing.T) {
	xs := []*field.Element{fe(10), fe(20)}
	ys := []*field.Element{fe(100), fe(200)}
	got, err := LagrangeAt(xs, ys, fe(10))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(fe(100)) {
		t.Fatalf("got %s, want 100", got)
	}
}

func TestLagrangeAtRejectsDuplicatePoints(t *testing.T) {
	xs := []*field.Element{fe(1), fe(1)}
	ys := []*field.Element{fe(5), fe(6)}
	if _, err := LagrangeAt(xs, ys, fe(2)); err == nil {
		t.Fatal("expected error for duplicate x-coordinates")
	}
}
