package domain

import (
	"testing"

	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/poly"
)

func TestElementIsGeneratorPower(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	for i := uint64(0); i < 8; i++ {
		want := d.Generator.Pow(i)
		if got := d.Element(i); !got.Equal(want) {
			t.Fatalf("element(%d) = %s, want %s", i, got, want)
		}
	}
	if got := d.Element(8); !got.Equal(field.One()) {
		t.Fatalf("element(n) should wrap to 1, got %s", got)
	}
}

func TestCosetIsOffsetTimesCanonical(t *testing.T) {
	canonical, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	offset := field.Generator()
	coset, err := Coset(16, offset)
	if err != nil {
		t.Fatal(err)
	}
	for i := uint64(0); i < 16; i++ {
		want := offset.Mul(canonical.Element(i))
		if got := coset.Element(i); !got.Equal(want) {
			t.Fatalf("coset.Element(%d) = %s, want %s", i, got, want)
		}
	}
}

func TestEvalPolyMatchesDirectEval(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	p := poly.New([]*field.Element{
		field.NewFromInt64(19), field.NewFromInt64(56), field.NewFromInt64(34),
	})
	evals := d.EvalPoly(p)
	for i := uint64(0); i < 8; i++ {
		want := p.Eval(d.Element(i))
		if !evals[i].Equal(want) {
			t.Fatalf("eval %d mismatch: got %s want %s", i, evals[i], want)
		}
	}
}

func TestIFFTRoundTrip(t *testing.T) {
	d, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	p := poly.New([]*field.Element{
		field.NewFromInt64(19), field.NewFromInt64(56), field.NewFromInt64(34), field.NewFromInt64(48),
	})
	evals := d.EvalPoly(p)
	coeffs, err := d.IFFT(evals)
	if err != nil {
		t.Fatal(err)
	}
	reconstructed := poly.New(coeffs)
	for i := 0; i <= p.Degree(); i++ {
		if !reconstructed.Coefficient(i).Equal(p.Coefficient(i)) {
			t.Fatalf("coeff %d: got %s want %s", i, reconstructed.Coefficient(i), p.Coefficient(i))
		}
	}
	for i := p.Degree() + 1; i <= reconstructed.Degree(); i++ {
		if !reconstructed.Coefficient(i).IsZero() {
			t.Fatalf("expected zero high coefficient at %d, got %s", i, reconstructed.Coefficient(i))
		}
	}
}

func TestNewRejectsSizeExceedingTwoAdicity(t *testing.T) {
	tooLarge := uint64(1) << (field.TwoAdicity() + 1)
	if _, err := New(tooLarge); err == nil {
		t.Fatal("expected DomainUnavailable-style error")
	}
}
