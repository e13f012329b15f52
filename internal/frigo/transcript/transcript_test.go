package transcript

import (
	"testing"

	"github.com/friostark/frigo/internal/frigo/field"
)

func TestDeterministicReplay(t *testing.T) {
	run := func() (*field.Element, []uint64) {
		tr := New()
		tr.ObserveMany("merkle_root", []*field.Element{field.NewFromInt64(1), field.NewFromInt64(2)})
		alpha := tr.Challenge("alpha")
		tr.ObserveMany("final evals", []*field.Element{field.NewFromInt64(3)})
		indices := tr.ChallengeIndices("challenge indices", 4)
		return alpha, indices
	}

	alpha1, idx1 := run()
	alpha2, idx2 := run()

	if !alpha1.Equal(alpha2) {
		t.Fatalf("alpha not deterministic: %s != %s", alpha1, alpha2)
	}
	for i := range idx1 {
		if idx1[i] != idx2[i] {
			t.Fatalf("index %d not deterministic: %d != %d", i, idx1[i], idx2[i])
		}
	}
}

func TestDifferentObservationsDivergeChallenges(t *testing.T) {
	tr1 := New()
	tr1.Observe("merkle_root", field.NewFromInt64(1))
	a1 := tr1.Challenge("alpha")

	tr2 := New()
	tr2.Observe("merkle_root", field.NewFromInt64(2))
	a2 := tr2.Challenge("alpha")

	if a1.Equal(a2) {
		t.Fatal("distinct absorbed values produced identical challenges")
	}
}

func TestLabelsAreDomainSeparated(t *testing.T) {
	tr1 := New()
	tr1.Observe("label_a", field.NewFromInt64(7))
	a1 := tr1.Challenge("alpha")

	tr2 := New()
	tr2.Observe("label_b", field.NewFromInt64(7))
	a2 := tr2.Challenge("alpha")

	if a1.Equal(a2) {
		t.Fatal("distinct labels produced identical challenges for the same value")
	}
}

func TestChallengeIndicesCount(t *testing.T) {
	tr := New()
	tr.Observe("x", field.NewFromInt64(1))
	indices := tr.ChallengeIndices("challenge indices", 10)
	if len(indices) != 10 {
		t.Fatalf("expected 10 indices, got %d", len(indices))
	}
}

func TestSequentialChallengesAreSequenceDependent(t *testing.T) {
	tr := New()
	tr.Observe("a", field.NewFromInt64(1))
	c1 := tr.Challenge("alpha")
	c2 := tr.Challenge("alpha")
	if c1.Equal(c2) {
		t.Fatal("two challenges in sequence should not collide")
	}
}
