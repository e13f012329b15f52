package fri

import (
	"errors"
	"testing"

	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/hash"
	"github.com/friostark/frigo/internal/frigo/poly"
)

func fe(v int64) *field.Element { return field.NewFromInt64(v) }

// samplePoly is the literal degree-7 polynomial used throughout the
// concrete end-to-end scenarios:
// P(x) = 19 + 56x + 34x^2 + 48x^3 + 43x^4 + 37x^5 + 10x^6 + 10x^7
func samplePoly() *poly.Polynomial {
	return poly.New([]*field.Element{
		fe(19), fe(56), fe(34), fe(48), fe(43), fe(37), fe(10), fe(10),
	})
}

func pureBinaryConfig() Config {
	return Config{
		NumQueries:           4,
		BlowUpFactor:         2,
		LastPolynomialDegree: 0,
		MerkleCapBits:        0,
		LevelReductionsBits:  []int{1, 1, 1},
	}
}

func mixedReductionConfig() Config {
	return Config{
		NumQueries:           1,
		BlowUpFactor:         2,
		LastPolynomialDegree: 0,
		MerkleCapBits:        0,
		LevelReductionsBits:  []int{2, 1},
	}
}

func TestCompletenessAcrossBoundaryConfigs(t *testing.T) {
	cases := map[string]Config{
		"pure binary folds":       pureBinaryConfig(),
		"mixed reduction arities":  mixedReductionConfig(),
		"single query":            {NumQueries: 1, BlowUpFactor: 2, LastPolynomialDegree: 0, MerkleCapBits: 0, LevelReductionsBits: []int{1, 1, 1}},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			p := samplePoly()
			hasher := hash.NewSha3Hasher()

			if !ValidateConfig(cfg, p.Degree()) {
				t.Fatal("expected config to validate")
			}

			proof, err := Prove(p, cfg, hasher)
			if err != nil {
				t.Fatalf("Prove: %v", err)
			}

			if err := Verify(cfg, p.Degree(), proof, hasher); err != nil {
				t.Fatalf("Verify: %v", err)
			}
		})
	}
}

func TestCompletenessWithNonConstantFinalLayer(t *testing.T) {
	// Degree-31 polynomial (the sample octet repeated four times),
	// reduced across two levels of arity 4 down to a degree-1 final
	// layer: a non-trivial final-layer IDFT check (LastPolynomialDegree > 0).
	coeffs := make([]*field.Element, 0, 32)
	for i := 0; i < 4; i++ {
		coeffs = append(coeffs, samplePoly().Coefficients()...)
	}
	p := poly.New(coeffs)
	if p.Degree() != 31 {
		t.Fatalf("expected degree 31, got %d", p.Degree())
	}

	cfg := Config{
		NumQueries:           4,
		BlowUpFactor:         2,
		LastPolynomialDegree: 1,
		MerkleCapBits:        0,
		LevelReductionsBits:  []int{2, 2},
	}
	if !ValidateConfig(cfg, p.Degree()) {
		t.Fatal("expected config to validate: 31>>2=7, 7>>2=1 == last_poly_deg")
	}

	hasher := hash.NewSha3Hasher()
	proof, err := Prove(p, cfg, hasher)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := Verify(cfg, p.Degree(), proof, hasher); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

// Scenario 3 from the concrete test plan: reductions [1,1] applied to a
// degree-31 polynomial land at degree 7, which exceeds
// LastPolynomialDegree=3 — validate_config must reject this combination
// even though the cap-size precondition alone is satisfied.
func TestValidateConfigRejectsInsufficientReduction(t *testing.T) {
	coeffs := make([]*field.Element, 0, 32)
	for i := 0; i < 4; i++ {
		coeffs = append(coeffs, samplePoly().Coefficients()...)
	}
	p := poly.New(coeffs)

	cfg := Config{
		NumQueries:           4,
		BlowUpFactor:         2,
		LastPolynomialDegree: 3,
		MerkleCapBits:        2,
		LevelReductionsBits:  []int{1, 1},
	}

	if ValidateConfig(cfg, p.Degree()) {
		t.Fatal("expected validate_config to reject: 31>>1>>1 = 7 > last_poly_deg = 3")
	}
}

// A cap-Merkle tree whose final committed layer would have fewer than
// 2^(cap_bits+1) leaves is forbidden: validate_config must reject it
// before the prover ever builds a tree with no authentication depth.
func TestValidateConfigRejectsInsufficientCapRoom(t *testing.T) {
	cfg := Config{
		NumQueries:           1,
		BlowUpFactor:         1,
		LastPolynomialDegree: 0,
		MerkleCapBits:        2,
		LevelReductionsBits:  []int{3},
	}
	if ValidateConfig(cfg, 7) {
		t.Fatal("expected validate_config to reject: final layer has only 1 evaluation, needs >= 8")
	}
}

func TestProveRejectsInvalidConfig(t *testing.T) {
	p := samplePoly()
	cfg := Config{
		NumQueries:           1,
		BlowUpFactor:         1,
		LastPolynomialDegree: 0,
		MerkleCapBits:        2,
		LevelReductionsBits:  []int{3},
	}
	_, err := Prove(p, cfg, hash.NewSha3Hasher())
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestTamperedFinalEvaluationIsRejected(t *testing.T) {
	p := samplePoly()
	cfg := pureBinaryConfig()
	hasher := hash.NewSha3Hasher()

	proof, err := Prove(p, cfg, hasher)
	if err != nil {
		t.Fatal(err)
	}

	proof.FinalEvaluations[0] = proof.FinalEvaluations[0].Add(field.One())

	if err := Verify(cfg, p.Degree(), proof, hasher); err == nil {
		t.Fatal("expected rejection of tampered final evaluation")
	}
}

func TestSwappedQueryOpeningsAreRejected(t *testing.T) {
	p := samplePoly()
	cfg := pureBinaryConfig()
	hasher := hash.NewSha3Hasher()

	proof, err := Prove(p, cfg, hasher)
	if err != nil {
		t.Fatal(err)
	}

	level0 := proof.QueryOpenings[0]
	if len(level0) < 2 {
		t.Skip("not enough distinct openings at level 0 to swap")
	}

	var keys []uint64
	for k := range level0 {
		keys = append(keys, k)
		if len(keys) == 2 {
			break
		}
	}
	level0[keys[0]], level0[keys[1]] = level0[keys[1]], level0[keys[0]]

	if err := Verify(cfg, p.Degree(), proof, hasher); err == nil {
		t.Fatal("expected rejection after swapping query openings")
	}
}

func TestDeterministicProving(t *testing.T) {
	p := samplePoly()
	cfg := pureBinaryConfig()
	hasher := hash.NewSha3Hasher()

	proof1, err := Prove(p, cfg, hasher)
	if err != nil {
		t.Fatal(err)
	}
	proof2, err := Prove(p, cfg, hasher)
	if err != nil {
		t.Fatal(err)
	}

	if len(proof1.FinalEvaluations) != len(proof2.FinalEvaluations) {
		t.Fatal("differing final evaluation counts across identical runs")
	}
	for i := range proof1.FinalEvaluations {
		if !proof1.FinalEvaluations[i].Equal(proof2.FinalEvaluations[i]) {
			t.Fatalf("final evaluation %d differs across runs", i)
		}
	}
}
