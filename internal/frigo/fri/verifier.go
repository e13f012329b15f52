package fri

import (
	"fmt"

	"github.com/friostark/frigo/internal/frigo/domain"
	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/hash"
	"github.com/friostark/frigo/internal/frigo/merklecap"
	"github.com/friostark/frigo/internal/frigo/poly"
	"github.com/friostark/frigo/internal/frigo/transcript"
)

// Verify replays the transcript, checks Merkle openings, and enforces
// per-query fold consistency plus the final-layer degree bound. A
// returned error is always fatal rejection; there is no partial
// acceptance.
func Verify(cfg Config, degree int, proof *Proof, hasher hash.Hasher) error {
	L := len(cfg.LevelReductionsBits)
	if len(proof.LevelCaps) != L || len(proof.QueryOpenings) != L {
		return fmt.Errorf("%w: expected %d levels, got %d caps / %d opening sets",
			ErrProofMalformed, L, len(proof.LevelCaps), len(proof.QueryOpenings))
	}

	tr := transcript.New()
	alphas := make([]*field.Element, L)
	for l := 0; l < L; l++ {
		tr.ObserveMany("merkle_root", capAsFieldElements(proof.LevelCaps[l], hasher))
		alphas[l] = tr.Challenge("alpha")
	}

	tr.ObserveMany("final evals", proof.FinalEvaluations)
	queries := tr.ChallengeIndices("challenge indices", cfg.NumQueries)

	if err := checkFinalLayerDegree(cfg, proof); err != nil {
		return err
	}

	n0 := cfg.BlowUpFactor * uint64(degree+1)
	if n0 == 0 {
		return fmt.Errorf("%w: degree-derived domain size is zero", ErrProofMalformed)
	}
	halfN0 := n0 / 2

	for _, q := range queries {
		if err := verifyQuery(cfg, proof, alphas, q, halfN0, n0, hasher); err != nil {
			return err
		}
	}

	return nil
}

func checkFinalLayerDegree(cfg Config, proof *Proof) error {
	expectedLen := cfg.BlowUpFactor * uint64(cfg.LastPolynomialDegree+1)
	if uint64(len(proof.FinalEvaluations)) != expectedLen {
		return fmt.Errorf("%w: final evaluations length %d, want %d",
			ErrProofMalformed, len(proof.FinalEvaluations), expectedLen)
	}

	if cfg.LastPolynomialDegree == 0 {
		first := proof.FinalEvaluations[0]
		for i, v := range proof.FinalEvaluations[1:] {
			if !v.Equal(first) {
				return fmt.Errorf("%w: final evaluation %d disagrees with constant value",
					ErrDegreeTooHigh, i+1)
			}
		}
		return nil
	}

	totalR := uint64(1)
	for _, b := range cfg.LevelReductionsBits {
		totalR *= uint64(1) << uint(b)
	}
	offsetFinal := field.Generator().Pow(totalR)

	d, err := domain.Coset(uint64(len(proof.FinalEvaluations)), offsetFinal)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDomainUnavailable, err)
	}
	coeffs, err := d.IFFT(proof.FinalEvaluations)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProofMalformed, err)
	}

	recovered := poly.New(coeffs)
	bound := cfg.LastPolynomialDegree + 1
	if recovered.Degree() >= bound {
		return fmt.Errorf("%w: final layer has degree %d, bound is %d",
			ErrDegreeTooHigh, recovered.Degree(), bound)
	}
	return nil
}

func verifyQuery(cfg Config, proof *Proof, alphas []*field.Element, q, halfN0, n0 uint64, hasher hash.Hasher) error {
	L := len(cfg.LevelReductionsBits)
	q0 := q % halfN0
	offset := field.Generator()
	nCur := n0
	var expected *field.Element

	for l := 0; l < L; l++ {
		r := uint64(1) << uint(cfg.LevelReductionsBits[l])
		groupSize := nCur / r
		ql := q0 % nCur
		within := ql % groupSize

		opening, ok := proof.QueryOpenings[l][within]
		if !ok {
			return fmt.Errorf("%w: missing opening at level %d for index %d", ErrProofMalformed, l, within)
		}
		if uint64(len(opening.LeafValues)) != r {
			return fmt.Errorf("%w: leaf fiber at level %d has length %d, want %d",
				ErrProofMalformed, l, len(opening.LeafValues), r)
		}

		depth := log2Uint(groupSize) - cfg.MerkleCapBits
		if depth < 1 {
			return fmt.Errorf("%w: level %d has non-positive authentication depth", ErrProofMalformed, l)
		}
		// Authenticate against the level cap absorbed into the transcript,
		// not the cap copy carried inside the opening.
		pinned := *opening
		pinned.Cap = proof.LevelCaps[l]
		if !merklecap.Verify(&pinned, depth, hasher) {
			return fmt.Errorf("%w: authentication path invalid at level %d", ErrMerkleMismatch, l)
		}

		if l > 0 {
			idxInFiber := ql / groupSize
			if idxInFiber >= uint64(len(opening.LeafValues)) || !expected.Equal(opening.LeafValues[idxInFiber]) {
				return fmt.Errorf("%w: folded value disagrees with opened leaf at level %d", ErrConsistencyMismatch, l)
			}
		}

		d, err := domain.Coset(nCur, offset)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDomainUnavailable, err)
		}
		xs := make([]*field.Element, r)
		for j := uint64(0); j < r; j++ {
			xs[j] = d.Element(within + j*groupSize)
		}
		val, err := poly.LagrangeAt(xs, opening.LeafValues, alphas[l])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrProofMalformed, err)
		}
		expected = val

		nCur = groupSize
		offset = offset.Pow(r)
	}

	finalIdx := q0 % nCur
	if finalIdx >= uint64(len(proof.FinalEvaluations)) || !proof.FinalEvaluations[finalIdx].Equal(expected) {
		return fmt.Errorf("%w: final evaluation at index %d disagrees with folded value", ErrConsistencyMismatch, finalIdx)
	}
	return nil
}

func log2Uint(n uint64) int {
	k := 0
	for (uint64(1) << uint(k)) < n {
		k++
	}
	return k
}
