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

// levelState is the per-level commitment needed to answer this level's
// query openings. Queries are drawn only after the last level, so every
// level's tree stays alive until Prove returns (the prover's call tree
// owns all memory).
type levelState struct {
	tree *merklecap.Tree
	r    uint64
}

// Prove runs the FRI prover: evaluate, commit, fold, repeat, then open
// the transcript-derived queries.
func Prove(p *poly.Polynomial, cfg Config, hasher hash.Hasher) (*Proof, error) {
	if !ValidateConfig(cfg, p.Degree()) {
		return nil, fmt.Errorf("%w: precondition failed for degree %d", ErrConfigInvalid, p.Degree())
	}

	tr := transcript.New()
	offset := field.Generator()
	current := p

	L := len(cfg.LevelReductionsBits)
	levels := make([]levelState, L)
	levelCaps := make([][][]byte, L)
	alphas := make([]*field.Element, L)

	var n0 uint64

	for l, b := range cfg.LevelReductionsBits {
		r := uint64(1) << uint(b)
		nl := cfg.BlowUpFactor * uint64(current.Degree()+1)
		if l == 0 {
			n0 = nl
		}

		d, err := domain.Coset(nl, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDomainUnavailable, err)
		}
		evals := d.EvalPoly(current)

		groupSize := nl / r
		leaves := make([][]*field.Element, groupSize)
		for i := uint64(0); i < groupSize; i++ {
			leaf := make([]*field.Element, r)
			for j := uint64(0); j < r; j++ {
				leaf[j] = evals[i+j*groupSize]
			}
			leaves[i] = leaf
		}

		tree := merklecap.New(cfg.MerkleCapBits, hasher)
		if err := tree.Insert(leaves); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProofMalformed, err)
		}
		cap, err := tree.Compute()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
		}

		tr.ObserveMany("merkle_root", capAsFieldElements(cap, hasher))
		alpha := tr.Challenge("alpha")

		folded, err := current.FoldHorner(alpha, int(r))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProofMalformed, err)
		}

		levels[l] = levelState{tree: tree, r: r}
		levelCaps[l] = cap
		alphas[l] = alpha

		offset = offset.Pow(r)
		current = folded
	}

	nL := cfg.BlowUpFactor * uint64(current.Degree()+1)
	dFinal, err := domain.Coset(nL, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDomainUnavailable, err)
	}
	finalEvals := dFinal.EvalPoly(current)
	tr.ObserveMany("final evals", finalEvals)

	queries := tr.ChallengeIndices("challenge indices", cfg.NumQueries)

	queryOpenings := make([]LevelOpenings, L)
	for l := range queryOpenings {
		queryOpenings[l] = make(LevelOpenings)
	}

	halfN0 := n0 / 2
	for _, q := range queries {
		q0 := q % halfN0
		nCur := n0
		for l := 0; l < L; l++ {
			r := levels[l].r
			ql := q0 % nCur
			groupSize := nCur / r
			leafIdx := ql % groupSize

			if _, exists := queryOpenings[l][leafIdx]; !exists {
				opening, err := levels[l].tree.Proof(leafIdx)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrProofMalformed, err)
				}
				queryOpenings[l][leafIdx] = opening
			}

			nCur = groupSize
		}
	}

	return &Proof{
		FinalEvaluations: finalEvals,
		LevelCaps:        levelCaps,
		QueryOpenings:    queryOpenings,
	}, nil
}

func capAsFieldElements(cap [][]byte, hasher hash.Hasher) []*field.Element {
	out := make([]*field.Element, len(cap))
	for i, c := range cap {
		var d hash.Digest
		copy(d[:], c)
		out[i] = hasher.HashAsField(d)
	}
	return out
}
