package fri

import (
	"github.com/friostark/frigo/internal/frigo/field"
	"github.com/friostark/frigo/internal/frigo/merklecap"
)

// Opening is one Merkle proof whose leaf fiber is the arity-r_l fiber at
// a queried coset point.
type Opening = merklecap.Opening

// LevelOpenings maps a level's leaf index to the opening demanded by the
// transcript-derived queries at that level, deduplicated by (level, leaf
// index).
type LevelOpenings map[uint64]*Opening

// Proof is the FRI proof object: the final-round evaluations, the
// per-level cap vectors, and the per-level query openings.
type Proof struct {
	FinalEvaluations []*field.Element
	LevelCaps        [][][]byte
	QueryOpenings    []LevelOpenings
}
