package fri

// Config is the FRI configuration: number of query positions, blow-up
// factor (power of two >= 2), the degree bound at the terminal round,
// the cap-Merkle truncation depth, and the folding arity at every level
// (level_reductions_bits[l] is log2 of level l's fold arity r_l).
type Config struct {
	NumQueries           int
	BlowUpFactor         uint64
	LastPolynomialDegree int
	MerkleCapBits        int
	LevelReductionsBits  []int
}

// ValidateConfig enforces the two preconditions from the FRI prover's
// algorithm: the terminal layer has room for at least two leaves after
// capping, and applying the configured reductions to polyDegree lands at
// or below LastPolynomialDegree.
func ValidateConfig(cfg Config, polyDegree int) bool {
	lhs := cfg.BlowUpFactor * uint64(cfg.LastPolynomialDegree+1)
	rhs := uint64(1) << uint(cfg.MerkleCapBits+1)
	if lhs < rhs {
		return false
	}

	d := polyDegree
	for _, b := range cfg.LevelReductionsBits {
		d = d >> uint(b)
	}
	return d <= cfg.LastPolynomialDegree
}
