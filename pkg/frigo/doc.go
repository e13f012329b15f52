// Package frigo provides a FRI (Fast Reed-Solomon IOP of Proximity)
// low-degree prover and verifier over the Goldilocks prime field.
//
// # Quick Start
//
// Proving and verifying that a polynomial is close to low-degree:
//
//	p := frigo.NewPolynomial(coeffs)
//	cfg := frigo.Config{
//		NumQueries:           32,
//		BlowUpFactor:         2,
//		LastPolynomialDegree: 0,
//		MerkleCapBits:        0,
//		LevelReductionsBits:  []int{1, 1, 1},
//	}
//	hasher := frigo.NewSha3Hasher()
//
//	proof, err := frigo.Prove(p, cfg, hasher)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := frigo.Verify(cfg, p.Degree(), proof, hasher); err != nil {
//		log.Fatal("proof rejected:", err)
//	}
//
// # Scope
//
// This package implements the FRI protocol's evaluation/commit/fold
// loop and its verifier-side consistency checks. It deliberately leaves
// proof-of-work grinding, proof serialization, and high-level STARK
// assembly (AIR constraints, DEEP-ALI composition) to higher layers.
package frigo
