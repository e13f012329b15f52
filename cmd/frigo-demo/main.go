package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/friostark/frigo/pkg/frigo"
)

// Demonstrates the complete FRI lifecycle: evaluate, commit, fold,
// repeat, then verify.

func main() {
	fmt.Println("=== frigo demo: FRI low-degree proof ===")

	coeffs := make([]*frigo.FieldElement, 0, 8)
	for _, v := range []int64{19, 56, 34, 48, 43, 37, 10, 10} {
		coeffs = append(coeffs, frigo.NewFieldElement(v))
	}
	p := frigo.NewPolynomial(coeffs)
	fmt.Printf("polynomial degree: %d\n", p.Degree())

	cfg := frigo.Config{
		NumQueries:           16,
		BlowUpFactor:         2,
		LastPolynomialDegree: 0,
		MerkleCapBits:        0,
		LevelReductionsBits:  []int{1, 1, 1},
	}

	if !frigo.ValidateConfig(cfg, p.Degree()) {
		log.Fatal("configuration rejected by validate_config")
	}
	fmt.Println("configuration validated")

	hasher := frigo.NewSha3Hasher()

	proof, err := frigo.Prove(p, cfg, hasher)
	if err != nil {
		log.Fatalf("proving failed: %v", err)
	}
	fmt.Printf("proof generated: %d levels, %d final evaluations\n",
		len(proof.LevelCaps), len(proof.FinalEvaluations))

	if err := frigo.Verify(cfg, p.Degree(), proof, hasher); err != nil {
		log.Fatalf("verification failed: %v", err)
	}

	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("proof accepted")
}
