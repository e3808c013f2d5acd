// Package main demonstrates scalar multiplication on a small
// short-Weierstrass curve
package main

import (
	"fmt"
	"log"

	"github.com/smallcurve/weierstrass/pkg/curve"
)

func main() {
	fmt.Println("=== Scalar Multiplication Example: y² = x³ + 4x + 4 mod 313 ===")

	params, err := curve.NewParams(4, 4, 313)
	if err != nil {
		log.Fatalf("Failed to build curve parameters: %v", err)
	}

	p := curve.NewPoint(205, 130)
	n := int64(2)

	fmt.Println("Phase 1: Checking the base point...")
	if !params.IsOnCurve(p) {
		log.Fatalf("Base point %v is not on the curve", p)
	}
	fmt.Printf("  ✓ P = %v is on the curve\n", p)

	fmt.Println("\nPhase 2: Computing nP by double-and-add...")
	np, err := params.ScalarMult(n, p)
	if err != nil {
		log.Fatalf("Scalar multiplication failed: %v", err)
	}
	if np.IsInfinity() {
		fmt.Printf("  ✓ %dP is the point at infinity\n", n)
	} else {
		fmt.Printf("  ✓ %dP = %v\n", n, np)
		fmt.Printf("  ✓ On curve: %v\n", params.IsOnCurve(np))
	}

	fmt.Println("\nPhase 3: Cross-checking against a single doubling...")
	doubled, err := params.Add(p, p)
	if err != nil {
		log.Fatalf("Point doubling failed: %v", err)
	}
	if !doubled.Equal(np) {
		log.Fatalf("Mismatch: Add(P, P) = %v, ScalarMult(2, P) = %v", doubled, np)
	}
	fmt.Println("  ✓ Add(P, P) matches ScalarMult(2, P)")

	fmt.Println("\n=== Done! ===")
}
