// Package lattice_test provides runnable examples for the lattice engine.
// Each example prints exact totals with a stable // Output: block.
//
// Contents:
//  1. ExampleCompute          (n = 6, the smallest two-prime case)
//  2. ExampleCompute_beyond64 (n = 2^6·3^6, total past 64 bits)
//  3. ExampleWithOnAttach     (observe the tree site by site)
package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/circulant/lattice"
)

// ExampleCompute counts the ELVs of 6 = 2·3.
func ExampleCompute() {
	res, err := lattice.Compute(2, 1, 3, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.N, res.Total, res.Nodes, res.Sites)
	// Output: 6 5 4 5
}

// ExampleCompute_beyond64 shows totals are exact beyond uint64.
func ExampleCompute_beyond64() {
	res, err := lattice.Compute(2, 6, 3, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Target, "=", res.N)
	fmt.Println(res.Total)
	// Output:
	// 2^6 * 3^6 = 46656
	// 35031056767115434892524526400
}

// ExampleWithOnAttach prints every parent→child attachment for n = 6.
func ExampleWithOnAttach() {
	hook := lattice.WithOnAttach(func(s lattice.SiteInfo) {
		fmt.Printf("%v -> %v %s agg=%s\n", s.Parent, s.Child, s.Rule, s.Aggregate)
	})
	if _, err := lattice.Compute(2, 1, 3, 1, hook); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// p1^1·p2^1 -> p1^0·p2^0 identity-coprime agg=1
	// p1^0·p2^1 -> p1^0·p2^0 identity-no-p1 agg=2
	// p1^1·p2^1 -> p1^0·p2^1 drop-p1-only agg=2
	// p1^1·p2^0 -> p1^0·p2^0 identity-no-p2 agg=2
	// p1^1·p2^1 -> p1^1·p2^0 drop-p2-only agg=2
}
