// Package circulant counts edge length vectors (ELV) of circulant graphs and
// builds optimal tours for circulant TSP instances.
//
// What is in the box?
//
//	• Lattice engine: exact ELV counts for n = p1^A·p2^B, any size
//	• Exhaustive oracles: G-sequence and permutation counters for small n
//	• Closed forms: p1·p2, p^k, p1²·p2, p1·p2·p3
//	• Cube tours: optimal a1/a2/a3 tours for n = p³
//	• Harness: concurrent cross-validation of all of the above
//
// Packages:
//
//	residue/   residue table: [1, n/2] classified by (p2, p1) exponents
//	lattice/   power-pair lattice, transition rules, memoized engine
//	gseq/      G-sequences (divisor chains) with a depth-first walker
//	oracle/    SmartCount, GreedyCount, ExactCount
//	formula/   closed-form and complement counts
//	cubetour/  CubeSolver tours, tour validation, sheet layout
//	harness/   suites, reports, errgroup runner
//	config/    YAML harness configuration
//	cmd/elv/   command line front end
//
// Quick example:
//
//	res, _ := lattice.Compute(2, 1, 3, 1)
//	fmt.Println(res.Total) // 5
//
//	go install github.com/katalvlaran/circulant/cmd/elv@latest
//	elv grid --p1 2 --a 4 --p2 3 --b 4
package circulant
