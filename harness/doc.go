// SPDX-License-Identifier: MIT

// Package harness cross-validates the counters against each other and
// renders one report line per suite.
//
// Suites:
//
//   - GreedyVsSmart:   oracle.GreedyCount vs oracle.SmartCount over a range.
//   - PrimeTimesPrime: formula.PrimeTimesPrime vs oracle for p1 < p2.
//   - PrimePowers:     formula.PrimeRaisedToK vs oracle.
//   - P1SquaredP2:     formula.ComplementP1SquaredP2 vs oracle for p1 < p2.
//   - P1P2P3:          formula.ComplementP1P2P3 vs oracle for p1 < p2 < p3.
//   - CubeSolver:      cubetour.Solve optimal and Hamiltonian for a3 ≤ n/2.
//   - GridVsOracle:    lattice.Compute vs oracle on p1^a·p2^b.
//
// Growth is not a check; it lists lattice totals for p1^i·p2^i.
//
// Values whose n exceeds oracle.MaxN are skipped, not failed.
//
// Run executes the enabled suites concurrently with errgroup under
// Config.Concurrency; each suite owns its engine calls.
package harness
