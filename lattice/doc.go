// SPDX-License-Identifier: MIT

// Package lattice counts edge length vectors (ELV) for n = p1^A·p2^B by a
// memoized traversal of the lattice of power-pairs (a,b), 0≤a≤A, 0≤b≤B.
//
// What:
//
//   - Every power-pair is a node. A node's children are all pairs it strictly
//     dominates; the parent assigns each child a multiplier (or, for the
//     identity pair (0,0), a baseValue) read from a residue.Table.
//   - aggregate = multiplier × (baseValue + Σ children aggregate); the answer
//     is the root aggregate with multiplier 1.
//
// How:
//
//   - Canonical nodes live in an arena and are built once per power-pair; a
//     row-major cache maps (a,b) to its canonical node.
//   - A parent never copies or mutates a shared node. It owns a small site
//     record {multiplier, baseValue, aggregate} pointing at the canonical
//     node, whose children list and children sum are sealed once built.
//   - The parent→child rule is a pure function (Transition) over a
//     first-match decision table; see Rule for the rows.
//
// Concurrency:
//
//	Each Compute call owns its table, cache and arenas. Calls share nothing
//	and may run in parallel.
//
// Complexity:
//
//   - Table:  O(n·log n) time.
//   - Tree:   (A+1)(B+1) nodes, Σ (a+1)(b+1)−1 sites, O(dim) per table read.
//
// Options:
//
//   - WithLogger(l):   Debug trace of every transition plus a run summary.
//   - WithOnAttach(f): observe every parent→child attachment.
//
// Errors:
//
//   - ErrInvalidArgument (wrapped by ErrSamePrimes, ErrPrimeTooSmall,
//     ErrNegativeExponent): rejected before any table is built.
//   - residue.ErrOutOfRange, ErrOutOfRange: the table or cache was sized too
//     small for a requested pair. These signal a broken sizing contract.
package lattice
