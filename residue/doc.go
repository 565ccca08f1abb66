// SPDX-License-Identifier: MIT

// Package residue classifies the integers of [1, ⌊n/2⌋] by their exact
// exponents of two distinct primes p1 and p2.
//
// What:
//
//   - Table is a square, row-major grid of counts. Cell (r, c) holds how many
//     integers i ≤ ⌊n/2⌋ carry exactly p2^r and p1^c (any other prime factor
//     is ignored).
//   - Row sums and column sums over a suffix (or any sub-range) of a row or
//     column are the only aggregate queries the lattice engine needs.
//
// Sizing:
//
//	An integer ≤ n/2 may carry a higher power of p1 or p2 than n itself, so
//	the dimension is 3·k where k is the smallest integer with min(p1,p2)^k > n.
//
// Invariants:
//
//   - Σ cells == ⌊n/2⌋ (every integer lands in exactly one cell).
//   - A Table is read-only after Build and safe for concurrent readers.
//
// Complexity:
//
//   - Build:          O(n·log n) time, O(k²) memory.
//   - Cell:           O(1).
//   - RowSum/ColSum:  O(k).
//
// Errors:
//
//   - ErrInvalidPrime: a prime candidate below 2.
//   - ErrSamePrimes:   p1 == p2.
//   - ErrInvalidN:     n is nil or below 1.
//   - ErrTooLarge:     ⌊n/2⌋ does not fit the scan counter.
//   - ErrOutOfRange:   a row or column outside [0, Dim()).
package residue
