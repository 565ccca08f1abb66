// SPDX-License-Identifier: MIT

// Package cubetour builds optimal tours for circulant TSP instances with
// n = p³ (p an odd prime) and jump lengths a1 = p², a2 = p, a3 coprime to p.
//
// What:
//
//   - Vertices 1..n are laid out as p sheets of p×p: Up/Down move ∓a1 inside
//     a column, Left/Right move ∓a2 between columns, Out moves +a3 to the next
//     sheet. All arithmetic is modulo n on the 1-based range [1, n].
//   - Solve plans how many Left versus Right sheets and Up versus Down columns
//     are needed to land back on vertex 1 after the p-th Out jump, then emits
//     the tour sheet by sheet.
//   - An optimal tour uses exactly p²(p−1) a1 jumps, p(p−1) a2 jumps and p a3
//     jumps, and closes at vertex 1.
//
// Tour utilities:
//
//   - ValidateTour: Hamiltonian-cycle check on 1-based vertices.
//   - RotateTourToStart: cyclic shift so the tour starts and ends at a vertex.
//   - Tour.Cost: total cost under per-jump costs c1, c2, c3.
//   - Sheets: the p×p×p layout for visualization.
//
// Complexity:
//
//   - Solve:  O(n) time and memory.
//   - Sheets: O(n).
//
// Errors:
//
//   - ErrInvalidPrime   p is not prime.
//   - ErrEvenPrime      p = 2.
//   - ErrNotCoprime     p divides a3.
//   - ErrA3OutOfRange   a3 < 1 or a3 ≥ n.
//   - ErrDimensionMismatch, ErrStartOutOfRange from the tour utilities.
package cubetour
