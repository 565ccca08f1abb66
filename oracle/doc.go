// SPDX-License-Identifier: MIT

// Package oracle provides exhaustive edge length vector (ELV) counters used
// as ground truth for the lattice engine and the closed forms.
//
// What:
//
//   - SmartCount walks every G-sequence of n and, per step prev→target, picks
//     an edge length i in [1, ⌊n/2⌋] with gcd(n,i) = target or
//     gcd(prev,i) = target. The count is Σ over chains of Π |candidates|.
//   - GreedyCount builds encoding sequences of distinct values from
//     [1, ⌊n/2⌋] whose running gcd with n strictly decreases down to 1.
//   - ExactCount is SmartCount without options.
//
// Conventions:
//
//	n = 1 has the single chain [1] and no steps, so SmartCount(1) = 1.
//	GreedyCount(1) = 0: there is no value to place.
//
// Complexity:
//
//   - SmartCount (counting): O(d(n)²·n) with memoized candidate counts.
//   - SmartCount (WithVisitor): proportional to the number of ELVs.
//   - GreedyCount: exponential; guarded by MaxGreedyN.
//
// Options:
//
//   - WithContext(ctx):  cancellation, checked once per recursion step.
//   - WithVisitor(fn):   enumerate every ELV instead of counting arithmetically.
//
// Errors:
//
//   - ErrInvalidN  if n < 1.
//   - ErrTooLarge  if n exceeds MaxN (or MaxGreedyN for GreedyCount).
package oracle
