// SPDX-License-Identifier: MIT

// Package formula holds closed-form and complement ELV counts for small
// prime factorizations. Results are exact (*big.Int) for any input size.
//
// What:
//
//   - PrimeTimesPrime(p1,p2):        n = p1·p2, distinct primes.
//   - PrimeRaisedToK(p,k):           n = p^k, p an odd prime, k ≥ 1.
//   - ComplementP1SquaredP2(p1,p2):  n = p1²·p2, by subtracting illegal
//     encoding sequences of length ≤ 3 from all of them.
//   - ComplementP1P2P3(p1,p2,p3):    n = p1·p2·p3, same complement method.
//   - PermutationCount(num,length):  num!/(num−length)!.
//
// Argument order of distinct primes does not matter except in
// ComplementP1SquaredP2, where p1 is the squared prime.
//
// Errors:
//
//   - ErrInvalidPrime     input is not a prime (or is 2 where odd is needed).
//   - ErrNotDistinct      repeated prime.
//   - ErrInvalidExponent  k < 1, or a negative permutation argument.
package formula
