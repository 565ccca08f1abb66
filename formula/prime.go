// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math/big"
)

// PrimeTimesPrime counts the ELVs of n = p1·p2. The three groups of
// [1, n/2] are multiples of p2 (⌊p1/2⌋), multiples of p1 (⌊p2/2⌋) and the
// units; a sequence either takes a unit directly or goes through one prime.
func PrimeTimesPrime(p1, p2 int) (*big.Int, error) {
	if err := checkDistinct(p1, p2); err != nil {
		return nil, err
	}
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	col0 := num(int64(p1 / 2))
	col1 := num(int64(p2 / 2))
	col2 := sub(half(mul(num(int64(p1)), num(int64(p2)))), col1, col0)

	return add(
		mul(col0, add(col1, col2)),
		mul(col2, add(col1, num(1))),
		mul(col0, col1),
	), nil
}

// PrimeRaisedToK counts the ELVs of n = p^k for an odd prime p:
// ⌊p/2⌋·p^(k−1) · Π_{i=0}^{k−2} (⌊p/2⌋·p^i + 1).
func PrimeRaisedToK(p, k int) (*big.Int, error) {
	if err := checkPrime(p); err != nil {
		return nil, err
	}
	if p == 2 {
		return nil, fmt.Errorf("p=2 has no closed form here: %w", ErrInvalidPrime)
	}
	if k < 1 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInvalidExponent)
	}
	bp := num(int64(p))
	hp := num(int64(p / 2))
	pow := func(e int) *big.Int { return new(big.Int).Exp(bp, num(int64(e)), nil) }

	total := mul(hp, pow(k-1))
	for i := 0; i <= k-2; i++ {
		total.Mul(total, add(mul(hp, pow(i)), num(1)))
	}

	return total, nil
}

// PermutationCount returns num!/(num−length)!, zero when length > num.
func PermutationCount(n, length int) (*big.Int, error) {
	if n < 0 || length < 0 {
		return nil, fmt.Errorf("num=%d length=%d: %w", n, length, ErrInvalidExponent)
	}
	if length > n {
		return new(big.Int), nil
	}

	return fall(num(int64(n)), int64(length)), nil
}
