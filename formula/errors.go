// SPDX-License-Identifier: MIT

package formula

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidPrime indicates an argument that is not an admissible prime.
	ErrInvalidPrime = errors.New("formula: invalid prime")

	// ErrNotDistinct indicates the same prime passed twice.
	ErrNotDistinct = errors.New("formula: primes must be distinct")

	// ErrInvalidExponent indicates an out-of-range exponent or length.
	ErrInvalidExponent = errors.New("formula: invalid exponent")
)

// primeTest rounds; ProbablyPrime is exact below 2^64.
const primeTest = 20

func checkPrime(p int) error {
	if p < 2 || !big.NewInt(int64(p)).ProbablyPrime(primeTest) {
		return fmt.Errorf("%d: %w", p, ErrInvalidPrime)
	}

	return nil
}

func checkDistinct(ps ...int) error {
	for i, p := range ps {
		if err := checkPrime(p); err != nil {
			return err
		}
		for _, q := range ps[:i] {
			if p == q {
				return fmt.Errorf("%d repeated: %w", p, ErrNotDistinct)
			}
		}
	}

	return nil
}
