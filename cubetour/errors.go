// SPDX-License-Identifier: MIT

package cubetour

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidPrime indicates p is not prime.
	ErrInvalidPrime = errors.New("cubetour: p must be prime")

	// ErrEvenPrime indicates p = 2; the sheet layout needs an odd side.
	ErrEvenPrime = errors.New("cubetour: p must be an odd prime")

	// ErrNotCoprime indicates a3 shares the factor p with n.
	ErrNotCoprime = errors.New("cubetour: a3 must be coprime to p")

	// ErrA3OutOfRange indicates a3 outside [1, n).
	ErrA3OutOfRange = errors.New("cubetour: a3 out of range")

	// ErrDimensionMismatch indicates a tour whose shape or content does not
	// form a Hamiltonian cycle over [1, n].
	ErrDimensionMismatch = errors.New("cubetour: dimension mismatch")

	// ErrStartOutOfRange indicates a start vertex outside [1, n].
	ErrStartOutOfRange = errors.New("cubetour: start vertex out of range")
)

func validate(p, a3 int) error {
	if p < 2 || !big.NewInt(int64(p)).ProbablyPrime(20) {
		return fmt.Errorf("p=%d: %w", p, ErrInvalidPrime)
	}
	if p == 2 {
		return ErrEvenPrime
	}
	n := p * p * p
	if a3 < 1 || a3 >= n {
		return fmt.Errorf("a3=%d, n=%d: %w", a3, n, ErrA3OutOfRange)
	}
	if a3%p == 0 {
		return fmt.Errorf("a3=%d, p=%d: %w", a3, p, ErrNotCoprime)
	}

	return nil
}
