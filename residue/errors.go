// SPDX-License-Identifier: MIT

package residue

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrime is returned when a prime candidate is below 2.
	ErrInvalidPrime = errors.New("residue: prime candidates must be >= 2")

	// ErrSamePrimes is returned when both tracked primes are equal.
	ErrSamePrimes = errors.New("residue: primes must be distinct")

	// ErrInvalidN is returned when n is nil or below 1.
	ErrInvalidN = errors.New("residue: n must be >= 1")

	// ErrTooLarge is returned when ⌊n/2⌋ does not fit a signed 64-bit counter.
	ErrTooLarge = errors.New("residue: n is too large to scan")

	// ErrOutOfRange indicates a row or column outside the allocated table.
	// Inside the lattice engine this means the dimension heuristic was
	// insufficient, which is a programming-contract violation.
	ErrOutOfRange = errors.New("residue: index out of range")
)

// method tags used in error wrappers
const (
	ctxCell   = "Cell"
	ctxRowSum = "RowSum"
	ctxColSum = "ColSum"
)

// tableErrorf attaches the query name and coordinates to a sentinel.
func tableErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, a, b, err)
}
