// SPDX-License-Identifier: MIT

package oracle

import "errors"

const (
	// MaxN bounds SmartCount input.
	MaxN = 1 << 15

	// MaxGreedyN bounds GreedyCount input.
	MaxGreedyN = 96
)

var (
	// ErrInvalidN indicates n < 1.
	ErrInvalidN = errors.New("oracle: n must be >= 1")

	// ErrTooLarge indicates n is beyond the brute-force guard.
	ErrTooLarge = errors.New("oracle: n too large for exhaustive search")
)
