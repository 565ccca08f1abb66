// SPDX-License-Identifier: MIT

package cubetour

import (
	"fmt"
	"strings"
)

// ValidateTour enforces Hamiltonian-cycle invariants on 1-based vertices:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v in [1..n] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return fmt.Errorf("len %d, want %d: %w", len(tour), n+1, ErrDimensionMismatch)
	}
	if start < 1 || start > n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("tour must open and close at %d: %w", start, ErrDimensionMismatch)
	}

	seen := make([]bool, n+1)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 1 || v > n {
			return fmt.Errorf("vertex %d at %d: %w", v, i, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("vertex %d repeated at %d: %w", v, i, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh closed copy of tour shifted so that
// out[0] == out[n] == start. The input may be closed (len n+1) or a raw
// path (len n).
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(tour)
	if len(tour) > 1 && tour[0] == tour[len(tour)-1] {
		n--
	}

	pivot := -1
	for i := 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// DebugString prints the open part of a closed tour, then its closing vertex.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	n := len(tour) - 1
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", tour[i])
	}
	fmt.Fprintf(&sb, " | %d]", tour[n])

	return sb.String()
}
