// SPDX-License-Identifier: MIT

// Package gseq enumerates G-sequences: strictly decreasing divisor chains
// n = g0 > g1 > ... > gk = 1 with g(i+1) | g(i).
//
// Key features:
//   - Walk(n, visit, opts...): depth-first generation with a visit hook
//   - Divisors(n): proper divisors in ascending order (1 included, n excluded)
//   - Cancellation via context.Context; optional chain-length limit
//
// Complexity:
//
//   - Time:   O(H(n)·√n) where H(n) is the number of ordered factorizations.
//   - Memory: O(Ω(n)) for the recursion stack and the shared chain buffer.
//
// Errors:
//
//   - ErrInvalidN     if n < 1.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by the visit hook.
package gseq

import (
	"context"
	"errors"
	"sort"
)

// ErrInvalidN is returned when n < 1.
var ErrInvalidN = errors.New("gseq: n must be >= 1")

// Option configures Walk.
type Option func(*Options)

// Options holds Walk knobs.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxLength, if non-negative, skips chains with more than MaxLength
	// elements (n and 1 included). Default is -1 (no limit).
	MaxLength int
}

// DefaultOptions returns Background context and no length limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxLength: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLength limits the number of elements per chain.
func WithMaxLength(limit int) Option {
	return func(o *Options) {
		o.MaxLength = limit
	}
}

// Divisors returns every divisor of n except n itself, ascending.
// Divisors(1) is empty.
// Complexity: O(√n + d log d).
func Divisors(n int) []int {
	if n <= 1 {
		return nil
	}
	out := []int{1}
	for i := 2; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		out = append(out, i)
		if j := n / i; j != i {
			out = append(out, j)
		}
	}
	sort.Ints(out)

	return out
}

// walker carries the traversal state shared by recursive calls.
type walker struct {
	opts  Options
	visit func([]int) error
	chain []int
}

// Walk calls visit once per G-sequence of n, in lexicographic order of the
// chain read from the front (smaller next divisor first).
//
// The slice passed to visit is reused between calls; copy it to retain it.
// Walk(1, ...) visits the single chain [1].
func Walk(n int, visit func(chain []int) error, opts ...Option) error {
	if n < 1 {
		return ErrInvalidN
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	w := &walker{opts: o, visit: visit, chain: make([]int, 0, 16)}

	return w.descend(n)
}

func (w *walker) descend(g int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.chain = append(w.chain, g)
	defer func() { w.chain = w.chain[:len(w.chain)-1] }()

	if w.opts.MaxLength >= 0 && len(w.chain) > w.opts.MaxLength {
		return nil
	}
	if g == 1 {
		if w.visit == nil {
			return nil
		}
		return w.visit(w.chain)
	}
	for _, d := range Divisors(g) {
		if err := w.descend(d); err != nil {
			return err
		}
	}

	return nil
}

// All collects every G-sequence of n.
func All(n int, opts ...Option) ([][]int, error) {
	var out [][]int
	err := Walk(n, func(chain []int) error {
		out = append(out, append([]int(nil), chain...))
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of G-sequences of n.
func Count(n int, opts ...Option) (int, error) {
	count := 0
	err := Walk(n, func([]int) error {
		count++
		return nil
	}, opts...)

	return count, err
}
