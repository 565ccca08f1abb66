// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/circulant/residue"
)

// Sentinel errors for lattice operations.
var (
	// ErrInvalidArgument is the umbrella for every input rejected before the
	// residue table is built. The specific sentinels below wrap it.
	ErrInvalidArgument = errors.New("lattice: invalid argument")

	// ErrSamePrimes indicates p1 == p2.
	ErrSamePrimes = fmt.Errorf("%w: primes must be distinct", ErrInvalidArgument)

	// ErrPrimeTooSmall indicates a prime candidate below 2.
	ErrPrimeTooSmall = fmt.Errorf("%w: primes must be >= 2", ErrInvalidArgument)

	// ErrNegativeExponent indicates A < 0 or B < 0.
	ErrNegativeExponent = fmt.Errorf("%w: exponents must be >= 0", ErrInvalidArgument)

	// ErrNotDominated indicates a transition was requested for a child that
	// is not strictly dominated by its parent.
	ErrNotDominated = errors.New("lattice: child is not dominated by parent")

	// ErrOutOfRange indicates a power-pair outside the node cache.
	ErrOutOfRange = errors.New("lattice: power-pair out of range")
)

// Pair is a power-pair (A, B): the sub-divisor p1^A·p2^B of the target.
type Pair struct {
	A int // exponent of p1
	B int // exponent of p2
}

// IsZero reports whether p is the identity pair (0,0).
func (p Pair) IsZero() bool { return p.A == 0 && p.B == 0 }

// Dominates reports whether q lies strictly below p in the lattice:
// q.A ≤ p.A, q.B ≤ p.B and q ≠ p.
func (p Pair) Dominates(q Pair) bool {
	return q.A >= 0 && q.B >= 0 && q.A <= p.A && q.B <= p.B && q != p
}

// String renders p as "p1^A·p2^B".
func (p Pair) String() string { return fmt.Sprintf("p1^%d·p2^%d", p.A, p.B) }

// Target is the composite n = p1^A·p2^B, immutable for one computation.
type Target struct {
	P1, A int
	P2, B int
}

// Validate enforces distinct primes ≥ 2 and non-negative exponents.
// Primality itself is a caller precondition.
func (t Target) Validate() error {
	if t.P1 < 2 || t.P2 < 2 {
		return ErrPrimeTooSmall
	}
	if t.P1 == t.P2 {
		return ErrSamePrimes
	}
	if t.A < 0 || t.B < 0 {
		return ErrNegativeExponent
	}

	return nil
}

// N derives p1^A·p2^B.
func (t Target) N() *big.Int {
	n := new(big.Int).Exp(big.NewInt(int64(t.P1)), big.NewInt(int64(t.A)), nil)
	return n.Mul(n, new(big.Int).Exp(big.NewInt(int64(t.P2)), big.NewInt(int64(t.B)), nil))
}

// Root returns the power-pair the tree is rooted at.
func (t Target) Root() Pair { return Pair{A: t.A, B: t.B} }

// String renders t as "p1^A * p2^B" with the concrete primes.
func (t Target) String() string {
	return fmt.Sprintf("%d^%d * %d^%d", t.P1, t.A, t.P2, t.B)
}

// Result is the outcome of one Compute call.
type Result struct {
	Target Target
	// N is p1^A·p2^B.
	N *big.Int
	// Total is the exact ELV count: the root aggregate.
	Total *big.Int
	// Nodes counts canonical nodes built (one per reachable power-pair).
	Nodes int
	// Sites counts reuse sites, i.e. parent→child edges of the tree.
	Sites int
	// Table is the residue table the counts were read from.
	Table *residue.Table
}

// SiteInfo describes one child attachment as seen by an OnAttach hook.
// Big values are copies; the hook may keep or mutate them.
type SiteInfo struct {
	Parent     Pair
	Child      Pair
	Rule       Rule
	Multiplier *big.Int
	BaseValue  *big.Int
	Aggregate  *big.Int
	// Reused is true when the child's canonical node came from the cache.
	Reused bool
}
