// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/circulant/cubetour"
	"github.com/katalvlaran/circulant/formula"
	"github.com/katalvlaran/circulant/lattice"
	"github.com/katalvlaran/circulant/oracle"
)

// Suite names as they appear in report lines.
const (
	NameGreedyVsSmart   = "Greedy vs Smart"
	NamePrimeTimesPrime = "n = p1 * p2"
	NamePrimePowers     = "n = p1^k"
	NameP1SquaredP2     = "n = p1^2 * p2"
	NameP1P2P3          = "n = p1 * p2 * p3"
	NameCubeSolver      = "Cube Solver"
	NameGridVsOracle    = "n = p1^k * p2^j"
)

// tally accumulates one suite's report.
type tally struct {
	ctx context.Context
	r   Report
}

func newTally(ctx context.Context, name string) *tally {
	return &tally{ctx: ctx, r: Report{Name: name}}
}

// compare counts one check of n and records n when the values differ.
func (t *tally) compare(n int64, want, got *big.Int) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	t.r.Checked++
	if want.Cmp(got) != 0 {
		t.r.Failed = append(t.r.Failed, n)
	}

	return nil
}

// againstOracle checks a closed-form value for n against the oracle.
// n beyond oracle.MaxN is skipped.
func (t *tally) againstOracle(n int, got *big.Int) error {
	if n > oracle.MaxN {
		return nil
	}
	want, err := oracle.SmartCount(n, oracle.WithContext(t.ctx))
	if err != nil {
		return fmt.Errorf("%s: oracle(%d): %w", t.r.Name, n, err)
	}

	return t.compare(int64(n), want, got)
}

// GreedyVsSmart compares both exhaustive counters for n in [from, to].
func GreedyVsSmart(ctx context.Context, from, to int) (Report, error) {
	t := newTally(ctx, NameGreedyVsSmart)
	for n := from; n <= to; n++ {
		s, err := oracle.SmartCount(n, oracle.WithContext(ctx))
		if err != nil {
			return t.r, fmt.Errorf("%s: smart(%d): %w", t.r.Name, n, err)
		}
		g, err := oracle.GreedyCount(n, oracle.WithContext(ctx))
		if err != nil {
			return t.r, fmt.Errorf("%s: greedy(%d): %w", t.r.Name, n, err)
		}
		if err := t.compare(int64(n), s, g); err != nil {
			return t.r, err
		}
	}

	return t.r, nil
}

// PrimeTimesPrime checks n = p1·p2 for every p1 < p2 in primes.
func PrimeTimesPrime(ctx context.Context, primes []int) (Report, error) {
	t := newTally(ctx, NamePrimeTimesPrime)
	for _, p1 := range primes {
		for _, p2 := range primes {
			if p2 <= p1 {
				continue
			}
			got, err := formula.PrimeTimesPrime(p1, p2)
			if err != nil {
				return t.r, err
			}
			if err := t.againstOracle(p1*p2, got); err != nil {
				return t.r, err
			}
		}
	}

	return t.r, nil
}

// PrimePowers checks n = p^k for every p in primes and k in powers.
func PrimePowers(ctx context.Context, primes, powers []int) (Report, error) {
	t := newTally(ctx, NamePrimePowers)
	for _, p := range primes {
		for _, k := range powers {
			n := new(big.Int).Exp(big.NewInt(int64(p)), big.NewInt(int64(k)), nil)
			if !n.IsInt64() || n.Int64() > oracle.MaxN {
				continue
			}
			got, err := formula.PrimeRaisedToK(p, k)
			if err != nil {
				return t.r, err
			}
			if err := t.againstOracle(int(n.Int64()), got); err != nil {
				return t.r, err
			}
		}
	}

	return t.r, nil
}

// P1SquaredP2 checks n = p1²·p2 for every p1 < p2 in primes.
func P1SquaredP2(ctx context.Context, primes []int) (Report, error) {
	t := newTally(ctx, NameP1SquaredP2)
	for _, p1 := range primes {
		for _, p2 := range primes {
			if p2 <= p1 {
				continue
			}
			got, err := formula.ComplementP1SquaredP2(p1, p2)
			if err != nil {
				return t.r, err
			}
			if err := t.againstOracle(p1*p1*p2, got); err != nil {
				return t.r, err
			}
		}
	}

	return t.r, nil
}

// P1P2P3 checks n = p1·p2·p3 for every p1 < p2 < p3 in primes.
func P1P2P3(ctx context.Context, primes []int) (Report, error) {
	t := newTally(ctx, NameP1P2P3)
	for _, p1 := range primes {
		for _, p2 := range primes {
			for _, p3 := range primes {
				if p2 <= p1 || p3 <= p2 {
					continue
				}
				got, err := formula.ComplementP1P2P3(p1, p2, p3)
				if err != nil {
					return t.r, err
				}
				if err := t.againstOracle(p1*p2*p3, got); err != nil {
					return t.r, err
				}
			}
		}
	}

	return t.r, nil
}

// CubeSolver solves every a3 in [1, n/2] coprime to p for each prime and
// records the first a3 whose tour is not optimal or not Hamiltonian.
// Checked counts primes.
func CubeSolver(ctx context.Context, primes []int) (Report, error) {
	t := newTally(ctx, NameCubeSolver)
	for _, p := range primes {
		n := p * p * p
		for a3 := 1; a3 <= n/2; a3++ {
			if a3%p == 0 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return t.r, err
			}
			tour, err := cubetour.Solve(p, a3)
			if err != nil {
				return t.r, err
			}
			if !tour.IsOptimal() || tour.Validate() != nil {
				t.r.Failed = append(t.r.Failed, int64(a3))
				break
			}
		}
		t.r.Checked++
	}

	return t.r, nil
}

// GridVsOracle checks lattice totals for every prime pair p1 < p2 from
// primes and 0 ≤ a ≤ maxA, 0 ≤ b ≤ maxB, skipping n = 1 and n > maxN.
func GridVsOracle(ctx context.Context, primes []int, maxA, maxB, maxN int) (Report, error) {
	t := newTally(ctx, NameGridVsOracle)
	limit := min(maxN, oracle.MaxN)
	for i, p1 := range primes {
		for _, p2 := range primes[i+1:] {
			for a := 0; a <= maxA; a++ {
				for b := 0; b <= maxB; b++ {
					if a == 0 && b == 0 {
						continue
					}
					tgt := lattice.Target{P1: p1, A: a, P2: p2, B: b}
					n := tgt.N()
					if !n.IsInt64() || n.Int64() > int64(limit) {
						continue
					}
					res, err := lattice.ComputeTarget(tgt)
					if err != nil {
						return t.r, err
					}
					if err := t.againstOracle(int(n.Int64()), res.Total); err != nil {
						return t.r, err
					}
				}
			}
		}
	}

	return t.r, nil
}

// Growth lists lattice totals for p1^i·p2^i, i = 1..upTo.
func Growth(ctx context.Context, p1, p2, upTo int) ([]GrowthRow, error) {
	rows := make([]GrowthRow, 0, upTo)
	for i := 1; i <= upTo; i++ {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		res, err := lattice.Compute(p1, i, p2, i)
		if err != nil {
			return rows, err
		}
		rows = append(rows, GrowthRow{P1: p1, K: i, P2: p2, J: i, N: res.N, Total: res.Total})
	}

	return rows, nil
}
