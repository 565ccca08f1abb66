// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/circulant/gseq"
)

// ExactCount returns the number of ELVs of n by the G-sequence method.
func ExactCount(n int) (*big.Int, error) {
	return SmartCount(n)
}

// SmartCount counts the ELVs of n. With WithVisitor it enumerates them.
func SmartCount(n int, opts ...Option) (*big.Int, error) {
	if err := checkN(n, MaxN); err != nil {
		return nil, err
	}
	o := collect(opts)
	if o.visit != nil {
		return enumerate(n, o)
	}
	s := &smart{n: n, o: o, memo: make(map[int]*big.Int)}

	return s.count(n)
}

// Candidates returns every edge length i in [1, ⌊n/2⌋] that can carry the
// step prev→target: gcd(n,i) = target or gcd(prev,i) = target.
func Candidates(n, prev, target int) []int {
	var out []int
	for i := 1; i <= n/2; i++ {
		if gcd(n, i) == target || gcd(prev, i) == target {
			out = append(out, i)
		}
	}

	return out
}

func candidateCount(n, prev, target int) int64 {
	var c int64
	for i := 1; i <= n/2; i++ {
		if gcd(n, i) == target || gcd(prev, i) == target {
			c++
		}
	}

	return c
}

// smart memoizes the number of ELV completions below each chain element.
type smart struct {
	n    int
	o    options
	memo map[int]*big.Int
}

// count returns Σ over divisors d of g of |candidates(g,d)| · count(d).
func (s *smart) count(g int) (*big.Int, error) {
	if g == 1 {
		return big.NewInt(1), nil
	}
	if v, ok := s.memo[g]; ok {
		return v, nil
	}
	if err := s.o.ctx.Err(); err != nil {
		return nil, err
	}
	total := new(big.Int)
	term := new(big.Int)
	for _, d := range gseq.Divisors(g) {
		below, err := s.count(d)
		if err != nil {
			return nil, err
		}
		term.SetInt64(candidateCount(s.n, g, d))
		total.Add(total, term.Mul(term, below))
	}
	s.memo[g] = total

	return total, nil
}

// enumerate builds every ELV chain by chain, reusing candidate lists.
func enumerate(n int, o options) (*big.Int, error) {
	cands := make(map[[2]int][]int)
	total := new(big.Int)
	one := big.NewInt(1)
	vec := make(ELV, n/2)

	var place func(chain []int, k int) error
	place = func(chain []int, k int) error {
		if k >= len(chain) {
			total.Add(total, one)
			return o.visit(append(ELV(nil), vec...))
		}
		if err := o.ctx.Err(); err != nil {
			return err
		}
		prev, target := chain[k-1], chain[k]
		key := [2]int{prev, target}
		list, ok := cands[key]
		if !ok {
			list = Candidates(n, prev, target)
			cands[key] = list
		}
		for _, phi := range list {
			old := vec[phi-1]
			vec[phi-1] = prev - target
			err := place(chain, k+1)
			vec[phi-1] = old
			if err != nil {
				return err
			}
		}

		return nil
	}

	err := gseq.Walk(n, func(chain []int) error {
		return place(chain, 1)
	}, gseq.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}

	return total, nil
}

func checkN(n, limit int) error {
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidN)
	}
	if n > limit {
		return fmt.Errorf("n=%d exceeds %d: %w", n, limit, ErrTooLarge)
	}

	return nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
