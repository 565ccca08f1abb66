// SPDX-License-Identifier: MIT

package oracle

import "math/big"

// GreedyCount counts encoding sequences of n: ordered picks of distinct
// values from [1, ⌊n/2⌋] whose running gcd, starting at n, strictly
// decreases until it reaches 1.
func GreedyCount(n int, opts ...Option) (*big.Int, error) {
	if err := checkN(n, MaxGreedyN); err != nil {
		return nil, err
	}
	o := collect(opts)
	if n == 1 {
		return new(big.Int), nil
	}
	g := &greedy{half: n / 2, o: o, used: make([]bool, n/2+1)}
	c, err := g.extend(n)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(c), nil
}

type greedy struct {
	half int
	o    options
	used []bool
}

func (g *greedy) extend(running int) (uint64, error) {
	if running == 1 {
		return 1, nil
	}
	if err := g.o.ctx.Err(); err != nil {
		return 0, err
	}
	var sum uint64
	for v := 1; v <= g.half; v++ {
		if g.used[v] {
			continue
		}
		next := gcd(running, v)
		if next >= running {
			continue
		}
		g.used[v] = true
		c, err := g.extend(next)
		g.used[v] = false
		if err != nil {
			return 0, err
		}
		sum += c
	}

	return sum, nil
}
