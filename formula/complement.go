// SPDX-License-Identifier: MIT

package formula

import (
	"math/big"
	"sort"
)

// ComplementP1SquaredP2 counts the ELVs of n = p1²·p2 as all ordered picks
// of at most three values from [1, n/2] minus the illegal ones.
func ComplementP1SquaredP2(p1, p2 int) (*big.Int, error) {
	if err := checkDistinct(p1, p2); err != nil {
		return nil, err
	}
	h := half(num(int64(p1 * p1 * p2)))
	p1s := new(big.Int).Quo(h, num(int64(p1))) // multiples of p1
	p2s := new(big.Int).Quo(h, num(int64(p2))) // multiples of p2
	sq := num(int64(p2 / 2))                   // multiples of p1²
	both := num(int64(p1 / 2))                 // multiples of p1·p2
	units := add(sub(h, p1s, p2s), both)

	single := sub(h, units)

	double := add(
		mul(units, minus(h, 1)),
		mul(sub(p1s, both), minus(p1s, 1)),
		mul(sub(p2s, both), minus(p2s, 1)),
		mul(both, minus(sub(h, units), 1)),
	)

	triple := add(
		mul(sub(h, sq, both), minus(h, 1), minus(h, 2)),
		mul(sq, minus(add(sub(h, p1s), sq), 1), minus(h, 2)),
		mul(sq, sub(p1s, sq), minus(p1s, 2)),
		mul(both, units, minus(h, 2)),
		mul(both, sub(p1s, both), minus(p1s, 2)),
		mul(both, sub(p2s, both), minus(p2s, 2)),
		mul(both, minus(both, 1), minus(h, 2)),
	)

	return sub(upToThree(h), single, double, triple), nil
}

// ComplementP1P2P3 counts the ELVs of n = p1·p2·p3 by complement.
// The primes are taken in ascending order.
func ComplementP1P2P3(p1, p2, p3 int) (*big.Int, error) {
	if err := checkDistinct(p1, p2, p3); err != nil {
		return nil, err
	}
	ps := []int{p1, p2, p3}
	sort.Ints(ps)
	a, b, c := num(int64(ps[0])), num(int64(ps[1])), num(int64(ps[2]))
	ha, hb, hc := half(a), half(b), half(c)

	h := half(mul(a, b, c))
	s1 := half(mul(b, c)) // multiples of p1
	s2 := half(mul(a, c)) // multiples of p2
	s3 := half(mul(a, b)) // multiples of p3
	s12, s13, s23 := hc, hb, ha
	units := add(sub(h, s1, s2, s3), s12, s13, s23)

	single := sub(h, units)

	double := add(
		mul(sub(s1, hb, hc), minus(s1, 1)),
		mul(sub(s2, ha, hc), minus(s2, 1)),
		mul(sub(s3, ha, hb), minus(s3, 1)),
		mul(s12, minus(sub(add(s1, s2), s12), 1)),
		mul(s23, minus(sub(add(s2, s3), s23), 1)),
		mul(s13, minus(sub(add(s1, s3), s13), 1)),
		mul(units, minus(h, 1)),
	)

	pairTerm := func(hp, sx, sy, sxy *big.Int) *big.Int {
		return mul(hp, add(
			mul(minus(sx, 2), sub(sx, hp)),
			mul(minus(sy, 2), sub(sy, hp)),
			mul(minus(add(sub(h, sx, sy), hp, sxy), 1), minus(h, 2)),
		))
	}
	triple := add(
		pairTerm(hc, s1, s2, s12),
		pairTerm(hb, s1, s3, s13),
		pairTerm(ha, s2, s3, s23),
		mul(sub(h, s12, s13, s23), minus(h, 1), minus(h, 2)),
	)

	return sub(upToThree(h), single, double, triple), nil
}
