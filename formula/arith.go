// SPDX-License-Identifier: MIT

package formula

import "math/big"

func num(v int64) *big.Int { return big.NewInt(v) }

func add(xs ...*big.Int) *big.Int {
	out := new(big.Int)
	for _, x := range xs {
		out.Add(out, x)
	}

	return out
}

func sub(x *big.Int, ys ...*big.Int) *big.Int {
	out := new(big.Int).Set(x)
	for _, y := range ys {
		out.Sub(out, y)
	}

	return out
}

func mul(xs ...*big.Int) *big.Int {
	out := big.NewInt(1)
	for _, x := range xs {
		out.Mul(out, x)
	}

	return out
}

// minus returns x − k.
func minus(x *big.Int, k int64) *big.Int {
	return new(big.Int).Sub(x, big.NewInt(k))
}

// half returns ⌊x/2⌋ for non-negative x.
func half(x *big.Int) *big.Int {
	return new(big.Int).Rsh(x, 1)
}

// upToThree counts ordered picks of 1, 2 or 3 distinct values out of h.
func upToThree(h *big.Int) *big.Int {
	return add(fall(h, 3), fall(h, 2), h)
}

// fall is the falling factorial h·(h−1)·…·(h−length+1).
func fall(h *big.Int, length int64) *big.Int {
	out := big.NewInt(1)
	for i := int64(0); i < length; i++ {
		out.Mul(out, minus(h, i))
	}

	return out
}
