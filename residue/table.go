// SPDX-License-Identifier: MIT

package residue

import (
	"math/big"
	"strings"
)

// Last selects the final row or column as the inclusive upper bound of a sum.
const Last = -1

// dimFactor scales the smallest covering exponent into the table dimension.
const dimFactor = 3

// Table is a dim×dim row-major grid of classification counts.
// Rows index the p2-exponent, columns the p1-exponent.
type Table struct {
	p1, p2 int
	n      *big.Int
	dim    int
	total  uint64
	data   []uint64 // len == dim*dim, offset = row*dim + col
}

// Build scans [1, ⌊n/2⌋] and classifies every integer by its exact
// (p2-exponent, p1-exponent) pair.
//
// Primality of p1 and p2 is a caller precondition and is not checked.
//
// Complexity: O(n·log n) time, O(dim²) memory.
func Build(p1, p2 int, n *big.Int) (*Table, error) {
	if p1 < 2 || p2 < 2 {
		return nil, ErrInvalidPrime
	}
	if p1 == p2 {
		return nil, ErrSamePrimes
	}
	if n == nil || n.Sign() < 1 {
		return nil, ErrInvalidN
	}
	half := new(big.Int).Rsh(n, 1)
	if !half.IsInt64() {
		return nil, ErrTooLarge
	}

	dim := dimFactor * coveringExponent(min(p1, p2), n)
	t := &Table{
		p1:   p1,
		p2:   p2,
		n:    new(big.Int).Set(n),
		dim:  dim,
		data: make([]uint64, dim*dim),
	}

	limit := uint64(half.Int64())
	var (
		i      uint64
		e1, e2 int
	)
	for i = 1; i <= limit; i++ {
		e1, e2 = Exponents(i, p1, p2)
		t.data[e2*dim+e1]++
	}
	t.total = limit

	return t, nil
}

// coveringExponent returns the smallest k with base^k > n.
func coveringExponent(base int, n *big.Int) int {
	var (
		product = big.NewInt(1)
		step    = big.NewInt(int64(base))
		k       int
	)
	for product.Cmp(n) <= 0 {
		product.Mul(product, step)
		k++
	}

	return k
}

// Exponents strips p1 and p2 from v, alternating checks until neither
// divides, and returns the exact exponents (e1 of p1, e2 of p2).
// v == 0 yields (0, 0).
func Exponents(v uint64, p1, p2 int) (e1, e2 int) {
	if v == 0 {
		return 0, 0
	}
	d1, d2 := uint64(p1), uint64(p2)
	for {
		stripped := false
		if v%d1 == 0 {
			v /= d1
			e1++
			stripped = true
		}
		if v%d2 == 0 {
			v /= d2
			e2++
			stripped = true
		}
		if !stripped {
			return e1, e2
		}
	}
}

// Dim returns the number of rows (and columns).
func (t *Table) Dim() int { return t.dim }

// Primes returns the tracked primes (p1 indexes columns, p2 rows).
func (t *Table) Primes() (p1, p2 int) { return t.p1, t.p2 }

// N returns a copy of the target n.
func (t *Table) N() *big.Int { return new(big.Int).Set(t.n) }

// Total returns Σ cells, which equals ⌊n/2⌋.
func (t *Table) Total() *big.Int { return new(big.Int).SetUint64(t.total) }

// Cell returns the exact count at (row, col).
// Complexity: O(1).
func (t *Table) Cell(row, col int) (*big.Int, error) {
	if !t.inBounds(row) || !t.inBounds(col) {
		return nil, tableErrorf(ctxCell, row, col, ErrOutOfRange)
	}

	return new(big.Int).SetUint64(t.data[row*t.dim+col]), nil
}

// RowSum returns Σ Cell(row, c) for c in [fromCol, toCol].
// toCol == Last selects the final column; fromCol > toCol yields zero.
// Complexity: O(dim).
func (t *Table) RowSum(row, fromCol, toCol int) (*big.Int, error) {
	if toCol == Last {
		toCol = t.dim - 1
	}
	if !t.inBounds(row) || !t.inBounds(fromCol) || !t.inBounds(toCol) {
		return nil, tableErrorf(ctxRowSum, row, fromCol, ErrOutOfRange)
	}
	var sum uint64
	base := row * t.dim
	for c := fromCol; c <= toCol; c++ {
		sum += t.data[base+c]
	}

	return new(big.Int).SetUint64(sum), nil
}

// ColSum returns Σ Cell(r, col) for r in [fromRow, toRow].
// toRow == Last selects the final row; fromRow > toRow yields zero.
// Complexity: O(dim).
func (t *Table) ColSum(col, fromRow, toRow int) (*big.Int, error) {
	if toRow == Last {
		toRow = t.dim - 1
	}
	if !t.inBounds(col) || !t.inBounds(fromRow) || !t.inBounds(toRow) {
		return nil, tableErrorf(ctxColSum, col, fromRow, ErrOutOfRange)
	}
	var sum uint64
	for r := fromRow; r <= toRow; r++ {
		sum += t.data[r*t.dim+col]
	}

	return new(big.Int).SetUint64(sum), nil
}

func (t *Table) inBounds(i int) bool {
	return i >= 0 && i < t.dim
}

// String renders the table one row per line, "[a, b, ...]".
func (t *Table) String() string {
	var sb strings.Builder
	for r := 0; r < t.dim; r++ {
		sb.WriteString("[")
		for c := 0; c < t.dim; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(new(big.Int).SetUint64(t.data[r*t.dim+c]).String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
