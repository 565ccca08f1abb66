// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"
)

// noNode marks an empty cache slot.
const noNode = -1

// node is a canonical lattice node, built once per power-pair.
// children and childSum are immutable once the node is sealed; every parent
// that needs this pair points at the same node through its own site record.
type node struct {
	pair     Pair
	base     *big.Int // canonical baseValue; only (0,0) carries one
	children []int    // indices into the site arena
	childSum *big.Int // Σ children aggregates
}

// site is a reuse site: the owned scalar state of one parent→child edge.
// It references the shared canonical node by index and is never shared.
type site struct {
	pair       Pair
	node       int
	rule       Rule
	multiplier *big.Int
	base       *big.Int
	aggregate  *big.Int
}

// refresh recomputes aggregate = multiplier × (base + Σ children aggregate).
func (s *site) refresh(n *node) {
	s.aggregate = new(big.Int).Add(s.base, n.childSum)
	s.aggregate.Mul(s.aggregate, s.multiplier)
}

// nodeCache maps every power-pair (a,b) with 0≤a≤A, 0≤b≤B to the index of
// its canonical node. Storage is row-major: index = a*(B+1) + b.
type nodeCache struct {
	width, height int // B+1 and A+1
	slots         []int
}

func newNodeCache(root Pair) *nodeCache {
	c := &nodeCache{
		width:  root.B + 1,
		height: root.A + 1,
		slots:  make([]int, (root.A+1)*(root.B+1)),
	}
	for i := range c.slots {
		c.slots[i] = noNode
	}

	return c
}

func (c *nodeCache) inBounds(p Pair) bool {
	return p.A >= 0 && p.A < c.height && p.B >= 0 && p.B < c.width
}

func (c *nodeCache) index(p Pair) int { return p.A*c.width + p.B }

// lookup returns the canonical node index for p, if built.
func (c *nodeCache) lookup(p Pair) (int, bool, error) {
	if !c.inBounds(p) {
		return noNode, false, fmt.Errorf("cache lookup %s: %w", p, ErrOutOfRange)
	}
	idx := c.slots[c.index(p)]

	return idx, idx != noNode, nil
}

// store registers idx as the canonical node for p.
func (c *nodeCache) store(p Pair, idx int) error {
	if !c.inBounds(p) {
		return fmt.Errorf("cache store %s: %w", p, ErrOutOfRange)
	}
	c.slots[c.index(p)] = idx

	return nil
}
