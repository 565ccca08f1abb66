// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/circulant/residue"
)

// engine is the per-invocation context: the residue table, the node cache
// and the two arenas. It is owned by exactly one Compute call.
type engine struct {
	table *residue.Table
	cache *nodeCache
	nodes []node
	sites []site
	log   *zap.Logger
	hook  func(SiteInfo)
}

// Compute returns the exact ELV count for n = p1^A·p2^B.
//
// Steps:
//  1. Validate (fail fast, before any table construction).
//  2. Build the residue table over [1, ⌊n/2⌋].
//  3. Build the tree rooted at (A,B), reusing canonical subtrees via the cache.
//  4. Read the root aggregate with multiplier 1.
//
// p1 and p2 must be prime; this is not checked.
//
// Complexity: O(n·log n) for the table plus O((A+1)²·(B+1)²·dim) for the tree.
func Compute(p1, a, p2, b int, opts ...Option) (*Result, error) {
	return ComputeTarget(Target{P1: p1, A: a, P2: p2, B: b}, opts...)
}

// ComputeTarget is Compute for an already assembled Target.
func ComputeTarget(t Target, opts ...Option) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	n := t.N()
	tbl, err := residue.Build(t.P1, t.P2, n)
	if err != nil {
		return nil, fmt.Errorf("lattice: residue table for %s: %w", t, err)
	}

	root := t.Root()
	e := &engine{
		table: tbl,
		cache: newNodeCache(root),
		log:   o.logger,
		hook:  o.onAttach,
	}

	rootIdx, err := e.build(root)
	if err != nil {
		return nil, fmt.Errorf("lattice: %s: %w", t, err)
	}
	if err = e.cache.store(root, rootIdx); err != nil {
		return nil, fmt.Errorf("lattice: %s: %w", t, err)
	}

	rn := &e.nodes[rootIdx]
	top := site{pair: root, node: rootIdx, multiplier: big.NewInt(1), base: rn.base}
	top.refresh(rn)

	e.log.Debug("lattice computed",
		zap.Stringer("target", t),
		zap.Stringer("n", n),
		zap.Stringer("total", top.aggregate),
		zap.Int("nodes", len(e.nodes)),
		zap.Int("sites", len(e.sites)),
	)

	return &Result{
		Target: t,
		N:      n,
		Total:  top.aggregate,
		Nodes:  len(e.nodes),
		Sites:  len(e.sites),
		Table:  tbl,
	}, nil
}

// build creates the canonical node for p and, recursively, every pair it
// dominates that is not cached yet. It returns the node's arena index.
//
// The node's childSum is sealed before returning, so the node can be shared
// by any later parent without being touched again.
func (e *engine) build(p Pair) (int, error) {
	idx := len(e.nodes)
	e.nodes = append(e.nodes, node{pair: p, base: new(big.Int), childSum: new(big.Int)})

	if p.IsZero() {
		base, err := e.table.Cell(0, 0)
		if err != nil {
			return noNode, err
		}
		e.nodes[idx].base = base

		return idx, nil
	}

	var (
		children = make([]int, 0, (p.A+1)*(p.B+1)-1)
		childSum = new(big.Int)
		q        Pair
	)
	for q.A = 0; q.A <= p.A; q.A++ {
		for q.B = 0; q.B <= p.B; q.B++ {
			if q == p {
				continue
			}
			ni, cached, err := e.cache.lookup(q)
			if err != nil {
				return noNode, err
			}
			if !cached {
				if ni, err = e.build(q); err != nil {
					return noNode, err
				}
				if err = e.cache.store(q, ni); err != nil {
					return noNode, err
				}
			}
			si, err := e.attach(p, q, ni, cached)
			if err != nil {
				return noNode, err
			}
			children = append(children, si)
			childSum.Add(childSum, e.sites[si].aggregate)
		}
	}
	// e.nodes may have grown during recursion; index, don't hold a pointer.
	e.nodes[idx].children = children
	e.nodes[idx].childSum = childSum

	return idx, nil
}

// attach records a new site for child under parent: it copies the canonical
// baseValue, applies the transition and refreshes the aggregate.
func (e *engine) attach(parent, child Pair, ni int, reused bool) (int, error) {
	step, err := Transition(e.table, parent, child)
	if err != nil {
		return noNode, err
	}
	n := &e.nodes[ni]
	s := site{
		pair:       child,
		node:       ni,
		rule:       step.Rule,
		multiplier: step.Multiplier,
		base:       n.base,
	}
	if step.BaseOverride != nil {
		s.base = step.BaseOverride
	}
	s.refresh(n)
	e.sites = append(e.sites, s)

	e.trace(parent, &s, reused)
	if e.hook != nil {
		e.hook(SiteInfo{
			Parent:     parent,
			Child:      child,
			Rule:       s.rule,
			Multiplier: new(big.Int).Set(s.multiplier),
			BaseValue:  new(big.Int).Set(s.base),
			Aggregate:  new(big.Int).Set(s.aggregate),
			Reused:     reused,
		})
	}

	return len(e.sites) - 1, nil
}

// trace logs one decision at Debug level.
func (e *engine) trace(parent Pair, s *site, reused bool) {
	ce := e.log.Check(zapcore.DebugLevel, "transition")
	if ce == nil {
		return
	}
	ce.Write(
		zap.Stringer("parent", parent),
		zap.Stringer("child", s.pair),
		zap.Stringer("rule", s.rule),
		zap.Stringer("multiplier", s.multiplier),
		zap.Stringer("base", s.base),
		zap.Stringer("aggregate", s.aggregate),
		zap.Bool("reused", reused),
	)
}
