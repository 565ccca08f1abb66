// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/circulant/residue"
)

// Rule names one row of the parent→child decision table.
type Rule int

const (
	// RuleNone: no row matched; the multiplier stays 1.
	RuleNone Rule = iota
	// RuleBothKeepP1: C1>0, C2>0, P1=C1 ⇒ multiplier = rowSum(C2, from C1).
	RuleBothKeepP1
	// RuleBothKeepP2: C1>0, C2>0, P2=C2 ⇒ multiplier = colSum(C1, from C2).
	RuleBothKeepP2
	// RuleBothDirect: C1>0, C2>0 otherwise ⇒ multiplier = cell(C2, C1).
	RuleBothDirect
	// RuleIdentityCoprime: C=(0,0), P1≠0, P2≠0 ⇒ baseValue = cell(0,0).
	RuleIdentityCoprime
	// RuleIdentityNoP1: C=(0,0), P1=0 ⇒ baseValue = rowSum(0, from 0).
	RuleIdentityNoP1
	// RuleIdentityNoP2: C=(0,0), P2=0 ⇒ baseValue = colSum(0, from 0).
	RuleIdentityNoP2
	// RuleDropP2Only: C2<P2, C1=P1 ⇒ multiplier = rowSum(C2, from C1).
	RuleDropP2Only
	// RuleDropBoth: C2<P2, C1<P1, P2>0 ⇒ multiplier = cell(C2, C1).
	RuleDropBoth
	// RuleDropBothNoP2Parent: C2<P2, C1<P1, P2=0 ⇒ multiplier = colSum(C1, from C1).
	// Unreachable: C2<P2 forces P2>0. Kept so the table stays complete.
	RuleDropBothNoP2Parent
	// RuleDropP1Only: C1<P1, C2=P2 ⇒ multiplier = colSum(C1, from C2).
	RuleDropP1Only
)

var ruleNames = [...]string{
	RuleNone:               "none",
	RuleBothKeepP1:         "both-keep-p1",
	RuleBothKeepP2:         "both-keep-p2",
	RuleBothDirect:         "both-direct",
	RuleIdentityCoprime:    "identity-coprime",
	RuleIdentityNoP1:       "identity-no-p1",
	RuleIdentityNoP2:       "identity-no-p2",
	RuleDropP2Only:         "drop-p2-only",
	RuleDropBoth:           "drop-both",
	RuleDropBothNoP2Parent: "drop-both-no-p2-parent",
	RuleDropP1Only:         "drop-p1-only",
}

// String returns the rule's short name.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("rule(%d)", int(r))
	}

	return ruleNames[r]
}

// Step is the effect a parent has on one child.
type Step struct {
	Rule Rule
	// Multiplier is the child's new multiplier (1 for identity rows).
	Multiplier *big.Int
	// BaseOverride, when non-nil, replaces the child's baseValue.
	BaseOverride *big.Int
}

// ruleRow is one row of the decision table: a predicate over the
// (parent, child) coordinates and the table read it triggers.
type ruleRow struct {
	rule  Rule
	match func(p, c Pair) bool
	apply func(t *residue.Table, p, c Pair) (Step, error)
}

// decisionTable is evaluated top to bottom; the first matching row wins.
var decisionTable = []ruleRow{
	{
		rule:  RuleBothKeepP1,
		match: func(p, c Pair) bool { return c.A > 0 && c.B > 0 && p.A == c.A },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleBothKeepP1)(t.RowSum(c.B, c.A, residue.Last))
		},
	},
	{
		rule:  RuleBothKeepP2,
		match: func(p, c Pair) bool { return c.A > 0 && c.B > 0 && p.B == c.B },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleBothKeepP2)(t.ColSum(c.A, c.B, residue.Last))
		},
	},
	{
		rule:  RuleBothDirect,
		match: func(_, c Pair) bool { return c.A > 0 && c.B > 0 },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleBothDirect)(t.Cell(c.B, c.A))
		},
	},
	{
		rule:  RuleIdentityCoprime,
		match: func(p, c Pair) bool { return c.IsZero() && p.A != 0 && p.B != 0 },
		apply: func(t *residue.Table, _, _ Pair) (Step, error) {
			return baseStep(RuleIdentityCoprime)(t.Cell(0, 0))
		},
	},
	{
		rule:  RuleIdentityNoP1,
		match: func(p, c Pair) bool { return c.IsZero() && p.A == 0 },
		apply: func(t *residue.Table, _, _ Pair) (Step, error) {
			return baseStep(RuleIdentityNoP1)(t.RowSum(0, 0, residue.Last))
		},
	},
	{
		rule:  RuleIdentityNoP2,
		match: func(p, c Pair) bool { return c.IsZero() && p.B == 0 },
		apply: func(t *residue.Table, _, _ Pair) (Step, error) {
			return baseStep(RuleIdentityNoP2)(t.ColSum(0, 0, residue.Last))
		},
	},
	{
		rule:  RuleDropP2Only,
		match: func(p, c Pair) bool { return c.B < p.B && c.A == p.A },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleDropP2Only)(t.RowSum(c.B, c.A, residue.Last))
		},
	},
	{
		rule:  RuleDropBoth,
		match: func(p, c Pair) bool { return c.B < p.B && c.A < p.A && p.B > 0 },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleDropBoth)(t.Cell(c.B, c.A))
		},
	},
	{
		rule:  RuleDropBothNoP2Parent,
		match: func(p, c Pair) bool { return c.B < p.B && c.A < p.A && p.B == 0 },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleDropBothNoP2Parent)(t.ColSum(c.A, c.A, residue.Last))
		},
	},
	{
		rule:  RuleDropP1Only,
		match: func(p, c Pair) bool { return c.A < p.A && c.B == p.B },
		apply: func(t *residue.Table, _, c Pair) (Step, error) {
			return multiplierStep(RuleDropP1Only)(t.ColSum(c.A, c.B, residue.Last))
		},
	},
}

// multiplierStep adapts a table read into a Step that sets the multiplier.
func multiplierStep(r Rule) func(*big.Int, error) (Step, error) {
	return func(v *big.Int, err error) (Step, error) {
		if err != nil {
			return Step{}, fmt.Errorf("rule %s: %w", r, err)
		}

		return Step{Rule: r, Multiplier: v}, nil
	}
}

// baseStep adapts a table read into a Step that overrides the baseValue.
func baseStep(r Rule) func(*big.Int, error) (Step, error) {
	return func(v *big.Int, err error) (Step, error) {
		if err != nil {
			return Step{}, fmt.Errorf("rule %s: %w", r, err)
		}

		return Step{Rule: r, Multiplier: big.NewInt(1), BaseOverride: v}, nil
	}
}

// Transition evaluates the decision table for child under parent.
// It is a pure function of the coordinates and the (read-only) table.
//
// Errors:
//   - ErrNotDominated if child is not strictly below parent.
//   - residue.ErrOutOfRange if the table is too small for the pairs.
func Transition(t *residue.Table, parent, child Pair) (Step, error) {
	if !parent.Dominates(child) {
		return Step{}, fmt.Errorf("%s → %s: %w", parent, child, ErrNotDominated)
	}
	for _, row := range decisionTable {
		if row.match(parent, child) {
			return row.apply(t, parent, child)
		}
	}

	return Step{Rule: RuleNone, Multiplier: big.NewInt(1)}, nil
}

// ruleFor reports which row Transition would pick, without reading the table.
func ruleFor(parent, child Pair) Rule {
	for _, row := range decisionTable {
		if row.match(parent, child) {
			return row.rule
		}
	}

	return RuleNone
}
