// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math/big"
)

// Report is the outcome of one suite.
type Report struct {
	Name    string
	Checked int
	// Failed holds the n (or a3 for CubeSolver) values that disagreed.
	Failed []int64
}

// OK reports whether no value failed.
func (r Report) OK() bool { return len(r.Failed) == 0 }

// String renders the report line.
func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("Tested %3d values for %s : SUCCESS", r.Checked, r.Name)
	}

	return fmt.Sprintf("Tested %3d values for %s : FAILED : Wrong values are %v", r.Checked, r.Name, r.Failed)
}

// GrowthRow is one line of the growth listing.
type GrowthRow struct {
	P1, K, P2, J int
	N            *big.Int
	Total        *big.Int
}

// String renders the growth line.
func (g GrowthRow) String() string {
	return fmt.Sprintf("n = %d^%d * %d^%d = %6s, count: %s", g.P1, g.K, g.P2, g.J, g.N, g.Total)
}

// Summary is what Run returns.
type Summary struct {
	Reports []Report
	Growth  []GrowthRow
}

// OK reports whether every suite passed.
func (s Summary) OK() bool {
	for _, r := range s.Reports {
		if !r.OK() {
			return false
		}
	}

	return true
}
