// SPDX-License-Identifier: MIT

package cubetour

import (
	"go.uber.org/zap"
)

// start is the vertex every tour begins and ends at.
const start = 1

// Tour is a closed walk over the circulant vertices 1..N.
type Tour struct {
	Prime int
	N     int
	A1    int
	A2    int
	A3    int

	// Turnaround is the vertex reached one a3 jump before closing.
	Turnaround int
	// TargetRow and TargetCol locate the turnaround in the last sheet.
	TargetRow int
	TargetCol int

	// Vertices has length N+1 with Vertices[0] == 1.
	Vertices []int
	// Jumps[i] is the move from Vertices[i] to Vertices[i+1].
	Jumps []Jump

	a1Count int
	a2Count int
	a3Count int
}

// plan holds the move budget computed before emission.
type plan struct {
	left, right int
	up, down    int
	lateral     int
}

// Option configures Solve.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets a logger for the planning trace. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Solve builds the tour for n = p³ with jumps (p², p, a3).
func Solve(p, a3 int, opts ...Option) (*Tour, error) {
	if err := validate(p, a3); err != nil {
		return nil, err
	}
	o := options{log: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	n := p * p * p
	t := &Tour{
		Prime:    p,
		N:        n,
		A1:       p * p,
		A2:       p,
		A3:       a3,
		Vertices: make([]int, 1, n+1),
		Jumps:    make([]Jump, 0, n),
	}
	t.Vertices[0] = start
	t.Turnaround = t.modN(start - a3)

	pl := t.plan()
	o.log.Debug("cube plan",
		zap.Int("p", p),
		zap.Int("a3", a3),
		zap.Int("turnaround", t.Turnaround),
		zap.Int("row", t.TargetRow),
		zap.Int("col", t.TargetCol),
		zap.Int("left", pl.left),
		zap.Int("right", pl.right),
		zap.Int("up", pl.up),
		zap.Int("down", pl.down),
		zap.Int("lateral", pl.lateral),
	)
	t.emit(pl)

	return t, nil
}

// plan splits the p lateral moves per sheet into Left and Right sheets, and
// the p² column sweeps into Up and Down, so the walk lands on the target.
func (t *Tour) plan() plan {
	p := t.Prime
	t.TargetCol = p - t.modP(t.A3-p)
	t.TargetRow = t.modP(p-t.A3/p) - 1

	deltaRow, deltaCol := t.TargetRow, t.TargetCol
	var pl plan
	// Only an odd number of ±1 column steps reaches an odd offset; for an
	// even offset go around the other side.
	if deltaCol%2 == 1 {
		pairs := (p - deltaCol) / 2
		pl.left = deltaCol + pairs
		pl.right = p - pl.left
	} else {
		pairs := deltaCol / 2
		pl.right = p - deltaCol + pairs
		pl.left = p - pl.right
	}

	// Each lateral wrap shifts the row by one; a leading Right does not wrap.
	lat := pl.right - pl.left
	if pl.left < pl.right {
		lat--
	}
	lat *= t.modP(t.A2 / p)
	pl.lateral = lat

	// p² sweeps is odd, so the remainder must split into Up/Down pairs.
	if (lat+deltaRow)%2 == 0 {
		deltaRow += p
	}
	pairs := (p*p - abs(lat) - abs(deltaRow)) / 2

	if lat > 0 {
		pl.down += lat
	} else {
		pl.up += -lat
	}
	if deltaRow > 0 {
		pl.up += deltaRow
	} else {
		pl.down += -deltaRow
	}
	pl.up += pairs
	pl.down += pairs

	return pl
}

// emit walks p sheets: p column sweeps of p−1 vertical jumps joined by
// p−1 lateral jumps, then one Out jump.
func (t *Tour) emit(pl plan) {
	p := t.Prime
	left, up := pl.left, pl.up
	for sheet := 0; sheet < p; sheet++ {
		lateral := Right
		if left > 0 {
			lateral = Left
		}
		for col := 0; col < p; col++ {
			vertical := Down
			if up > 0 {
				vertical = Up
				up--
			}
			for j := 0; j < p-1; j++ {
				t.step(vertical)
			}
			if col < p-1 {
				t.step(lateral)
			}
		}
		if left > 0 {
			left--
		}
		t.step(Out)
	}
}

func (t *Tour) step(j Jump) {
	v := t.Vertices[len(t.Vertices)-1]
	switch j {
	case Left:
		v -= t.A2
		t.a2Count++
	case Right:
		v += t.A2
		t.a2Count++
	case Up:
		v -= t.A1
		t.a1Count++
	case Down:
		v += t.A1
		t.a1Count++
	case Out:
		v += t.A3
		t.a3Count++
	}
	t.Vertices = append(t.Vertices, t.modN(v))
	t.Jumps = append(t.Jumps, j)
}

// Counts returns the number of a1, a2 and a3 jumps.
func (t *Tour) Counts() (a1, a2, a3 int) {
	return t.a1Count, t.a2Count, t.a3Count
}

// IsOptimal reports whether the tour closes at 1 with the optimal counts
// p²(p−1), p(p−1) and p.
func (t *Tour) IsOptimal() bool {
	p := t.Prime
	if len(t.Vertices) == 0 || t.Vertices[len(t.Vertices)-1] != start {
		return false
	}

	return t.a1Count == p*p*(p-1) && t.a2Count == p*(p-1) && t.a3Count == p
}

// Validate checks the Hamiltonian-cycle invariant.
func (t *Tour) Validate() error {
	return ValidateTour(t.Vertices, t.N, start)
}

// Cost returns the tour cost with c1, c2, c3 charged per a1, a2, a3 jump.
func (t *Tour) Cost(c1, c2, c3 int64) int64 {
	return int64(t.a1Count)*c1 + int64(t.a2Count)*c2 + int64(t.a3Count)*c3
}

// String renders the vertex sequence.
func (t *Tour) String() string {
	return DebugString(t.Vertices)
}

// modN maps x into [1, n].
func (t *Tour) modN(x int) int {
	return wrap(x, t.N)
}

// modP maps x into [1, p].
func (t *Tour) modP(x int) int {
	return wrap(x, t.Prime)
}

func wrap(x, m int) int {
	r := x % m
	if r <= 0 {
		r += m
	}

	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
