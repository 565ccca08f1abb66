package lattice_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/circulant/lattice"
	"github.com/katalvlaran/circulant/oracle"
)

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestCompute_InvalidArguments verifies fail-fast validation.
func TestCompute_InvalidArguments(t *testing.T) {
	cases := []struct {
		name             string
		p1, a, p2, b     int
		specific, family error
	}{
		{"SamePrimes", 3, 1, 3, 2, lattice.ErrSamePrimes, lattice.ErrInvalidArgument},
		{"PrimeOne", 1, 1, 3, 1, lattice.ErrPrimeTooSmall, lattice.ErrInvalidArgument},
		{"NegativePrime", 2, 1, -5, 1, lattice.ErrPrimeTooSmall, lattice.ErrInvalidArgument},
		{"NegativeA", 2, -1, 3, 1, lattice.ErrNegativeExponent, lattice.ErrInvalidArgument},
		{"NegativeB", 2, 1, 3, -2, lattice.ErrNegativeExponent, lattice.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := lattice.Compute(tc.p1, tc.a, tc.p2, tc.b)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.specific)
			assert.ErrorIs(t, err, tc.family)
		})
	}
}

//----------------------------------------------------------------------------//
// Worked scenario and degenerate case
//----------------------------------------------------------------------------//

// TestCompute_Six walks the n=6 tree site by site.
func TestCompute_Six(t *testing.T) {
	type seen struct {
		parent, child lattice.Pair
		rule          lattice.Rule
		mul, base     int64
		agg           int64
		reused        bool
	}
	var got []seen
	hook := lattice.WithOnAttach(func(s lattice.SiteInfo) {
		got = append(got, seen{s.Parent, s.Child, s.Rule,
			s.Multiplier.Int64(), s.BaseValue.Int64(), s.Aggregate.Int64(), s.Reused})
	})

	res, err := lattice.Compute(2, 1, 3, 1, hook)
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.N.Int64())
	assert.Equal(t, int64(5), res.Total.Int64())
	assert.Equal(t, 4, res.Nodes)
	assert.Equal(t, 5, res.Sites)

	want := []seen{
		{lattice.Pair{1, 1}, lattice.Pair{0, 0}, lattice.RuleIdentityCoprime, 1, 1, 1, false},
		{lattice.Pair{0, 1}, lattice.Pair{0, 0}, lattice.RuleIdentityNoP1, 1, 2, 2, true},
		{lattice.Pair{1, 1}, lattice.Pair{0, 1}, lattice.RuleDropP1Only, 1, 0, 2, false},
		{lattice.Pair{1, 0}, lattice.Pair{0, 0}, lattice.RuleIdentityNoP2, 1, 2, 2, true},
		{lattice.Pair{1, 1}, lattice.Pair{1, 0}, lattice.RuleDropP2Only, 1, 0, 2, false},
	}
	assert.Equal(t, want, got)
}

// TestCompute_One covers A=B=0: n=1, empty table, total 0.
func TestCompute_One(t *testing.T) {
	res, err := lattice.Compute(2, 0, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.N.Int64())
	assert.Zero(t, res.Total.Sign())
	assert.Equal(t, 1, res.Nodes)
	assert.Zero(t, res.Sites)
}

// TestCompute_KnownTotals pins totals that exceed brute-force reach,
// including values past 64 bits.
func TestCompute_KnownTotals(t *testing.T) {
	cases := []struct {
		p1, a, p2, b int
		total        string
	}{
		{2, 4, 3, 4, "2738008171728"},
		{2, 4, 5, 4, "565542387594634000"},
		{2, 8, 3, 2, "3307853749751040"},
		{5, 3, 7, 3, "2894504589255300"},
		{2, 6, 3, 6, "35031056767115434892524526400"},
	}
	for _, tc := range cases {
		res, err := lattice.Compute(tc.p1, tc.a, tc.p2, tc.b)
		require.NoError(t, err)
		want, ok := new(big.Int).SetString(tc.total, 10)
		require.True(t, ok)
		assert.Zero(t, want.Cmp(res.Total), "%d^%d*%d^%d: got %s want %s",
			tc.p1, tc.a, tc.p2, tc.b, res.Total, want)
	}
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestCompute_MatchesOracle cross-validates against the exhaustive counter for
// every (A,B) up to 4×4 on several prime pairs. n=1 is excluded: the oracle
// counts the lone chain [1] while the lattice reports an empty table.
func TestCompute_MatchesOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("brute-force cross-check")
	}
	pairs := [][2]int{{2, 3}, {3, 2}, {2, 5}, {3, 5}, {2, 7}}
	for _, pp := range pairs {
		for a := 0; a <= 4; a++ {
			for b := 0; b <= 4; b++ {
				if a == 0 && b == 0 {
					continue
				}
				res, err := lattice.Compute(pp[0], a, pp[1], b)
				require.NoError(t, err)
				if res.N.Int64() > 12000 {
					continue
				}
				want, err := oracle.ExactCount(int(res.N.Int64()))
				require.NoError(t, err)
				assert.Zero(t, want.Cmp(res.Total), "n=%s (%d^%d*%d^%d): lattice %s oracle %s",
					res.N, pp[0], a, pp[1], b, res.Total, want)
			}
		}
	}
}

// TestCompute_Symmetry swaps (p1,A) with (p2,B).
func TestCompute_Symmetry(t *testing.T) {
	for _, pp := range [][2]int{{2, 3}, {3, 5}, {5, 7}} {
		for a := 0; a <= 3; a++ {
			for b := 0; b <= 3; b++ {
				x, err := lattice.Compute(pp[0], a, pp[1], b)
				require.NoError(t, err)
				y, err := lattice.Compute(pp[1], b, pp[0], a)
				require.NoError(t, err)
				assert.Zero(t, x.Total.Cmp(y.Total), "%v a=%d b=%d", pp, a, b)
			}
		}
	}
}

// TestCompute_Monotone checks totals never drop when an exponent grows.
func TestCompute_Monotone(t *testing.T) {
	const top = 4
	totals := make([][]*big.Int, top+1)
	for a := 0; a <= top; a++ {
		totals[a] = make([]*big.Int, top+1)
		for b := 0; b <= top; b++ {
			res, err := lattice.Compute(2, a, 3, b)
			require.NoError(t, err)
			totals[a][b] = res.Total
		}
	}
	for a := 0; a <= top; a++ {
		for b := 0; b <= top; b++ {
			if a < top {
				assert.True(t, totals[a+1][b].Cmp(totals[a][b]) >= 0, "A %d→%d at B=%d", a, a+1, b)
			}
			if b < top {
				assert.True(t, totals[a][b+1].Cmp(totals[a][b]) >= 0, "B %d→%d at A=%d", b, b+1, a)
			}
		}
	}
}

// TestCompute_ParallelInvocations runs independent targets concurrently and
// compares with sequential results; nothing is shared between calls.
func TestCompute_ParallelInvocations(t *testing.T) {
	targets := []lattice.Target{
		{P1: 2, A: 3, P2: 3, B: 3}, {P1: 5, A: 2, P2: 3, B: 2},
		{P1: 2, A: 4, P2: 7, B: 1}, {P1: 3, A: 1, P2: 2, B: 4},
	}
	want := make([]*big.Int, len(targets))
	for i, tg := range targets {
		res, err := lattice.ComputeTarget(tg)
		require.NoError(t, err)
		want[i] = res.Total
	}

	got := make([]*big.Int, len(targets)*4)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := lattice.ComputeTarget(targets[i%len(targets)])
			if err == nil {
				got[i] = res.Total
			}
		}(i)
	}
	wg.Wait()
	for i := range got {
		require.NotNil(t, got[i])
		assert.Zero(t, want[i%len(targets)].Cmp(got[i]))
	}
}

// TestCompute_Deterministic repeats a call and expects identical output.
func TestCompute_Deterministic(t *testing.T) {
	x, err := lattice.Compute(3, 3, 5, 2)
	require.NoError(t, err)
	y, err := lattice.Compute(3, 3, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, x.Total.String(), y.Total.String())
	assert.Equal(t, x.Sites, y.Sites)
}

// TestCompute_NodeAndSiteCounts: one canonical node per pair, one site per
// dominated pair of every node.
func TestCompute_NodeAndSiteCounts(t *testing.T) {
	res, err := lattice.Compute(2, 3, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4*3, res.Nodes)

	sites := 0
	for a := 0; a <= 3; a++ {
		for b := 0; b <= 2; b++ {
			sites += (a+1)*(b+1) - 1
		}
	}
	assert.Equal(t, sites, res.Sites)
}

// TestCompute_TraceLogging checks the Debug trace and summary.
func TestCompute_TraceLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := lattice.Compute(2, 1, 3, 1, lattice.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 5, logs.FilterMessage("transition").Len())
	summary := logs.FilterMessage("lattice computed").All()
	require.Len(t, summary, 1)
	assert.Equal(t, "5", summary[0].ContextMap()["total"])
	assert.Equal(t, "6", summary[0].ContextMap()["n"])
}

// TestCompute_QuietAboveDebug emits nothing at Info level.
func TestCompute_QuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	_, err := lattice.Compute(2, 2, 3, 2, lattice.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
