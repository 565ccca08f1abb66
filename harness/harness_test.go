package harness_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/circulant/config"
	"github.com/katalvlaran/circulant/harness"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// small returns a configuration that keeps every suite fast.
func small() *config.Config {
	cfg := config.Default()
	cfg.GreedyVsSmart.To = 20
	cfg.PrimeTimesPrime.Primes = []int{2, 3, 5, 7, 11}
	cfg.PrimePowers.Primes = []int{3, 5, 7}
	cfg.P1SquaredP2.Primes = []int{2, 3, 5, 7}
	cfg.P1P2P3.Primes = []int{2, 3, 5, 7}
	cfg.CubeSolver.Primes = []int{3, 5, 7}
	cfg.Growth.UpTo = 3

	return cfg
}

//----------------------------------------------------------------------------//
// Report rendering
//----------------------------------------------------------------------------//

func TestReport_String(t *testing.T) {
	ok := harness.Report{Name: "n = p1 * p2", Checked: 91}
	assert.Equal(t, "Tested  91 values for n = p1 * p2 : SUCCESS", ok.String())
	assert.True(t, ok.OK())

	bad := harness.Report{Name: "Greedy vs Smart", Checked: 21, Failed: []int64{12, 18}}
	assert.Equal(t, "Tested  21 values for Greedy vs Smart : FAILED : Wrong values are [12 18]", bad.String())
	assert.False(t, bad.OK())
	assert.False(t, harness.Summary{Reports: []harness.Report{ok, bad}}.OK())
}

//----------------------------------------------------------------------------//
// Suites
//----------------------------------------------------------------------------//

func TestSuites_AllPass(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		run     func() (harness.Report, error)
		checked int
	}{
		{harness.NameGreedyVsSmart, func() (harness.Report, error) { return harness.GreedyVsSmart(ctx, 10, 20) }, 11},
		{harness.NamePrimeTimesPrime, func() (harness.Report, error) { return harness.PrimeTimesPrime(ctx, []int{2, 3, 5, 7}) }, 6},
		{harness.NamePrimePowers, func() (harness.Report, error) { return harness.PrimePowers(ctx, []int{3, 5}, []int{1, 2, 3}) }, 6},
		{harness.NameP1SquaredP2, func() (harness.Report, error) { return harness.P1SquaredP2(ctx, []int{2, 3, 5}) }, 3},
		{harness.NameP1P2P3, func() (harness.Report, error) { return harness.P1P2P3(ctx, []int{2, 3, 5, 7}) }, 4},
		{harness.NameCubeSolver, func() (harness.Report, error) { return harness.CubeSolver(ctx, []int{3, 5}) }, 2},
		{harness.NameGridVsOracle, func() (harness.Report, error) {
			return harness.GridVsOracle(ctx, []int{2, 3, 5}, 2, 2, 4096)
		}, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.run()
			require.NoError(t, err)
			assert.Equal(t, tc.name, r.Name)
			assert.Equal(t, tc.checked, r.Checked)
			assert.Empty(t, r.Failed)
		})
	}
}

func TestGridVsOracle_SkipsBeyondMaxN(t *testing.T) {
	r, err := harness.GridVsOracle(context.Background(), []int{2, 3}, 2, 2, 10)
	require.NoError(t, err)
	// 2, 3, 4, 6, 9 are within bound; 12, 18, 36 are not.
	assert.Equal(t, 5, r.Checked)
	assert.True(t, r.OK())
}

func TestPrimePowers_SkipsBeyondOracle(t *testing.T) {
	r, err := harness.PrimePowers(context.Background(), []int{43}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Checked)
}

func TestSuites_InvalidPrimeSurfaces(t *testing.T) {
	_, err := harness.PrimePowers(context.Background(), []int{2}, []int{2})
	assert.Error(t, err)
}

func TestGrowth(t *testing.T) {
	rows, err := harness.Growth(context.Background(), 2, 3, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "n = 2^1 * 3^1 =      6, count: 5", rows[0].String())
	assert.Equal(t, "n = 2^2 * 3^2 =     36, count: 1134", rows[1].String())
}

//----------------------------------------------------------------------------//
// Run
//----------------------------------------------------------------------------//

func TestRun_SmallConfig(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sum, err := harness.Run(context.Background(), small(), zap.New(core))
	require.NoError(t, err)
	require.Len(t, sum.Reports, 7)
	assert.True(t, sum.OK())

	names := make([]string, len(sum.Reports))
	for i, r := range sum.Reports {
		names[i] = r.Name
		assert.True(t, strings.HasSuffix(r.String(), ": SUCCESS"), r.String())
	}
	assert.Equal(t, []string{
		harness.NameGreedyVsSmart, harness.NameCubeSolver, harness.NamePrimeTimesPrime,
		harness.NamePrimePowers, harness.NameP1SquaredP2, harness.NameP1P2P3, harness.NameGridVsOracle,
	}, names)
	assert.Len(t, sum.Growth, 3)
	assert.Equal(t, 7, logs.FilterMessage("suite finished").Len())
}

func TestRun_DisabledSuites(t *testing.T) {
	cfg := small()
	cfg.GreedyVsSmart.Enabled = false
	cfg.CubeSolver.Enabled = false
	cfg.Growth.Enabled = false
	sum, err := harness.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Len(t, sum.Reports, 5)
	assert.Empty(t, sum.Growth)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := small()
	cfg.Concurrency = 0
	_, err := harness.Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := harness.Run(ctx, small(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
