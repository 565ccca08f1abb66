package oracle_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circulant/oracle"
)

// small holds ELV counts computed independently for 1 < n ≤ 30.
var small = map[int]int64{
	2: 1, 3: 1, 4: 2, 5: 2, 6: 5, 7: 3, 8: 8, 9: 6, 10: 12,
	11: 5, 12: 30, 13: 6, 14: 21, 15: 20, 16: 48, 17: 8, 18: 72, 19: 9, 20: 94,
	21: 36, 22: 45, 23: 11, 24: 296, 25: 30, 26: 60, 27: 72, 28: 204, 29: 14, 30: 368,
}

//----------------------------------------------------------------------------//
// SmartCount
//----------------------------------------------------------------------------//

// TestSmartCount_Small pins counts for small n.
func TestSmartCount_Small(t *testing.T) {
	for n, want := range small {
		got, err := oracle.SmartCount(n)
		require.NoError(t, err)
		assert.Equal(t, want, got.Int64(), "n=%d", n)
	}
}

// TestExactCount_Larger pins a few composite values.
func TestExactCount_Larger(t *testing.T) {
	cases := map[int]int64{36: 1134, 54: 2484, 108: 112536, 216: 8412552}
	for n, want := range cases {
		got, err := oracle.ExactCount(n)
		require.NoError(t, err)
		assert.Equal(t, want, got.Int64(), "n=%d", n)
	}
}

// TestSmartCount_One counts the lone chain [1].
func TestSmartCount_One(t *testing.T) {
	got, err := oracle.SmartCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())
}

// TestSmartCount_VisitorSix enumerates the five ELVs of 6.
func TestSmartCount_VisitorSix(t *testing.T) {
	var got []oracle.ELV
	total, err := oracle.SmartCount(6, oracle.WithVisitor(func(v oracle.ELV) error {
		got = append(got, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total.Int64())

	want := []oracle.ELV{
		{5, 0, 0},
		{1, 4, 0},
		{0, 4, 1},
		{2, 0, 3},
		{0, 2, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ELVs of 6 mismatch (-want +got):\n%s", diff)
	}
}

// TestSmartCount_VisitorAgrees compares enumeration with arithmetic counting.
func TestSmartCount_VisitorAgrees(t *testing.T) {
	for n := 1; n <= 40; n++ {
		seen := int64(0)
		enumerated, err := oracle.SmartCount(n, oracle.WithVisitor(func(v oracle.ELV) error {
			seen++
			if len(v) != n/2 {
				return errors.New("wrong length")
			}
			return nil
		}))
		require.NoError(t, err, "n=%d", n)
		counted, err := oracle.SmartCount(n)
		require.NoError(t, err)
		assert.Zero(t, counted.Cmp(enumerated), "n=%d", n)
		assert.Equal(t, counted.Int64(), seen, "n=%d", n)
	}
}

// TestSmartCount_Errors covers the guards, visitor abort and cancellation.
func TestSmartCount_Errors(t *testing.T) {
	_, err := oracle.SmartCount(0)
	assert.ErrorIs(t, err, oracle.ErrInvalidN)
	_, err = oracle.SmartCount(oracle.MaxN + 1)
	assert.ErrorIs(t, err, oracle.ErrTooLarge)

	stop := errors.New("stop")
	_, err = oracle.SmartCount(12, oracle.WithVisitor(func(oracle.ELV) error { return stop }))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = oracle.SmartCount(12, oracle.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = oracle.SmartCount(12, oracle.WithContext(ctx), oracle.WithVisitor(func(oracle.ELV) error { return nil }))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCandidates lists the edges for one step of n=12.
func TestCandidates(t *testing.T) {
	assert.Equal(t, []int{2}, oracle.Candidates(12, 12, 2))
	// 6→1 for n=12: gcd(12,i)=1 gives 1,5; gcd(6,i)=1 adds nothing new.
	assert.Equal(t, []int{1, 5}, oracle.Candidates(12, 6, 1))
	// 4→1: gcd(12,i)=1 gives 1,5; gcd(4,i)=1 adds 3.
	assert.Equal(t, []int{1, 3, 5}, oracle.Candidates(12, 4, 1))
}

//----------------------------------------------------------------------------//
// GreedyCount
//----------------------------------------------------------------------------//

// TestGreedyCount_AgreesWithSmart checks the permutation method for 2..48.
func TestGreedyCount_AgreesWithSmart(t *testing.T) {
	for n := 2; n <= 48; n++ {
		g, err := oracle.GreedyCount(n)
		require.NoError(t, err)
		s, err := oracle.SmartCount(n)
		require.NoError(t, err)
		assert.Zero(t, s.Cmp(g), "n=%d greedy %s smart %s", n, g, s)
	}
}

// TestGreedyCount_Edges covers n=1 and the guards.
func TestGreedyCount_Edges(t *testing.T) {
	got, err := oracle.GreedyCount(1)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())

	_, err = oracle.GreedyCount(-3)
	assert.ErrorIs(t, err, oracle.ErrInvalidN)
	_, err = oracle.GreedyCount(oracle.MaxGreedyN + 1)
	assert.ErrorIs(t, err, oracle.ErrTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = oracle.GreedyCount(30, oracle.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGreedyCount_Small reuses the pinned table.
func TestGreedyCount_Small(t *testing.T) {
	for n, want := range small {
		got, err := oracle.GreedyCount(n)
		require.NoError(t, err)
		assert.Zero(t, big.NewInt(want).Cmp(got), "n=%d", n)
	}
}
