package twosquares

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/privacybydesign/twosquares/big"
	"github.com/stretchr/testify/require"
)

type testFollower struct {
	steps int64
	count int64
	done  int64
}

func (t *testFollower) StepStart(_ string, intermediates int) {
	atomic.AddInt64(&t.steps, int64(intermediates))
}

func (t *testFollower) Tick() {
	atomic.AddInt64(&t.count, 1)
}

func (t *testFollower) StepDone() {
	atomic.AddInt64(&t.done, 1)
}

func TestSolveAll(t *testing.T) {
	ns := make([]*big.Int, 500)
	for i := range ns {
		ns[i] = big.NewInt(int64(i * 13))
	}
	follower := &testFollower{}
	solver := NewSolver(nil)
	solver.Workers = 4
	solver.Follower = follower

	results, err := solver.SolveAll(context.Background(), ns)
	require.NoError(t, err)
	require.Len(t, results, len(ns))
	for i, res := range results {
		require.Zero(t, res.N.Cmp(ns[i]))
		expected, err := solver.Solve(ns[i])
		require.NoError(t, err)
		require.Equal(t, expected, res)
	}
	require.Equal(t, int64(len(ns)), follower.steps)
	require.Equal(t, int64(len(ns)), follower.count)
	require.Equal(t, int64(1), follower.done)
}

func TestSolveAllError(t *testing.T) {
	ns := []*big.Int{big.NewInt(5), big.NewInt(-5), big.NewInt(10)}
	_, err := NewSolver(nil).SolveAll(context.Background(), ns)
	require.Equal(t, ErrInvalidInput, err)
}

func TestSolveAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSolver(nil).SolveAll(ctx, []*big.Int{big.NewInt(5), big.NewInt(10)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveAllEmpty(t *testing.T) {
	results, err := NewSolver(nil).SolveAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
