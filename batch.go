package twosquares

import (
	"context"
	"runtime"

	"github.com/privacybydesign/twosquares/big"
	"golang.org/x/sync/errgroup"
)

type (
	// ProgressFollower receives progress updates from SolveAll.
	ProgressFollower interface {
		StepStart(desc string, intermediates int)
		Tick()
		StepDone()
	}

	EmptyFollower struct{}
)

func (*EmptyFollower) StepStart(_ string, _ int) {}
func (*EmptyFollower) Tick()                     {}
func (*EmptyFollower) StepDone()                 {}

// SolveAll solves every n in ns concurrently on at most s.Workers goroutines and returns
// the results in the order of ns. The inputs share no state, so they are solved
// independently; the first error, or the cancellation of ctx, stops the remaining
// work and is returned.
func (s *Solver) SolveAll(ctx context.Context, ns []*big.Int) ([]*Result, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	follower := s.Follower
	if follower == nil {
		follower = &EmptyFollower{}
	}

	results := make([]*Result, len(ns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	follower.StepStart("sums of two squares", len(ns))
	defer follower.StepDone()

	for i := range ns {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Solve(ns[i])
			if err != nil {
				return err
			}
			results[i] = res
			follower.Tick()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
