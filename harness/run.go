// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/circulant/config"
)

// job is one enabled suite.
type job struct {
	name string
	run  func(ctx context.Context) (Report, error)
}

// jobs lists the enabled suites in report order.
func jobs(cfg *config.Config) []job {
	var out []job
	if s := cfg.GreedyVsSmart; s.Enabled {
		out = append(out, job{NameGreedyVsSmart, func(ctx context.Context) (Report, error) {
			return GreedyVsSmart(ctx, s.From, s.To)
		}})
	}
	if s := cfg.CubeSolver; s.Enabled {
		out = append(out, job{NameCubeSolver, func(ctx context.Context) (Report, error) {
			return CubeSolver(ctx, s.Primes)
		}})
	}
	if s := cfg.PrimeTimesPrime; s.Enabled {
		out = append(out, job{NamePrimeTimesPrime, func(ctx context.Context) (Report, error) {
			return PrimeTimesPrime(ctx, s.Primes)
		}})
	}
	if s := cfg.PrimePowers; s.Enabled {
		out = append(out, job{NamePrimePowers, func(ctx context.Context) (Report, error) {
			return PrimePowers(ctx, s.Primes, s.Powers)
		}})
	}
	if s := cfg.P1SquaredP2; s.Enabled {
		out = append(out, job{NameP1SquaredP2, func(ctx context.Context) (Report, error) {
			return P1SquaredP2(ctx, s.Primes)
		}})
	}
	if s := cfg.P1P2P3; s.Enabled {
		out = append(out, job{NameP1P2P3, func(ctx context.Context) (Report, error) {
			return P1P2P3(ctx, s.Primes)
		}})
	}
	if s := cfg.GridVsOracle; s.Enabled {
		out = append(out, job{NameGridVsOracle, func(ctx context.Context) (Report, error) {
			return GridVsOracle(ctx, s.Primes, s.MaxA, s.MaxB, s.MaxN)
		}})
	}

	return out
}

// Run validates cfg, runs every enabled suite with at most cfg.Concurrency
// in flight, then the growth listing. Reports keep suite order regardless of
// completion order. The first suite error cancels the rest.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	list := jobs(cfg)
	reports := make([]Report, len(list))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, j := range list {
		g.Go(func() error {
			started := time.Now()
			r, err := j.run(gctx)
			if err != nil {
				log.Error("suite aborted", zap.String("suite", j.name), zap.Error(err))
				return fmt.Errorf("harness: %s: %w", j.name, err)
			}
			reports[i] = r
			log.Info("suite finished",
				zap.String("suite", j.name),
				zap.Int("checked", r.Checked),
				zap.Int64s("failed", r.Failed),
				zap.Duration("elapsed", time.Since(started)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{Reports: reports}
	if gr := cfg.Growth; gr.Enabled {
		rows, err := Growth(ctx, gr.P1, gr.P2, gr.UpTo)
		if err != nil {
			return nil, fmt.Errorf("harness: growth: %w", err)
		}
		sum.Growth = rows
	}

	return sum, nil
}
