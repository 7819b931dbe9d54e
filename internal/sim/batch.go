package sim

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Batch describes a run of independent battles.
type Batch struct {
	Battles   int
	FirstSeed uint64
	// Workers bounds the battles played at once; zero or less means unbounded.
	Workers int
}

// Sink receives every result as soon as its battle ends. It is called from
// the battle goroutines and must be safe for concurrent use.
type Sink func(ctx context.Context, res Result) error

// RunBatch plays the battles of batch concurrently, one goroutine per
// battle, with seeds FirstSeed, FirstSeed+1... Results keep the seed order.
// The first error cancels the battles still running.
func RunBatch(ctx context.Context, setup Setup, batch Batch, sink Sink) ([]Result, error) {
	if err := setup.validate(); err != nil {
		return nil, err
	}
	results := make([]Result, batch.Battles)

	g, gctx := errgroup.WithContext(ctx)
	if batch.Workers > 0 {
		g.SetLimit(batch.Workers)
	}
	for i := range batch.Battles {
		seed := batch.FirstSeed + uint64(i)
		g.Go(func() error {
			res, err := Run(gctx, setup, seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			if sink != nil {
				if err := sink(gctx, res); err != nil {
					return fmt.Errorf("seed %d: sink: %w", seed, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("batch finished", "name", setup.Name, "battles", batch.Battles)
	return results, nil
}

// Summary aggregates the results of a batch.
type Summary struct {
	Battles int
	Wins    [2]int
	Draws   int
	Fled    int
	Turns   int
	MaxTurn int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Battles: len(results)}
	for _, r := range results {
		switch {
		case r.Fled:
			s.Fled++
		case r.Winner >= 0:
			s.Wins[r.Winner]++
		default:
			s.Draws++
		}
		s.Turns += r.Turns
		s.MaxTurn = max(s.MaxTurn, r.Turns)
	}
	return s
}

// AvgTurns returns the mean battle length.
func (s Summary) AvgTurns() float64 {
	if s.Battles == 0 {
		return 0
	}
	return float64(s.Turns) / float64(s.Battles)
}
