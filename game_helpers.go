package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/green-vs-red/input"
	"github.com/sheikhrachel/green-vs-red/model"
	"github.com/sheikhrachel/green-vs-red/utils"
)

// trackTargetCell counts the generations 0 through target in which the cell at (x, y) is green.
// pool and stats may be nil. Cancelling ctx stops the simulation between generations.
func trackTargetCell(
	ctx context.Context,
	grid *model.Grid,
	x, y int,
	target model.TargetGeneration,
	pool *model.GridPool,
	stats *utils.Stats,
) (int64, error) {
	state, err := grid.GetCell(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "[trackTargetCell] invalid target cell")
	}

	var count int64
	observe := func(generation int64, state model.CellState, population func() int) {
		if state.IsGreen() {
			count++
		}
		if stats != nil {
			stats.Update(generation, population(), state.IsGreen())
		}
	}
	observe(0, state, grid.CountActiveCells)

	stepper := model.NewGenerationStepper(grid, pool)
	for i, n := int64(0), target.Int64(); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return count, errors.Wrapf(err, "[trackTargetCell] stopped at generation %d", stepper.Generation())
		}

		stepper.Advance()
		if state, err = stepper.CellState(x, y); err != nil {
			return count, errors.Wrap(err, "[trackTargetCell]")
		}
		observe(stepper.Generation(), state, func() int { return stepper.CurrentGrid().CountActiveCells() })
	}

	if stats != nil {
		stats.Finish()
	}
	return count, nil
}

// newPool returns a grid pool when memory pooling is enabled
func newPool(config utils.Config) *model.GridPool {
	if !config.UseMemoryPool {
		return nil
	}
	return model.NewGridPool()
}

// runScenario simulates a scenario and returns the green count with its stats
func runScenario(
	ctx context.Context,
	s *input.Scenario,
	pool *model.GridPool,
	config utils.Config,
) (int64, *utils.Stats, error) {
	var stats *utils.Stats
	if config.Verbose {
		stats = utils.NewStats()
	}
	count, err := trackTargetCell(ctx, s.Grid, s.Tracking.X, s.Tracking.Y, s.Tracking.Target, pool, stats)
	return count, stats, err
}

type scenarioRead struct {
	scenario *input.Scenario
	err      error
}

// readScenario reads a scenario without blocking past the cancellation of ctx.
// The reading goroutine is abandoned on cancel; in blocks until the process exits.
func readScenario(ctx context.Context, r *input.Reader) (*input.Scenario, error) {
	done := make(chan scenarioRead, 1)
	go func() {
		scenario, err := r.ReadScenario()
		done <- scenarioRead{scenario: scenario, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "[readScenario] input cancelled")
	case res := <-done:
		return res.scenario, res.err
	}
}

// runInteractive reads one scenario from in, re-prompting on invalid lines, and prints the count to out
func runInteractive(ctx context.Context, in io.Reader, out, diag io.Writer, config utils.Config) error {
	scenario, err := readScenario(ctx, input.NewReader(in, out))
	if err != nil {
		return err
	}

	count, stats, err := runScenario(ctx, scenario, newPool(config), config)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, count)
	if stats != nil {
		fmt.Fprintln(diag, stats)
	}
	return nil
}

type batchResult struct {
	count int64
	stats *utils.Stats
}

// runBatch simulates every scenario file concurrently and prints "file: count" in argument order.
// The first failure cancels the files that have not started yet.
func runBatch(ctx context.Context, files []string, out, diag io.Writer, config utils.Config) error {
	var (
		results = make([]batchResult, len(files))
		pool    = newPool(config)
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, config.BatchWorkers))

	for i, file := range files {
		i, file := i, file
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return errors.Wrapf(err, "[runBatch] failed to open file: %+v", file)
			}
			defer f.Close()

			scenario, err := input.NewStrictReader(f).ReadScenario()
			if err != nil {
				return errors.Wrapf(err, "[runBatch] %s", file)
			}

			count, stats, err := runScenario(ctx, scenario, pool, config)
			if err != nil {
				return errors.Wrapf(err, "[runBatch] %s", file)
			}
			results[i] = batchResult{count: count, stats: stats}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		fmt.Fprintf(out, "%s: %d\n", file, results[i].count)
		if results[i].stats != nil {
			fmt.Fprintf(diag, "%s: %s\n", file, results[i].stats)
		}
	}
	return nil
}
