package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/DevBlocky/conway-gol/model"
	"github.com/DevBlocky/conway-gol/utils"
)

// game bundles everything one terminal run needs.
type game struct {
	cfg      utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	clock    utils.Clock
	out      io.Writer
}

// newGame sets up the initial game state: grid storage allocated and
// randomized from the configured seed, renderer bound to out.
func newGame(cfg utils.Config, out io.Writer, clock utils.Clock) (*game, error) {
	alive, dead, err := cfg.CharPair()
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] bad display characters")
	}

	grid, err := model.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to initialize grid")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	if err := grid.Randomize(utils.NewRNG(seed).Source()); err != nil {
		grid.Release()
		return nil, errors.Wrap(err, "[newGame] failed to randomize grid")
	}

	var pool *model.GridPool
	if cfg.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &game{
		cfg:      cfg,
		grid:     grid,
		pool:     pool,
		renderer: model.NewTerminalRenderer(out, alive, dead),
		stats:    utils.NewStats(clock.Now()),
		clock:    clock,
		out:      out,
	}, nil
}

// runGame drives the frame loop until the context is cancelled, the
// configured generation limit is reached, or the engine reports an error.
// The grid is released exactly once on every path.
func runGame(ctx context.Context, cfg utils.Config, out io.Writer, clock utils.Clock) error {
	g, err := newGame(cfg, out, clock)
	if err != nil {
		return err
	}
	defer g.grid.Release()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return g.loop(ctx) })
	err = eg.Wait()

	g.printSummary()
	return err
}

// loop runs the frame cycle in the reference order: show the current
// generation, wait one interval, advance, clear the display.
func (g *game) loop(ctx context.Context) error {
	lastHash := ""
	for generation := 0; ; generation++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := g.clock.Now()

		if g.cfg.ShowStats {
			g.printStatus(generation, lastHash)
		}
		lastHash = g.grid.GetGridHash()

		if err := g.renderer.Display(g.grid); err != nil {
			return errors.Wrap(err, "[loop] failed to display generation")
		}

		if g.cfg.MaxGenerations > 0 && generation >= g.cfg.MaxGenerations {
			return nil
		}

		g.clock.Sleep(g.cfg.FrameRate)

		if err := g.grid.AdvanceWithPool(g.pool); err != nil {
			return errors.Wrap(err, "[loop] failed to advance generation")
		}

		if err := g.renderer.Clear(); err != nil {
			return errors.Wrap(err, "[loop] failed to clear display")
		}

		g.stats.Update(generation+1, g.grid.CountLivingCells(), g.clock.Since(frameStart))
	}
}

// printStatus writes the status line shown above a frame. A board whose hash
// did not change across the last advance reports Stable; an empty board
// reports Extinct.
func (g *game) printStatus(generation int, lastHash string) {
	living := g.grid.CountLivingCells()
	status := "Active"
	if living == 0 {
		status = "Extinct"
	} else if lastHash != "" && lastHash == g.grid.GetGridHash() {
		status = "Stable"
	}
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Status: %s | %.1f gen/sec\n",
		generation, living, status, g.stats.GenerationsPerSecond)
}

// printSummary reports the finished run once the loop has drained.
func (g *game) printSummary() {
	elapsed := g.clock.Since(g.stats.StartTime).Seconds()
	fmt.Fprintf(g.out, "\n%d generations in %.1fs | avg population %.1f\n",
		g.stats.TotalGenerations, elapsed, g.stats.AveragePopulation)
}
