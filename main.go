package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/DevBlocky/conway-gol/utils"
)

const version = "1.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires flags, config, and the game loop together and returns the
// process exit code: 0 clean, 1 runtime failure, 2 bad usage.
func run(argv []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "conway-gol version %s\n", version)
		return 0
	}

	cfg, err := resolveConfig(opts, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runGame(ctx, cfg, stdout, utils.RealClock{}); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// options carries the parsed command line, plus which flags were explicitly
// set so they can override the config file.
type options struct {
	configPath  string
	rows        int
	cols        int
	interval    time.Duration
	alive       string
	dead        string
	seed        int64
	generations int
	pool        bool
	stats       bool
	showVersion bool

	set map[string]bool
}

func parseFlags(argv []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}
	def := utils.DefaultConfig()

	fs := flag.NewFlagSet("conway-gol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "config.json", "path to a JSON config file")
	fs.IntVar(&opts.rows, "rows", def.Rows, "number of grid rows")
	fs.IntVar(&opts.cols, "cols", def.Cols, "number of grid columns")
	fs.DurationVar(&opts.interval, "interval", def.FrameRate, "delay between generations")
	fs.StringVar(&opts.alive, "alive", def.AliveChar, "character drawn for a live cell")
	fs.StringVar(&opts.dead, "dead", def.DeadChar, "character drawn for a dead cell")
	fs.Int64Var(&opts.seed, "seed", def.Seed, "random seed, 0 derives one from the clock")
	fs.IntVar(&opts.generations, "generations", def.MaxGenerations, "stop after this many generations, 0 runs until interrupted")
	fs.BoolVar(&opts.pool, "pool", def.UseMemoryPool, "reuse snapshot storage between generations")
	fs.BoolVar(&opts.stats, "stats", def.ShowStats, "print a status line above each frame")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// resolveConfig layers the run settings: defaults, then the config file when
// one is present, then explicitly set flags. The result is validated.
func resolveConfig(opts *options, stdout io.Writer) (utils.Config, error) {
	cfg, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		// Running without the default config file is normal; a file that was
		// asked for by flag, or that exists but cannot be parsed, is not.
		if !os.IsNotExist(errors.Cause(err)) || opts.set["config"] {
			return cfg, err
		}
		fmt.Fprintf(stdout, "Using default configuration (%s not found)\n", opts.configPath)
	}

	if opts.set["rows"] {
		cfg.Rows = opts.rows
	}
	if opts.set["cols"] {
		cfg.Cols = opts.cols
	}
	if opts.set["interval"] {
		cfg.FrameRate = opts.interval
	}
	if opts.set["alive"] {
		cfg.AliveChar = opts.alive
	}
	if opts.set["dead"] {
		cfg.DeadChar = opts.dead
	}
	if opts.set["seed"] {
		cfg.Seed = opts.seed
	}
	if opts.set["generations"] {
		cfg.MaxGenerations = opts.generations
	}
	if opts.set["pool"] {
		cfg.UseMemoryPool = opts.pool
	}
	if opts.set["stats"] {
		cfg.ShowStats = opts.stats
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
