// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// options holds the raw flag values of one invocation.
type options struct {
	// Position
	fen        string
	seed       int64
	crazyhouse bool
	maxMoves   int

	// Perft
	depth   int
	divide  bool
	workers int

	// Play
	randomSeed int64

	// Output
	format     string
	json       bool
	colour     bool
	showFEN    bool
	outputFile string
	logFile    string
	verbosity  int
	quiet      bool
}

// newFlagSet binds every flag to opts. All subcommands share the same set
// so a flag means the same thing wherever it is given.
func newFlagSet(name string, opts *options, stderr io.Writer) *flag.FlagSet {
	defaults := config.NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Position options
	fs.StringVar(&opts.fen, "fen", "", "Starting position (default: the setup chosen by -seed)")
	fs.Int64Var(&opts.seed, "seed", defaults.Game.Seed, "Setup seed: 0 is the standard position, anything else a shuffled back rank")
	fs.BoolVar(&opts.crazyhouse, "crazyhouse", defaults.Game.Crazyhouse, "Play with crazyhouse drops")
	fs.IntVar(&opts.maxMoves, "maxmoves", defaults.Game.MaxMoves, "Full moves before the game is a forced draw")

	// Perft options
	fs.IntVar(&opts.depth, "depth", defaults.Perft.Depth, "Perft depth in plies")
	fs.BoolVar(&opts.divide, "divide", defaults.Perft.Divide, "Print the perft count below every root move")
	fs.IntVar(&opts.workers, "workers", defaults.Perft.Workers, "Number of perft workers")

	// Play options
	fs.Int64Var(&opts.randomSeed, "randseed", defaults.Game.RandomSeed, "Seed for the random move command")

	// Output options
	fs.StringVar(&opts.format, "format", defaults.Output.Format.String(), "Game output format: text or json")
	fs.BoolVar(&opts.json, "json", false, "Shorthand for -format json")
	fs.BoolVar(&opts.colour, "colour", defaults.Output.UseColour, "Render boards with ANSI colours")
	fs.BoolVar(&opts.showFEN, "fencomments", defaults.Output.ShowFEN, "Add the position after every move in text output")
	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.logFile, "l", "", "Log file (default: stderr)")
	fs.IntVar(&opts.verbosity, "verbose", defaults.Verbosity, "Verbosity: 0 silent, 1 summary, 2 every ply")
	fs.BoolVar(&opts.quiet, "s", false, "Silent mode (same as -verbose 0)")

	return fs
}

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config, opts *options) error {
	applyGameFlags(cfg, opts)
	applyPerftFlags(cfg, opts)
	if err := applyOutputFlags(cfg, opts); err != nil {
		return err
	}

	cfg.Verbosity = opts.verbosity
	if opts.quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyGameFlags configures the variant and starting position.
func applyGameFlags(cfg *config.Config, opts *options) {
	cfg.Game.FEN = opts.fen
	cfg.Game.Seed = opts.seed
	cfg.Game.Crazyhouse = opts.crazyhouse
	cfg.Game.MaxMoves = opts.maxMoves
	cfg.Game.RandomSeed = opts.randomSeed
}

// applyPerftFlags configures move-path enumeration.
func applyPerftFlags(cfg *config.Config, opts *options) {
	cfg.Perft.Depth = opts.depth
	cfg.Perft.Divide = opts.divide
	cfg.Perft.Workers = opts.workers
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config, opts *options) error {
	format, err := config.ParseOutputFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.json {
		format = config.JSONFormat
	}
	cfg.Output.Format = format
	cfg.Output.UseColour = opts.colour
	cfg.Output.ShowFEN = opts.showFEN
	return nil
}
