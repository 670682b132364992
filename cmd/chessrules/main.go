// chessrules plays, checks and enumerates chess positions under standard,
// shuffled back rank and crazyhouse rules.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

// command runs one subcommand with the remaining positional arguments.
type command func(cfg *config.Config, args []string) error

var commands = map[string]struct {
	run     command
	summary string
}{
	"perft":  {runPerft, "count leaf positions below a position"},
	"moves":  {runMoves, "list the legal moves of a position"},
	"play":   {runPlay, "apply moves (uci, random, resign, draw; '=' offers a draw) and print the game"},
	"board":  {runBoard, "render a position, after any moves given"},
	"replay": {runReplay, "check a JSON game record and print it again"},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes a command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "chessrules version %s\n", programVersion)
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	var opts options
	fs := newFlagSet(args[0], &opts, stderr)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.NewConfig()
	cfg.SetOutput(stdout)
	cfg.SetLog(stderr)
	if err := applyFlags(cfg, &opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	closeLog, err := setupLogFile(cfg, opts.logFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	closeOutput, err := setupOutputFile(cfg, opts.outputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeOutput()

	if err := cmd.run(cfg, fs.Args()); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile redirects diagnostics to the named file.
func setupLogFile(cfg *config.Config, name string) (func(), error) {
	if name == "" {
		return func() {}, nil
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", name, err)
	}
	cfg.SetLog(file)
	return func() { file.Close() }, nil
}

// setupOutputFile redirects output to the named file.
func setupOutputFile(cfg *config.Config, name string) (func(), error) {
	if name == "" {
		return func() {}, nil
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", name, err)
	}
	cfg.SetOutput(file)
	return func() { file.Close() }, nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chessrules <command> [flags] [args]\n\nCommands:\n")
	for _, name := range []string{"perft", "moves", "play", "board", "replay"} {
		fmt.Fprintf(w, "  %-7s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "\nRun 'chessrules <command> -h' for the flags of a command.\n")
}
