package main

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runPerft counts the leaf positions below the configured position, split
// across the worker pool by root move.
func runPerft(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("perft takes no arguments, got %q", args)
	}
	game, err := cfg.Game.NewGame()
	if err != nil {
		return err
	}
	board := game.Board()
	depth := cfg.Perft.Depth
	p := message.NewPrinter(language.English)

	start := time.Now()
	var nodes uint64
	if depth == 0 {
		nodes = engine.Perft(board, 0)
	} else {
		entries, err := worker.Divide(board, depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		if cfg.Perft.Divide {
			for _, e := range entries {
				fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
			}
			fmt.Fprintln(cfg.OutputFile)
		}
		nodes = worker.Total(entries)
	}
	elapsed := time.Since(start)

	fmt.Fprint(cfg.OutputFile, p.Sprintf("nodes: %d\n", nodes))
	cfg.Logf(1, "%s", p.Sprintf("d=%d nodes=%d time=%s rate=%dn/s workers=%d",
		depth, nodes, elapsed.Round(time.Millisecond), rate(nodes, elapsed), cfg.Perft.Workers))
	return nil
}

func rate(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}
