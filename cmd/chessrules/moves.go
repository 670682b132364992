package main

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// runMoves lists the legal moves of the configured position as
// "uci san" lines, in generation order.
func runMoves(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("moves takes no arguments, got %q", args)
	}
	game, err := cfg.Game.NewGame()
	if err != nil {
		return err
	}
	board := game.Board()
	moves := engine.GenerateLegalMoves(board)
	for _, move := range moves {
		fmt.Fprintf(cfg.OutputFile, "%s %s\n", move, engine.MoveToSAN(board, move))
	}
	cfg.Logf(1, "%d legal moves", len(moves))
	return nil
}
