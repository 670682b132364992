package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// runReplay reads a JSON game record, plays its moves again from the
// recorded start and writes the rebuilt game in the configured format.
// A record whose moves are illegal or whose final position differs from
// the replay is rejected.
func runReplay(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay takes one record file, got %d arguments: %w",
			len(args), errors.ErrInvalidConfig)
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	jg, err := output.ReadJSON(file)
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}
	game, err := output.ReplayJSON(jg, engine.WithMaxMoves(cfg.Game.MaxMoves))
	if err != nil {
		return errors.Wrapf(err, "replaying %s", args[0])
	}
	if fen := game.FEN(); fen != jg.FinalFEN {
		return errors.Wrapf(errors.ErrIllegalMove, "%s: replay ends at %q, record says %q",
			args[0], fen, jg.FinalFEN)
	}
	cfg.Logf(2, "%s: %d plies replayed", args[0], len(jg.Moves))

	if err := writeGame(cfg, game); err != nil {
		return err
	}
	if result := game.Result(); result.Score() != jg.Score {
		cfg.Logf(1, "%s: record scores %s, moves alone give %s", args[0], jg.Score, result.Score())
		return nil
	}
	newSession(cfg, game).logResult()
	return nil
}
