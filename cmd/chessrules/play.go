package main

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Words accepted by play in place of a UCI move. A move or randomWord
// followed by offerSuffix offers a draw, which the opponent accepts by
// answering drawWord; any other reply lets the offer lapse.
const (
	randomWord  = "random"
	resignWord  = "resign"
	drawWord    = "draw"
	offerSuffix = "="
)

// session plays driver words against one game.
type session struct {
	cfg         *config.Config
	game        *engine.Game
	rng         *rand.Rand
	drawOffered bool
}

func newSession(cfg *config.Config, game *engine.Game) *session {
	return &session{
		cfg:  cfg,
		game: game,
		rng:  rand.New(rand.NewSource(cfg.Game.RandomSeed)),
	}
}

// runPlay applies args to the configured game in order and writes the
// finished record. The record is still written when a move fails, so the
// position reached so far is not lost.
func runPlay(cfg *config.Config, args []string) error {
	game, err := cfg.Game.NewGame()
	if err != nil {
		return err
	}
	s := newSession(cfg, game)
	playErr := s.playAll(args)

	if err := writeGame(cfg, game); err != nil {
		return err
	}
	if playErr != nil {
		return playErr
	}
	s.logResult()
	return nil
}

// writeGame writes game in the configured format.
func writeGame(cfg *config.Config, game *engine.Game) error {
	writer := output.NewWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(game); err != nil {
		return err
	}
	return writer.Close()
}

func (s *session) logResult() {
	result := s.game.Result()
	switch {
	case result.IsDecided():
		s.cfg.Logf(1, "%s %s", result.Score(), result.Status())
	case s.drawOffered:
		s.cfg.Logf(1, "%s to move, a draw was offered", s.game.ToMove())
	default:
		s.cfg.Logf(1, "%s to move", s.game.ToMove())
	}
}

func (s *session) playAll(args []string) error {
	for i, arg := range args {
		if err := s.play(arg); err != nil {
			return errors.Wrapf(err, "argument %d", i+1)
		}
	}
	return nil
}

func (s *session) play(arg string) error {
	if result := s.game.Result(); result.IsDecided() {
		return errors.Wrapf(errors.ErrGameOver, "%v", result)
	}

	switch {
	case arg == drawWord && s.drawOffered:
		s.cfg.Logf(2, "%s accepts the draw", s.game.ToMove())
		s.game.AgreeDraw()
		return nil
	case arg == drawWord:
		return errors.Wrapf(errors.ErrInvalidMove, "%q: no draw offer to accept", arg)
	case arg == resignWord:
		s.cfg.Logf(2, "%s resigns", s.game.ToMove())
		s.game.Resign(s.game.ToMove())
		return nil
	}

	s.drawOffered = false
	offer := strings.HasSuffix(arg, offerSuffix)
	word := strings.TrimSuffix(arg, offerSuffix)

	var move chess.Move
	if word == randomWord {
		var ok bool
		if move, ok = engine.RandomMove(s.game.Board(), s.rng); !ok {
			return errors.ErrGameOver
		}
	} else {
		var err error
		if move, err = chess.ParseMove(word); err != nil {
			return err
		}
	}

	number, colour := s.game.Board().MoveNumber(), s.game.ToMove()
	san, fen, err := s.game.ApplyMove(move)
	if err != nil {
		return err
	}
	s.drawOffered = offer
	s.cfg.Logf(2, "%d %s %s %s %s", number, colour, move, san, fen)
	if offer {
		s.cfg.Logf(2, "%s offers a draw", colour)
	}
	return nil
}
