package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameConfig holds the variant and limits a game is played under.
type GameConfig struct {
	// Crazyhouse enables drops of captured pieces.
	Crazyhouse bool

	// Seed selects the starting back rank; 0 is the standard setup.
	Seed int64

	// FEN overrides Seed with an explicit starting position when set.
	FEN string

	// MaxMoves is the full-move cap after which the game is a forced draw.
	MaxMoves int

	// RandomSeed seeds the generator that picks random moves.
	RandomSeed int64
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		MaxMoves:   engine.DefaultMaxMoves,
		RandomSeed: 1,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxMoves <= 0 {
		return fmt.Errorf("move cap %d must be positive: %w", g.MaxMoves, errors.ErrInvalidConfig)
	}
	return nil
}

// NewGame starts a game as configured.
func (g *GameConfig) NewGame() (*engine.Game, error) {
	opts := []engine.GameOption{engine.WithMaxMoves(g.MaxMoves)}
	if g.FEN != "" {
		return engine.NewGameFromFEN(g.FEN, g.Crazyhouse, opts...)
	}
	return engine.NewGame(g.Seed, g.Crazyhouse, opts...), nil
}
