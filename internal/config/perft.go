package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	Depth   int
	Divide  bool // Print the count below every root move
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
