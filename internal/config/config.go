// Package config provides the driver configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how game records are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // One line per ply
	JSONFormat                     // A single JSON game record
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Game   *GameConfig
	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
