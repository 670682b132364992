package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as tag pairs and movetext.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(game *engine.Game) error {
	return OutputGame(tw.w, game, tw.cfg)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
// The record is taken at call time, so later moves on game are not included.
func (jw *JSONWriter) WriteGame(game *engine.Game) error {
	jsonGame, err := GameToJSON(game)
	if err != nil {
		return err
	}
	if jw.single {
		return encodeJSON(jw.w, jsonGame)
	}

	// Buffer for batch output
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
