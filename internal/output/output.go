// Package output writes game records as text movetext or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

const maxLineLength = 80

// Ply is one applied move of a game together with the position after it.
type Ply struct {
	Number     int // Full-move number the move was played in
	Colour     chess.Colour
	Move       chess.Move
	SAN        string
	FEN        string
	Highlights []chess.Square
}

// Plies replays game from its starting position and returns every ply.
func Plies(game *engine.Game) ([]Ply, error) {
	board, err := engine.NewBoardFromFEN(game.StartFEN(), game.Board().Crazyhouse)
	if err != nil {
		return nil, err
	}

	moves := game.Moves()
	plies := make([]Ply, 0, len(moves))
	for _, move := range moves {
		ply := Ply{
			Number: board.MoveNumber(),
			Colour: board.ToMove(),
			Move:   move,
			SAN:    engine.MoveToSAN(board, move),
		}
		engine.ApplyMove(board, move)
		ply.FEN = engine.BoardToFEN(board)
		ply.Highlights = board.Highlights
		plies = append(plies, ply)
	}
	return plies, nil
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game as tag pairs followed by numbered movetext.
func OutputGame(w io.Writer, game *engine.Game, cfg *config.Config) error {
	plies, err := Plies(game)
	if err != nil {
		return err
	}
	result := game.Result()

	outputTags(w, game, result)
	fmt.Fprintln(w)
	outputMoves(w, plies, result, cfg.Output.ShowFEN)
	fmt.Fprintln(w)
	return nil
}

// outputTags writes the variant, start position and result.
func outputTags(w io.Writer, game *engine.Game, result chess.Result) {
	fmt.Fprintf(w, "[Variant \"%s\"]\n", variantName(game))
	if fen := game.StartFEN(); fen != engine.InitialFEN {
		fmt.Fprintf(w, "[FEN \"%s\"]\n", escapeTagValue(fen))
	}
	fmt.Fprintf(w, "[Result \"%s\"]\n", result.Score())
	if status := result.Status(); status != "" {
		fmt.Fprintf(w, "[Termination \"%s\"]\n", escapeTagValue(status))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the movetext, wrapped at the line length.
func outputMoves(w io.Writer, plies []Ply, result chess.Result, showFEN bool) {
	ow := NewOutputWriter(w, maxLineLength)

	for i, ply := range plies {
		if ply.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", ply.Number))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", ply.Number))
		}
		ow.Write(ply.SAN)
		if showFEN {
			ow.Write("{" + ply.FEN + "}")
		}
	}

	ow.Write(result.Score())
	ow.NewLine()
}

func variantName(game *engine.Game) string {
	if game.Board().Crazyhouse {
		return "crazyhouse"
	}
	return "standard"
}
