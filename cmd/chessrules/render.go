package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Square and piece attributes of a coloured board.
var (
	lightSquare     = color.BgHiWhite
	darkSquare      = color.BgGreen
	highlightSquare = color.BgYellow
	whitePiece      = color.FgHiBlue
	blackPiece      = color.FgBlack
)

// cellColour returns the colour of one rendered square.
func cellColour(sq chess.Square, piece chess.Piece, highlighted bool) *color.Color {
	bg := darkSquare
	switch {
	case highlighted:
		bg = highlightSquare
	case sq.IsLight():
		bg = lightSquare
	}
	fg := whitePiece
	if piece.Colour == chess.Black {
		fg = blackPiece
	}
	c := color.New(bg, fg, color.Bold)
	c.EnableColor()
	return c
}

// runBoard renders the configured position after playing any moves given
// as arguments.
func runBoard(cfg *config.Config, args []string) error {
	game, err := cfg.Game.NewGame()
	if err != nil {
		return err
	}
	if err := newSession(cfg, game).playAll(args); err != nil {
		return err
	}
	renderBoard(cfg.OutputFile, game.Board(), cfg.Output.UseColour)
	return nil
}

// renderBoard draws board with rank 8 at the top. Without colour, pieces
// are letters and empty squares dots; with colour, squares are shaded and
// the squares of the last move highlighted.
func renderBoard(w io.Writer, board *chess.Board, useColour bool) {
	highlighted := make(map[chess.Square]bool, len(board.Highlights))
	for _, sq := range board.Highlights {
		highlighted[sq] = true
	}

	for row := chess.BoardSize - 1; row >= 0; row-- {
		var line strings.Builder
		line.WriteByte(chess.RowToChar(row))
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(col, row)
			piece := board.Get(sq)
			if !useColour {
				line.WriteByte(' ')
				line.WriteString(piece.String())
				continue
			}
			letter := piece.String()
			if piece.IsEmpty() {
				letter = " "
			}
			line.WriteString(cellColour(sq, piece, highlighted[sq]).Sprint(" " + letter + " "))
		}
		fmt.Fprintln(w, line.String())
	}

	var files strings.Builder
	files.WriteByte(' ')
	for col := 0; col < chess.BoardSize; col++ {
		if useColour {
			files.WriteString(" " + string(chess.ColToChar(col)) + " ")
		} else {
			files.WriteString(" " + string(chess.ColToChar(col)))
		}
	}
	fmt.Fprintln(w, files.String())

	if board.Crazyhouse {
		fmt.Fprintf(w, "reserves: %s / %s\n", reserveString(board, chess.White), reserveString(board, chess.Black))
	}
	fmt.Fprintf(w, "%s to move\n", board.ToMove())
	fmt.Fprintf(w, "%s\n", engine.BoardToFEN(board))
}

// reserveString lists colour's reserve as letters, "-" when empty.
func reserveString(board *chess.Board, colour chess.Colour) string {
	var sb strings.Builder
	for _, kind := range chess.ReserveKinds {
		letter := chess.NewPiece(kind, colour).String()
		sb.WriteString(strings.Repeat(letter, board.Reserve(colour, kind)))
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
