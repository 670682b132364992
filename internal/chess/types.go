// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the side-to-move letter used in position strings.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ColourFromLetter parses a side-to-move letter.
func ColourFromLetter(s string) (Colour, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	return Black, &errors.ParseError{Err: errors.ErrInvalidFEN, Token: s, Reason: "side to move must be w or b"}
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// ReserveKinds lists the kinds that can be held in a crazyhouse reserve,
// in the order they are printed.
var ReserveKinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen}

// PromotionKinds lists the kinds a pawn can promote to, in generation order.
var PromotionKinds = [...]PieceKind{Knight, Bishop, Rook, Queen}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsValidPromotion reports whether a pawn may promote to k.
func (k PieceKind) IsValidPromotion() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PieceKindFromLetter converts a letter of either case to a piece kind.
// It returns NoPiece for anything else.
func PieceKindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPiece
}

// Piece is the content of a square. The zero value is an empty square.
// Promoted is only meaningful under crazyhouse, where a promoted piece
// returns to the reserve as a pawn.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Promoted bool
}

// NewPiece creates an unpromoted piece.
func NewPiece(kind PieceKind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty returns true if there is no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind PieceKind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Invert returns the same kind with the opposite colour.
func (p Piece) Invert() Piece {
	return Piece{Kind: p.Kind, Colour: p.Colour.Opposite()}
}

// Promote returns the piece marked as promoted.
func (p Piece) Promote() Piece {
	p.Promoted = true
	return p
}

// Letter returns the position-string letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns the piece letter.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.Letter())
}

// PieceFromLetter parses a position-string piece letter.
func PieceFromLetter(c byte) (Piece, error) {
	kind := PieceKindFromLetter(c)
	if kind == NoPiece {
		return Piece{}, &errors.ParseError{
			Err:    errors.ErrInvalidFEN,
			Token:  string(c),
			Reason: "character does not designate a piece",
		}
	}
	colour := White
	if unicode.IsLower(rune(c)) {
		colour = Black
	}
	return NewPiece(kind, colour), nil
}

// Constants for board geometry and castling destinations.
const (
	BoardSize = 8

	// Files the king and rook end on after castling, whatever their origin.
	QueensideKingCol = 2
	QueensideRookCol = 3
	KingsideKingCol  = 6
	KingsideRookCol  = 5

	// MaxCastlings is the number of rook files tracked per game.
	MaxCastlings = 2
)

// HomeRow returns the back rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the row pawns start on for the given colour.
func PawnRow(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Result is the terminal state of a game.
type Result int

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Stalemate
	Repetition
	InsufficientMaterial
	FiftyMove
	ForcedDraw
	DrawByAgreement
	WhiteResigns
	BlackResigns
)

var resultNames = [...]string{
	"Undecided",
	"WhiteWins",
	"BlackWins",
	"Stalemate",
	"Repetition",
	"InsufficientMaterial",
	"FiftyMove",
	"ForcedDraw",
	"DrawByAgreement",
	"WhiteResigns",
	"BlackResigns",
}

// String returns the name of the result.
func (r Result) String() string {
	if r >= 0 && int(r) < len(resultNames) {
		return resultNames[r]
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// IsDecided returns true once the game has ended.
func (r Result) IsDecided() bool {
	return r != Undecided
}

// IsDraw returns true for every drawn outcome.
func (r Result) IsDraw() bool {
	switch r {
	case Stalemate, Repetition, InsufficientMaterial, FiftyMove, ForcedDraw, DrawByAgreement:
		return true
	}
	return false
}

// Winner returns the winning colour, if any.
func (r Result) Winner() (Colour, bool) {
	switch r {
	case WhiteWins, BlackResigns:
		return White, true
	case BlackWins, WhiteResigns:
		return Black, true
	}
	return Black, false
}

// Score returns the PGN-style score string.
func (r Result) Score() string {
	if winner, ok := r.Winner(); ok {
		if winner == White {
			return "1-0"
		}
		return "0-1"
	}
	if r.IsDraw() {
		return "1/2-1/2"
	}
	return "*"
}

// Status returns a one-line human description of the result.
func (r Result) Status() string {
	switch r {
	case WhiteWins, BlackWins:
		return "Checkmate."
	case WhiteResigns:
		return "White resigned."
	case BlackResigns:
		return "Black resigned."
	case Stalemate:
		return "Stalemate."
	case Repetition:
		return "Draw by repetition."
	case InsufficientMaterial:
		return "Draw by insufficient material."
	case FiftyMove:
		return "Draw by the fifty-move rule."
	case ForcedDraw:
		return "Forced draw."
	case DrawByAgreement:
		return "Draw by agreement."
	}
	return ""
}
