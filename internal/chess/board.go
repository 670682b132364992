package chess

import "github.com/lgbarn/chessrules-go/internal/errors"

// Board represents a chess position with all state needed for the rules.
//
// Every field is a value or a fixed-size array, so assigning a Board copies
// it completely; Copy relies on this to produce independent clones for
// hypothetical moves. Highlights is the one slice: it is only ever replaced,
// never written in place.
type Board struct {
	// The board squares, indexed [col][row].
	Squares [BoardSize][BoardSize]Piece

	// Castling rights, one per starting rook file, as recorded at setup.
	Castlings     [MaxCastlings]CastlingRight
	CastlingCount int

	// Is en passant capture possible? If so EPSquare is the square a
	// capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// Total half-moves since the start of the game. Even means White to move.
	HalfMoves int

	// Crazyhouse rules and the reserve counts they use, indexed by colour
	// and piece kind. The King and NoPiece slots are never used.
	Crazyhouse bool
	Reserves   [NumColours][NumPieceKinds]int

	// Squares touched by the last applied move.
	Highlights []Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard(crazyhouse bool) *Board {
	return &Board{Crazyhouse: crazyhouse}
}

// Get returns the piece at the given square.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Col][sq.Row]
}

// Set places a piece at the given square.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Col][sq.Row] = piece
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Squares[sq.Col][sq.Row] = Piece{}
}

// ToMove returns the side to move.
func (b *Board) ToMove() Colour {
	if b.HalfMoves%2 == 0 {
		return White
	}
	return Black
}

// MoveNumber returns the full-move number as printed in position strings.
func (b *Board) MoveNumber() int {
	return 1 + b.HalfMoves/2
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.Highlights != nil {
		newBoard.Highlights = append([]Square(nil), b.Highlights...)
	}
	return newBoard
}

// CastlingRights returns the recorded castling rights.
func (b *Board) CastlingRights() []CastlingRight {
	return b.Castlings[:b.CastlingCount]
}

// AddCastling records a new rook file, keeping the rights ordered by file.
// It returns false if the board already tracks MaxCastlings files.
func (b *Board) AddCastling(right CastlingRight) bool {
	if b.CastlingCount >= MaxCastlings {
		return false
	}
	i := b.CastlingCount
	for ; i > 0 && b.Castlings[i-1].RookCol > right.RookCol; i-- {
		b.Castlings[i] = b.Castlings[i-1]
	}
	b.Castlings[i] = right
	b.CastlingCount++
	return true
}

// FindCastling returns the right for the given rook file, or nil.
func (b *Board) FindCastling(rookCol int) *CastlingRight {
	for i := 0; i < b.CastlingCount; i++ {
		if b.Castlings[i].RookCol == rookCol {
			return &b.Castlings[i]
		}
	}
	return nil
}

// RevokeCastling revokes colour's right for the given rook file, if tracked.
func (b *Board) RevokeCastling(colour Colour, rookCol int) {
	if c := b.FindCastling(rookCol); c != nil {
		c.SetAllowed(colour, false)
	}
}

// RevokeAllCastling revokes every right of colour.
func (b *Board) RevokeAllCastling(colour Colour) {
	for i := 0; i < b.CastlingCount; i++ {
		b.Castlings[i].SetAllowed(colour, false)
	}
}

// Reserve returns how many pieces of kind colour holds in reserve.
func (b *Board) Reserve(colour Colour, kind PieceKind) int {
	checkReserveKind(kind)
	return b.Reserves[colour][kind]
}

// AddReserve adjusts colour's reserve of kind by count. Driving a reserve
// negative is an invariant violation and panics.
func (b *Board) AddReserve(colour Colour, kind PieceKind, count int) {
	checkReserveKind(kind)
	if b.Reserves[colour][kind]+count < 0 {
		errors.Invariant("%v reserve of %v would become negative", colour, kind)
	}
	b.Reserves[colour][kind] += count
}

func checkReserveKind(kind PieceKind) {
	if kind <= NoPiece || kind >= King {
		errors.Invariant("reserves do not hold %v", kind)
	}
}

// FindKing returns the square of colour's king. A missing king is an
// invariant violation and panics.
func (b *Board) FindKing(colour Colour) Square {
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if b.Squares[col][row].Is(King, colour) {
				return Sq(col, row)
			}
		}
	}
	errors.Invariant("no %v king on the board", colour)
	return Square{}
}

// Equal reports whether two boards hold the same position state: placement,
// castling, en passant, clocks and reserves. Highlights are ignored.
func (b *Board) Equal(other *Board) bool {
	return b.Squares == other.Squares &&
		b.Castlings == other.Castlings &&
		b.CastlingCount == other.CastlingCount &&
		b.EnPassant == other.EnPassant &&
		(!b.EnPassant || b.EPSquare == other.EPSquare) &&
		b.HalfmoveClock == other.HalfmoveClock &&
		b.HalfMoves == other.HalfMoves &&
		b.Crazyhouse == other.Crazyhouse &&
		b.Reserves == other.Reserves
}
