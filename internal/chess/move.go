package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveClass tags which variant of Move a value holds.
type MoveClass uint8

const (
	NormalMove MoveClass = iota // A piece travels From -> To
	DropMove                    // A reserve piece is placed on To
)

// Move is a tagged union of a normal move and a crazyhouse drop.
//
// A normal move uses From, To and optionally Promotion. A drop uses To and
// Kind. Moves are plain comparable values: == is structural equality.
//
// Castling is encoded as the king moving onto its own rook's square. That
// shape identifies which rook is used even when the starting files are
// arbitrary; the engine decodes it only when generating and applying moves.
type Move struct {
	Class     MoveClass
	From      Square
	To        Square
	Promotion PieceKind // NoPiece unless a pawn promotes
	Kind      PieceKind // Dropped kind, NoPiece for normal moves
}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{Class: NormalMove, From: from, To: to}
}

// NewPromotion creates a pawn move that promotes to kind.
// It panics if kind is not a valid promotion target.
func NewPromotion(from, to Square, kind PieceKind) Move {
	if !kind.IsValidPromotion() {
		errors.Invariant("promotion to %v", kind)
	}
	return Move{Class: NormalMove, From: from, To: to, Promotion: kind}
}

// NewDrop creates a crazyhouse drop. It panics if kind is King or NoPiece.
func NewDrop(kind PieceKind, to Square) Move {
	if kind == King || kind == NoPiece || kind >= NumPieceKinds {
		errors.Invariant("drop of %v", kind)
	}
	return Move{Class: DropMove, To: to, Kind: kind}
}

// IsDrop returns true if this move places a reserve piece.
func (m Move) IsDrop() bool {
	return m.Class == DropMove
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Class == NormalMove && m.Promotion != NoPiece
}

// String encodes the move in UCI notation: e2e4, e7e8q or N@f3.
func (m Move) String() string {
	var sb strings.Builder
	if m.IsDrop() {
		sb.WriteByte(m.Kind.Letter())
		sb.WriteByte('@')
		sb.WriteString(m.To.String())
		return sb.String()
	}
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoPiece {
		sb.WriteByte(NewPiece(m.Promotion, Black).Letter())
	}
	return sb.String()
}

// ParseMove decodes a UCI move string. Normal moves match
// [a-h][1-8][a-h][1-8][nbrq]? and drops match [PNBRQ]@[a-h][1-8].
func ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Reason: "move must be 4 or 5 characters"}
	}

	if s[1] == '@' {
		if len(s) != 4 {
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Reason: "drop must be 4 characters"}
		}
		kind := PieceKindFromLetter(s[0])
		if kind == NoPiece || s[0] < 'A' || s[0] > 'Z' {
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Token: s[:1], Reason: "drop piece must be an uppercase piece letter"}
		}
		if kind == King {
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Token: s[:1], Reason: "kings cannot be dropped"}
		}
		to, err := parseMoveSquare(s[2:4], s)
		if err != nil {
			return Move{}, err
		}
		return NewDrop(kind, to), nil
	}

	from, err := parseMoveSquare(s[0:2], s)
	if err != nil {
		return Move{}, err
	}
	to, err := parseMoveSquare(s[2:4], s)
	if err != nil {
		return Move{}, err
	}
	if len(s) == 4 {
		return NewMove(from, to), nil
	}

	kind := PieceKindFromLetter(s[4])
	if s[4] < 'a' || s[4] > 'z' || !kind.IsValidPromotion() {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Token: s[4:], Reason: "promotion must be one of n, b, r, q"}
	}
	return NewPromotion(from, to, kind), nil
}

// parseMoveSquare parses one square of a move, reporting errors against
// the whole move string.
func parseMoveSquare(s, move string) (Square, error) {
	sq, err := ParseSquare(s)
	var pe *errors.ParseError
	if errors.As(err, &pe) {
		cp := *pe
		cp.Input = move
		return sq, &cp
	}
	return sq, err
}

// MustParseMove is like ParseMove but panics on error. Intended for
// literals in tests and tables.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
