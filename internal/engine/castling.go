package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CastleSide says which way the king travels when castling.
type CastleSide int

const (
	Queenside CastleSide = iota // Rook starts on a file left of the king
	Kingside                    // Rook starts on a file right of the king
)

// String returns the algebraic castling token.
func (s CastleSide) String() string {
	if s == Queenside {
		return "O-O-O"
	}
	return "O-O"
}

// castle is the decoded form of a king-onto-own-rook move. It names every
// file involved so application never looks at the move shape again.
type castle struct {
	Side     CastleSide
	Row      int
	KingFrom int
	KingTo   int
	RookFrom int
	RookTo   int
}

func newCastle(row, kingCol, rookCol int) castle {
	c := castle{Row: row, KingFrom: kingCol, RookFrom: rookCol}
	if rookCol < kingCol {
		c.Side, c.KingTo, c.RookTo = Queenside, chess.QueensideKingCol, chess.QueensideRookCol
	} else {
		c.Side, c.KingTo, c.RookTo = Kingside, chess.KingsideKingCol, chess.KingsideRookCol
	}
	return c
}

// decodeCastle returns the castle a move encodes, if it is one: a king
// moving onto a rook of its own colour.
func decodeCastle(board *chess.Board, move chess.Move) (castle, bool) {
	if move.IsDrop() {
		return castle{}, false
	}
	king := board.Get(move.From)
	rook := board.Get(move.To)
	if king.Kind != chess.King || !rook.Is(chess.Rook, king.Colour) {
		return castle{}, false
	}
	return newCastle(move.From.Row, move.From.Col, move.To.Col), true
}

// appendCastlingMoves adds one king-onto-rook move per castling right
// colour can currently exercise.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	row := chess.HomeRow(colour)
	if from.Row != row {
		return moves
	}
	for _, right := range board.CastlingRights() {
		if !right.IsAllowed(colour) {
			continue
		}
		rookSq := chess.Sq(right.RookCol, row)
		if !board.Get(rookSq).Is(chess.Rook, colour) {
			continue
		}
		if canCastle(board, newCastle(row, from.Col, right.RookCol), colour) {
			moves = append(moves, chess.NewMove(from, rookSq))
		}
	}
	return moves
}

// canCastle checks that nothing stands strictly between the king and the
// rook, that both destination squares are empty or held by one of the two
// castling pieces, and that no square the king crosses, destination
// included, is attacked. Pieces beyond the rook may be jumped.
func canCastle(board *chess.Board, c castle, colour chess.Colour) bool {
	lo, hi := min(c.KingFrom, c.RookFrom), max(c.KingFrom, c.RookFrom)
	for col := lo + 1; col < hi; col++ {
		if !board.Get(chess.Sq(col, c.Row)).IsEmpty() {
			return false
		}
	}
	for _, col := range [...]int{c.KingTo, c.RookTo} {
		if col == c.KingFrom || col == c.RookFrom {
			continue
		}
		if !board.Get(chess.Sq(col, c.Row)).IsEmpty() {
			return false
		}
	}

	step := sign(c.KingTo - c.KingFrom)
	for col := c.KingFrom; ; col += step {
		if IsSquareAttacked(board, chess.Sq(col, c.Row), colour) {
			return false
		}
		if col == c.KingTo {
			break
		}
	}
	return true
}

// applyCastle relocates king and rook to their destination files and
// returns the squares they land on.
func applyCastle(board *chess.Board, c castle) (kingSq, rookSq chess.Square) {
	king := board.Get(chess.Sq(c.KingFrom, c.Row))
	rook := board.Get(chess.Sq(c.RookFrom, c.Row))
	board.Clear(chess.Sq(c.KingFrom, c.Row))
	board.Clear(chess.Sq(c.RookFrom, c.Row))
	kingSq = chess.Sq(c.KingTo, c.Row)
	rookSq = chess.Sq(c.RookTo, c.Row)
	board.Set(kingSq, king)
	board.Set(rookSq, rook)
	return kingSq, rookSq
}
