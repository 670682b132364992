package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendPawnMoves adds advances, double advances from the pawn row,
// diagonal captures and en passant captures.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	colour := board.Get(from).Colour
	front := chess.ColourOffset(colour)

	if to, ok := from.Offset(0, front); ok && board.Get(to).IsEmpty() {
		moves = appendPawnMove(moves, from, to, colour)
		if from.Row == chess.PawnRow(colour) {
			if to2, ok := from.Offset(0, 2*front); ok && board.Get(to2).IsEmpty() {
				moves = append(moves, chess.NewMove(from, to2))
			}
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		to, ok := from.Offset(dc, front)
		if !ok {
			continue
		}
		target := board.Get(to)
		if (!target.IsEmpty() && target.Colour != colour) || (board.EnPassant && to == board.EPSquare) {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}
	return moves
}

// appendPawnMove adds a single pawn move, expanded into one move per
// promotion kind when it reaches the opponent's back rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Row != chess.HomeRow(colour.Opposite()) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.NewPromotion(from, to, kind))
	}
	return moves
}

// appendDropMoves adds a drop of every reserve kind colour holds onto the
// empty square sq. Pawns cannot be dropped on either back rank.
func appendDropMoves(moves []chess.Move, board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Move {
	for _, kind := range chess.ReserveKinds {
		if board.Reserve(colour, kind) == 0 {
			continue
		}
		if kind == chess.Pawn && (sq.Row == 0 || sq.Row == chess.BoardSize-1) {
			continue
		}
		moves = append(moves, chess.NewDrop(kind, sq))
	}
	return moves
}
