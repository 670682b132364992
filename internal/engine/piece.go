package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendRangeMoves walks from `from` in one direction for at most limit
// squares, adding moves to empty squares and a capture of the first enemy
// piece met.
func appendRangeMoves(moves []chess.Move, board *chess.Board, from chess.Square, limit int, dir [2]int) []chess.Move {
	colour := board.Get(from).Colour
	to := from
	for i := 0; i < limit; i++ {
		var ok bool
		to, ok = to.Offset(dir[0], dir[1])
		if !ok {
			return moves
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			moves = append(moves, chess.NewMove(from, to))
		}
		if !target.IsEmpty() {
			return moves
		}
	}
	return moves
}

// appendSlidingMoves adds the moves of a bishop, rook, queen or king.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, limit int, diagonal, straight bool) []chess.Move {
	if diagonal {
		for _, dir := range diagonalDirections {
			moves = appendRangeMoves(moves, board, from, limit, dir)
		}
	}
	if straight {
		for _, dir := range straightDirections {
			moves = appendRangeMoves(moves, board, from, limit, dir)
		}
	}
	return moves
}

// appendKnightMoves adds the knight jumps that do not land on own pieces.
func appendKnightMoves(moves []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	colour := board.Get(from).Colour
	for _, off := range knightOffsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if target := board.Get(to); !target.IsEmpty() && target.Colour == colour {
			continue
		}
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}
