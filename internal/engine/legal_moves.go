package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateLegalMoves returns every legal move for the side to move.
//
// Moves are produced square by square, file a first and rank 1 first within
// a file. Castling is encoded as the king moving onto its own rook.
func GenerateLegalMoves(board *chess.Board) []chess.Move {
	pseudo := generatePseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if isLegal(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range generatePseudoLegalMoves(board) {
		if isLegal(board, move) {
			return true
		}
	}
	return false
}

// IsLegalMove reports whether move is in the legal set of board.
func IsLegalMove(board *chess.Board, move chess.Move) bool {
	for _, m := range GenerateLegalMoves(board) {
		if m == move {
			return true
		}
	}
	return false
}

// isLegal applies move to a copy of board and checks the mover's king is
// not left attacked.
func isLegal(board *chess.Board, move chess.Move) bool {
	mover := board.ToMove()
	next := *board
	ApplyMove(&next, move)
	return !IsInCheck(&next, mover)
}

// generatePseudoLegalMoves returns the moves of the side to move without
// checking whether they leave its own king attacked. Castling is the
// exception: its path is fully validated here.
func generatePseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove()
	moves := make([]chess.Move, 0, 64)

	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			sq := chess.Sq(col, row)
			piece := board.Get(sq)
			if piece.IsEmpty() {
				if board.Crazyhouse {
					moves = appendDropMoves(moves, board, sq, colour)
				}
				continue
			}
			if piece.Colour != colour {
				continue
			}

			switch piece.Kind {
			case chess.Pawn:
				moves = appendPawnMoves(moves, board, sq)
			case chess.Knight:
				moves = appendKnightMoves(moves, board, sq)
			case chess.Bishop:
				moves = appendSlidingMoves(moves, board, sq, chess.BoardSize, true, false)
			case chess.Rook:
				moves = appendSlidingMoves(moves, board, sq, chess.BoardSize, false, true)
			case chess.Queen:
				moves = appendSlidingMoves(moves, board, sq, chess.BoardSize, true, true)
			case chess.King:
				moves = appendSlidingMoves(moves, board, sq, 1, true, true)
				moves = appendCastlingMoves(moves, board, sq, colour)
			}
		}
	}
	return moves
}
