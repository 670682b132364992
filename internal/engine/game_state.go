package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove()) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove()) && !HasLegalMoves(board)
}
