// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the position string of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w AHah - 0 1"

var standardBackRank = [chess.BoardSize]chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewStartingBoard creates the initial board of a game. Seed 0 selects the
// standard setup; any other seed selects a randomized back rank.
func NewStartingBoard(seed int64, crazyhouse bool) *chess.Board {
	if seed == 0 {
		return NewStandardBoard(crazyhouse)
	}
	return NewChess960Board(seed, crazyhouse)
}

// NewStandardBoard creates a board with the standard starting position.
func NewStandardBoard(crazyhouse bool) *chess.Board {
	board := chess.NewBoard(crazyhouse)
	row := chess.HomeRow(chess.White)
	for col, kind := range standardBackRank {
		board.Set(chess.Sq(col, row), chess.W(kind))
	}
	completeSetup(board)
	return board
}

// NewChess960Board creates a board whose back rank is drawn from seed.
//
// The draws happen in a fixed order so a seed always yields the same
// arrangement: a bishop on one of the four even files, a bishop on one of
// the four odd files, the queen on one of the six empty files, the knights
// on one of five then four empty files, and finally rook, king, rook on the
// three files left, from left to right.
func NewChess960Board(seed int64, crazyhouse bool) *chess.Board {
	board := chess.NewBoard(crazyhouse)
	row := chess.HomeRow(chess.White)
	rng := newSeededRandom(seed)

	board.Set(chess.Sq(int(rng.Intn(4))*2, row), chess.W(chess.Bishop))
	board.Set(chess.Sq(int(rng.Intn(4))*2+1, row), chess.W(chess.Bishop))
	placeOnEmpty(board, row, int(rng.Intn(6)), chess.Queen)
	placeOnEmpty(board, row, int(rng.Intn(5)), chess.Knight)
	placeOnEmpty(board, row, int(rng.Intn(4)), chess.Knight)
	placeOnEmpty(board, row, 0, chess.Rook)
	placeOnEmpty(board, row, 0, chess.King)
	placeOnEmpty(board, row, 0, chess.Rook)

	completeSetup(board)
	return board
}

// placeOnEmpty puts a white piece on the index-th empty square of row,
// counting empty squares from the a-file.
func placeOnEmpty(board *chess.Board, row, index int, kind chess.PieceKind) {
	for col := 0; col < chess.BoardSize; col++ {
		sq := chess.Sq(col, row)
		if !board.Get(sq).IsEmpty() {
			continue
		}
		if index == 0 {
			board.Set(sq, chess.W(kind))
			return
		}
		index--
	}
	errors.Invariant("no empty square left for %v", kind)
}

// completeSetup mirrors White's back rank onto Black's, adds both pawn
// rows and records a castling right for each rook.
func completeSetup(board *chess.Board) {
	whiteRow := chess.HomeRow(chess.White)
	blackRow := chess.HomeRow(chess.Black)
	for col := 0; col < chess.BoardSize; col++ {
		piece := board.Get(chess.Sq(col, whiteRow))
		board.Set(chess.Sq(col, blackRow), piece.Invert())
		board.Set(chess.Sq(col, chess.PawnRow(chess.White)), chess.W(chess.Pawn))
		board.Set(chess.Sq(col, chess.PawnRow(chess.Black)), chess.B(chess.Pawn))
		if piece.Kind == chess.Rook {
			board.AddCastling(chess.NewCastlingRight(col, true))
		}
	}
}
