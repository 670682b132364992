package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove performs move on board. The move must come from
// GenerateLegalMoves for this position; anything else may corrupt the board
// or panic with an *errors.InvariantError.
func ApplyMove(board *chess.Board, move chess.Move) {
	board.Highlights = nil
	mover := board.ToMove()

	if move.IsDrop() {
		applyDrop(board, move, mover)
		board.HalfmoveClock++
		board.HalfMoves++
		return
	}

	from, to := move.From, move.To
	fromPiece := board.Get(from)
	toPiece := board.Get(to)
	opponent := mover.Opposite()
	captured := !toPiece.IsEmpty() && toPiece.Colour != mover

	if fromPiece.Kind == chess.King {
		board.RevokeAllCastling(mover)
	}
	if fromPiece.Kind == chess.Rook && from.Row == chess.HomeRow(mover) {
		board.RevokeCastling(mover, from.Col)
	}

	if fromPiece.Kind == chess.Pawn && board.EnPassant && to == board.EPSquare {
		victim := chess.Sq(to.Col, from.Row)
		if board.Crazyhouse && !board.Get(victim).IsEmpty() {
			board.AddReserve(mover, chess.Pawn, 1)
		}
		board.Clear(victim)
	}

	board.EnPassant = false
	if fromPiece.Kind == chess.Pawn && abs(to.Row-from.Row) == 2 {
		board.EnPassant = true
		board.EPSquare = chess.Sq(from.Col, (from.Row+to.Row)/2)
	}

	if toPiece.Is(chess.Rook, opponent) && to.Row == chess.HomeRow(opponent) {
		board.RevokeCastling(opponent, to.Col)
	}

	if c, ok := decodeCastle(board, move); ok {
		kingSq, rookSq := applyCastle(board, c)
		board.Highlights = []chess.Square{from, to, kingSq, rookSq}
	} else {
		if board.Crazyhouse && captured {
			kind := toPiece.Kind
			if toPiece.Promoted {
				kind = chess.Pawn
			}
			board.AddReserve(mover, kind, 1)
		}
		if move.IsPromotion() {
			piece := chess.NewPiece(move.Promotion, mover)
			piece.Promoted = board.Crazyhouse
			board.Set(to, piece)
		} else {
			board.Set(to, fromPiece)
		}
		board.Clear(from)
		board.Highlights = []chess.Square{from, to}
	}

	if fromPiece.Kind == chess.Pawn || captured {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	board.HalfMoves++
}

// applyDrop places a reserve piece on an empty square.
func applyDrop(board *chess.Board, move chess.Move, mover chess.Colour) {
	if !board.Crazyhouse {
		errors.Invariant("drop %v applied outside crazyhouse", move)
	}
	board.AddReserve(mover, move.Kind, -1)
	board.Set(move.To, chess.NewPiece(move.Kind, mover))
	board.EnPassant = false
	board.Highlights = []chess.Square{move.To}
}
