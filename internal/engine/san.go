package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveToSAN renders a legal move in algebraic notation. It must be called on
// the position before the move is made.
func MoveToSAN(board *chess.Board, move chess.Move) string {
	var sb strings.Builder

	switch c, castling := decodeCastle(board, move); {
	case move.IsDrop():
		sb.WriteByte(move.Kind.Letter())
		sb.WriteByte('@')
		sb.WriteString(move.To.String())
	case castling:
		sb.WriteString(c.Side.String())
	default:
		writeSANBody(&sb, board, move)
	}

	next := *board
	ApplyMove(&next, move)
	if IsInCheck(&next, next.ToMove()) {
		if HasLegalMoves(&next) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}

	return sb.String()
}

// writeSANBody writes a normal move: piece letter, disambiguation, capture
// marker, destination and promotion.
func writeSANBody(sb *strings.Builder, board *chess.Board, move chess.Move) {
	piece := board.Get(move.From)
	target := board.Get(move.To)
	takes := !target.IsEmpty() || (piece.Kind == chess.Pawn && move.From.Col != move.To.Col)

	if piece.Kind != chess.Pawn {
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(board, move, piece.Kind))
	} else if takes {
		sb.WriteByte(chess.ColToChar(move.From.Col))
	}
	if takes {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())

	if move.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}
}

// disambiguation returns the origin file, rank or square needed to tell
// move apart from other legal moves of the same piece kind to the same
// square. The file is preferred, then the rank.
func disambiguation(board *chess.Board, move chess.Move, kind chess.PieceKind) string {
	var rivals []chess.Square
	for _, m := range GenerateLegalMoves(board) {
		if m.IsDrop() || m.To != move.To || m.From == move.From {
			continue
		}
		if board.Get(m.From).Kind == kind {
			rivals = append(rivals, m.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.Col == move.From.Col
		sameRank = sameRank || sq.Row == move.From.Row
	}
	switch {
	case !sameFile:
		return string(chess.ColToChar(move.From.Col))
	case !sameRank:
		return string(chess.RowToChar(move.From.Row))
	}
	return move.From.String()
}
