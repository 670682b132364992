package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasSufficientMaterial reports whether either side could still deliver
// checkmate. It is always true under crazyhouse, where captured pieces can
// be dropped back.
//
// Any pawn, rook or queen is enough. Otherwise the first minor piece found
// is kept and every further minor piece is compared against it: only a
// bishop of the other colour standing on the same square colour is not
// enough to mate with. A lone minor piece, or none, is never enough.
func HasSufficientMaterial(board *chess.Board) bool {
	if board.Crazyhouse {
		return true
	}

	var first chess.Piece
	var firstSq chess.Square
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			sq := chess.Sq(col, row)
			piece := board.Get(sq)
			switch piece.Kind {
			case chess.NoPiece, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return true
			}

			if first.IsEmpty() {
				first, firstSq = piece, sq
				continue
			}
			if first.Kind == chess.Bishop && piece.Kind == chess.Bishop &&
				first.Colour != piece.Colour && firstSq.IsLight() == sq.IsLight() {
				continue
			}
			return true
		}
	}
	return false
}
