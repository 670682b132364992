package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// The eight ray directions from a square, orthogonal and diagonal.
var kingDirections = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var knightOffsets = [8][2]int{
	{-1, -2}, {1, -2}, {-2, -1}, {2, -1}, {-2, 1}, {2, 1}, {-1, 2}, {1, 2},
}

var (
	diagonalDirections = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirections = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A missing king is an invariant violation and panics.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, board.FindKing(colour), colour)
}

// IsSquareAttacked returns true if target is attacked by a piece of the
// side opposing colour.
//
// Each ray is walked outward until the first occupied square; only that
// piece can attack along the ray. Knights are tested separately.
func IsSquareAttacked(board *chess.Board, target chess.Square, colour chess.Colour) bool {
	for _, dir := range kingDirections {
		diagonal := dir[0] != 0 && dir[1] != 0
		sq := target
		for dist := 1; ; dist++ {
			var ok bool
			sq, ok = sq.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			piece := board.Get(sq)
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour != colour && attacksAlongRay(piece, diagonal, dist, target.Row-sq.Row) {
				return true
			}
			break
		}
	}

	for _, off := range knightOffsets {
		sq, ok := target.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if piece := board.Get(sq); piece.Kind == chess.Knight && piece.Colour != colour {
			return true
		}
	}

	return false
}

// attacksAlongRay reports whether piece, the first piece met on a ray of
// length dist, attacks the ray's origin. rowDelta is origin row minus the
// piece's row.
func attacksAlongRay(piece chess.Piece, diagonal bool, dist, rowDelta int) bool {
	switch piece.Kind {
	case chess.Queen:
		return true
	case chess.Rook:
		return !diagonal
	case chess.Bishop:
		return diagonal
	case chess.King:
		return dist == 1
	case chess.Pawn:
		return diagonal && dist == 1 && rowDelta == chess.ColourOffset(piece.Colour)
	}
	return false
}
