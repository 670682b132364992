package engine

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RandomMove picks a legal move uniformly at random. It returns false when
// the side to move has no legal move.
func RandomMove(board *chess.Board, rng *rand.Rand) (chess.Move, bool) {
	moves := GenerateLegalMoves(board)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
