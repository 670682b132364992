package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestMustParseFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantToMov chess.Colour
	}{
		{"kiwipete", KiwipeteFEN, chess.White},
		{"endgame", EndgameFEN, chess.White},
		{"black to move", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParseFEN(t, tt.fen, false)
			AssertEqual(t, board.ToMove(), tt.wantToMov)
		})
	}
}

func TestMustParseMoves(t *testing.T) {
	moves := MustParseMoves(t, "e2e4", "e7e8q", "N@f3")
	AssertMoves(t, moves, "e2e4", "e7e8q", "N@f3")
	AssertTrue(t, moves[1].IsPromotion(), "e7e8q should promote")
	AssertTrue(t, moves[2].IsDrop(), "N@f3 should be a drop")
}

func TestMustPlay(t *testing.T) {
	game := MustPlay(t, "", false, "e2e4", "e7e5", "g1f3")
	AssertMoves(t, game.Moves(), "e2e4", "e7e5", "g1f3")
	AssertEqual(t, game.ToMove(), chess.Black)
	AssertEqual(t, game.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b AHah - 1 2")
}

func TestAssertMoves_NoMoves(t *testing.T) {
	board := MustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false)
	AssertMoves(t, engine.GenerateLegalMoves(board))
}
