package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		colour chess.Colour // side whose square it is
		want   bool
	}{
		{"rook on file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a7", chess.Black, true},
		{"rook blocked", "4k3/8/8/8/P7/8/8/R3K3 w - - 0 1", "a7", chess.Black, false},
		{"rook not diagonal", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "b2", chess.Black, false},
		{"bishop on diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "h6", chess.Black, true},
		{"bishop not orthogonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c5", chess.Black, false},
		{"queen both ways", "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1", "g7", chess.Black, true},
		{"knight", "4k3/8/8/8/8/8/1N6/4K3 w - - 0 1", "c4", chess.Black, true},
		{"knight not adjacent", "4k3/8/8/8/8/8/1N6/4K3 w - - 0 1", "c3", chess.Black, false},
		{"king adjacent", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", chess.Black, true},
		{"king two away", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e3", chess.Black, false},
		{"white pawn attacks forward diagonal", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "d5", chess.Black, true},
		{"white pawn does not attack backward", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "d3", chess.Black, false},
		{"white pawn does not attack ahead", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "e5", chess.Black, false},
		{"black pawn attacks downward", "4k3/8/8/4p3/8/8/8/4K3 w - - 0 1", "f4", chess.White, true},
		{"black pawn does not attack upward", "4k3/8/8/4p3/8/8/8/4K3 w - - 0 1", "f6", chess.White, false},
		{"own pieces do not attack", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a5", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParseFEN(tt.fen, false)
			sq, err := chess.ParseSquare(tt.square)
			if err != nil {
				t.Fatal(err)
			}
			if got := IsSquareAttacked(board, sq, tt.colour); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b AHah - 0 4", chess.Black, true},
		{"rook blocked by own knight", "4k3/8/8/8/8/8/4n3/4R1K1 b - - 0 1", chess.Black, false},
		{"rook check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParseFEN(tt.fen, false)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_MissingKingPanics(t *testing.T) {
	board := chess.NewBoard(false)
	board.Set(chess.Sq(4, 0), chess.W(chess.King))
	defer func() {
		if _, ok := recover().(*errors.InvariantError); !ok {
			t.Error("expected an *errors.InvariantError panic")
		}
	}()
	IsInCheck(board, chess.Black)
}
