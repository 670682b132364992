package worker

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDivide_MatchesSequential(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		crazyhouse bool
		depth      int
	}{
		{"initial", engine.InitialFEN, false, 3},
		{"kiwipete", testutil.KiwipeteFEN, false, 2},
		{"crazyhouse", "r1bqk2r/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/R1BQK2R/NBnb w AHah - 0 6", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustParseFEN(t, tt.fen, tt.crazyhouse)
			want := engine.Divide(board, tt.depth)

			for _, workers := range []int{1, 4} {
				got, err := Divide(board, tt.depth, workers)
				testutil.AssertNoError(t, err)
				testutil.AssertDiff(t, got, want)
				testutil.AssertEqual(t, Total(got), engine.Perft(board, tt.depth))
			}
			testutil.AssertEqual(t, engine.BoardToFEN(board), tt.fen)
		})
	}
}

func TestDivide_StartingPositionTotal(t *testing.T) {
	entries, err := Divide(engine.NewStandardBoard(false), 4, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 20)
	testutil.AssertEqual(t, Total(entries), uint64(197281))
}

func TestDivide_NoMoves(t *testing.T) {
	board := testutil.MustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false)
	for _, depth := range []int{0, 2} {
		entries, err := Divide(board, depth, 2)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(entries), 0)
	}
}

func TestPerftProcessFunc_RecoversInvariantPanic(t *testing.T) {
	board := engine.NewStandardBoard(false)
	result := PerftProcessFunc(WorkItem{
		Index: 3,
		Board: board,
		Move:  chess.NewDrop(chess.Queen, chess.Sq(4, 3)),
		Depth: 1,
	})
	testutil.AssertEqual(t, result.Index, 3)
	testutil.AssertError(t, result.Error)
}
