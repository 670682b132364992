package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// perftCases are leaf counts for positions chosen to stress castling,
// en passant, promotions and discovered checks.
var perftCases = []struct {
	fen   string
	depth int
	nodes uint64
}{
	{"r6r/1b2k1bq/8/8/7B/8/8/R3K2R b AH - 3 2", 1, 8},
	{"8/8/8/2k5/2pP4/8/B7/4K3 b - d3 5 3", 1, 8},
	{"r1bqkbnr/pppppppp/n7/8/8/P7/1PPPPPPP/RNBQKBNR w AHah - 2 2", 1, 19},
	{"r3k2r/p1pp1pb1/bn2Qnp1/2qPN3/1p2P3/2N5/PPPBBPPP/R3K2R b AHah - 3 2", 1, 5},
	{"2kr3r/p1ppqpb1/bn2Qnp1/3PN3/1p2P3/2N5/PPPBBPPP/R3K2R b AH - 3 2", 1, 44},
	{"rnb2k1r/pp1Pbppp/2p5/q7/2B5/8/PPPQNnPP/RNB1K2R w AH - 3 9", 1, 39},
	{"2r5/3pk3/8/2P5/8/2K5/8/8 w - - 5 4", 1, 9},
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w AH - 1 8", 3, 62379},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},
	{"3k4/3p4/8/K1P4r/8/8/8/8 b - - 0 1", 6, 1134888},
	{"8/8/4k3/8/2p5/8/B2P2K1/8 w - - 0 1", 6, 1015133},
	{"8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", 6, 1440467},
	{"5k2/8/8/8/8/8/8/4K2R w H - 0 1", 6, 661072},
	{"3k4/8/8/8/8/8/8/R3K3 w A - 0 1", 6, 803711},
	{"r3k2r/1b4bq/8/8/8/8/7B/R3K2R w AHah - 0 1", 4, 1274206},
	{"r3k2r/8/3Q4/8/8/5q2/8/R3K2R b AHah - 0 1", 4, 1720476},
	{"2K2r2/4P3/8/8/8/8/8/3k4 w - - 0 1", 6, 3821001},
	{"8/8/1P2K3/8/2n5/1q6/8/5k2 b - - 0 1", 5, 1004658},
	{"4k3/1P6/8/8/8/8/K7/8 w - - 0 1", 6, 217342},
	{"8/P1k5/K7/8/8/8/8/8 w - - 0 1", 6, 92683},
	{"K1k5/8/P7/8/8/8/8/8 w - - 0 1", 6, 2217},
	{"8/k1P5/8/1K6/8/8/8/8 w - - 0 1", 7, 567584},
	{"8/8/2k5/5q2/5n2/8/5K2/8 b - - 0 1", 4, 23527},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftCases {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			if testing.Short() && tt.nodes > 100000 {
				t.Skip("deep perft skipped in short mode")
			}
			t.Parallel()
			board := MustParseFEN(tt.fen, false)
			if got := Perft(board, tt.depth); got != tt.nodes {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.nodes)
			}
		})
	}
}

func TestPerft_StartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}
	board := NewStandardBoard(false)
	for depth, nodes := range want {
		if testing.Short() && depth > 3 {
			break
		}
		if got := Perft(board, depth); got != nodes {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, nodes)
		}
	}
}

func TestPerft_DoesNotMutateBoard(t *testing.T) {
	board := MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w AHah - 0 1", false)
	before := BoardToFEN(board)
	Perft(board, 2)
	if after := BoardToFEN(board); after != before {
		t.Errorf("board changed during perft: %q -> %q", before, after)
	}
}

func TestDivide(t *testing.T) {
	board := MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w AHah - 0 1", false)
	entries := Divide(board, 2)
	if len(entries) != 48 {
		t.Fatalf("Divide returned %d root moves, want 48", len(entries))
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	if total != 2039 {
		t.Errorf("Divide total = %d, want 2039", total)
	}
}

// dragontoothPerft counts leaves with an independent bitboard generator.
func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// TestPerft_MatchesDragontooth cross-checks standard positions against
// dragontoothmg. Both parsers read KQkq castling letters.
func TestPerft_MatchesDragontooth(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	depth := 3
	if testing.Short() {
		depth = 2
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			oracle := dragontoothmg.ParseFen(fen)
			want := dragontoothPerft(&oracle, depth)
			got := Perft(MustParseFEN(fen, false), depth)
			if got != want {
				t.Errorf("Perft(%d) = %d, dragontoothmg = %d", depth, got, want)
			}
		})
	}
}
