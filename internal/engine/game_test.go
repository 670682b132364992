package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func parseMoves(t *testing.T, uci ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, len(uci))
	for i, s := range uci {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		moves[i] = m
	}
	return moves
}

func playAll(t *testing.T, g *Game, uci ...string) []string {
	t.Helper()
	var sans []string
	for _, m := range parseMoves(t, uci...) {
		san, _, err := g.ApplyMove(m)
		if err != nil {
			t.Fatalf("ApplyMove(%v): %v", m, err)
		}
		sans = append(sans, san)
	}
	return sans
}

func TestGame_ApplyMove(t *testing.T) {
	g := NewGame(0, false)
	san, fen, err := g.ApplyMove(chess.MustParseMove("e2e4"))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if san != "e4" {
		t.Errorf("san = %q, want e4", san)
	}
	if want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b AHah e3 0 1"; fen != want {
		t.Errorf("fen = %q, want %q", fen, want)
	}
	if fen != g.FEN() {
		t.Errorf("returned fen %q differs from FEN() %q", fen, g.FEN())
	}
	if g.ToMove() != chess.Black {
		t.Errorf("ToMove() = %v, want Black", g.ToMove())
	}
	if diff := cmp.Diff([]chess.Square{chess.Sq(4, 1), chess.Sq(4, 3)}, g.Highlights()); diff != "" {
		t.Errorf("highlights mismatch (-want +got):\n%s", diff)
	}
	if g.Result() != chess.Undecided {
		t.Errorf("Result() = %v, want Undecided", g.Result())
	}
}

func TestGame_IllegalMove(t *testing.T) {
	g := NewGame(0, false)
	_, _, err := g.ApplyMove(chess.MustParseMove("e2e5"))
	if !errors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}
	if !strings.Contains(err.Error(), "e2e5") {
		t.Errorf("error %q does not name the move", err)
	}
	if g.FEN() != InitialFEN {
		t.Errorf("board changed after illegal move: %q", g.FEN())
	}
	if len(g.History()) != 1 || len(g.Moves()) != 0 {
		t.Errorf("history grew after illegal move: %d keys, %d moves", len(g.History()), len(g.Moves()))
	}
}

func TestGame_Result(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		opts  []GameOption
		moves []string
		want  chess.Result
	}{
		{
			name:  "fool's mate",
			fen:   InitialFEN,
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want:  chess.BlackWins,
		},
		{
			name:  "scholar's mate",
			fen:   InitialFEN,
			moves: []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"},
			want:  chess.WhiteWins,
		},
		{
			name: "stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: chess.Stalemate,
		},
		{
			name:  "stalemate after a move",
			fen:   "7k/8/5QK1/8/8/8/8/8 w - - 0 1",
			moves: []string{"f6f7"},
			want:  chess.Stalemate,
		},
		{
			name:  "threefold repetition",
			fen:   InitialFEN,
			moves: []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"},
			want:  chess.Repetition,
		},
		{
			name:  "twofold is not enough",
			fen:   InitialFEN,
			moves: []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1"},
			want:  chess.Undecided,
		},
		{
			name: "insufficient material",
			fen:  "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1",
			want: chess.InsufficientMaterial,
		},
		{
			name:  "insufficient material after capture",
			fen:   "4k3/8/8/8/8/8/3r4/2B1K3 w - - 0 1",
			moves: []string{"e1d2"},
			want:  chess.InsufficientMaterial,
		},
		{
			name:  "fifty moves without progress",
			fen:   "4k3/8/8/8/8/8/8/R3K3 w - - 99 80",
			moves: []string{"a1a2"},
			want:  chess.FiftyMove,
		},
		{
			name:  "repetition takes precedence over the fifty-move rule",
			fen:   "4k1n1/8/8/8/8/8/8/R3K1N1 w - - 92 60",
			moves: []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"},
			want:  chess.Repetition,
		},
		{
			name:  "pawn move resets the clock",
			fen:   "4k3/8/8/8/8/8/P7/4K3 w - - 99 80",
			moves: []string{"a2a3"},
			want:  chess.Undecided,
		},
		{
			name:  "move cap",
			fen:   InitialFEN,
			opts:  []GameOption{WithMaxMoves(2)},
			moves: []string{"e2e4", "e7e5", "d2d4", "d7d5"},
			want:  chess.ForcedDraw,
		},
		{
			name:  "below the move cap",
			fen:   InitialFEN,
			opts:  []GameOption{WithMaxMoves(2)},
			moves: []string{"e2e4", "e7e5", "d2d4"},
			want:  chess.Undecided,
		},
		{
			name:  "crazyhouse bare kings play on",
			fen:   "4k3/8/8/8/8/8/8/4K3/ w - - 0 1",
			moves: []string{"e1d1"},
			want:  chess.Undecided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crazyhouse := strings.Count(tt.fen, "/") == 8
			g, err := NewGameFromFEN(tt.fen, crazyhouse, tt.opts...)
			if err != nil {
				t.Fatalf("NewGameFromFEN: %v", err)
			}
			playAll(t, g, tt.moves...)
			if got := g.Result(); got != tt.want {
				t.Errorf("Result() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGame_RepetitionDetectedAtExactPly(t *testing.T) {
	g := NewGame(0, false)
	shuffle := parseMoves(t, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8")
	for i, m := range shuffle {
		if got := g.Result(); got != chess.Undecided {
			t.Fatalf("before ply %d: Result() = %v", i+1, got)
		}
		if _, _, err := g.ApplyMove(m); err != nil {
			t.Fatalf("ply %d: %v", i+1, err)
		}
	}
	if got := g.Result(); got != chess.Repetition {
		t.Errorf("Result() = %v, want Repetition", got)
	}
}

func TestGame_MateReportedInSAN(t *testing.T) {
	g := NewGame(0, false)
	sans := playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if diff := cmp.Diff([]string{"f3", "e5", "g4", "Qh4#"}, sans); diff != "" {
		t.Errorf("san mismatch (-want +got):\n%s", diff)
	}
	if winner, ok := g.Result().Winner(); !ok || winner != chess.Black {
		t.Errorf("Winner() = %v, %v; want Black", winner, ok)
	}
}

func TestGame_NoMovesAfterDecision(t *testing.T) {
	g := NewGame(0, false)
	playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	_, _, err := g.ApplyMove(chess.MustParseMove("e1f2"))
	if !errors.Is(err, errors.ErrGameOver) {
		t.Errorf("err = %v, want ErrGameOver", err)
	}
}

func TestGame_ResignAndDraw(t *testing.T) {
	tests := []struct {
		name   string
		end    func(*Game)
		want   chess.Result
		score  string
		status string
	}{
		{"white resigns", func(g *Game) { g.Resign(chess.White) }, chess.WhiteResigns, "0-1", "White resigned."},
		{"black resigns", func(g *Game) { g.Resign(chess.Black) }, chess.BlackResigns, "1-0", "Black resigned."},
		{"agreed draw", (*Game).AgreeDraw, chess.DrawByAgreement, "1/2-1/2", "Draw by agreement."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(0, false)
			playAll(t, g, "e2e4")
			tt.end(g)
			got := g.Result()
			if got != tt.want {
				t.Fatalf("Result() = %v, want %v", got, tt.want)
			}
			if got.Score() != tt.score || got.Status() != tt.status {
				t.Errorf("Score(), Status() = %q, %q; want %q, %q", got.Score(), got.Status(), tt.score, tt.status)
			}
			if _, _, err := g.ApplyMove(chess.MustParseMove("e7e5")); !errors.Is(err, errors.ErrGameOver) {
				t.Errorf("ApplyMove after %v: err = %v, want ErrGameOver", got, err)
			}
		})
	}
}

func TestGame_SetResultIgnoresUndecided(t *testing.T) {
	g := NewGame(0, false)
	g.Resign(chess.White)
	g.SetResult(chess.Undecided)
	if got := g.Result(); got != chess.WhiteResigns {
		t.Errorf("Result() = %v, want WhiteResigns", got)
	}
}

func TestReplay(t *testing.T) {
	moves := parseMoves(t, "e2e4", "e7e5", "g1f3")
	g, err := Replay("", false, moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if g.StartFEN() != InitialFEN {
		t.Errorf("StartFEN() = %q", g.StartFEN())
	}
	if want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b AHah - 1 2"; g.FEN() != want {
		t.Errorf("FEN() = %q, want %q", g.FEN(), want)
	}
	if diff := cmp.Diff(moves, g.Moves()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	history := g.History()
	if len(history) != 4 {
		t.Fatalf("History() has %d keys, want 4", len(history))
	}
	if history[0] != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w AHah -" {
		t.Errorf("History()[0] = %q", history[0])
	}
}

func TestReplay_Errors(t *testing.T) {
	t.Run("illegal move names the ply", func(t *testing.T) {
		g, err := Replay("", false, parseMoves(t, "e2e4", "e2e4"))
		if !errors.Is(err, errors.ErrIllegalMove) {
			t.Fatalf("err = %v, want ErrIllegalMove", err)
		}
		if !strings.Contains(err.Error(), "ply 2") {
			t.Errorf("error %q does not name the ply", err)
		}
		if g == nil || len(g.Moves()) != 1 {
			t.Errorf("game should hold the moves played before the error")
		}
	})
	t.Run("invalid position", func(t *testing.T) {
		_, err := Replay("not a position", false, nil)
		if !errors.Is(err, errors.ErrInvalidFEN) {
			t.Errorf("err = %v, want ErrInvalidFEN", err)
		}
	})
}

func TestGame_BoardIsACopy(t *testing.T) {
	g := NewGame(0, false)
	b := g.Board()
	b.Clear(chess.Sq(4, 1))
	if g.FEN() != InitialFEN {
		t.Errorf("mutating Board() changed the game: %q", g.FEN())
	}
}

func TestGame_Chess960Setup(t *testing.T) {
	g := NewGame(518, false, WithMaxMoves(60))
	if g.MaxMoves() != 60 {
		t.Errorf("MaxMoves() = %d, want 60", g.MaxMoves())
	}
	if g.StartFEN() != g.FEN() {
		t.Errorf("StartFEN() %q differs from FEN() %q before any move", g.StartFEN(), g.FEN())
	}
	if len(g.LegalMoves()) == 0 {
		t.Error("no legal moves in a starting position")
	}
}

// TestGame_RandomPlayTerminates plays random games until they end and checks
// that every game reaches a decided result within the move cap.
func TestGame_RandomPlayTerminates(t *testing.T) {
	rng := newTestRand(11)
	for seed := int64(0); seed < 10; seed++ {
		g := NewGame(seed, seed%2 == 1, WithMaxMoves(60))
		for !g.Result().IsDecided() {
			move, ok := RandomMove(g.Board(), rng)
			if !ok {
				t.Fatalf("seed %d: no moves but result undecided in %s", seed, g.FEN())
			}
			if _, _, err := g.ApplyMove(move); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}
		if len(g.Moves()) > 2*60 {
			t.Errorf("seed %d: %d plies exceed the move cap", seed, len(g.Moves()))
		}
	}
}
