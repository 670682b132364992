package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Positions shared across package tests.
const (
	// KiwipeteFEN has castling, en passant, promotions and pins within a few plies.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w AHah - 0 1"

	// EndgameFEN is a small rook and pawn ending with a discovered check trap.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

// MustParseFEN parses a position string, failing the test on error.
func MustParseFEN(t *testing.T, fen string, crazyhouse bool) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen, crazyhouse)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board
}

// MustParseMoves parses UCI move strings, failing the test on error.
func MustParseMoves(t *testing.T, uci ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(uci))
	for _, s := range uci {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("failed to parse move %q: %v", s, err)
		}
		moves = append(moves, m)
	}
	return moves
}

// MustPlay starts a game from fen (the standard position when empty) and
// plays the given UCI moves, failing the test if any is rejected.
func MustPlay(t *testing.T, fen string, crazyhouse bool, uci ...string) *engine.Game {
	t.Helper()
	game, err := engine.Replay(fen, crazyhouse, MustParseMoves(t, uci...))
	if err != nil {
		t.Fatalf("failed to replay %v: %v", uci, err)
	}
	return game
}

// AssertMoves compares moves with the expected UCI strings, in order.
func AssertMoves(t *testing.T, got []chess.Move, want ...string) {
	t.Helper()
	uci := make([]string, len(got))
	for i, m := range got {
		uci[i] = m.String()
	}
	if want == nil {
		want = []string{}
	}
	AssertEqual(t, uci, want)
}
