package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf positions reachable from board in exactly depth
// legal moves. Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		next := *board
		ApplyMove(&next, move)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, in generation
// order. A depth below 1 has no root moves to divide.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := GenerateLegalMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		next := *board
		ApplyMove(&next, move)
		entries = append(entries, DivideEntry{Move: move, Nodes: Perft(&next, depth-1)})
	}
	return entries
}
