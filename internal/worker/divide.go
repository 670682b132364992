package worker

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PerftProcessFunc counts the leaf positions below a work item's move.
func PerftProcessFunc(item WorkItem) (result ProcessResult) {
	result = ProcessResult{Index: item.Index, Move: item.Move}
	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("perft below %v: %v", item.Move, r)
		}
	}()

	next := item.Board.Copy()
	engine.ApplyMove(next, item.Move)
	result.Nodes = engine.Perft(next, item.Depth)
	return result
}

// Divide counts leaf positions depth plies below every legal root move,
// spreading the root moves over workers. Entries come back in move
// generation order, matching engine.Divide.
func Divide(board *chess.Board, depth, workers int) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := engine.GenerateLegalMoves(board)
	if len(moves) == 0 {
		return nil, nil
	}

	pool := NewPool(PerftProcessFunc,
		WithWorkers(workers),
		WithQueueSize(len(moves)),
	)
	pool.Start()

	root := board.Copy()
	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{Index: i, Board: root, Move: m, Depth: depth - 1})
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
				pool.Stop()
			}
			continue
		}
		entries[result.Index] = engine.DivideEntry{Move: result.Move, Nodes: result.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}

// Total sums the node counts of a divide.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
