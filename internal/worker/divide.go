package worker

import (
	"fmt"

	"github.com/lgbarn/varboard-go/internal/engine"
)

// PerftFunc counts the leaf nodes below an item's move. The board is left
// as it was found.
func PerftFunc(item WorkItem) (res ProcessResult) {
	res = ProcessResult{Index: item.Index, Move: item.Move}
	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Errorf("subtree %d: %v", item.Index, r)
		}
	}()
	item.Board.MakeMove(item.Move, nil)
	res.Nodes = item.Board.Perft(item.Depth)
	item.Board.UndoMove()
	return res
}

// Divide is engine.Board.PerftDivide spread over workers goroutines. Each
// root move is counted on a clone of b; the clones share b's key table. The
// entries come back sorted by LAN and b is not modified.
func Divide(b *engine.Board, depth, workers int) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := b.LegalMoves()
	entries := make([]engine.DivideEntry, len(moves))
	for i, m := range moves {
		entries[i] = engine.DivideEntry{Move: m, LAN: b.LANMoveString(m)}
	}

	pool := NewPool(PerftFunc, WithWorkers(workers), WithBufferSize(len(moves)+1))
	pool.Start()
	go func() {
		for i, m := range moves {
			if !pool.Submit(WorkItem{Board: b.Clone(), Move: m, Depth: depth - 1, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
			}
			pool.Stop()
			continue
		}
		entries[res.Index].Nodes = res.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	engine.SortDivide(entries)
	return entries, nil
}
