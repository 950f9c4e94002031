package engine

import (
	"sort"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Positions where the game has ended are still expanded; only the rules of
// movement decide the count.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m, nil)
		nodes += b.Perft(depth - 1)
		b.UndoMove()
	}
	return nodes
}

// DivideEntry is the subtree size below one root move.
type DivideEntry struct {
	Move  chess.Move
	LAN   string
	Nodes uint64
}

// PerftDivide returns the perft count below each legal root move, sorted by
// LAN.
func (b *Board) PerftDivide(depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := b.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		e := DivideEntry{Move: m, LAN: b.LANMoveString(m)}
		b.MakeMove(m, nil)
		e.Nodes = b.Perft(depth - 1)
		b.UndoMove()
		entries = append(entries, e)
	}
	SortDivide(entries)
	return entries
}

// SortDivide orders divide entries by LAN.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].LAN < entries[j].LAN })
}

// DivideTotal sums the node counts of a divide.
func DivideTotal(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
