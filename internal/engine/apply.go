package engine

import (
	"github.com/lgbarn/varboard-go/internal/chess"
)

// MakeMove applies m, which must be pseudo-legal in the current position,
// and pushes the undo information onto the history. When tr is not nil it
// is reset and filled with the visible changes of the move.
//
// A null move or a board without a side to move is a programming error and
// panics.
func (b *Board) MakeMove(m chess.Move, tr *Transition) {
	if m.IsNull() {
		panic("engine: MakeMove with null move")
	}
	if b.side == chess.NoSide {
		panic("engine: MakeMove on uninitialised board")
	}

	moved := chess.NoPiece
	if !m.IsDrop() {
		moved = b.squares[m.Source]
	}
	b.history = append(b.history, historyEntry{
		move:       m,
		moved:      moved,
		castling:   b.castling,
		epSquare:   b.epSquare,
		reversible: b.reversible,
		key:        b.key,
		aux:        b.aux,
	})

	if tr != nil {
		tr.Reset()
		tr.Move = m
	}
	b.tr = tr
	b.reversible++
	captured := b.v.Movement.Apply(b, m)
	b.tr = nil

	b.history[len(b.history)-1].captured = captured
	b.side = b.side.Opposite()
	b.key ^= b.keys.Side()
}

// UndoMove takes back the most recent move. It panics when there is no move
// to take back.
func (b *Board) UndoMove() {
	n := len(b.history)
	if n == 0 {
		panic("engine: UndoMove with empty history")
	}
	e := b.history[n-1]
	b.history = b.history[:n-1]

	b.side = b.side.Opposite()
	b.castling = e.castling
	b.epSquare = e.epSquare
	b.reversible = e.reversible
	b.aux = e.aux
	b.v.Movement.Revert(b, e.move, e.moved, e.captured)
	b.key = e.key
}

// WithMove applies m, runs fn on the resulting position and takes m back
// before returning fn's answer, even if fn panics.
func (b *Board) WithMove(m chess.Move, fn func() bool) bool {
	b.MakeMove(m, nil)
	defer b.UndoMove()
	return fn()
}

// RepeatCount returns how many earlier positions within the reversible part
// of the game equal the current one.
func (b *Board) RepeatCount() int {
	n := len(b.history)
	limit := n - b.reversible
	if limit < 0 {
		limit = 0
	}
	count := 0
	for i := n - 2; i >= limit; i -= 2 {
		if b.history[i].key == b.key {
			count++
		}
	}
	return count
}

// IsRepetition reports whether the current position has occurred often
// enough to draw under the variant's n-fold rule.
func (b *Board) IsRepetition() bool {
	return b.v.NFold > 0 && b.RepeatCount()+1 >= b.v.NFold
}
