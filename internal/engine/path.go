package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// lineDelta returns the mailbox step from one square towards another on
// the same file, rank or diagonal, or 0 if they share no line.
func (b *Board) lineDelta(from, to int) int {
	df := b.fileOf(to) - b.fileOf(from)
	dr := b.rankOf(to) - b.rankOf(from)
	if from == to || (df != 0 && dr != 0 && abs(df) != abs(dr)) {
		return 0
	}
	return b.delta(offset{sign(df), sign(dr)}, chess.White)
}

// isClearBetween checks that every square strictly between from and to on
// their common line is empty.
func (b *Board) isClearBetween(from, to int) bool {
	d := b.lineDelta(from, to)
	if d == 0 {
		return false
	}
	for sq := from + d; sq != to; sq += d {
		if !b.squares[sq].IsEmpty() {
			return false
		}
	}
	return true
}

// countBetween returns the number of occupied squares strictly between from
// and to on their common line, or -1 if they share no line.
func (b *Board) countBetween(from, to int) int {
	d := b.lineDelta(from, to)
	if d == 0 {
		return -1
	}
	n := 0
	for sq := from + d; sq != to; sq += d {
		if !b.squares[sq].IsEmpty() {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign is -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
