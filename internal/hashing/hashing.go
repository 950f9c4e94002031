// Package hashing provides Zobrist key tables for position hashing.
//
// A Table is filled once from a deterministic pseudo-random stream and never
// modified afterwards, so a single table may be shared by any number of
// boards running on different goroutines.
package hashing

import (
	"golang.org/x/exp/rand"
)

// DefaultSeed seeds the key stream when callers have no preference.
const DefaultSeed uint64 = 0x9E3779B97F4A7C15

// MaxChecks bounds the remaining-check counters that can be keyed.
const MaxChecks = 16

// Table holds the random keys for one board geometry.
type Table struct {
	numTypes     int
	numSquares   int
	reserveSlots int

	side      uint64
	pieces    []uint64 // [type][side][square]
	castling  [2][]uint64
	gates     [2][]uint64
	enPassant []uint64
	reserve   []uint64 // [type][side][slot]
	checks    [2][MaxChecks + 1]uint64
}

// NewTable creates a key table for numTypes piece types on a mailbox of
// numSquares cells, with reserveSlots keyed slots per reserve piece.
func NewTable(seed uint64, numTypes, numSquares, reserveSlots int) *Table {
	rng := rand.New(rand.NewSource(seed))
	next := func() uint64 {
		// Zero keys would make a feature invisible to the hash.
		for {
			if k := rng.Uint64(); k != 0 {
				return k
			}
		}
	}
	fill := func(n int) []uint64 {
		keys := make([]uint64, n)
		for i := range keys {
			keys[i] = next()
		}
		return keys
	}

	t := &Table{
		numTypes:     numTypes,
		numSquares:   numSquares,
		reserveSlots: reserveSlots,
	}
	t.side = next()
	t.pieces = fill(numTypes * 2 * numSquares)
	for s := 0; s < 2; s++ {
		t.castling[s] = fill(numSquares)
		t.gates[s] = fill(numSquares)
		for n := range t.checks[s] {
			t.checks[s][n] = next()
		}
	}
	t.enPassant = fill(numSquares)
	t.reserve = fill(numTypes * 2 * reserveSlots)
	return t
}

// Side returns the key toggled when the side to move changes.
func (t *Table) Side() uint64 {
	return t.side
}

// Piece returns the key of a piece of type pieceType and side on square.
func (t *Table) Piece(pieceType, side, square int) uint64 {
	return t.pieces[(pieceType*2+side)*t.numSquares+square]
}

// Castling returns the key of side's castling right with the rook on square.
func (t *Table) Castling(side, square int) uint64 {
	return t.castling[side][square]
}

// Gate returns the key of side's right to gate a piece onto square.
func (t *Table) Gate(side, square int) uint64 {
	return t.gates[side][square]
}

// EnPassant returns the key of an en passant target on square.
func (t *Table) EnPassant(square int) uint64 {
	return t.enPassant[square]
}

// ReservePiece returns the key of the slot-th reserve piece of a type and
// side. A reserve holding n pieces of one kind contributes the keys of slots
// 0..n-1.
func (t *Table) ReservePiece(pieceType, side, slot int) uint64 {
	if slot >= t.reserveSlots {
		slot = t.reserveSlots - 1
	}
	return t.reserve[(pieceType*2+side)*t.reserveSlots+slot]
}

// CheckCount returns the key of side having n checks left to give.
func (t *Table) CheckCount(side, n int) uint64 {
	if n > MaxChecks {
		n = MaxChecks
	}
	return t.checks[side][n]
}

// NumSquares returns the mailbox size the table was built for.
func (t *Table) NumSquares() int {
	return t.numSquares
}

// ReserveSlots returns how many pieces of one type a side may hold in reserve.
func (t *Table) ReserveSlots() int {
	return t.reserveSlots
}
