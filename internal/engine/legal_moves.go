package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// MoveExists reports whether m is a pseudo-legal move of the side to move
// under the variant's existence rules.
func (b *Board) MoveExists(m chess.Move) bool {
	return !m.IsNull() && b.v.Check.MoveExists(b, m)
}

// IsLegalMove reports whether m may be played. The position is left
// unchanged.
func (b *Board) IsLegalMove(m chess.Move) bool {
	return b.MoveExists(m) && b.v.Check.IsLegalMove(b, m)
}

// LegalMoves returns every legal move of the side to move.
func (b *Board) LegalMoves() []chess.Move {
	pseudo := b.GenerateMoves(make([]chess.Move, 0, 64), chess.NoPieceType)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if b.v.Check.IsLegalMove(b, m) {
			legal = append(legal, m)
		}
	}
	if f, ok := b.v.Check.(MoveFilter); ok {
		legal = f.FilterMoves(b, legal)
	}
	return legal
}

// HasLegalMoves reports whether the side to move can move at all.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.GenerateMoves(make([]chess.Move, 0, 64), chess.NoPieceType) {
		if b.v.Check.IsLegalMove(b, m) {
			return true
		}
	}
	return false
}

// IsGenerated reports whether pseudo-legal generation produces m. It is the
// usual MoveExists implementation.
func (b *Board) IsGenerated(m chess.Move) bool {
	filter := m.DroppedType()
	if !m.IsDrop() {
		if m.Source <= 0 || m.Source >= len(b.squares) {
			return false
		}
		p := b.squares[m.Source]
		if p.Side() != b.side {
			return false
		}
		filter = p.Type()
	} else if m.Target <= 0 || m.Target >= len(b.squares) {
		return false
	}
	return slices.Contains(b.GenerateMoves(nil, filter), m)
}

// TrialIsLegal plays m, asks the variant whether the resulting position is
// legal and takes m back. It is the usual IsLegalMove implementation.
func (b *Board) TrialIsLegal(m chess.Move) bool {
	return b.WithMove(m, func() bool {
		return b.v.Check.IsLegalPosition(b)
	})
}

// MoverNotInCheck reports whether the side that just moved left its royal
// piece unattacked. It is the usual IsLegalPosition implementation.
func (b *Board) MoverNotInCheck() bool {
	return !b.InCheck(b.side.Opposite())
}

// GivesCheck reports whether m attacks the opponent's royal piece.
func (b *Board) GivesCheck(m chess.Move) bool {
	return b.WithMove(m, func() bool {
		return b.InCheck(b.side)
	})
}

// IsCheckmate reports whether the side to move is in check without a legal
// move.
func (b *Board) IsCheckmate() bool {
	return b.InCheck(b.side) && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func (b *Board) IsStalemate() bool {
	return !b.InCheck(b.side) && !b.HasLegalMoves()
}

// Result returns the game result of the current position.
func (b *Board) Result() chess.Result {
	return b.v.Results.Result(b)
}
