package engine

import (
	"strconv"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// XiangqiRules implements Chinese chess: palace-bound generals and
// advisors, elephants that stay on their side of the river, soldiers that
// turn sideways after crossing it, and generals that may not face each
// other on an open file. A side without legal moves loses.
type XiangqiRules struct{}

// JanggiRules implements Korean chess. It shares Xiangqi's move handling
// and notation; pieces in the palace may follow its diagonals and the
// generals may face each other.
type JanggiRules struct {
	XiangqiRules
}

// inPalace reports whether sq lies in side s's palace: the middle three
// files of the three ranks nearest s.
func (b *Board) inPalace(s chess.Side, sq int) bool {
	mid := b.width / 2
	f := b.fileOf(sq)
	return f >= mid-1 && f <= mid+1 && b.relativeRank(s, sq) <= 2
}

// palacePoint reports whether sq is a corner or the centre of side s's
// palace, the points joined by its diagonals.
func (b *Board) palacePoint(s chess.Side, sq int) bool {
	if !b.inPalace(s, sq) {
		return false
	}
	return abs(b.fileOf(sq)-b.width/2) == abs(b.relativeRank(s, sq)-1)
}

// alongPalaceDiagonal reports whether from and to lie on one diagonal of
// the same palace.
func (b *Board) alongPalaceDiagonal(from, to int) bool {
	for s := chess.White; s <= chess.Black; s++ {
		if b.palacePoint(s, from) && b.palacePoint(s, to) {
			return true
		}
	}
	return false
}

// XiangqiRestriction confines generals and advisors to the palace and
// elephants to their own half, and lets soldiers step sideways only once
// across the river.
func XiangqiRestriction(b *Board, p chess.Piece, from, to int) bool {
	s := p.Side()
	switch p.Type() {
	case chess.General, chess.Advisor:
		return b.inPalace(s, to)
	case chess.Elephant:
		return b.relativeRank(s, to) < b.height/2
	case chess.Soldier:
		return b.rankOf(from) != b.rankOf(to) || b.relativeRank(s, from) >= b.height/2
	}
	return true
}

// JanggiRestriction confines the king and guards to the palace and allows
// diagonal moves of kings, guards, chariots, cannons and soldiers only
// along the palace diagonals.
func JanggiRestriction(b *Board, p chess.Piece, from, to int) bool {
	switch p.Type() {
	case chess.King, chess.Guard:
		if !b.inPalace(p.Side(), to) {
			return false
		}
	case chess.JanggiChariot, chess.JanggiCannon, chess.JanggiSoldier:
	default:
		return true
	}
	if b.fileOf(from) == b.fileOf(to) || b.rankOf(from) == b.rankOf(to) {
		return true
	}
	return b.alongPalaceDiagonal(from, to)
}

// PieceMoves implements MovementRules.
func (XiangqiRules) PieceMoves(b *Board, sq int, out []chess.Move) []chess.Move {
	return b.appendPieceMoves(sq, out)
}

// DropMoves implements MovementRules. There are no drops.
func (XiangqiRules) DropMoves(b *Board, filter chess.PieceType, out []chess.Move) []chess.Move {
	return out
}

// Apply implements MovementRules.
func (XiangqiRules) Apply(b *Board, m chess.Move) chess.Piece {
	return b.applyPieceMove(m)
}

// Revert implements MovementRules.
func (XiangqiRules) Revert(b *Board, m chess.Move, moved, captured chess.Piece) {
	b.revertPieceMove(m, moved, captured)
}

// MoveExists implements CheckRules.
func (XiangqiRules) MoveExists(b *Board, m chess.Move) bool {
	return b.IsGenerated(m)
}

// IsLegalMove implements CheckRules.
func (XiangqiRules) IsLegalMove(b *Board, m chess.Move) bool {
	return b.TrialIsLegal(m)
}

// IsLegalPosition implements CheckRules: the mover is not in check and the
// generals do not face each other.
func (XiangqiRules) IsLegalPosition(b *Board) bool {
	return b.MoverNotInCheck() && !b.generalsFace()
}

// IsLegalPosition implements CheckRules. Facing kings are allowed.
func (JanggiRules) IsLegalPosition(b *Board) bool {
	return b.MoverNotInCheck()
}

// generalsFace reports whether both royal pieces share a file with nothing
// between them.
func (b *Board) generalsFace() bool {
	w, bl := b.kings[chess.White], b.kings[chess.Black]
	if w == 0 || bl == 0 || b.fileOf(w) != b.fileOf(bl) {
		return false
	}
	return b.isClearBetween(w, bl)
}

// SetFENTrailer implements NotationDialect: two unused fields, then the
// halfmove clock and move number.
func (XiangqiRules) SetFENTrailer(b *Board, fields []string) error {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	for i := 0; i < 2; i++ {
		if f := field(i); f != "" && f != "-" {
			return fenError("", "trailer", f)
		}
	}
	return b.setMoveCounters(field(2), field(3))
}

// FENTrailer implements NotationDialect.
func (XiangqiRules) FENTrailer(b *Board, n FENNotation) string {
	return "- - " + strconv.Itoa(b.reversible) + " " + strconv.Itoa(b.FullMoveNumber())
}

// SquareName implements NotationDialect.
func (XiangqiRules) SquareName(b *Board, sq int) string {
	return b.SquareOf(sq).String()
}

// LAN implements NotationDialect.
func (r XiangqiRules) LAN(b *Board, m chess.Move) string {
	return r.SquareName(b, m.Source) + r.SquareName(b, m.Target)
}

// SAN implements NotationDialect. Every piece, soldiers included, is
// written with its letter.
func (XiangqiRules) SAN(b *Board, m chess.Move) string {
	hint := b.disambiguation(m, b.sameKindTargets(m), b.algebraicFile, b.algebraicRank)
	return b.letterSAN(m, hint) + b.checkSuffix(m)
}

// ParseSAN implements NotationDialect.
func (r XiangqiRules) ParseSAN(b *Board, s string) (chess.Move, error) {
	return b.matchRendered(s, func(m chess.Move) string { return r.SAN(b, m) }, b.letterSANForms)
}

// Result implements ResultRules.
func (XiangqiRules) Result(b *Board) chess.Result {
	if r := b.noMovesLoses(); r.IsOver() {
		return r
	}
	draw := b.DrawRules()
	switch {
	case draw.FiftyMoveRule:
		return chess.DrawBy("move limit")
	case draw.Repetition:
		return chess.DrawBy("repetition")
	}
	return chess.Ongoing
}
