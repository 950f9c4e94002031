package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// ShogiRules implements the Shogi family: captured pieces change sides into
// the captor's hand, promotion zones with forced promotion, and the drop
// restrictions nifu and uchifuzume. A side without legal moves loses.
type ShogiRules struct{}

// inZone reports whether sq lies in side s's promotion zone.
func (b *Board) inZone(s chess.Side, sq int) bool {
	return b.relativeRank(s, sq) >= b.height-b.v.PromotionZone
}

// canPromote reports whether p may promote moving between from and to.
func (b *Board) canPromote(p chess.Piece, from, to int) bool {
	d := b.defs[p.Type()]
	if d == nil || d.Promoted == chess.NoPieceType {
		return false
	}
	return b.inZone(p.Side(), from) || b.inZone(p.Side(), to)
}

// PieceMoves implements MovementRules. A move that could promote is
// generated both ways unless the piece would be left without moves, in
// which case only the promotion is produced.
func (ShogiRules) PieceMoves(b *Board, sq int, out []chess.Move) []chess.Move {
	p := b.squares[sq]
	start := len(out)
	out = b.appendPieceMoves(sq, out)
	if !b.canPromoteFrom(p, sq) {
		return out
	}
	plain := append([]chess.Move(nil), out[start:]...)
	out = out[:start]
	promoted := b.defs[p.Type()].Promoted
	for _, m := range plain {
		if !b.canPromote(p, m.Source, m.Target) {
			out = append(out, m)
			continue
		}
		if canMoveFromRank(p.Type(), b.relativeRank(p.Side(), m.Target), b.height) {
			out = append(out, m)
		}
		out = append(out, chess.NewMove(m.Source, m.Target, promoted))
	}
	return out
}

// canPromoteFrom reports whether the piece on sq has a promoted form at all.
func (b *Board) canPromoteFrom(p chess.Piece, sq int) bool {
	d := b.defs[p.Type()]
	return d != nil && d.Promoted != chess.NoPieceType
}

// DropMoves implements MovementRules. A piece may not be dropped where it
// could never move again, and a pawn may not join an unpromoted pawn of
// its side on the same file.
func (ShogiRules) DropMoves(b *Board, filter chess.PieceType, out []chess.Move) []chess.Move {
	us := b.side
	return b.appendDrops(filter, out, func(t chess.PieceType, sq int) bool {
		if !canMoveFromRank(t, b.relativeRank(us, sq), b.height) {
			return false
		}
		return t != b.v.PawnType || !b.hasPawnOnFile(us, b.fileOf(sq))
	})
}

// hasPawnOnFile reports whether side s has an unpromoted pawn on file.
func (b *Board) hasPawnOnFile(s chess.Side, file int) bool {
	pawn := chess.MakePiece(b.v.PawnType, s)
	for r := 0; r < b.height; r++ {
		if b.squares[b.index(file, r)] == pawn {
			return true
		}
	}
	return false
}

// Apply implements MovementRules.
func (ShogiRules) Apply(b *Board, m chess.Move) chess.Piece {
	return b.applyPieceMove(m)
}

// Revert implements MovementRules.
func (ShogiRules) Revert(b *Board, m chess.Move, moved, captured chess.Piece) {
	b.revertPieceMove(m, moved, captured)
}

// MoveExists implements CheckRules.
func (ShogiRules) MoveExists(b *Board, m chess.Move) bool {
	return b.IsGenerated(m)
}

// IsLegalMove implements CheckRules. Mating with a pawn drop is illegal.
func (ShogiRules) IsLegalMove(b *Board, m chess.Move) bool {
	pawnDrop := m.IsDrop() && m.Promotion == b.v.PawnType
	return b.WithMove(m, func() bool {
		if !b.MoverNotInCheck() {
			return false
		}
		return !pawnDrop || !b.InCheck(b.side) || b.HasLegalMoves()
	})
}

// IsLegalPosition implements CheckRules.
func (ShogiRules) IsLegalPosition(b *Board) bool {
	return b.MoverNotInCheck()
}

// SetFENTrailer implements NotationDialect. Shogi positions carry only the
// move number.
func (ShogiRules) SetFENTrailer(b *Board, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return b.setMoveCounters("", fields[len(fields)-1])
}

// FENTrailer implements NotationDialect.
func (ShogiRules) FENTrailer(b *Board, n FENNotation) string {
	return strconv.Itoa(b.FullMoveNumber())
}

// SquareName implements NotationDialect: files count from the right and
// ranks are letters from the top, so White's pawns start on rank g.
func (ShogiRules) SquareName(b *Board, sq int) string {
	file := b.width - b.fileOf(sq)
	rank := b.height - 1 - b.rankOf(sq)
	return strconv.Itoa(file) + string(rune('a'+rank))
}

// LAN implements NotationDialect in USI form: 7g7f, 8h2b+ and P*5e.
func (r ShogiRules) LAN(b *Board, m chess.Move) string {
	if m.IsDrop() {
		return b.v.SANSymbol(m.Promotion) + "*" + r.SquareName(b, m.Target)
	}
	s := r.SquareName(b, m.Source) + r.SquareName(b, m.Target)
	if m.Promotion != chess.NoPieceType {
		s += "+"
	}
	return s
}

// SAN implements NotationDialect: P7f, Bx3c+, B3c= and P*5e. The source
// square is added when another piece of the same kind reaches the target.
// Checks are not marked.
func (r ShogiRules) SAN(b *Board, m chess.Move) string {
	if m.IsDrop() {
		return b.v.SANSymbol(m.Promotion) + "*" + r.SquareName(b, m.Target)
	}
	hint := ""
	if len(b.sameKindTargets(m)) > 0 {
		hint = r.SquareName(b, m.Source)
	}
	return r.shogiSAN(b, m, hint)
}

func (r ShogiRules) shogiSAN(b *Board, m chess.Move, hint string) string {
	p := b.squares[m.Source]
	var sb strings.Builder
	sb.WriteString(b.v.SANSymbol(p.Type()))
	sb.WriteString(hint)
	if b.IsCapture(m) {
		sb.WriteByte('x')
	}
	sb.WriteString(r.SquareName(b, m.Target))
	switch {
	case m.Promotion != chess.NoPieceType:
		sb.WriteByte('+')
	case b.canPromote(p, m.Source, m.Target):
		sb.WriteByte('=')
	}
	return sb.String()
}

// ParseSAN implements NotationDialect. The source square may always be
// given, and may be left out when the move is still unique.
func (r ShogiRules) ParseSAN(b *Board, s string) (chess.Move, error) {
	canonical := func(m chess.Move) string { return r.SAN(b, m) }
	alternates := func(m chess.Move) []string {
		if m.IsDrop() {
			return []string{strings.Replace(r.SAN(b, m), "*", "@", 1)}
		}
		return []string{r.shogiSAN(b, m, ""), r.shogiSAN(b, m, r.SquareName(b, m.Source))}
	}
	return b.matchRendered(s, canonical, alternates)
}

// Result implements ResultRules.
func (ShogiRules) Result(b *Board) chess.Result {
	if r := b.noMovesLoses(); r.IsOver() {
		return r
	}
	if b.IsRepetition() {
		return chess.DrawBy("repetition")
	}
	return chess.Ongoing
}

// noMovesLoses returns a loss for the side to move when it has no legal
// move, whether in check or not.
func (b *Board) noMovesLoses() chess.Result {
	if b.HasLegalMoves() {
		return chess.Ongoing
	}
	them := b.side.Opposite()
	if b.InCheck(b.side) {
		return chess.WinFor(them, "checkmate")
	}
	return chess.WinFor(them, "stalemate")
}
