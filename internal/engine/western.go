package engine

import (
	"github.com/lgbarn/varboard-go/internal/chess"
)

// WesternRules implements the rule family of chess and its relatives:
// castling on any setup, en passant, pawn promotion, crazyhouse drops,
// Seirawan gating and check counting.
type WesternRules struct{}

// PieceMoves implements MovementRules.
func (WesternRules) PieceMoves(b *Board, sq int, out []chess.Move) []chess.Move {
	start := len(out)
	p := b.squares[sq]
	switch p.Type() {
	case b.v.PawnType:
		out = b.appendPawnMoves(sq, out)
	default:
		out = b.appendPieceMoves(sq, out)
	}
	if b.v.Castling && p.Type() == b.v.Royal {
		out = b.appendCastlingMoves(sq, out)
	}
	if b.v.Gating {
		out = b.appendGatingMoves(sq, out, start)
	}
	return out
}

// DropMoves implements MovementRules. Pawns are never dropped on the first
// or last rank.
func (WesternRules) DropMoves(b *Board, filter chess.PieceType, out []chess.Move) []chess.Move {
	return b.appendDrops(filter, out, func(t chess.PieceType, sq int) bool {
		if t == b.v.PawnType {
			r := b.rankOf(sq)
			return r != 0 && r != b.height-1
		}
		return true
	})
}

// appendGatingMoves adds a gating version of every move in out[start:] that
// leaves an open gate square, one per reserve piece type.
func (b *Board) appendGatingMoves(sq int, out []chess.Move, start int) []chess.Move {
	us := b.side
	rank := b.backRank(us)
	if b.rankOf(sq) != rank || b.ReserveTotal(us) == 0 {
		return out
	}
	end := len(out)
	for i := start; i < end; i++ {
		m := out[i]
		gates := []chess.EffectKind{}
		if b.CanGate(us, b.fileOf(m.Source)) {
			gates = append(gates, chess.EffectGate)
		}
		if b.isCastling(m) && b.CanGate(us, b.fileOf(m.Target)) {
			gates = append(gates, chess.EffectGateRook)
		}
		for _, kind := range gates {
			for _, t := range b.inPlay {
				if b.reserve[us][t] > 0 {
					out = append(out, m.WithEffect(kind, t))
				}
			}
		}
	}
	return out
}

// Apply implements MovementRules.
func (WesternRules) Apply(b *Board, m chess.Move) chess.Piece {
	us := b.side
	them := us.Opposite()
	ep := b.epSquare
	b.setEnPassant(0)

	if m.IsDrop() {
		b.dropPiece(chess.MakePiece(m.Promotion, us), m.Target)
		b.reversible = 0
		b.countCheck(us)
		return chess.NoPiece
	}

	from, to := m.Source, m.Target
	p := b.squares[from]

	if b.isCastling(m) {
		b.applyCastling(m)
		b.setCastlingRook(us, KingSide, 0)
		b.setCastlingRook(us, QueenSide, 0)
		b.applyGate(m)
		b.closeGate(us, from)
		b.closeGate(us, to)
		b.countCheck(us)
		return chess.NoPiece
	}

	captured, capSq := b.squares[to], to
	if p.Type() == b.v.PawnType && to == ep && ep != 0 && captured.IsEmpty() {
		capSq = to - b.forward(us)
		captured = b.squares[capSq]
		b.setSquare(capSq, chess.NoPiece)
	}
	if captured.IsValid() {
		b.reversible = 0
		if b.v.CapturesToHand {
			b.addToReserve(chess.MakePiece(b.v.captureType(captured.Type()), us))
		}
		b.closeGate(them, capSq)
	}

	b.movePiece(from, to)
	if m.Promotion != chess.NoPieceType {
		b.setSquare(to, chess.MakePiece(m.Promotion, us))
	}

	if p.Type() == b.v.PawnType {
		b.reversible = 0
		if abs(to-from) == 2*b.stride {
			if mid := from + b.forward(us); b.epCapturable(mid, them) {
				b.setEnPassant(mid)
			}
		}
	}

	if p.Type() == b.v.Royal {
		b.setCastlingRook(us, KingSide, 0)
		b.setCastlingRook(us, QueenSide, 0)
	}
	b.clearCastlingOn(from)
	b.clearCastlingOn(to)

	b.applyGate(m)
	b.closeGate(us, from)
	b.countCheck(us)
	return captured
}

// applyGate places the gated reserve piece of m, if any.
func (b *Board) applyGate(m chess.Move) {
	var sq int
	switch m.Effect.Kind {
	case chess.EffectGate:
		sq = m.Source
	case chess.EffectGateRook:
		sq = m.Target
	default:
		return
	}
	b.dropPiece(chess.MakePiece(m.Effect.Piece, b.side), sq)
}

// closeGate removes side s's gate on sq when sq is on s's back rank.
func (b *Board) closeGate(s chess.Side, sq int) {
	if b.v.Gating && b.rankOf(sq) == b.backRank(s) {
		b.setGate(s, b.fileOf(sq), false)
	}
}

// countCheck decrements the mover's remaining checks when the move just
// applied gives check.
func (b *Board) countCheck(us chess.Side) {
	if b.v.CheckCounting && b.InCheck(us.Opposite()) && b.aux.checks[us] > 0 {
		b.setChecks(us, b.aux.checks[us]-1)
	}
}

// Revert implements MovementRules.
func (WesternRules) Revert(b *Board, m chess.Move, moved, captured chess.Piece) {
	us := b.side

	if m.IsDrop() {
		b.setSquare(m.Target, chess.NoPiece)
		b.addToReserve(chess.MakePiece(m.Promotion, us))
		return
	}

	b.revertGate(m)

	if moved.Type() == b.v.Royal && b.v.Castling &&
		(m.Target == b.castling[us][KingSide] || m.Target == b.castling[us][QueenSide]) {
		wing := QueenSide
		if m.Target == b.castling[us][KingSide] {
			wing = KingSide
		}
		b.revertCastling(m, wing)
		return
	}

	b.setSquare(m.Source, moved)
	if moved.Type() == b.v.PawnType && m.Target == b.epSquare && b.epSquare != 0 && captured.IsValid() {
		b.setSquare(m.Target, chess.NoPiece)
		b.setSquare(m.Target-b.forward(us), captured)
	} else {
		b.setSquare(m.Target, captured)
	}
	if captured.IsValid() && b.v.CapturesToHand {
		b.removeFromReserve(chess.MakePiece(b.v.captureType(captured.Type()), us))
	}
}

// revertGate returns a gated piece to the reserve.
func (b *Board) revertGate(m chess.Move) {
	var sq int
	switch m.Effect.Kind {
	case chess.EffectGate:
		sq = m.Source
	case chess.EffectGateRook:
		sq = m.Target
	default:
		return
	}
	b.setSquare(sq, chess.NoPiece)
	b.addToReserve(chess.MakePiece(m.Effect.Piece, b.side))
}

// MoveExists implements CheckRules.
func (WesternRules) MoveExists(b *Board, m chess.Move) bool {
	return b.IsGenerated(m)
}

// IsLegalMove implements CheckRules. Castling may neither start in, pass
// through nor end in check.
func (WesternRules) IsLegalMove(b *Board, m chess.Move) bool {
	if b.v.Royal != chess.NoPieceType && b.isCastling(m) && !b.castlingPathSafe(m) {
		return false
	}
	return b.TrialIsLegal(m)
}

// IsLegalPosition implements CheckRules.
func (WesternRules) IsLegalPosition(b *Board) bool {
	return b.MoverNotInCheck()
}
