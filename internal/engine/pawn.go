package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// appendPawnMoves generates pushes, double steps, captures, en passant and
// promotions for the pawn on sq.
func (b *Board) appendPawnMoves(sq int, out []chess.Move) []chess.Move {
	p := b.squares[sq]
	us := p.Side()
	them := us.Opposite()
	fwd := b.forward(us)

	add := func(to int) {
		if !b.allowed(p, sq, to) {
			return
		}
		if b.relativeRank(us, to) >= b.v.PromotionRank {
			for _, t := range b.v.Promotions {
				out = append(out, chess.NewMove(sq, to, t))
			}
			return
		}
		out = append(out, chess.NewMove(sq, to, chess.NoPieceType))
	}

	to := sq + fwd
	if b.squares[to].IsEmpty() {
		add(to)
		if slices.Contains(b.v.DoubleStepRanks[us], b.relativeRank(us, sq)) && b.squares[to+fwd].IsEmpty() {
			add(to + fwd)
		}
	}
	for _, df := range [2]int{-1, 1} {
		to := sq + fwd + df
		switch {
		case b.squares[to].Side() == them:
			add(to)
		case to == b.epSquare && b.epSquare != 0:
			add(to)
		}
	}
	return out
}

// epCapturable reports whether a pawn of side by stands ready to capture en
// passant on ep.
func (b *Board) epCapturable(ep int, by chess.Side) bool {
	if !b.v.EnPassant || ep == 0 {
		return false
	}
	pawn := chess.MakePiece(b.v.PawnType, by)
	from := ep - b.forward(by)
	for _, df := range [2]int{-1, 1} {
		if b.squares[from+df] == pawn && b.allowed(pawn, from+df, ep) {
			return true
		}
	}
	return false
}

// isEnPassant reports whether m, played by the side to move, captures en
// passant.
func (b *Board) isEnPassant(m chess.Move) bool {
	return !m.IsDrop() && b.epSquare != 0 && m.Target == b.epSquare &&
		b.squares[m.Source].Type() == b.v.PawnType && b.squares[m.Target].IsEmpty()
}
