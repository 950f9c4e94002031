package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// attackRay groups every piece type that attacks along one delta.
type attackRay struct {
	delta int
	mask  uint64
}

// lameAttack is a lame leap seen from its destination, in board
// orientation (Black's offsets already mirrored).
type lameAttack struct {
	dest offset
	legs []offset
	mask uint64
}

// attackTable lists, for one attacking side, the patterns to walk backwards
// from a target square.
type attackTable struct {
	steps   []attackRay
	slides  []attackRay
	cannons []attackRay
	lame    []lameAttack
}

func typeBit(t chess.PieceType) uint64 {
	return 1 << uint(t)
}

func addRay(rays []attackRay, delta int, t chess.PieceType) []attackRay {
	for i := range rays {
		if rays[i].delta == delta {
			rays[i].mask |= typeBit(t)
			return rays
		}
	}
	return append(rays, attackRay{delta: delta, mask: typeBit(t)})
}

// buildAttackTables mirrors the movement catalogue into per-side attack
// tables for the piece types in play.
func (b *Board) buildAttackTables() {
	for s := chess.White; s <= chess.Black; s++ {
		var at attackTable
		for _, t := range b.inPlay {
			mv := &movements[t]
			for _, o := range mv.steps {
				at.steps = addRay(at.steps, b.delta(o, s), t)
			}
			for _, o := range mv.captures {
				at.steps = addRay(at.steps, b.delta(o, s), t)
			}
			for _, o := range mv.slides {
				at.slides = addRay(at.slides, b.delta(o, s), t)
			}
			for _, o := range mv.cannon {
				at.cannons = addRay(at.cannons, b.delta(o, s), t)
			}
			for _, l := range mv.lame {
				la := lameAttack{dest: orient(l.dest, s), mask: typeBit(t)}
				for _, leg := range l.legs {
					la.legs = append(la.legs, orient(leg, s))
				}
				at.lame = append(at.lame, la)
			}
		}
		b.attacks[s] = at
	}
}

// orient turns a White-relative offset into board orientation for side s.
func orient(o offset, s chess.Side) offset {
	if s == chess.Black {
		return offset{o.df, -o.dr}
	}
	return o
}

// allowed applies the variant restriction, if any.
func (b *Board) allowed(p chess.Piece, from, to int) bool {
	return b.v.Restriction == nil || b.v.Restriction(b, p, from, to)
}

// IsAttacked reports whether side by attacks the mailbox index target.
// It walks the movement patterns backwards from the target instead of
// generating moves.
func (b *Board) IsAttacked(target int, by chess.Side) bool {
	at := &b.attacks[by]

	for _, r := range at.steps {
		s := target - r.delta
		if p := b.squares[s]; p.Side() == by && r.mask&typeBit(p.Type()) != 0 && b.allowed(p, s, target) {
			return true
		}
	}

	for _, r := range at.slides {
		s := target - r.delta
		for b.squares[s].IsEmpty() {
			s -= r.delta
		}
		if p := b.squares[s]; p.Side() == by && r.mask&typeBit(p.Type()) != 0 && b.allowed(p, s, target) {
			return true
		}
	}

	for _, r := range at.cannons {
		s := target - r.delta
		for b.squares[s].IsEmpty() {
			s -= r.delta
		}
		screen := b.squares[s]
		if screen.IsWall() {
			continue
		}
		s -= r.delta
		for b.squares[s].IsEmpty() {
			s -= r.delta
		}
		p := b.squares[s]
		if p.Side() != by || r.mask&typeBit(p.Type()) == 0 {
			continue
		}
		if p.Type() == chess.JanggiCannon &&
			(screen.Type() == chess.JanggiCannon || b.squares[target].Type() == chess.JanggiCannon) {
			continue
		}
		if b.allowed(p, s, target) {
			return true
		}
	}

	if len(at.lame) > 0 {
		tf, tr := b.fileOf(target), b.rankOf(target)
		for _, l := range at.lame {
			af, ar := tf-l.dest.df, tr-l.dest.dr
			if !b.inside(af, ar) {
				continue
			}
			s := b.index(af, ar)
			p := b.squares[s]
			if p.Side() != by || l.mask&typeBit(p.Type()) == 0 {
				continue
			}
			blocked := false
			for _, leg := range l.legs {
				if !b.squares[b.index(af+leg.df, ar+leg.dr)].IsEmpty() {
					blocked = true
					break
				}
			}
			if !blocked && b.allowed(p, s, target) {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether side s's royal piece is attacked. Sides without
// a royal piece are never in check.
func (b *Board) InCheck(s chess.Side) bool {
	k := b.kings[s]
	return k != 0 && b.IsAttacked(k, s.Opposite())
}

// IsAttackedSquare is IsAttacked for a square value.
func (b *Board) IsAttackedSquare(sq chess.Square, by chess.Side) bool {
	idx := b.Index(sq)
	return idx != 0 && b.IsAttacked(idx, by)
}
