package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// GenerateMoves appends the pseudo-legal moves of the side to move to out.
// With a filter other than NoPieceType only moves and drops of that type
// are produced.
func (b *Board) GenerateMoves(out []chess.Move, filter chess.PieceType) []chess.Move {
	for sq := b.first; sq <= b.last; sq++ {
		p := b.squares[sq]
		if p.Side() != b.side {
			continue
		}
		if filter != chess.NoPieceType && p.Type() != filter {
			continue
		}
		out = b.v.Movement.PieceMoves(b, sq, out)
	}
	if b.v.Drops {
		out = b.v.Movement.DropMoves(b, filter, out)
	}
	return out
}

// appendPieceMoves appends the hop, slide, lame leap and cannon moves of
// the piece on sq as plain moves without promotion.
func (b *Board) appendPieceMoves(sq int, out []chess.Move) []chess.Move {
	p := b.squares[sq]
	us := p.Side()
	them := us.Opposite()
	pd := &b.deltas[p.Type()][us]

	add := func(to int) {
		if b.allowed(p, sq, to) {
			out = append(out, chess.NewMove(sq, to, chess.NoPieceType))
		}
	}

	for _, d := range pd.steps {
		to := sq + d
		if q := b.squares[to]; q.IsEmpty() || q.Side() == them {
			add(to)
		}
	}
	for _, d := range pd.quiets {
		if to := sq + d; b.squares[to].IsEmpty() {
			add(to)
		}
	}
	for _, d := range pd.captures {
		if to := sq + d; b.squares[to].Side() == them {
			add(to)
		}
	}
	for _, d := range pd.slides {
		to := sq + d
		for b.squares[to].IsEmpty() {
			add(to)
			to += d
		}
		if b.squares[to].Side() == them {
			add(to)
		}
	}
	for _, l := range pd.lame {
		blocked := false
		for _, leg := range l.legs {
			if !b.squares[sq+leg].IsEmpty() {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		to := sq + l.dest
		if q := b.squares[to]; q.IsEmpty() || q.Side() == them {
			add(to)
		}
	}
	for _, d := range pd.cannon {
		out = b.appendCannonMoves(p, sq, d, pd.kind, out)
	}
	return out
}

// appendCannonMoves walks one cannon ray. Xiangqi cannons move freely up to
// the screen; Janggi cannons only move beyond a screen that is not a cannon.
func (b *Board) appendCannonMoves(p chess.Piece, sq, d int, kind cannonKind, out []chess.Move) []chess.Move {
	them := p.Side().Opposite()
	to := sq + d
	for b.squares[to].IsEmpty() {
		if kind == cannonXiangqi && b.allowed(p, sq, to) {
			out = append(out, chess.NewMove(sq, to, chess.NoPieceType))
		}
		to += d
	}
	screen := b.squares[to]
	if screen.IsWall() || (kind == cannonJanggi && screen.Type() == chess.JanggiCannon) {
		return out
	}
	to += d
	for b.squares[to].IsEmpty() {
		if kind == cannonJanggi && b.allowed(p, sq, to) {
			out = append(out, chess.NewMove(sq, to, chess.NoPieceType))
		}
		to += d
	}
	q := b.squares[to]
	if q.Side() == them && !(kind == cannonJanggi && q.Type() == chess.JanggiCannon) && b.allowed(p, sq, to) {
		out = append(out, chess.NewMove(sq, to, chess.NoPieceType))
	}
	return out
}

// appendDrops appends drops of every reserve piece of the side to move onto
// the squares accepted by ok.
func (b *Board) appendDrops(filter chess.PieceType, out []chess.Move, ok func(t chess.PieceType, sq int) bool) []chess.Move {
	us := b.side
	for _, t := range b.inPlay {
		if b.reserve[us][t] == 0 || (filter != chess.NoPieceType && t != filter) {
			continue
		}
		for sq := b.first; sq <= b.last; sq++ {
			if b.squares[sq].IsEmpty() && ok(t, sq) {
				out = append(out, chess.NewDrop(t, sq))
			}
		}
	}
	return out
}

// IsCapture reports whether m takes an enemy piece, en passant included.
func (b *Board) IsCapture(m chess.Move) bool {
	if m.IsDrop() {
		return false
	}
	if b.isCastling(m) {
		return false
	}
	if b.squares[m.Target].Side() == b.side.Opposite() {
		return true
	}
	return m.Target == b.epSquare && b.epSquare != 0 &&
		b.squares[m.Source].Type() == b.v.PawnType && b.v.PawnType != chess.NoPieceType
}

// isCastling reports whether m is a king-takes-own-rook castling move.
func (b *Board) isCastling(m chess.Move) bool {
	if !b.v.Castling || m.IsDrop() {
		return false
	}
	p := b.squares[m.Source]
	if p.Type() != b.v.Royal {
		return false
	}
	return m.Target == b.castling[p.Side()][KingSide] || m.Target == b.castling[p.Side()][QueenSide]
}

// castlingWing returns the wing of castling move m.
func (b *Board) castlingWing(m chess.Move) int {
	s := b.squares[m.Source].Side()
	if m.Target == b.castling[s][KingSide] {
		return KingSide
	}
	return QueenSide
}
