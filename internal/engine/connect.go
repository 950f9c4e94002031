package engine

import (
	"strconv"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// ConnectRules implements placement games such as tic-tac-toe, Connect Four
// and Gomoku. Each side places stones from an unlimited supply; with gravity
// a stone falls to the lowest empty square of its file. The first line of
// ConnectN stones wins and a full board is drawn.
type ConnectRules struct{}

// connectDirections are the line directions checked for a win.
var connectDirections = []offset{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// PieceMoves implements MovementRules. Stones never move.
func (ConnectRules) PieceMoves(b *Board, sq int, out []chess.Move) []chess.Move {
	return out
}

// DropMoves implements MovementRules.
func (ConnectRules) DropMoves(b *Board, filter chess.PieceType, out []chess.Move) []chess.Move {
	if filter != chess.NoPieceType && filter != chess.Stone {
		return out
	}
	for sq := b.first; sq <= b.last; sq++ {
		if !b.squares[sq].IsEmpty() {
			continue
		}
		if b.v.Gravity && b.squares[sq-b.forward(chess.White)].IsEmpty() {
			continue
		}
		out = append(out, chess.NewDrop(chess.Stone, sq))
	}
	return out
}

// Apply implements MovementRules.
func (ConnectRules) Apply(b *Board, m chess.Move) chess.Piece {
	p := chess.MakePiece(chess.Stone, b.side)
	b.setSquare(m.Target, p)
	b.tr.addDrop(p, b.SquareOf(m.Target))
	return chess.NoPiece
}

// Revert implements MovementRules.
func (ConnectRules) Revert(b *Board, m chess.Move, moved, captured chess.Piece) {
	b.setSquare(m.Target, chess.NoPiece)
}

// MoveExists implements CheckRules.
func (ConnectRules) MoveExists(b *Board, m chess.Move) bool {
	return m.IsDrop() && b.IsGenerated(m)
}

// IsLegalMove implements CheckRules. Every placement is legal.
func (ConnectRules) IsLegalMove(b *Board, m chess.Move) bool {
	return true
}

// IsLegalPosition implements CheckRules.
func (ConnectRules) IsLegalPosition(b *Board) bool {
	return true
}

// SetFENTrailer implements NotationDialect: only the move number.
func (ConnectRules) SetFENTrailer(b *Board, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return b.setMoveCounters("", fields[len(fields)-1])
}

// FENTrailer implements NotationDialect.
func (ConnectRules) FENTrailer(b *Board, n FENNotation) string {
	return strconv.Itoa(b.FullMoveNumber())
}

// SquareName implements NotationDialect.
func (ConnectRules) SquareName(b *Board, sq int) string {
	return b.SquareOf(sq).String()
}

// LAN implements NotationDialect.
func (r ConnectRules) LAN(b *Board, m chess.Move) string {
	return b.v.SANSymbol(chess.Stone) + "@" + r.SquareName(b, m.Target)
}

// SAN implements NotationDialect: the target square alone.
func (r ConnectRules) SAN(b *Board, m chess.Move) string {
	return r.SquareName(b, m.Target)
}

// ParseSAN implements NotationDialect.
func (r ConnectRules) ParseSAN(b *Board, s string) (chess.Move, error) {
	return b.matchRendered(s, func(m chess.Move) string { return r.SAN(b, m) }, nil)
}

// Result implements ResultRules.
func (ConnectRules) Result(b *Board) chess.Result {
	for _, s := range []chess.Side{b.side.Opposite(), b.side} {
		if b.hasLine(s) {
			return chess.WinFor(s, "line")
		}
	}
	for sq := b.first; sq <= b.last; sq++ {
		if b.squares[sq].IsEmpty() {
			return chess.Ongoing
		}
	}
	return chess.DrawBy("board full")
}

// hasLine reports whether side s has ConnectN stones in a row.
func (b *Board) hasLine(s chess.Side) bool {
	stone := chess.MakePiece(chess.Stone, s)
	for sq := b.first; sq <= b.last; sq++ {
		if b.squares[sq] != stone {
			continue
		}
		for _, o := range connectDirections {
			d := b.delta(o, chess.White)
			if b.squares[sq-d] == stone {
				continue
			}
			n := 1
			for b.squares[sq+n*d] == stone {
				n++
			}
			if n >= b.v.ConnectN {
				return true
			}
		}
	}
	return false
}
