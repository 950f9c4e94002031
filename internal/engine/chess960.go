package engine

import (
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// knightPlacements lists the knight slots among the five squares left after
// the bishops and queen are placed, in Scharnagl order.
var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
}

// Chess960BackRank returns White's back rank of Chess960 start position n
// (0-959) in Scharnagl numbering. Position 518 is the standard setup.
func Chess960BackRank(n int) string {
	n = ((n % 960) + 960) % 960
	rank := make([]byte, 8)

	rank[2*(n%4)+1] = 'B'
	n /= 4
	rank[2*(n%4)] = 'B'
	n /= 4

	place := func(c byte, slot int) {
		for i := range rank {
			if rank[i] != 0 {
				continue
			}
			if slot == 0 {
				rank[i] = c
				return
			}
			slot--
		}
	}
	place('Q', n%6)
	n /= 6

	k := knightPlacements[n]
	place('N', k[1])
	place('N', k[0])
	for _, c := range []byte{'R', 'K', 'R'} {
		place(c, 0)
	}
	return string(rank)
}

// Chess960FEN returns the FEN of Chess960 start position n with castling
// rights in Shredder form.
func Chess960FEN(n int) string {
	white := Chess960BackRank(n)
	black := strings.ToLower(white)
	rights := ""
	for i := len(white) - 1; i >= 0; i-- {
		if white[i] == 'R' {
			rights += string(rune('A' + i))
		}
	}
	// Shredder order is kingside rook first.
	return black + "/pppppppp/8/8/8/8/PPPPPPPP/" + white + " w " + rights + strings.ToLower(rights) + " - 0 1"
}

// outerRook returns the outermost rook of side s on wing, or 0.
func (b *Board) outerRook(s chess.Side, wing int) int {
	king := b.kings[s]
	if king == 0 {
		return 0
	}
	rook := chess.MakePiece(chess.Rook, s)
	rank := b.backRank(s)
	if wing == KingSide {
		for f := b.width - 1; f > b.fileOf(king); f-- {
			if sq := b.index(f, rank); b.squares[sq] == rook {
				return sq
			}
		}
		return 0
	}
	for f := 0; f < b.fileOf(king); f++ {
		if sq := b.index(f, rank); b.squares[sq] == rook {
			return sq
		}
	}
	return 0
}

// setCastlingField parses X-FEN or Shredder castling rights. Gating
// variants also read gate files from the field: K and Q open the king and
// rook files, and in fixed-setup gating variants a file letter only opens
// that file.
func (b *Board) setCastlingField(field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		s := chess.White
		if c >= 'a' && c <= 'z' {
			s = chess.Black
			c -= 'a' - 'A'
		}
		king := b.kings[s]
		kingOnRank := king != 0 && b.rankOf(king) == b.backRank(s)

		switch {
		case c == 'K' || c == 'Q':
			wing := KingSide
			if c == 'Q' {
				wing = QueenSide
			}
			rook := b.outerRook(s, wing)
			if !kingOnRank || rook == 0 {
				return fenError("", "castling", field)
			}
			if b.v.Castling {
				b.setCastlingRook(s, wing, rook)
			}
			if b.v.Gating {
				b.setGate(s, b.fileOf(king), true)
				b.setGate(s, b.fileOf(rook), true)
			}
		case c >= 'A' && int(c-'A') < b.width:
			file := int(c - 'A')
			if b.v.Gating && !b.v.RandomSetup {
				b.setGate(s, file, true)
				continue
			}
			sq := b.index(file, b.backRank(s))
			if !kingOnRank || b.squares[sq] != chess.MakePiece(chess.Rook, s) {
				return fenError("", "castling", field)
			}
			wing := QueenSide
			if file > b.fileOf(king) {
				wing = KingSide
			}
			if b.v.Castling {
				b.setCastlingRook(s, wing, sq)
			}
			if b.v.Gating {
				b.setGate(s, b.fileOf(king), true)
				b.setGate(s, file, true)
			}
		default:
			return fenError("", "castling", field)
		}
	}
	return nil
}

// castlingField writes the castling rights and, in gating variants, the
// remaining gate files.
func (b *Board) castlingField(n FENNotation) string {
	if b.v.Gating {
		n = XFEN
	}
	var sb strings.Builder
	for s := chess.White; s <= chess.Black; s++ {
		letter := func(c byte) {
			if s == chess.Black {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		var implied uint64
		for wing := KingSide; wing <= QueenSide; wing++ {
			rook := b.castling[s][wing]
			if rook == 0 {
				continue
			}
			switch {
			case n == XFEN && rook == b.outerRook(s, wing) && wing == KingSide:
				letter('K')
			case n == XFEN && rook == b.outerRook(s, wing):
				letter('Q')
			default:
				letter(byte('A' + b.fileOf(rook)))
			}
			implied |= 1<<uint(b.fileOf(rook)) | 1<<uint(b.fileOf(b.kings[s]))
		}
		if b.v.Gating {
			for f := 0; f < b.width; f++ {
				if b.CanGate(s, f) && implied&(1<<uint(f)) == 0 {
					letter(byte('A' + f))
				}
			}
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// IsRandomVariant reports whether castling rooks may start on any file.
func (b *Board) IsRandomVariant() bool {
	return b.v.RandomSetup
}
