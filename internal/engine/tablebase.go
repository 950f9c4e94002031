package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// MaxTablebasePieces is the largest piece count, kings included, for which
// TablebasePosition describes a position.
const MaxTablebasePieces = 5

// PlacedPiece is one entry of a tablebase piece list.
type PlacedPiece struct {
	Square chess.Square
	Piece  chess.Piece
}

// TablebasePosition is what an endgame tablebase prober needs to know
// about a position.
type TablebasePosition struct {
	SideToMove chess.Side
	EnPassant  chess.Square
	// Castling holds the rook squares of the remaining castling rights,
	// indexed by side and wing; InvalidSquare marks a missing right.
	Castling [2][2]chess.Square
	Pieces   []PlacedPiece
}

// HasCastling reports whether any castling right remains.
func (p *TablebasePosition) HasCastling() bool {
	for s := 0; s < 2; s++ {
		for wing := 0; wing < 2; wing++ {
			if p.Castling[s][wing].IsValid() {
				return true
			}
		}
	}
	return false
}

// TablebasePosition describes the position for tablebase probing. It
// reports false unless the board is orthodox 8x8 chess, possibly with a
// random setup, with at most MaxTablebasePieces pieces.
func (b *Board) TablebasePosition() (TablebasePosition, bool) {
	if !b.isOrthodox() {
		return TablebasePosition{}, false
	}
	tp := TablebasePosition{SideToMove: b.side, EnPassant: b.SquareOf(b.epSquare)}
	if b.epSquare == 0 {
		tp.EnPassant = chess.InvalidSquare
	}
	for s := 0; s < 2; s++ {
		for wing := 0; wing < 2; wing++ {
			tp.Castling[s][wing] = chess.InvalidSquare
			if sq := b.castling[s][wing]; sq != 0 {
				tp.Castling[s][wing] = b.SquareOf(sq)
			}
		}
	}
	for sq := b.first; sq <= b.last; sq++ {
		p := b.squares[sq]
		if !p.IsValid() {
			continue
		}
		if len(tp.Pieces) == MaxTablebasePieces {
			return TablebasePosition{}, false
		}
		tp.Pieces = append(tp.Pieces, PlacedPiece{Square: b.SquareOf(sq), Piece: p})
	}
	return tp, true
}

// isOrthodox reports whether the variant plays by the rules orthodox
// tablebases are built for.
func (b *Board) isOrthodox() bool {
	v := b.v
	if v.Family != FamilyWestern || v.Width != 8 || v.Height != 8 || v.Royal != chess.King {
		return false
	}
	if v.Drops || v.Gating || v.CheckCounting || v.StalemateLoses || v.BareKingLoses || v.Restriction != nil {
		return false
	}
	if _, ok := v.Results.(WesternRules); !ok {
		return false
	}
	for _, d := range v.Pieces {
		switch d.Type {
		case chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King:
		default:
			return false
		}
	}
	return true
}
