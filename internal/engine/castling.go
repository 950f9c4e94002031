package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// backRank returns the rank on which side s castles.
func (b *Board) backRank(s chess.Side) int {
	if s == chess.Black {
		return b.height - 1
	}
	return 0
}

// castlingTargets returns the king and rook destinations for castling on
// wing. The king lands on the second file from the edge and the rook next
// to it, on every board width.
func (b *Board) castlingTargets(s chess.Side, wing int) (kingTo, rookTo int) {
	rank := b.backRank(s)
	if wing == KingSide {
		return b.index(b.width-2, rank), b.index(b.width-3, rank)
	}
	return b.index(2, rank), b.index(3, rank)
}

// castlingSpan returns the lowest and highest index touched by castling.
func castlingSpan(squares ...int) (lo, hi int) {
	lo, hi = squares[0], squares[0]
	for _, sq := range squares[1:] {
		lo = min(lo, sq)
		hi = max(hi, sq)
	}
	return lo, hi
}

// appendCastlingMoves adds castling moves for the king on sq, encoded as the
// king capturing its own rook.
func (b *Board) appendCastlingMoves(sq int, out []chess.Move) []chess.Move {
	king := b.squares[sq]
	us := king.Side()
	if b.rankOf(sq) != b.backRank(us) {
		return out
	}
	for wing := KingSide; wing <= QueenSide; wing++ {
		rook := b.castling[us][wing]
		if rook == 0 || b.squares[rook] != chess.MakePiece(chess.Rook, us) {
			continue
		}
		kingTo, rookTo := b.castlingTargets(us, wing)
		lo, hi := castlingSpan(sq, rook, kingTo, rookTo)
		clear := true
		for s := lo; s <= hi; s++ {
			if s != sq && s != rook && !b.squares[s].IsEmpty() {
				clear = false
				break
			}
		}
		if clear {
			out = append(out, chess.NewMove(sq, rook, chess.NoPieceType))
		}
	}
	return out
}

// castlingPathSafe reports whether no square the king crosses while
// castling, including its start and end, is attacked.
func (b *Board) castlingPathSafe(m chess.Move) bool {
	us := b.side
	kingTo, _ := b.castlingTargets(us, b.castlingWing(m))
	lo, hi := castlingSpan(m.Source, kingTo)
	for s := lo; s <= hi; s++ {
		if b.IsAttacked(s, us.Opposite()) {
			return false
		}
	}
	return true
}

// applyCastling moves king and rook to their destinations.
func (b *Board) applyCastling(m chess.Move) {
	us := b.side
	kingTo, rookTo := b.castlingTargets(us, b.castlingWing(m))
	king, rook := b.squares[m.Source], b.squares[m.Target]
	b.setSquare(m.Source, chess.NoPiece)
	b.setSquare(m.Target, chess.NoPiece)
	b.setSquare(kingTo, king)
	b.setSquare(rookTo, rook)
	b.tr.addMovement(king, b.SquareOf(m.Source), b.SquareOf(kingTo))
	b.tr.addMovement(rook, b.SquareOf(m.Target), b.SquareOf(rookTo))
}

// revertCastling puts king and rook back. The castling rights must already
// be restored.
func (b *Board) revertCastling(m chess.Move, wing int) {
	us := b.side
	kingTo, rookTo := b.castlingTargets(us, wing)
	king, rook := b.squares[kingTo], b.squares[rookTo]
	b.setSquare(kingTo, chess.NoPiece)
	b.setSquare(rookTo, chess.NoPiece)
	b.setSquare(m.Source, king)
	b.setSquare(m.Target, rook)
}

// clearCastlingOn drops every castling right whose rook stands on sq.
func (b *Board) clearCastlingOn(sq int) {
	for s := chess.White; s <= chess.Black; s++ {
		for wing := KingSide; wing <= QueenSide; wing++ {
			if b.castling[s][wing] == sq {
				b.setCastlingRook(s, wing, 0)
			}
		}
	}
}
