package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// applyPieceMove applies a board move or drop for the families without
// castling or en passant. Captures go to the captor's reserve when the
// variant keeps them. Captures and promotions reset the reversible-move
// count unless captured pieces return to play through the hand.
func (b *Board) applyPieceMove(m chess.Move) chess.Piece {
	us := b.side

	if m.IsDrop() {
		b.dropPiece(chess.MakePiece(m.Promotion, us), m.Target)
		return chess.NoPiece
	}

	captured := b.squares[m.Target]
	if captured.IsValid() {
		if b.v.CapturesToHand {
			b.addToReserve(chess.MakePiece(b.v.captureType(captured.Type()), us))
		} else {
			b.reversible = 0
		}
	}
	b.movePiece(m.Source, m.Target)
	if m.Promotion != chess.NoPieceType {
		b.setSquare(m.Target, chess.MakePiece(m.Promotion, us))
		if !b.v.CapturesToHand {
			b.reversible = 0
		}
	}
	return captured
}

// revertPieceMove undoes applyPieceMove.
func (b *Board) revertPieceMove(m chess.Move, moved, captured chess.Piece) {
	us := b.side

	if m.IsDrop() {
		b.setSquare(m.Target, chess.NoPiece)
		b.addToReserve(chess.MakePiece(m.Promotion, us))
		return
	}

	b.setSquare(m.Source, moved)
	b.setSquare(m.Target, captured)
	if captured.IsValid() && b.v.CapturesToHand {
		b.removeFromReserve(chess.MakePiece(b.v.captureType(captured.Type()), us))
	}
}
