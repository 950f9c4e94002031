package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// PieceMovement is one piece travelling between two squares.
type PieceMovement struct {
	Piece chess.Piece
	From  chess.Square
	To    chess.Square
}

// PieceDrop is one piece placed from a reserve.
type PieceDrop struct {
	Piece chess.Piece
	To    chess.Square
}

// Transition is the visible diff of one MakeMove: squares whose contents
// changed, pieces that moved or were dropped and reserve entries that
// changed. No rule reads it; it exists for displays.
type Transition struct {
	Move     chess.Move
	Squares  []chess.Square
	Moved    []PieceMovement
	Dropped  []PieceDrop
	Reserves []chess.Piece
}

// Reset clears t for reuse.
func (t *Transition) Reset() {
	t.Move = chess.NullMove
	t.Squares = t.Squares[:0]
	t.Moved = t.Moved[:0]
	t.Dropped = t.Dropped[:0]
	t.Reserves = t.Reserves[:0]
}

// Changed reports whether sq is among the changed squares.
func (t *Transition) Changed(sq chess.Square) bool {
	for _, s := range t.Squares {
		if s == sq {
			return true
		}
	}
	return false
}

func (t *Transition) addSquare(sq chess.Square) {
	if t == nil || !sq.IsValid() || t.Changed(sq) {
		return
	}
	t.Squares = append(t.Squares, sq)
}

func (t *Transition) addReserve(p chess.Piece) {
	if t == nil {
		return
	}
	for _, q := range t.Reserves {
		if q == p {
			return
		}
	}
	t.Reserves = append(t.Reserves, p)
}

func (t *Transition) addMovement(p chess.Piece, from, to chess.Square) {
	if t == nil || from == to {
		return
	}
	t.Moved = append(t.Moved, PieceMovement{Piece: p, From: from, To: to})
}

func (t *Transition) addDrop(p chess.Piece, to chess.Square) {
	if t == nil {
		return
	}
	t.Dropped = append(t.Dropped, PieceDrop{Piece: p, To: to})
}

// movePiece moves the piece on from to to, recording the movement. The
// target is overwritten without touching any reserve.
func (b *Board) movePiece(from, to int) {
	p := b.squares[from]
	b.setSquare(from, chess.NoPiece)
	b.setSquare(to, p)
	b.tr.addMovement(p, b.SquareOf(from), b.SquareOf(to))
}

// dropPiece takes p out of the reserve and puts it on to.
func (b *Board) dropPiece(p chess.Piece, to int) {
	b.removeFromReserve(p)
	b.setSquare(to, p)
	b.tr.addDrop(p, b.SquareOf(to))
}
