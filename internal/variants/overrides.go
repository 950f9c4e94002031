package variants

import (
	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
)

// racingKings forbids giving check and ends the game when a king reaches
// the last rank. Black gets one move to draw by reaching it too.
type racingKings struct {
	engine.WesternRules
}

func (racingKings) IsLegalPosition(b *engine.Board) bool {
	return b.MoverNotInCheck() && !b.InCheck(b.SideToMove())
}

func (r racingKings) Result(b *engine.Board) chess.Result {
	white, black := kingOnGoal(b, chess.White), kingOnGoal(b, chess.Black)
	switch {
	case white && black:
		return chess.DrawBy("both kings reached the goal")
	case black:
		return chess.WinFor(chess.Black, "king reached the goal")
	case white:
		if b.SideToMove() == chess.Black && canReachGoal(b, chess.Black) {
			return chess.Ongoing
		}
		return chess.WinFor(chess.White, "king reached the goal")
	}
	return r.WesternRules.Result(b)
}

func kingOnGoal(b *engine.Board, s chess.Side) bool {
	k := b.KingSquare(s)
	return k != 0 && b.SquareOf(k).Rank == b.Height()-1
}

func canReachGoal(b *engine.Board, s chess.Side) bool {
	k := b.KingSquare(s)
	for _, m := range b.LegalMoves() {
		if m.Source == k && b.SquareOf(m.Target).Rank == b.Height()-1 {
			return true
		}
	}
	return false
}

// kingOfTheHill is won by the side whose king stands on a centre square.
type kingOfTheHill struct {
	engine.WesternRules
}

func (r kingOfTheHill) Result(b *engine.Board) chess.Result {
	for _, s := range []chess.Side{b.SideToMove().Opposite(), b.SideToMove()} {
		if k := b.KingSquare(s); k != 0 && onHill(b.SquareOf(k)) {
			return chess.WinFor(s, "king of the hill")
		}
	}
	return r.WesternRules.Result(b)
}

func onHill(sq chess.Square) bool {
	return (sq.File == 3 || sq.File == 4) && (sq.Rank == 3 || sq.Rank == 4)
}

// horde is lost by White once the horde is gone.
type horde struct {
	engine.WesternRules
}

func (r horde) Result(b *engine.Board) chess.Result {
	if b.PieceCount(chess.White) == 0 {
		return chess.WinFor(chess.Black, "horde destroyed")
	}
	return r.WesternRules.Result(b)
}

// antichess makes captures compulsory and has no check.
type antichess struct {
	engine.WesternRules
}

// MoveExists rejects quiet moves while a capture is available.
func (antichess) MoveExists(b *engine.Board, m chess.Move) bool {
	return b.IsGenerated(m) && (b.IsCapture(m) || !hasCapture(b))
}

func (antichess) IsLegalMove(b *engine.Board, m chess.Move) bool {
	return true
}

func (antichess) IsLegalPosition(b *engine.Board) bool {
	return true
}

// FilterMoves keeps only the captures when there are any.
func (antichess) FilterMoves(b *engine.Board, moves []chess.Move) []chess.Move {
	var captures []chess.Move
	for _, m := range moves {
		if b.IsCapture(m) {
			captures = append(captures, m)
		}
	}
	if len(captures) == 0 {
		return moves
	}
	return captures
}

func (antichess) Result(b *engine.Board) chess.Result {
	if !b.HasLegalMoves() {
		return chess.WinFor(b.SideToMove(), "no moves left")
	}
	draw := b.DrawRules()
	switch {
	case draw.FiftyMoveRule:
		return chess.DrawBy("fifty-move rule")
	case draw.Repetition:
		return chess.DrawBy("repetition")
	}
	return chess.Ongoing
}

func hasCapture(b *engine.Board) bool {
	for _, m := range b.GenerateMoves(nil, chess.NoPieceType) {
		if b.IsCapture(m) {
			return true
		}
	}
	return false
}

// gridRestriction rejects moves within one 2x2 block of the board.
func gridRestriction(b *engine.Board, p chess.Piece, from, to int) bool {
	f, t := b.SquareOf(from), b.SquareOf(to)
	return f.File/2 != t.File/2 || f.Rank/2 != t.Rank/2
}

// placement only drops pieces on the back rank until the hand is empty.
// Bishops go on opposite colours, and dropping king and rook on their
// orthodox squares grants castling.
type placement struct {
	engine.WesternRules
}

func (r placement) PieceMoves(b *engine.Board, sq int, out []chess.Move) []chess.Move {
	if b.ReserveTotal(b.SideToMove()) > 0 {
		return out
	}
	return r.WesternRules.PieceMoves(b, sq, out)
}

func (r placement) DropMoves(b *engine.Board, filter chess.PieceType, out []chess.Move) []chess.Move {
	start := len(out)
	out = r.WesternRules.DropMoves(b, filter, out)
	kept := out[:start]
	for _, m := range out[start:] {
		if placementDropAllowed(b, b.SideToMove(), m) {
			kept = append(kept, m)
		}
	}
	return kept
}

func (r placement) Apply(b *engine.Board, m chess.Move) chess.Piece {
	captured := r.WesternRules.Apply(b, m)
	if m.IsDrop() {
		grantPlacementCastling(b, b.SideToMove())
	}
	return captured
}

func backRank(b *engine.Board, s chess.Side) int {
	if s == chess.Black {
		return b.Height() - 1
	}
	return 0
}

func squareColour(sq chess.Square) int {
	return (sq.File + sq.Rank) % 2
}

// placementDropAllowed applies the back-rank and bishop-colour rules. A drop
// may not take the last free square of a colour an unplaced bishop needs.
func placementDropAllowed(b *engine.Board, us chess.Side, m chess.Move) bool {
	rank := backRank(b, us)
	target := b.SquareOf(m.Target)
	if target.Rank != rank {
		return false
	}
	bishop := chess.MakePiece(chess.Bishop, us)
	var placed, free [2]int
	for f := 0; f < b.Width(); f++ {
		sq := chess.Square{File: f, Rank: rank}
		switch b.PieceAt(sq) {
		case bishop:
			placed[squareColour(sq)]++
		case chess.NoPiece:
			if sq != target {
				free[squareColour(sq)]++
			}
		}
	}
	inHand := b.ReserveCount(bishop)
	if m.Promotion == chess.Bishop {
		c := squareColour(target)
		if placed[c] > 0 {
			return false
		}
		placed[c]++
		inHand--
	}
	if inHand == 0 {
		return true
	}
	for c := 0; c < 2; c++ {
		if placed[c] == 0 && free[c] == 0 {
			return false
		}
	}
	return true
}

// grantPlacementCastling gives side s its castling rights once king and
// rooks stand on their orthodox squares.
func grantPlacementCastling(b *engine.Board, s chess.Side) {
	rank := backRank(b, s)
	if b.PieceAt(chess.Square{File: 4, Rank: rank}) != chess.MakePiece(chess.King, s) {
		return
	}
	rook := chess.MakePiece(chess.Rook, s)
	corners := [2]chess.Square{
		engine.KingSide:  {File: b.Width() - 1, Rank: rank},
		engine.QueenSide: {File: 0, Rank: rank},
	}
	for wing, sq := range corners {
		if b.CastlingRook(s, wing) == 0 && b.PieceAt(sq) == rook {
			b.SetCastlingRook(s, wing, sq)
		}
	}
}
