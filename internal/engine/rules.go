package engine

import (
	"github.com/lgbarn/varboard-go/internal/chess"
)

// DrawRuleResult reports which draw rules apply to the current position.
type DrawRuleResult struct {
	// FiftyMoveRule is true if the variant's reversible-move limit has
	// been reached.
	FiftyMoveRule bool

	// Repetition is true if the position occurred often enough to draw.
	Repetition bool

	// InsufficientMaterial is true if neither side can mate.
	InsufficientMaterial bool
}

// Any reports whether any draw rule applies.
func (d DrawRuleResult) Any() bool {
	return d.FiftyMoveRule || d.Repetition || d.InsufficientMaterial
}

// DrawRules analyzes the current position for draw conditions.
func (b *Board) DrawRules() DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        b.v.FiftyMoveRule > 0 && b.reversible >= b.v.FiftyMoveRule,
		Repetition:           b.IsRepetition(),
		InsufficientMaterial: b.HasInsufficientMaterial(),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side. Only variants with the plain Western
// result rules, a king each and no drops are judged; other variants always
// report false.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func (b *Board) HasInsufficientMaterial() bool {
	if b.v.Family != FamilyWestern || b.v.Royal != chess.King || b.v.Drops || b.v.Gating || b.v.CheckCounting {
		return false
	}
	if b.kings[chess.White] == 0 || b.kings[chess.Black] == 0 {
		return false
	}
	if _, ok := b.v.Results.(WesternRules); !ok {
		return false
	}
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := b.first; sq <= b.last; sq++ {
		p := b.squares[sq]
		if !p.IsValid() {
			continue
		}
		t := p.Type()

		// Kings don't count for material
		if t == chess.King {
			continue
		}

		// Anything but a lone minor piece can mate
		if t != chess.Bishop && t != chess.Knight {
			return false
		}

		if p.Side() == chess.White {
			whitePieces = append(whitePieces, t)
			if t == chess.Bishop {
				whiteBishopOnLight = b.isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, t)
			if t == chess.Bishop {
				blackBishopOnLight = b.isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func (b *Board) isLightSquare(sq int) bool {
	return (b.fileOf(sq)+b.rankOf(sq))%2 == 1
}

// Result implements ResultRules for the Western family: checkmate,
// stalemate, check counting, bare king, the fifty-move rule, repetition and
// insufficient material.
func (WesternRules) Result(b *Board) chess.Result {
	us := b.side
	them := us.Opposite()

	if b.v.CheckCounting {
		if b.aux.checks[them] == 0 {
			return chess.WinFor(them, "checks")
		}
	}

	if !b.HasLegalMoves() {
		switch {
		case b.InCheck(us):
			return chess.WinFor(them, "checkmate")
		case b.v.StalemateLoses:
			return chess.WinFor(them, "stalemate")
		}
		return chess.DrawBy("stalemate")
	}

	if b.v.BareKingLoses {
		if r := b.bareKingResult(); r.IsOver() {
			return r
		}
	}

	draw := b.DrawRules()
	switch {
	case draw.FiftyMoveRule:
		return chess.DrawBy("fifty-move rule")
	case draw.Repetition:
		return chess.DrawBy("repetition")
	case draw.InsufficientMaterial:
		return chess.DrawBy("insufficient material")
	}
	return chess.Ongoing
}

// bareKingResult applies the shatranj rule that a lone king loses, unless
// its owner can bare the opposing king at once, which draws.
func (b *Board) bareKingResult() chess.Result {
	us := b.side
	them := us.Opposite()
	ours, theirs := b.PieceCount(us), b.PieceCount(them)
	switch {
	case ours == 1 && theirs == 1:
		return chess.DrawBy("bare kings")
	case ours == 1 && theirs == 2:
		for _, m := range b.LegalMoves() {
			if b.IsCapture(m) {
				return chess.Ongoing
			}
		}
		return chess.WinFor(them, "bare king")
	case ours == 1:
		return chess.WinFor(them, "bare king")
	}
	return chess.Ongoing
}
