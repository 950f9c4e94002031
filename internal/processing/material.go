package processing

import (
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/errors"
)

// MaterialMatcher matches positions by the pieces on the board.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	types      []chess.PieceType
	counts     [2]map[chess.PieceType]int
}

// NewMaterialMatcher creates a new material matcher for variant v.
// Pattern format: "QRN:qrn" (white pieces : black pieces), written with the
// variant's FEN symbols. Promoted Shogi pieces are written "+P".
// A non-exact pattern asks for at least the pieces named; an exact one
// also forbids any other piece.
func NewMaterialMatcher(v *engine.Variant, pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
		counts:     [2]map[chess.PieceType]int{{}, {}},
	}
	for _, d := range v.Pieces {
		mm.types = append(mm.types, d.Type)
	}

	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "material pattern %q", pattern)
	}
	for i, part := range parts {
		if err := mm.parseSide(v, chess.Side(i), part); err != nil {
			return nil, err
		}
	}
	return mm, nil
}

// parseSide parses one side's piece list.
func (mm *MaterialMatcher) parseSide(v *engine.Variant, s chess.Side, text string) error {
	for i := 0; i < len(text); i++ {
		sym := text[i : i+1]
		if text[i] == '+' && i+1 < len(text) {
			i++
			sym = text[i-1 : i+1]
		}
		t, ok := pieceBySymbol(v, s, sym)
		if !ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "material pattern %q: no %s piece %q in %s",
				mm.pattern, strings.ToLower(s.String()), sym, v.Name)
		}
		mm.counts[s][t]++
	}
	return nil
}

// pieceBySymbol finds the piece type side s writes as sym.
func pieceBySymbol(v *engine.Variant, s chess.Side, sym string) (chess.PieceType, bool) {
	for _, d := range v.Pieces {
		if strings.TrimSuffix(v.Symbol(chess.MakePiece(d.Type, s)), "~") == sym {
			return d.Type, true
		}
	}
	return chess.NoPieceType, false
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}

// MatchPosition checks if the pieces on b match the material pattern.
// Pieces in hand do not count.
func (mm *MaterialMatcher) MatchPosition(b *engine.Board) bool {
	have := [2]map[chess.PieceType]int{{}, {}}
	for _, sq := range b.Squares() {
		p := b.At(sq)
		if p.IsValid() {
			have[p.Side()][p.Type()]++
		}
	}

	for s := chess.White; s <= chess.Black; s++ {
		for t, count := range mm.counts[s] {
			if have[s][t] < count || (mm.exactMatch && have[s][t] != count) {
				return false
			}
		}
		if !mm.exactMatch {
			continue
		}
		for _, t := range mm.types {
			if mm.counts[s][t] == 0 && have[s][t] > 0 {
				return false
			}
		}
	}
	return true
}

// FindMaterial replays moves on b and returns the first ply at which the
// position matches mm; ply 0 is the start position. It reports -1 when no
// position matches. b is left after the last move played.
func FindMaterial(b *engine.Board, moves []string, mm *MaterialMatcher) (int, error) {
	if mm.MatchPosition(b) {
		return 0, nil
	}
	for i, text := range moves {
		m, err := b.MoveFromString(text)
		if err != nil {
			return -1, err
		}
		b.MakeMove(m, nil)
		if mm.MatchPosition(b) {
			return i + 1, nil
		}
	}
	return -1, nil
}
