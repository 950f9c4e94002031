package testutil

import (
	"testing"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/parser"
	"github.com/lgbarn/varboard-go/internal/variants"
)

// MustBoard returns a board of the named variant. An empty fen keeps the
// variant's starting position.
func MustBoard(t testing.TB, variant, fen string) *engine.Board {
	t.Helper()
	b, err := variants.NewBoard(variant)
	if err != nil {
		t.Fatalf("NewBoard(%q) error = %v", variant, err)
	}
	if fen != "" {
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q) error = %v", fen, err)
		}
	}
	return b
}

// MustPlay plays moves written in SAN or LAN and returns the moves made.
func MustPlay(t testing.TB, b *engine.Board, moves ...string) []chess.Move {
	t.Helper()
	played := make([]chess.Move, 0, len(moves))
	for _, s := range moves {
		m, err := b.MoveFromString(s)
		if err != nil {
			t.Fatalf("MoveFromString(%q) at ply %d error = %v\n%s", s, b.PlyCount()+1, err, b)
		}
		b.MakeMove(m, nil)
		played = append(played, m)
	}
	return played
}

// PlayMovetext plays the moves of a PGN movetext fragment, ignoring
// comments, variations and move numbers.
func PlayMovetext(t testing.TB, b *engine.Board, text string) []chess.Move {
	t.Helper()
	return MustPlay(t, b, parser.ParseMovetext(text).Moves...)
}

// MoveStrings renders moves, all legal in the current position, in
// notation n.
func MoveStrings(b *engine.Board, moves []chess.Move, n engine.MoveNotation) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = b.MoveString(m, n)
	}
	return out
}

// LegalMoveStrings returns the legal moves of the position in notation n.
func LegalMoveStrings(b *engine.Board, n engine.MoveNotation) []string {
	return MoveStrings(b, b.LegalMoves(), n)
}
