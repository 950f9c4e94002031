// verify.go - Cross-checks against independent orthodox chess libraries
package main

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/varboard-go/internal/engine"
)

// hasReference reports whether b is in a position the orthodox libraries
// understand: standard chess with castling rights in KQkq form.
func hasReference(b *engine.Board) bool {
	if b.Variant().Name != "standard" {
		return false
	}
	fields := strings.Fields(b.FEN(engine.XFEN))
	return len(fields) >= 3 && strings.Trim(fields[2], "KQkq-") == ""
}

// referencePerft counts leaf nodes with dragontoothmg's generator.
func referencePerft(b *engine.Board, depth int) (uint64, bool) {
	if !hasReference(b) {
		return 0, false
	}
	board := dragontoothmg.ParseFen(b.FEN(engine.XFEN))
	return dragontoothPerft(&board, depth), true
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}

// compareSAN compares the SAN of b's legal moves with notnil/chess. It
// returns the reference moves b lacks and the moves b has that the
// reference lacks, both sorted.
func compareSAN(b *engine.Board) (missing, extra []string, ok bool) {
	if !hasReference(b) {
		return nil, nil, false
	}
	opt, err := nchess.FEN(b.FEN(engine.XFEN))
	if err != nil {
		return nil, nil, false
	}
	game := nchess.NewGame(opt)
	pos := game.Position()

	want := make(map[string]bool)
	for _, m := range game.ValidMoves() {
		want[nchess.AlgebraicNotation{}.Encode(pos, m)] = true
	}
	for _, m := range b.LegalMoves() {
		san := b.SANMoveString(m)
		if want[san] {
			delete(want, san)
		} else {
			extra = append(extra, san)
		}
	}
	for san := range want {
		missing = append(missing, san)
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra, true
}
