package worker

import (
	"testing"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/testutil"
)

func TestDivideMatchesSerial(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		fen     string
		depth   int
		workers int
	}{
		{"standard", "standard", "", 3, 4},
		{"kiwipete", "standard", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 8},
		{"one worker", "standard", "", 2, 1},
		{"crazyhouse", "crazyhouse", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R[Pp] w KQkq - 2 3", 2, 3},
		{"shogi", "shogi", "", 2, 4},
		{"xiangqi", "xiangqi", "", 2, 4},
		{"tictactoe", "tictactoe", "", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.variant, tt.fen)
			before := b.FEN(engine.XFEN)

			got, err := Divide(b, tt.depth, tt.workers)
			testutil.AssertNoError(t, err)
			want := b.PerftDivide(tt.depth)
			testutil.AssertEqual(t, got, want)
			testutil.AssertEqual(t, b.FEN(engine.XFEN), before)
		})
	}
}

func TestDivideStartPosition(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")
	entries, err := Divide(b, 3, 4)
	testutil.AssertNoError(t, err)
	if len(entries) != 20 {
		t.Fatalf("len(Divide()) = %d, want 20", len(entries))
	}
	if got := engine.DivideTotal(entries); got != 8902 {
		t.Errorf("DivideTotal() = %d, want 8902", got)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].LAN >= entries[i].LAN {
			t.Errorf("entries not sorted at %d: %q >= %q", i, entries[i-1].LAN, entries[i].LAN)
		}
	}
}

func TestDivideDepthZero(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")
	entries, err := Divide(b, 0, 4)
	if entries != nil || err != nil {
		t.Errorf("Divide(b, 0, 4) = %v, %v, want nil, nil", entries, err)
	}
}

func TestDivideNoLegalMoves(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	entries, err := Divide(b, 2, 4)
	testutil.AssertNoError(t, err)
	if len(entries) != 0 {
		t.Errorf("len(Divide()) = %d, want 0", len(entries))
	}
}

func TestPerftFuncRecovers(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")
	res := PerftFunc(WorkItem{Board: b, Move: chess.NullMove, Depth: 1, Index: 7})
	if res.Error == nil {
		t.Fatal("PerftFunc() with a null move: Error = nil")
	}
	if res.Index != 7 {
		t.Errorf("Index = %d, want 7", res.Index)
	}
}
