package variants_test

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/errors"
	"github.com/lgbarn/varboard-go/internal/testutil"
	"github.com/lgbarn/varboard-go/internal/variants"
)

func TestNames(t *testing.T) {
	names := variants.Names()
	if len(names) != 25 {
		t.Errorf("len(Names()) = %d, want 25", len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
	for _, want := range []string{"standard", "crazyhouse", "shogi", "xiangqi", "janggi", "connectfour"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() is missing %q", want)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"standard", "standard"},
		{"Standard", "standard"},
		{" chess ", "standard"},
		{"chess960", "fischerandom"},
		{"KOTH", "kingofthehill"},
		{"3check", "threecheck"},
		{"giveaway", "antichess"},
		{"zh", "crazyhouse"},
		{"cfour", "connectfour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := variants.Get(tt.name)
			testutil.AssertNoError(t, err)
			if v.Name != tt.want {
				t.Errorf("Get(%q).Name = %q, want %q", tt.name, v.Name, tt.want)
			}
		})
	}

	_, err := variants.Get("bughouse")
	testutil.AssertErrorIs(t, err, errors.ErrUnknownVariant)
	if _, err := variants.NewBoard(""); !errors.Is(err, errors.ErrUnknownVariant) {
		t.Errorf("NewBoard(\"\") error = %v, want ErrUnknownVariant", err)
	}
}

func TestStartPositions(t *testing.T) {
	for _, name := range variants.Names() {
		t.Run(name, func(t *testing.T) {
			b := testutil.MustBoard(t, name, "")
			fen := b.FEN(engine.XFEN)
			again := testutil.MustBoard(t, name, fen)
			testutil.AssertEqual(t, again.FEN(engine.XFEN), fen)
			if !b.Equal(again) {
				t.Errorf("board from %q differs from the start position", fen)
			}
			if len(b.LegalMoves()) == 0 {
				t.Error("LegalMoves() is empty in the start position")
			}
			testutil.AssertEqual(t, b.Result(), chess.Ongoing)
		})
	}
}

func TestVariantsAreIndependent(t *testing.T) {
	a, _ := variants.Get("crazyhouse")
	b, _ := variants.Get("crazyhouse")
	if a != b {
		t.Error("Get() returned different configurations for one name")
	}
	if variants.Capablanca() == variants.Capablanca() {
		t.Error("Capablanca() returned a shared configuration")
	}
}

func TestRacingKings(t *testing.T) {
	t.Run("check is illegal", func(t *testing.T) {
		b := testutil.MustBoard(t, "racingkings", "")
		if _, err := b.MoveFromString("e2c3"); err == nil {
			t.Error("MoveFromString(e2c3) succeeded, want the check rejected")
		}
		if got := len(b.LegalMoves()); got != 21 {
			t.Errorf("len(LegalMoves()) = %d, want 21", got)
		}

		std := testutil.MustBoard(t, "standard", variants.RacingKingsFEN)
		if _, err := std.MoveFromString("e2c3"); err != nil {
			t.Errorf("standard MoveFromString(e2c3) error = %v", err)
		}
	})

	tests := []struct {
		name  string
		fen   string
		moves []string
		want  chess.Result
	}{
		{"white reaches the goal", "7K/8/k7/8/8/8/8/8 b - - 0 1", nil, chess.WinFor(chess.White, "king reached the goal")},
		{"black may still follow", "7K/k7/8/8/8/8/8/8 b - - 0 1", nil, chess.Ongoing},
		{"both reach the goal", "7K/k7/8/8/8/8/8/8 b - - 0 1", []string{"Kb8"}, chess.DrawBy("both kings reached the goal")},
		{"black reaches the goal", "k7/8/8/8/8/8/8/K7 w - - 0 1", nil, chess.WinFor(chess.Black, "king reached the goal")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "racingkings", tt.fen)
			testutil.MustPlay(t, b, tt.moves...)
			testutil.AssertEqual(t, b.Result(), tt.want)
		})
	}
}

func TestKingOfTheHill(t *testing.T) {
	b := testutil.MustBoard(t, "kingofthehill", "4k3/p7/8/8/8/8/P3K3/8 w - - 0 1")
	testutil.MustPlay(t, b, "Ke3", "Kd7")
	testutil.AssertEqual(t, b.Result(), chess.Ongoing)
	testutil.MustPlay(t, b, "Kd4")
	testutil.AssertEqual(t, b.Result(), chess.WinFor(chess.White, "king of the hill"))
}

func TestHorde(t *testing.T) {
	b := testutil.MustBoard(t, "horde", "")
	if got := len(b.LegalMoves()); got != 8 {
		t.Errorf("len(LegalMoves()) = %d, want 8", got)
	}

	b = testutil.MustBoard(t, "horde", "4k3/8/8/8/8/8/8/P7 w - - 0 1")
	testutil.AssertSameElements(t, testutil.LegalMoveStrings(b, engine.LAN), []string{"a1a2", "a1a3"})

	b = testutil.MustBoard(t, "horde", "4k3/8/8/8/8/8/8/Pr6 b - - 0 1")
	testutil.MustPlay(t, b, "Rxa1")
	testutil.AssertEqual(t, b.Result(), chess.WinFor(chess.Black, "horde destroyed"))
}

func TestAntichess(t *testing.T) {
	b := testutil.MustBoard(t, "antichess", "")
	testutil.MustPlay(t, b, "e4", "d5")
	testutil.AssertSameElements(t, testutil.LegalMoveStrings(b, engine.LAN), []string{"e4d5"})
	if _, err := b.MoveFromString("Nf3"); err == nil {
		t.Error("MoveFromString(Nf3) succeeded, want captures compulsory")
	}

	t.Run("king can be captured", func(t *testing.T) {
		b := testutil.MustBoard(t, "antichess", "8/8/8/8/8/8/3k4/3QK3 b - - 0 1")
		testutil.AssertSameElements(t, testutil.LegalMoveStrings(b, engine.LAN), []string{"d2d1", "d2e1"})
	})

	t.Run("no pieces left wins", func(t *testing.T) {
		b := testutil.MustBoard(t, "antichess", "8/8/8/8/8/8/8/k7 w - - 0 1")
		testutil.AssertEqual(t, b.Result(), chess.WinFor(chess.White, "no moves left"))
	})
}

func TestGrid(t *testing.T) {
	b := testutil.MustBoard(t, "grid", "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertSameElements(t, testutil.LegalMoveStrings(b, engine.LAN), []string{"e1d1", "e1d2"})
}

func TestPlacement(t *testing.T) {
	b := testutil.MustBoard(t, "placement", "")
	moves := testutil.LegalMoveStrings(b, engine.LAN)
	if len(moves) != 40 {
		t.Errorf("len(LegalMoves()) = %d, want 40", len(moves))
	}
	for _, m := range moves {
		if m[1] != '@' || m[3] != '1' {
			t.Errorf("LegalMoves() contains %q, want back-rank drops only", m)
		}
	}

	t.Run("bishops on opposite colours", func(t *testing.T) {
		b := testutil.MustBoard(t, "placement", "8/pppppppp/8/8/8/8/PPPPPPPP/B7[NNBRRQKnnbbrrqk] w - - 0 1")
		if _, err := b.MoveFromString("B@c1"); err == nil {
			t.Error("MoveFromString(B@c1) succeeded, want a second bishop on a1's colour rejected")
		}
		for _, s := range []string{"B@b1", "N@c1"} {
			if _, err := b.MoveFromString(s); err != nil {
				t.Errorf("MoveFromString(%q) error = %v", s, err)
			}
		}
	})

	t.Run("castling granted", func(t *testing.T) {
		b := testutil.MustBoard(t, "placement", "8/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR[Knnbbrrqk] w - - 0 1")
		testutil.MustPlay(t, b, "K@e1")
		if b.CastlingRook(chess.White, engine.KingSide) == 0 || b.CastlingRook(chess.White, engine.QueenSide) == 0 {
			t.Errorf("castling not granted after K@e1: %s", b.FEN(engine.XFEN))
		}
		if b.CastlingRook(chess.Black, engine.KingSide) != 0 {
			t.Error("black castling granted before black placed its pieces")
		}
	})
}

func TestTablebasePosition(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		fen     string
		ok      bool
		pieces  int
	}{
		{"KPK", "standard", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", true, 3},
		{"six pieces", "standard", "4k3/3pp3/8/8/8/8/3PP3/4K3 w - - 0 1", false, 0},
		{"start", "standard", "", false, 0},
		{"chess960", "fischerandom", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", true, 3},
		{"crazyhouse", "crazyhouse", "4k3/8/8/8/8/8/4P3/4K3[] w - - 0 1", false, 0},
		{"threecheck", "threecheck", "4k3/8/8/8/8/8/4P3/4K3 w - - 3+3 0 1", false, 0},
		{"shogi", "shogi", "4k4/9/9/9/9/9/9/9/4K4[-] w 1", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.variant, tt.fen)
			tp, ok := b.TablebasePosition()
			if ok != tt.ok {
				t.Fatalf("TablebasePosition() ok = %v, want %v", ok, tt.ok)
			}
			if len(tp.Pieces) != tt.pieces {
				t.Errorf("len(Pieces) = %d, want %d", len(tp.Pieces), tt.pieces)
			}
		})
	}

	b := testutil.MustBoard(t, "standard", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	tp, _ := b.TablebasePosition()
	if !tp.HasCastling() {
		t.Error("HasCastling() = false, want true")
	}
	testutil.AssertEqual(t, tp.Castling[chess.White][engine.QueenSide], chess.Square{File: 0, Rank: 0})
	testutil.AssertEqual(t, tp.Castling[chess.White][engine.KingSide], chess.InvalidSquare)
	testutil.AssertEqual(t, tp.EnPassant, chess.InvalidSquare)
}
