package processing

import (
	"testing"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/errors"
	"github.com/lgbarn/varboard-go/internal/testutil"
)

// TestAnalyzeGame verifies per-ply records
func TestAnalyzeGame(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")

	analysis, err := AnalyzeGame(b, []string{"e4", "e7e5", "Nf3", "Nc6", "Bb5", "a6"})
	testutil.AssertNoError(t, err)

	if len(analysis.Plies) != 6 {
		t.Fatalf("len(Plies) = %d, want 6", len(analysis.Plies))
	}
	var san, lan []string
	for _, p := range analysis.Plies {
		san = append(san, p.SAN)
		lan = append(lan, p.LAN)
	}
	testutil.AssertEqual(t, san, []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"})
	testutil.AssertEqual(t, lan, []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"})

	second := analysis.Plies[1]
	if second.Ply != 2 || second.MoveNumber != 1 || second.Side != chess.Black {
		t.Errorf("Plies[1] = ply %d, move %d, side %v, want 2, 1, Black", second.Ply, second.MoveNumber, second.Side)
	}
	testutil.AssertEqual(t, analysis.InitialFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertEqual(t, analysis.FinalFEN(), "r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4")
	testutil.AssertEqual(t, analysis.Plies[5].Key, b.Key())
	testutil.AssertEqual(t, analysis.Result, chess.Ongoing)
	if got := len(analysis.Plies[0].Changes.Squares); got != 2 {
		t.Errorf("len(Plies[0].Changes.Squares) = %d, want 2", got)
	}
}

// TestAnalyzeGame_Repetition verifies repetition detection
func TestAnalyzeGame_Repetition(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")

	analysis, err := AnalyzeGame(b, []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"})
	testutil.AssertNoError(t, err)

	if !analysis.HasRepetition {
		t.Error("HasRepetition = false, want true")
	}
	testutil.AssertEqual(t, analysis.Result, chess.DrawBy("repetition"))
}

// TestAnalyzeGame_Checks verifies check counting and mate
func TestAnalyzeGame_Checks(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")

	analysis, err := AnalyzeGame(b, []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, analysis.ChecksGiven, [2]int{1, 0})
	if !analysis.Plies[6].Check {
		t.Error("Plies[6].Check = false, want true")
	}
	testutil.AssertEqual(t, analysis.Plies[6].SAN, "Qxf7#")
	testutil.AssertEqual(t, analysis.Result, chess.WinFor(chess.White, "checkmate"))
}

// TestAnalyzeGame_Features verifies drop and underpromotion flags
func TestAnalyzeGame_Features(t *testing.T) {
	t.Run("drops", func(t *testing.T) {
		b := testutil.MustBoard(t, "crazyhouse", "")
		analysis, err := AnalyzeGame(b, []string{"e4", "d5", "exd5", "Qxd5", "P@e4"})
		testutil.AssertNoError(t, err)
		if !analysis.HasDrops {
			t.Error("HasDrops = false, want true")
		}
	})

	t.Run("underpromotion", func(t *testing.T) {
		b := testutil.MustBoard(t, "standard", "7k/P7/8/8/8/8/8/K7 w - - 0 1")
		analysis, err := AnalyzeGame(b, []string{"a8=N"})
		testutil.AssertNoError(t, err)
		if !analysis.HasUnderpromotion {
			t.Error("HasUnderpromotion = false, want true")
		}
		if !analysis.HasInsufficientMaterial {
			t.Error("HasInsufficientMaterial = false, want true")
		}
	})

	t.Run("queen promotion", func(t *testing.T) {
		b := testutil.MustBoard(t, "standard", "7k/P7/8/8/8/8/8/K7 w - - 0 1")
		analysis, err := AnalyzeGame(b, []string{"a8=Q+"})
		testutil.AssertNoError(t, err)
		if analysis.HasUnderpromotion {
			t.Error("HasUnderpromotion = true, want false")
		}
	})
}

// TestAnalyzeGame_IllegalMove verifies analysis stops at the bad move
func TestAnalyzeGame_IllegalMove(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")

	analysis, err := AnalyzeGame(b, []string{"e4", "e5", "Ke3", "Nc6"})
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	var me *errors.MoveError
	if !errors.As(err, &me) {
		t.Fatalf("error %v is not a *MoveError", err)
	}
	if me.Ply != 3 || me.Notation != "Ke3" {
		t.Errorf("MoveError = ply %d %q, want ply 3 \"Ke3\"", me.Ply, me.Notation)
	}
	if len(analysis.Plies) != 2 {
		t.Errorf("len(Plies) = %d, want 2", len(analysis.Plies))
	}
	if b.PlyCount() != 2 {
		t.Errorf("PlyCount() = %d, want 2", b.PlyCount())
	}
}

// TestReplayGame verifies the board ends at the final position
func TestReplayGame(t *testing.T) {
	b := testutil.MustBoard(t, "xiangqi", "")
	testutil.AssertNoError(t, ReplayGame(b, []string{"h3e3", "h8e8"}))
	testutil.AssertEqual(t, b.PlyCount(), 2)

	if err := ReplayGame(b, []string{"a1a9"}); err == nil {
		t.Error("ReplayGame(a1a9) error = nil, want illegal move")
	}
}

// TestValidateGame verifies movetext validation
func TestValidateGame(t *testing.T) {
	tests := []struct {
		name        string
		variant     string
		movetext    string
		valid       bool
		errorPly    int
		parseErrors int
	}{
		{"valid game", "standard", "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 *", true, 0, 0},
		{"comments and variations", "standard", "1. e4 {best by test} e5 (1... c5 2. Nf3) 2. Nf3 *", true, 0, 0},
		{"matching result", "standard", "1. f3 e5 2. g4 Qh4# 0-1", true, 0, 0},
		{"contradicting result", "standard", "1. f3 e5 2. g4 Qh4# 1-0", true, 0, 1},
		{"illegal move", "standard", "1. e4 e5 2. Ke3 *", false, 3, 0},
		{"shogi", "shogi", "1. 7g7f 3c3d 2. 8h2b+ *", true, 0, 0},
		{"tictactoe", "tictactoe", "1. b2 a1 2. c3 a3 3. a2 *", true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.variant, "")
			got := ValidateGame(b, tt.movetext)
			if got.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (%s)", got.Valid, tt.valid, got.ErrorMsg)
			}
			if got.ErrorPly != tt.errorPly {
				t.Errorf("ErrorPly = %d, want %d", got.ErrorPly, tt.errorPly)
			}
			if len(got.ParseErrors) != tt.parseErrors {
				t.Errorf("ParseErrors = %v, want %d entries", got.ParseErrors, tt.parseErrors)
			}
		})
	}
}

// TestCountPlies verifies ply counting ignores numbers and comments
func TestCountPlies(t *testing.T) {
	if got := CountPlies("1. e4 {x} e5 2. Nf3 (2. Nc3) Nc6 *"); got != 4 {
		t.Errorf("CountPlies() = %d, want 4", got)
	}
}
