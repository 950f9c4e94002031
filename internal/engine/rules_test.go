package engine_test

import (
	"testing"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/testutil"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		fen     string
		moves   []string
		want    chess.Result
	}{
		{"start", "standard", "", nil, chess.Ongoing},
		{"fool's mate", "standard", "", []string{"f3", "e5", "g4", "Qh4#"}, chess.WinFor(chess.Black, "checkmate")},
		{"back rank mate", "standard", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"Ra8#"}, chess.WinFor(chess.White, "checkmate")},
		{"stalemate", "standard", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", nil, chess.DrawBy("stalemate")},
		{"K vs K", "standard", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", nil, chess.DrawBy("insufficient material")},
		{"K+N vs K", "standard", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", nil, chess.DrawBy("insufficient material")},
		{"K+B vs K+B same colour", "standard", "5b2/8/8/8/8/8/8/2B1K2k w - - 0 1", nil, chess.DrawBy("insufficient material")},
		{"K+B vs K+B opposite colour", "standard", "k4b2/8/8/8/8/8/8/3BK3 w - - 0 1", nil, chess.Ongoing},
		{"K+R vs K", "standard", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", nil, chess.Ongoing},
		{"fifty moves", "standard", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", []string{"Ra2"}, chess.DrawBy("fifty-move rule")},
		{"fifty moves mate first", "standard", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 99 80", []string{"Ra8#"}, chess.WinFor(chess.White, "checkmate")},
		{"repetition", "standard", "", []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}, chess.DrawBy("repetition")},
		{"two-fold", "standard", "", []string{"Nf3", "Nf6", "Ng1", "Ng8"}, chess.Ongoing},
		{"three checks", "threecheck", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1+3 0 2", []string{"Bc4", "Nc6", "Bxf7+"}, chess.WinFor(chess.White, "checks")},
		{"threecheck K vs K", "threecheck", "4k3/8/8/8/8/8/8/4K3 w - - 3+3 0 1", nil, chess.Ongoing},
		{"shatranj stalemate wins", "shatranj", "7k/4N3/6K1/8/8/8/8/8 b - - 0 1", nil, chess.WinFor(chess.White, "stalemate")},
		{"shatranj bare king", "shatranj", "7k/8/6K1/8/8/8/8/R7 b - - 0 1", nil, chess.WinFor(chess.White, "bare king")},
		{"shatranj bare king can reply", "shatranj", "7k/6R1/8/5K2/8/8/8/8 b - - 0 1", nil, chess.Ongoing},
		{"shatranj bare kings", "shatranj", "7k/8/5K2/8/8/8/8/8 w - - 0 1", nil, chess.DrawBy("bare kings")},
		{"shogi mate", "shogi", "4k4/4G4/4P4/9/9/9/9/9/4K4[-] b 10", nil, chess.WinFor(chess.White, "checkmate")},
		{"shogi repetition", "shogi", "", []string{"4i4h", "6a6b", "4h4i", "6b6a", "4i4h", "6a6b", "4h4i", "6b6a", "4i4h", "6a6b", "4h4i", "6b6a"}, chess.DrawBy("repetition")},
		{"shogi three-fold", "shogi", "", []string{"4i4h", "6a6b", "4h4i", "6b6a", "4i4h", "6a6b", "4h4i", "6b6a"}, chess.Ongoing},
		{"xiangqi mate", "xiangqi", "3k5/3R5/3R5/9/9/9/9/9/9/4K4 b - - 0 1", nil, chess.WinFor(chess.White, "checkmate")},
		{"xiangqi stalemate loses", "xiangqi", "3k5/2R6/4R4/9/9/9/9/9/9/5K3 b - - 0 1", nil, chess.WinFor(chess.White, "stalemate")},
		{"xiangqi move limit", "xiangqi", "3k5/9/9/9/9/9/9/9/R8/4K4 w - - 119 80", []string{"Ra3"}, chess.DrawBy("move limit")},
		{"tictactoe row", "tictactoe", "", []string{"a1", "a2", "b1", "b2", "c1"}, chess.WinFor(chess.White, "line")},
		{"tictactoe diagonal", "tictactoe", "", []string{"a2", "a1", "c1", "b2", "b1", "c3"}, chess.WinFor(chess.Black, "line")},
		{"tictactoe draw", "tictactoe", "", []string{"a1", "b2", "c3", "b1", "b3", "a3", "c1", "c2", "a2"}, chess.DrawBy("board full")},
		{"connectfour column", "connectfour", "", []string{"d1", "e1", "d2", "e2", "d3", "e3", "d4"}, chess.WinFor(chess.White, "line")},
		{"connectfour ongoing", "connectfour", "", []string{"d1", "e1", "d2", "e2", "d3", "e3"}, chess.Ongoing},
		{"gomoku five", "gomoku", "", []string{"a1", "a15", "b2", "b15", "c3", "c15", "d4", "d15", "e5"}, chess.WinFor(chess.White, "line")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.variant, tt.fen)
			testutil.MustPlay(t, b, tt.moves...)
			testutil.AssertEqual(t, b.Result(), tt.want)
		})
	}
}

func TestCheckAndMate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		inCheck   bool
		checkmate bool
		stalemate bool
	}{
		{"start", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false, false, false},
		{"check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", true, false, false},
		{"mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true, true, false},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, false, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", true, false, false},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "standard", tt.fen)
			if got := b.InCheck(b.SideToMove()); got != tt.inCheck {
				t.Errorf("InCheck() = %v, want %v", got, tt.inCheck)
			}
			if got := b.IsCheckmate(); got != tt.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.checkmate)
			}
			if got := b.IsStalemate(); got != tt.stalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.stalemate)
			}
			if got := b.HasLegalMoves(); got == (tt.checkmate || tt.stalemate) {
				t.Errorf("HasLegalMoves() = %v", got)
			}
		})
	}
}

func TestDrawRules(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "")
	testutil.AssertFalse(t, b.DrawRules().Any(), "start position")

	testutil.MustPlay(t, b, "Nf3", "Nf6", "Ng1", "Ng8")
	testutil.AssertEqual(t, b.RepeatCount(), 1)
	testutil.AssertFalse(t, b.IsRepetition(), "two-fold")

	testutil.MustPlay(t, b, "Nf3", "Nf6", "Ng1", "Ng8")
	testutil.AssertEqual(t, b.RepeatCount(), 2)
	testutil.AssertTrue(t, b.DrawRules().Repetition, "three-fold")

	// An irreversible move ends the window of earlier positions.
	testutil.MustPlay(t, b, "e4", "e5", "Nf3", "Nf6", "Ng1", "Ng8")
	testutil.AssertEqual(t, b.RepeatCount(), 1)
}

func TestGivesCheck(t *testing.T) {
	b := testutil.MustBoard(t, "standard", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	check, _ := b.MoveFromString("Ra8")
	quiet, _ := b.MoveFromString("Ra7")
	testutil.AssertTrue(t, b.GivesCheck(check), "Ra8")
	testutil.AssertFalse(t, b.GivesCheck(quiet), "Ra7")
}

func TestShogiDropRules(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		legal bool
	}{
		{"pawn drop", "4k4/9/9/9/9/9/9/9/4K4[P] w 1", "P*5e", true},
		{"pawn on last rank", "4k4/9/9/9/9/9/9/9/4K4[P] w 1", "P*1a", false},
		{"knight on second rank", "4k4/9/9/9/9/9/9/9/4K4[N] w 1", "N*1b", false},
		{"knight on third rank", "4k4/9/9/9/9/9/9/9/4K4[N] w 1", "N*1c", true},
		{"lance on last rank", "4k4/9/9/9/9/9/9/9/4K4[L] w 1", "L*1a", false},
		{"nifu", "4k4/9/9/9/9/9/4P4/9/4K4[P] w 1", "P*5e", false},
		{"nifu ignores tokin", "4k4/9/9/9/9/9/4+P4/9/4K4[P] w 1", "P*5e", true},
		{"pawn drop check", "4k4/9/9/9/9/9/9/9/4K4[P] w 1", "P*5b", true},
		{"pawn drop mate", "3rkr3/3s1s3/4G4/9/9/9/9/9/4K4[P] w 1", "P*5b", false},
		{"gold drop mate", "3rkr3/3s1s3/4G4/9/9/9/9/9/4K4[G] w 1", "G*5b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "shogi", tt.fen)
			_, err := b.MoveFromString(tt.move)
			if got := err == nil; got != tt.legal {
				t.Errorf("MoveFromString(%q) error = %v, want legal %v", tt.move, err, tt.legal)
			}
		})
	}
}

func TestShogiPromotion(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		route string
		want  []string
	}{
		{"silver enters zone", "4k4/9/9/4S4/9/9/9/9/4K4[-] w 1", "5d5c", []string{"S5c+", "S5c="}},
		{"pawn must promote", "4k4/P8/9/9/9/9/9/9/4K4[-] w 1", "9b9a", []string{"P9a+"}},
		{"knight must promote", "4k4/9/N8/9/9/9/9/9/4K4[-] w 1", "9c8a", []string{"N8a+"}},
		{"gold never promotes", "4k4/9/9/4G4/9/9/9/9/4K4[-] w 1", "5d5c", []string{"G5c"}},
		{"outside zone", "4k4/9/9/9/4S4/9/9/9/4K4[-] w 1", "5e5d", []string{"S5d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "shogi", tt.fen)
			var got []string
			for _, m := range b.LegalMoves() {
				if lan := b.LANMoveString(m); lan == tt.route || lan == tt.route+"+" {
					got = append(got, b.SANMoveString(m))
				}
			}
			testutil.AssertSameElements(t, got, tt.want)
		})
	}
}

func TestXiangqiRules(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		legal bool
	}{
		{"general leaves palace", "5k3/9/9/9/9/9/9/9/9/3K5 w - - 0 1", "d1c1", false},
		{"general in palace", "5k3/9/9/9/9/9/9/9/9/3K5 w - - 0 1", "d1d2", true},
		{"flying general", "3k5/9/9/9/9/9/9/9/9/4K4 w - - 0 1", "e1d1", false},
		{"advisor diagonal", "5k3/9/9/9/9/9/9/9/9/3AK4 w - - 0 1", "d1e2", true},
		{"advisor leaves palace", "5k3/9/9/9/9/9/9/9/9/3AK4 w - - 0 1", "d1c2", false},
		{"elephant", "5k3/9/9/9/9/9/9/9/9/2B1K4 w - - 0 1", "c1e3", true},
		{"elephant blocked eye", "5k3/9/9/9/9/9/9/9/3P5/2B1K4 w - - 0 1", "c1e3", false},
		{"elephant crosses river", "5k3/9/9/9/9/2B6/9/9/9/4K4 w - - 0 1", "c5e7", false},
		{"horse hobbled", "5k3/9/9/9/9/9/9/9/1P7/1N2K4 w - - 0 1", "b1c3", false},
		{"horse free", "5k3/9/9/9/9/9/9/9/9/1N2K4 w - - 0 1", "b1c3", true},
		{"soldier sideways before river", "5k3/9/9/9/9/9/4P4/9/9/4K4 w - - 0 1", "e4d4", false},
		{"soldier sideways after river", "5k3/9/9/9/4P4/9/9/9/9/4K4 w - - 0 1", "e6d6", true},
		{"soldier never retreats", "5k3/9/9/9/4P4/9/9/9/9/4K4 w - - 0 1", "e6e5", false},
		{"cannon needs screen", "5k3/9/9/4r4/9/9/9/9/4C4/3K5 w - - 0 1", "e2e7", false},
		{"cannon captures over screen", "5k3/9/9/4r4/4p4/9/9/9/4C4/3K5 w - - 0 1", "e2e7", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "xiangqi", tt.fen)
			_, err := b.MoveFromString(tt.move)
			if got := err == nil; got != tt.legal {
				t.Errorf("MoveFromString(%q) error = %v, want legal %v", tt.move, err, tt.legal)
			}
		})
	}
}

func TestJanggiRules(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		legal bool
	}{
		{"king palace diagonal", "3k5/9/9/9/9/9/9/9/9/3K5 w - - 0 1", "d1e2", true},
		{"king back along diagonal", "3k5/9/9/9/9/9/9/9/4K4/9 w - - 0 1", "e2d1", true},
		{"king leaves palace", "3k5/9/9/9/9/9/9/9/9/3K5 w - - 0 1", "d1c1", false},
		{"kings may face", "4k4/9/9/9/9/9/9/9/9/3K5 w - - 0 1", "d1e1", true},
		{"chariot along palace diagonal", "4k4/9/9/9/9/9/9/9/9/3RK4 w - - 0 1", "d1f3", true},
		{"chariot diagonal outside palace", "4k4/9/9/9/9/9/9/9/9/2R1K4 w - - 0 1", "c1d2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, "janggi", tt.fen)
			_, err := b.MoveFromString(tt.move)
			if got := err == nil; got != tt.legal {
				t.Errorf("MoveFromString(%q) error = %v, want legal %v", tt.move, err, tt.legal)
			}
		})
	}
}
