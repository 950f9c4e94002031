package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSimpleGame(t *testing.T) {
	pgn := `[Event "Test"]
[Site "?"]
[White "Player1"]
[Black "Player2"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0
`

	mt := ParseMovetext(pgn)

	want := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"}
	if diff := cmp.Diff(want, mt.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
	if mt.Result != "1-0" {
		t.Errorf("Result = %q, want %q", mt.Result, "1-0")
	}
}

func TestParseFoolsMate(t *testing.T) {
	mt := ParseMovetext(`1. f3 e5 2. g4 Qh4# 0-1`)

	if len(mt.Moves) != 4 {
		t.Errorf("len(Moves) = %d, want 4", len(mt.Moves))
	}
	if got := mt.Moves[3]; got != "Qh4#" {
		t.Errorf("Moves[3] = %q, want %q", got, "Qh4#")
	}
	if mt.Result != "0-1" {
		t.Errorf("Result = %q, want %q", mt.Result, "0-1")
	}
}

func TestParseWithComments(t *testing.T) {
	mt := ParseMovetext("1. e4 {Best by\ntest} e5 ; rest of line\n2. Nf3 *")

	if diff := cmp.Diff([]string{"e4", "e5", "Nf3"}, mt.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
	if len(mt.Comments) != 1 || mt.Comments[0] != "Best by\ntest" {
		t.Errorf("Comments = %q, want one comment", mt.Comments)
	}
}

func TestParseWithVariations(t *testing.T) {
	mt := ParseMovetext(`1. e4 e5 (1... c5 2. Nf3 (2. c3)) 2. Nf3 *`)

	if diff := cmp.Diff([]string{"e4", "e5", "Nf3"}, mt.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCastling(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"O-O", "4. O-O *", "O-O"},
		{"O-O-O", "5. O-O-O+ *", "O-O-O+"},
		{"0-0", "4. 0-0 *", "0-0"},
		{"0-0-0", "4... 0-0-0 1/2-1/2", "0-0-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := ParseMovetext(tt.text)
			if len(mt.Moves) != 1 || mt.Moves[0] != tt.expected {
				t.Errorf("Moves = %q, want [%q]", mt.Moves, tt.expected)
			}
		})
	}
}

func TestParseVariantMoves(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"crazyhouse drop", "1. e4 d5 2. exd5 Qxd5 3. N@f3 *", []string{"e4", "d5", "exd5", "Qxd5", "N@f3"}},
		{"shogi san", "1. P7f P3d 2. Bx2b+ Sx2b 3. B*4e", []string{"P7f", "P3d", "Bx2b+", "Sx2b", "B*4e"}},
		{"usi", "7g7f 3c3d 8h2b+", []string{"7g7f", "3c3d", "8h2b+"}},
		{"gating", "1. Nf3/H e5", []string{"Nf3/H", "e5"}},
		{"large board", "1. e2e4 j7j5", []string{"e2e4", "j7j5"}},
		{"null move", "1. e4 -- 2. d4", []string{"e4", "--", "d4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := ParseMovetext(tt.text)
			if diff := cmp.Diff(tt.want, mt.Moves); diff != "" {
				t.Errorf("Moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNAGsDropped(t *testing.T) {
	mt := ParseMovetext(`1. e4! e5? 2. Nf3!! $14 Nc6?? *`)

	if diff := cmp.Diff([]string{"e4", "e5", "Nf3", "Nc6"}, mt.Moves); diff != "" {
		t.Errorf("Moves mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerDiagnostics(t *testing.T) {
	var log strings.Builder
	p := NewParser(strings.NewReader("1. e4 ) e5 *"), &log)
	mt := p.Parse()

	if len(mt.Moves) != 2 {
		t.Errorf("len(Moves) = %d, want 2", len(mt.Moves))
	}
	if !strings.Contains(log.String(), "Too many ')'") {
		t.Errorf("log = %q, want unmatched parenthesis message", log.String())
	}
}

func TestLexerTokens(t *testing.T) {
	l := NewLexer(strings.NewReader("12. Nf3 $1 {c} (e4) 1/2-1/2"), nil)

	var got []TokenType
	for tok := l.NextToken(); tok.Type != EOFToken; tok = l.NextToken() {
		got = append(got, tok.Type)
	}
	want := []TokenType{MoveNumber, MoveToken, NAGToken, CommentToken, RAVStart, MoveToken, RAVEnd, TerminatingResult}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
