package main

import (
	"reflect"
	"testing"

	"github.com/lgbarn/varboard-go/internal/config"
	"github.com/lgbarn/varboard-go/internal/engine"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(divide, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(variantName, "xiangqi")()
	defer saveRestoreString(fenString, "  rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1 ")()
	defer saveRestoreString(movesText, "1. h2e2 h9g7")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Variant != "xiangqi" {
		t.Errorf("Variant = %q, want xiangqi", cfg.Variant)
	}
	if cfg.FEN != "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1" {
		t.Errorf("FEN = %q, want trimmed FEN", cfg.FEN)
	}
	if !reflect.DeepEqual(cfg.Moves, []string{"h2e2", "h9g7"}) {
		t.Errorf("Moves = %v, want [h2e2 h9g7]", cfg.Moves)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Summary},
		{"quiet", true, false, config.Silent},
		{"verbose", false, true, config.Verbose},
		{"quiet wins", true, true, config.Silent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyMaterialFlags(t *testing.T) {
	tests := []struct {
		name      string
		z, y      string
		want      string
		wantExact bool
	}{
		{"none", "", "", "", false},
		{"minimal", "QR:qrr", "", "QR:qrr", false},
		{"exact", "", "KR:kr", "KR:kr", true},
		{"exact wins", "Q", "KR:kr", "KR:kr", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(materialMatch, tt.z)()
			defer saveRestoreString(materialMatchExact, tt.y)()
			cfg := config.NewConfig()
			applyMaterialFlags(cfg)
			if cfg.Material != tt.want || cfg.MaterialExact != tt.wantExact {
				t.Errorf("Material = %q exact %v; want %q exact %v", cfg.Material, cfg.MaterialExact, tt.want, tt.wantExact)
			}
		})
	}
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreInt(lineLength, 60)()
	defer saveRestoreString(outputFormat, "lan")()
	defer saveRestoreBool(shredderFEN, true)()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(showLegal, true)()
	defer saveRestoreBool(showPlies, true)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	if cfg.Output.MaxLineLength != 60 {
		t.Errorf("MaxLineLength = %d; want 60", cfg.Output.MaxLineLength)
	}
	if cfg.Output.Notation != engine.LAN {
		t.Errorf("Notation = %v; want LAN", cfg.Output.Notation)
	}
	if cfg.Output.FENNotation != engine.ShredderFEN {
		t.Errorf("FENNotation = %v; want ShredderFEN", cfg.Output.FENNotation)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.ShowLegalMoves || !cfg.Output.ShowMoves {
		t.Errorf("Output = %+v; want JSON with listings", cfg.Output)
	}
}

func TestApplyOutputFlags_ZeroLineLength(t *testing.T) {
	defer saveRestoreInt(lineLength, 0)()
	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d; want default 80", cfg.Output.MaxLineLength)
	}
}

func TestApplyPerftFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 4)()
		defer saveRestoreBool(divide, true)()
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreBool(verifyPerft, true)()

		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		want := config.PerftConfig{Depth: 4, Divide: true, Workers: 3, Verify: true}
		if cfg.Perft != want {
			t.Errorf("Perft = %+v; want %+v", cfg.Perft, want)
		}
	})

	t.Run("auto workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		if cfg.Perft.Workers != config.NewPerftConfig().Workers {
			t.Errorf("Workers = %d; want default %d", cfg.Perft.Workers, config.NewPerftConfig().Workers)
		}
	})
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want engine.MoveNotation
	}{
		{"san", engine.SAN},
		{"SAN", engine.SAN},
		{"lan", engine.LAN},
		{"uci", engine.LAN},
		{"usi", engine.LAN},
		{"lalg", engine.LAN},
		{"bogus", engine.SAN},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseNotation(tt.in); got != tt.want {
				t.Errorf("parseNotation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMoveList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"bare moves", "e4 e5 Nf3", []string{"e4", "e5", "Nf3"}},
		{"numbered with result", "1. e4 e5 2. Nf3 1-0", []string{"e4", "e5", "Nf3"}},
		{"comments", "1. e4 {king pawn} c5", []string{"e4", "c5"}},
		{"drops", "1. P@e4 N*5e", []string{"P@e4", "N*5e"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMoveList(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMoveList(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
