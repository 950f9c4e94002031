// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/varboard-go/internal/config"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/parser"
)

var (
	// Position options
	variantName = flag.String("variant", "standard", "Variant to play (see -variants)")
	fenString   = flag.String("fen", "", "Start from this FEN instead of the initial position")
	movesText   = flag.String("moves", "", "Moves to play, SAN or LAN, optionally with move numbers")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to look for (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to look for")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	outputFormat = flag.String("W", "san", "Move notation: san, lan")
	shredderFEN  = flag.Bool("shredder", false, "Write castling rights as rook files (Shredder-FEN)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showLegal    = flag.Bool("legal", false, "List the legal moves in the final position")
	showPlies    = flag.Bool("list", false, "List every ply with the position after it")

	// Perft options
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to this depth (0 = off)")
	divide      = flag.Bool("divide", false, "Break the perft count down by root move")
	workers     = flag.Int("workers", 0, "Number of worker goroutines for perft (0 = auto-detect based on CPU cores)")
	verifyPerft = flag.Bool("verify", false, "Cross-check perft against an independent generator where one exists")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose   = flag.Bool("verbose", false, "Log every ply")

	// Other options
	listVariants = flag.Bool("variants", false, "List the known variants")
	help         = flag.Bool("h", false, "Show help")
	version      = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Variant = *variantName
	cfg.FEN = strings.TrimSpace(*fenString)
	cfg.Moves = parseMoveList(*movesText)
	applyMaterialFlags(cfg)

	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applyMaterialFlags applies the material flags. -y wins over -z.
func applyMaterialFlags(cfg *config.Config) {
	switch {
	case *materialMatchExact != "":
		cfg.Material = *materialMatchExact
		cfg.MaterialExact = true
	case *materialMatch != "":
		cfg.Material = *materialMatch
		cfg.MaterialExact = false
	}
}

// applyOutputFlags applies the formatting flags.
func applyOutputFlags(cfg *config.Config) {
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.Notation = parseNotation(*outputFormat)
	if *shredderFEN {
		cfg.Output.FENNotation = engine.ShredderFEN
	}
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowLegalMoves = *showLegal
	cfg.Output.ShowMoves = *showPlies
}

// applyPerftFlags applies the perft flags. A zero worker count keeps the
// configured default.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Verify = *verifyPerft
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// parseNotation converts a -W value to a move notation. Unknown values fall
// back to SAN.
func parseNotation(s string) engine.MoveNotation {
	switch strings.ToLower(s) {
	case "lan", "lalg", "uci", "usi":
		return engine.LAN
	default:
		return engine.SAN
	}
}

// parseMoveList extracts the moves from movetext such as "1. e4 e5 2. Nf3".
// Move numbers, comments and a trailing result are dropped.
func parseMoveList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return parser.ParseMovetext(text).Moves
}
