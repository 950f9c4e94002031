// varboard plays moves in chess-family variants, reports the resulting
// position and counts move trees with perft.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/varboard-go/internal/config"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/errors"
	"github.com/lgbarn/varboard-go/internal/output"
	"github.com/lgbarn/varboard-go/internal/processing"
	"github.com/lgbarn/varboard-go/internal/variants"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("varboard-go version %s\n", programVersion)
		os.Exit(0)
	}

	if *listVariants {
		fmt.Println(strings.Join(variants.Names(), "\n"))
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	err := run(cfg)
	closeFiles(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the board cfg describes, plays its moves and writes the report.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := setupBoard(cfg)
	if err != nil {
		return err
	}

	var mm *processing.MaterialMatcher
	start := b.Clone()
	if cfg.Material != "" {
		mm, err = processing.NewMaterialMatcher(b.Variant(), cfg.Material, cfg.MaterialExact)
		if err != nil {
			return err
		}
	}

	analysis, err := processing.AnalyzeGame(b, cfg.Moves)
	if err != nil {
		return errors.Wrapf(err, "after %d moves", len(analysis.Plies))
	}
	logAnalysis(cfg, analysis)

	report := output.BuildReport(b, analysis, cfg)
	if mm != nil {
		ply, err := processing.FindMaterial(start, cfg.Moves, mm)
		if err != nil {
			return err
		}
		report.Material = &output.MaterialReport{Pattern: mm.Pattern(), Exact: cfg.MaterialExact, Ply: ply}
	}
	if cfg.Perft.Depth > 0 {
		report.Perft, err = runPerft(cfg, b)
		if err != nil {
			return err
		}
	}

	w := output.NewReportWriter(cfg)
	if err := w.WriteReport(report); err != nil {
		return errors.Wrap(err, "writing report")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if report.Perft != nil && report.Perft.Mismatch() {
		return fmt.Errorf("perft(%d) = %d, reference generator counted %d",
			report.Perft.Depth, report.Perft.Nodes, report.Perft.Expected)
	}
	return nil
}

// setupBoard returns a board of the configured variant at the configured
// start position.
func setupBoard(cfg *config.Config) (*engine.Board, error) {
	b, err := variants.NewBoard(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if cfg.FEN != "" {
		if err := b.SetFEN(cfg.FEN); err != nil {
			return nil, errors.Wrapf(err, "variant %s", b.Variant().Name)
		}
	}
	return b, nil
}

// logAnalysis writes the analysis diagnostics.
func logAnalysis(cfg *config.Config, analysis *processing.GameAnalysis) {
	for _, p := range analysis.Plies {
		cfg.Logf(config.Verbose, "ply %d: %s (%s) key %016x\n", p.Ply, p.SAN, p.LAN, p.Key)
	}
	if len(analysis.Plies) == 0 {
		return
	}
	cfg.Logf(config.Summary, "%d plies played, checks %d/%d\n",
		len(analysis.Plies), analysis.ChecksGiven[0], analysis.ChecksGiven[1])

	var notes []string
	if analysis.HasRepetition {
		notes = append(notes, "repetition")
	}
	if analysis.HasFiftyMoveRule {
		notes = append(notes, "fifty-move rule")
	}
	if analysis.HasInsufficientMaterial {
		notes = append(notes, "insufficient material")
	}
	if analysis.HasUnderpromotion {
		notes = append(notes, "underpromotion")
	}
	if analysis.HasDrops {
		notes = append(notes, "drops")
	}
	if len(notes) > 0 {
		cfg.Logf(config.Summary, "seen: %s\n", strings.Join(notes, ", "))
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// closeFiles closes the output and log files opened from flags.
func closeFiles(cfg *config.Config) {
	for _, w := range []io.Writer{cfg.OutputFile, cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			f.Close()
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: varboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves in chess-family variants and reports the position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lan    Long algebraic (e2e4, 7g7f, P*5e)\n")
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  varboard -moves \"1. e4 e5 2. Nf3\" -legal\n")
	fmt.Fprintf(os.Stderr, "  varboard -variant shogi -perft 3 -divide\n")
	fmt.Fprintf(os.Stderr, "  varboard -moves \"e4 d5 exd5 Qxd5\" -z \"Q:q\"\n")
	fmt.Fprintf(os.Stderr, "  varboard -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\" -perft 4 -verify\n")
}
