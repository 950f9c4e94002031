// Package output formats reports about a board for the varboard command.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/config"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/processing"
)

// PerftReport is the outcome of a perft run.
type PerftReport struct {
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideEntry
	Elapsed time.Duration

	// Verified is set when an independent generator counted too;
	// Expected is its count.
	Verified bool
	Expected uint64
}

// Mismatch reports whether a cross-check disagreed.
func (p *PerftReport) Mismatch() bool {
	return p.Verified && p.Expected != p.Nodes
}

// MaterialReport records where a material pattern was first seen.
type MaterialReport struct {
	Pattern string
	Exact   bool
	Ply     int // -1 when never reached
}

// Report is everything the command prints about one position.
type Report struct {
	Variant    string
	Notation   engine.MoveNotation
	Analysis   *processing.GameAnalysis
	FEN        string
	SideToMove chess.Side
	LegalMoves []string
	Result     chess.Result
	Material   *MaterialReport
	Perft      *PerftReport
}

// BuildReport describes b, reached by the plies in analysis, as cfg asks.
func BuildReport(b *engine.Board, analysis *processing.GameAnalysis, cfg *config.Config) *Report {
	r := &Report{
		Variant:    b.Variant().Name,
		Notation:   cfg.Output.Notation,
		Analysis:   analysis,
		FEN:        b.FEN(cfg.Output.FENNotation),
		SideToMove: b.SideToMove(),
		Result:     b.Result(),
	}
	if cfg.Output.ShowLegalMoves {
		moves := b.LegalMoves()
		r.LegalMoves = make([]string, len(moves))
		for i, m := range moves {
			r.LegalMoves[i] = b.MoveString(m, cfg.Output.Notation)
		}
	}
	return r
}

// moveText returns a ply in the report's notation.
func (r *Report) moveText(p processing.PlyRecord) string {
	if r.Notation == engine.LAN {
		return p.LAN
	}
	return p.SAN
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeText prints r in the plain text layout.
func writeText(w io.Writer, r *Report, maxLineLength int) {
	fmt.Fprintf(w, "Variant: %s\n", r.Variant)

	if r.Analysis != nil && len(r.Analysis.Plies) > 0 {
		fmt.Fprintf(w, "Start: %s\n", r.Analysis.InitialFEN)
		ow := NewOutputWriter(w, maxLineLength)
		ow.Write("Moves:")
		outputMoves(r, ow)
		ow.NewLine()
	}

	fmt.Fprintf(w, "FEN: %s\n", r.FEN)
	fmt.Fprintf(w, "To move: %s\n", r.SideToMove)

	if r.LegalMoves != nil {
		ow := NewOutputWriter(w, maxLineLength)
		ow.Write(fmt.Sprintf("Legal moves (%d):", len(r.LegalMoves)))
		for _, m := range r.LegalMoves {
			ow.Write(m)
		}
		ow.NewLine()
	}

	if r.Result.IsOver() {
		fmt.Fprintf(w, "Result: %s (%s)\n", r.Result, r.Result.Reason)
	} else {
		fmt.Fprintf(w, "Result: %s\n", r.Result)
	}

	if m := r.Material; m != nil {
		kind := "at least"
		if m.Exact {
			kind = "exactly"
		}
		if m.Ply < 0 {
			fmt.Fprintf(w, "Material (%s %s): not reached\n", kind, m.Pattern)
		} else {
			fmt.Fprintf(w, "Material (%s %s): ply %d\n", kind, m.Pattern, m.Ply)
		}
	}

	if p := r.Perft; p != nil {
		for _, e := range p.Divide {
			fmt.Fprintf(w, "%s: %d\n", e.LAN, e.Nodes)
		}
		fmt.Fprintf(w, "Perft(%d): %d\n", p.Depth, p.Nodes)
		if p.Verified {
			status := "ok"
			if p.Mismatch() {
				status = fmt.Sprintf("MISMATCH, reference %d", p.Expected)
			}
			fmt.Fprintf(w, "Verified: %s\n", status)
		}
	}
}

// outputMoves writes the played moves with move numbers.
func outputMoves(r *Report, ow *OutputWriter) {
	for i, p := range r.Analysis.Plies {
		switch {
		case p.Side == chess.White:
			ow.Write(fmt.Sprintf("%d.", p.MoveNumber))
		case i == 0:
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", p.MoveNumber))
		}
		ow.Write(r.moveText(p))
	}
}

// writePlyList prints one line per ply with the position after it.
func writePlyList(w io.Writer, r *Report) {
	if r.Analysis == nil {
		return
	}
	for _, p := range r.Analysis.Plies {
		dots := "."
		if p.Side == chess.Black {
			dots = "..."
		}
		fmt.Fprintf(w, "%3d. %d%s %-8s %s\n", p.Ply, p.MoveNumber, dots, r.moveText(p), p.FEN)
	}
}
