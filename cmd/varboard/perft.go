// perft.go - Perft counting, serial or spread over the worker pool
package main

import (
	"time"

	"github.com/lgbarn/varboard-go/internal/config"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/errors"
	"github.com/lgbarn/varboard-go/internal/output"
	"github.com/lgbarn/varboard-go/internal/worker"
)

// runPerft counts the move tree below b to the configured depth. With more
// than one worker the root moves are counted in parallel. b is left as it
// was found.
func runPerft(cfg *config.Config, b *engine.Board) (*output.PerftReport, error) {
	depth := cfg.Perft.Depth
	report := &output.PerftReport{Depth: depth}
	start := time.Now()

	if cfg.Perft.Divide || cfg.Perft.Workers > 1 {
		entries, err := worker.Divide(b, depth, cfg.Perft.Workers)
		if err != nil {
			return nil, errors.Wrapf(err, "perft(%d)", depth)
		}
		report.Nodes = engine.DivideTotal(entries)
		if cfg.Perft.Divide {
			report.Divide = entries
		}
	} else {
		report.Nodes = b.Perft(depth)
	}
	report.Elapsed = time.Since(start)
	cfg.Logf(config.Summary, "perft(%d) = %d in %v\n", depth, report.Nodes, report.Elapsed)

	if cfg.Perft.Verify {
		checkPerftReference(cfg, b, report)
	}
	return report, nil
}

// checkPerftReference fills in the reference count when b has an independent
// generator to check against.
func checkPerftReference(cfg *config.Config, b *engine.Board, report *output.PerftReport) {
	expected, ok := referencePerft(b, report.Depth)
	if !ok {
		cfg.Logf(config.Summary, "no reference generator for %s, perft not verified\n", b.Variant().Name)
		return
	}
	report.Verified = true
	report.Expected = expected

	if missing, extra, ok := compareSAN(b); ok && (len(missing) > 0 || len(extra) > 0) {
		cfg.Logf(config.Summary, "SAN differs from reference: missing %v, extra %v\n", missing, extra)
	}
}
