package config

import (
	"runtime"

	"github.com/lgbarn/varboard-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted on the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft.
	Depth int

	// Divide reports the node count below each root move.
	Divide bool

	// Workers is the number of goroutines a divide runs on.
	Workers int

	// Verify cross-checks orthodox chess counts against an independent
	// move generator.
	Verify bool
}

// NewPerftConfig creates a PerftConfig with default values.
// Perft is off by default and uses one worker per CPU when enabled.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d out of range 0..%d", p.Depth, MaxPerftDepth)
	}
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "worker count %d must be positive", p.Workers)
	}
	if (p.Divide || p.Verify) && p.Depth == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "divide and verify need a perft depth")
	}
	return nil
}
