// Package config provides configuration for the varboard command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/varboard-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent  = 0
	Summary = 1
	Verbose = 2
)

// Config holds all program configuration.
type Config struct {
	// Variant names the rule set; see variants.Names.
	Variant string

	// FEN is the starting position. Empty means the variant's start.
	FEN string

	// Moves are played from the starting position before anything is
	// reported, each in SAN or LAN.
	Moves []string

	// Material is a piece pattern such as "QR:qrr" to look for along the
	// moves; MaterialExact forbids pieces the pattern does not name.
	Material      string
	MaterialExact bool

	Verbosity int // 0=nothing, 1=summary, 2=per-move commentary

	Perft  PerftConfig
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Variant:    "standard",
		Verbosity:  Summary,
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer reports go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Variant) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "no variant given")
	}
	if c.Verbosity < Silent || c.Verbosity > Verbose {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0..2", c.Verbosity)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing output stream")
	}
	return c.Perft.Validate()
}

// Logf writes a diagnostic when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
