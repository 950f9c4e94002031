package config

import "github.com/lgbarn/varboard-go/internal/engine"

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Notation selects SAN or LAN for reported moves.
	Notation engine.MoveNotation

	// FENNotation selects X-FEN or Shredder-FEN castling rights.
	FENNotation engine.FENNotation

	// MaxLineLength is the maximum line length for move listings
	MaxLineLength uint

	// ShowLegalMoves lists the legal moves of the final position.
	ShowLegalMoves bool

	// ShowMoves lists every played move with the position after it.
	ShowMoves bool

	// JSONFormat enables JSON output instead of text
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:      engine.SAN,
		FENNotation:   engine.XFEN,
		MaxLineLength: 80,
	}
}
