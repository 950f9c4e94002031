package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	Variant    string        `json:"variant"`
	InitialFEN string        `json:"initialFEN,omitempty"`
	Moves      []JSONMove    `json:"moves,omitempty"`
	FEN        string        `json:"fen"`
	SideToMove string        `json:"sideToMove"`
	LegalMoves []string      `json:"legalMoves,omitempty"`
	Result     string        `json:"result"`
	Reason     string        `json:"reason,omitempty"`
	Material   *JSONMaterial `json:"material,omitempty"`
	Perft      *JSONPerft    `json:"perft,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	LAN        string `json:"lan"`
	Check      bool   `json:"check,omitempty"`
	FEN        string `json:"fen"`
}

// JSONMaterial represents a material search in JSON format.
type JSONMaterial struct {
	Pattern string `json:"pattern"`
	Exact   bool   `json:"exact"`
	Ply     int    `json:"ply"` // -1 when never reached
}

// JSONPerft represents a perft run in JSON format.
type JSONPerft struct {
	Depth     int               `json:"depth"`
	Nodes     uint64            `json:"nodes"`
	Divide    map[string]uint64 `json:"divide,omitempty"`
	ElapsedMS int64             `json:"elapsedMs"`
	Reference *uint64           `json:"reference,omitempty"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		Variant:    r.Variant,
		FEN:        r.FEN,
		SideToMove: strings.ToLower(r.SideToMove.String()),
		LegalMoves: r.LegalMoves,
		Result:     r.Result.String(),
		Reason:     r.Result.Reason,
	}
	if r.Analysis != nil && len(r.Analysis.Plies) > 0 {
		jr.InitialFEN = r.Analysis.InitialFEN
		for _, p := range r.Analysis.Plies {
			jr.Moves = append(jr.Moves, JSONMove{
				Ply:        p.Ply,
				MoveNumber: p.MoveNumber,
				Color:      colorName(p.Side),
				SAN:        p.SAN,
				LAN:        p.LAN,
				Check:      p.Check,
				FEN:        p.FEN,
			})
		}
	}
	if m := r.Material; m != nil {
		jr.Material = &JSONMaterial{Pattern: m.Pattern, Exact: m.Exact, Ply: m.Ply}
	}
	if p := r.Perft; p != nil {
		jp := &JSONPerft{Depth: p.Depth, Nodes: p.Nodes, ElapsedMS: p.Elapsed.Milliseconds()}
		if len(p.Divide) > 0 {
			jp.Divide = make(map[string]uint64, len(p.Divide))
			for _, e := range p.Divide {
				jp.Divide[e.LAN] = e.Nodes
			}
		}
		if p.Verified {
			expected := p.Expected
			jp.Reference = &expected
		}
		jr.Perft = jp
	}
	return jr
}

func colorName(s chess.Side) string {
	if s == chess.Black {
		return "black"
	}
	return "white"
}

// writeJSON encodes v indented.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
