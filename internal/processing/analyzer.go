// Package processing replays move sequences on a board and reports what
// happened along the way.
package processing

import (
	"fmt"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/errors"
	"github.com/lgbarn/varboard-go/internal/parser"
)

// PlyRecord describes one played move.
type PlyRecord struct {
	Ply        int
	MoveNumber int
	Side       chess.Side
	Move       chess.Move
	SAN        string
	LAN        string
	FEN        string // position after the move
	Key        uint64
	Check      bool
	Changes    engine.Transition
}

// GameAnalysis holds analysis results from replaying a move sequence.
type GameAnalysis struct {
	InitialFEN string
	Plies      []PlyRecord
	Result     chess.Result

	HasFiftyMoveRule        bool
	HasRepetition           bool
	HasInsufficientMaterial bool
	HasUnderpromotion       bool
	HasDrops                bool

	// ChecksGiven counts the checks each side delivered.
	ChecksGiven [2]int
}

// FinalFEN returns the position after the last analysed move.
func (ga *GameAnalysis) FinalFEN() string {
	if len(ga.Plies) == 0 {
		return ga.InitialFEN
	}
	return ga.Plies[len(ga.Plies)-1].FEN
}

// ValidationResult holds the result of move validation.
type ValidationResult struct {
	Valid       bool
	ErrorPly    int
	ErrorMsg    string
	ParseErrors []string
}

// AnalyzeGame plays moves on b and records every ply. It stops at the
// first move that is not legal and returns the analysis so far together
// with the error. The board is left at the last legal position.
func AnalyzeGame(b *engine.Board, moves []string) (*GameAnalysis, error) {
	analysis := &GameAnalysis{InitialFEN: b.FEN(engine.XFEN)}
	v := b.Variant()

	for _, text := range moves {
		m, err := b.MoveFromString(text)
		if err != nil {
			analysis.Result = b.Result()
			return analysis, err
		}
		rec := PlyRecord{
			Ply:        b.PlyCount() + 1,
			MoveNumber: b.FullMoveNumber(),
			Side:       b.SideToMove(),
			Move:       m,
			SAN:        b.SANMoveString(m),
			LAN:        b.LANMoveString(m),
		}
		if m.IsDrop() {
			analysis.HasDrops = true
		} else if m.Promotion != chess.NoPieceType && len(v.Promotions) > 0 && m.Promotion != v.Promotions[0] {
			analysis.HasUnderpromotion = true
		}

		b.MakeMove(m, &rec.Changes)

		rec.FEN = b.FEN(engine.XFEN)
		rec.Key = b.Key()
		rec.Check = v.Royal != chess.NoPieceType && b.InCheck(b.SideToMove())
		if rec.Check {
			analysis.ChecksGiven[rec.Side]++
		}
		draw := b.DrawRules()
		analysis.HasFiftyMoveRule = analysis.HasFiftyMoveRule || draw.FiftyMoveRule
		analysis.HasRepetition = analysis.HasRepetition || draw.Repetition
		analysis.Plies = append(analysis.Plies, rec)
	}

	analysis.HasInsufficientMaterial = b.HasInsufficientMaterial()
	analysis.Result = b.Result()
	return analysis, nil
}

// ReplayGame plays moves on b and stops at the first illegal one.
func ReplayGame(b *engine.Board, moves []string) error {
	for _, text := range moves {
		m, err := b.MoveFromString(text)
		if err != nil {
			return err
		}
		b.MakeMove(m, nil)
	}
	return nil
}

// ValidateGame replays movetext such as "1. e4 e5 2. Nf3 1-0" on b and
// checks that every move is legal and that a declared result agrees with
// the final position.
func ValidateGame(b *engine.Board, movetext string) *ValidationResult {
	result := &ValidationResult{Valid: true}
	mt := parser.ParseMovetext(movetext)

	if !isValidResult(mt.Result) {
		result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("invalid result: %s", mt.Result))
	}

	for i, text := range mt.Moves {
		m, err := b.MoveFromString(text)
		if err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, text)
			var me *errors.MoveError
			if errors.As(err, &me) {
				result.ErrorMsg = me.Error()
			}
			return result
		}
		b.MakeMove(m, nil)
	}

	if final := b.Result(); final.IsOver() && mt.Result != "*" && mt.Result != final.String() {
		result.ParseErrors = append(result.ParseErrors,
			fmt.Sprintf("result %s does not match final position (%s by %s)", mt.Result, final, final.Reason))
	}
	return result
}

// CountPlies counts the moves in movetext.
func CountPlies(movetext string) int {
	return len(parser.ParseMovetext(movetext).Moves)
}

// isValidResult checks if a result string is a valid game result.
func isValidResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
