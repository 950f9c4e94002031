package variants

import (
	"strconv"
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
)

// emptyFEN returns the FEN of an empty width x height board with White to
// move.
func emptyFEN(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strconv.Itoa(width)
	}
	return strings.Join(rows, "/") + " w 1"
}

func connectFamily(name string, width, height, n int, gravity bool) *engine.Variant {
	rules := engine.ConnectRules{}
	return &engine.Variant{
		Name:     name,
		Family:   engine.FamilyConnect,
		Width:    width,
		Height:   height,
		StartFEN: emptyFEN(width, height),
		Pieces:   []engine.PieceDef{{Type: chess.Stone, Symbol: "P"}},
		Royal:    chess.NoPieceType,
		Drops:    true,
		ConnectN: n,
		Gravity:  gravity,
		Movement: rules,
		Check:    rules,
		Notation: rules,
		Results:  rules,
	}
}

// Gomoku is five in a row on 15x15.
func Gomoku() *engine.Variant {
	return connectFamily("gomoku", 15, 15, 5, false)
}

// ConnectFour is four in a row on 7x6 with gravity.
func ConnectFour() *engine.Variant {
	return connectFamily("connectfour", 7, 6, 4, true)
}

// TicTacToe is three in a row on 3x3.
func TicTacToe() *engine.Variant {
	return connectFamily("tictactoe", 3, 3, 3, false)
}
