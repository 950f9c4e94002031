package variants

import (
	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
)

// Starting positions of the Shogi, Xiangqi and Janggi families.
const (
	ShogiFEN        = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL[-] w 1"
	MiniShogiFEN    = "rbsgk/4p/5/P4/KGSBR[-] w 1"
	JudkinsShogiFEN = "rbnsgk/5p/6/6/P5/KGSNBR[-] w 1"
	XiangqiFEN      = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"
	JanggiFEN       = "rnba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR w - - 0 1"
)

var (
	shogiPawn   = engine.PieceDef{Type: chess.ShogiPawn, Symbol: "P", Promoted: chess.Tokin}
	shogiLance  = engine.PieceDef{Type: chess.Lance, Symbol: "L", Promoted: chess.PromotedLance}
	shogiKnight = engine.PieceDef{Type: chess.ShogiKnight, Symbol: "N", Promoted: chess.PromotedShogiKnight}
	shogiSilver = engine.PieceDef{Type: chess.Silver, Symbol: "S", Promoted: chess.PromotedSilver}
	shogiGold   = engine.PieceDef{Type: chess.Gold, Symbol: "G"}
	shogiBishop = engine.PieceDef{Type: chess.Bishop, Symbol: "B", Promoted: chess.DragonHorse}
	shogiRook   = engine.PieceDef{Type: chess.Rook, Symbol: "R", Promoted: chess.DragonKing}
	shogiKing   = engine.PieceDef{Type: chess.King, Symbol: "K"}

	tokin          = engine.PieceDef{Type: chess.Tokin, Symbol: "+P", Demoted: chess.ShogiPawn}
	promotedLance  = engine.PieceDef{Type: chess.PromotedLance, Symbol: "+L", Demoted: chess.Lance}
	promotedKnight = engine.PieceDef{Type: chess.PromotedShogiKnight, Symbol: "+N", Demoted: chess.ShogiKnight}
	promotedSilver = engine.PieceDef{Type: chess.PromotedSilver, Symbol: "+S", Demoted: chess.Silver}
	dragonHorse    = engine.PieceDef{Type: chess.DragonHorse, Symbol: "+B", Demoted: chess.Bishop}
	dragonKing     = engine.PieceDef{Type: chess.DragonKing, Symbol: "+R", Demoted: chess.Rook}
)

// shogiFamily returns a Shogi-family configuration with the given geometry
// and piece set.
func shogiFamily(name, fen string, width, height, zone int, defs ...engine.PieceDef) *engine.Variant {
	rules := engine.ShogiRules{}
	return &engine.Variant{
		Name:           name,
		Family:         engine.FamilyShogi,
		Width:          width,
		Height:         height,
		StartFEN:       fen,
		Pieces:         defs,
		Royal:          chess.King,
		PawnType:       chess.ShogiPawn,
		Drops:          true,
		CapturesToHand: true,
		PromotionZone:  zone,
		NFold:          4,
		Movement:       rules,
		Check:          rules,
		Notation:       rules,
		Results:        rules,
	}
}

// Shogi is Japanese chess on 9x9 with a three-rank promotion zone.
func Shogi() *engine.Variant {
	return shogiFamily("shogi", ShogiFEN, 9, 9, 3,
		shogiPawn, shogiLance, shogiKnight, shogiSilver, shogiGold, shogiBishop, shogiRook, shogiKing,
		tokin, promotedLance, promotedKnight, promotedSilver, dragonHorse, dragonKing)
}

// MiniShogi is played on 5x5 without lances and knights.
func MiniShogi() *engine.Variant {
	return shogiFamily("minishogi", MiniShogiFEN, 5, 5, 1,
		shogiPawn, shogiSilver, shogiGold, shogiBishop, shogiRook, shogiKing,
		tokin, promotedSilver, dragonHorse, dragonKing)
}

// JudkinsShogi is played on 6x6 with a two-rank zone and no lances.
func JudkinsShogi() *engine.Variant {
	return shogiFamily("judkinsshogi", JudkinsShogiFEN, 6, 6, 2,
		shogiPawn, shogiKnight, shogiSilver, shogiGold, shogiBishop, shogiRook, shogiKing,
		tokin, promotedKnight, promotedSilver, dragonHorse, dragonKing)
}

// Xiangqi is Chinese chess on 9x10.
func Xiangqi() *engine.Variant {
	rules := engine.XiangqiRules{}
	return &engine.Variant{
		Name:     "xiangqi",
		Family:   engine.FamilyXiangqi,
		Width:    9,
		Height:   10,
		StartFEN: XiangqiFEN,
		Pieces: []engine.PieceDef{
			{Type: chess.Soldier, Symbol: "P"},
			{Type: chess.Horse, Symbol: "N"},
			{Type: chess.Elephant, Symbol: "B"},
			{Type: chess.Rook, Symbol: "R"},
			{Type: chess.Cannon, Symbol: "C"},
			{Type: chess.Advisor, Symbol: "A"},
			{Type: chess.General, Symbol: "K"},
		},
		Royal:         chess.General,
		FiftyMoveRule: 120,
		NFold:         3,
		Restriction:   engine.XiangqiRestriction,
		Movement:      rules,
		Check:         rules,
		Notation:      rules,
		Results:       rules,
	}
}

// Janggi is Korean chess on 9x10.
func Janggi() *engine.Variant {
	rules := engine.JanggiRules{}
	return &engine.Variant{
		Name:     "janggi",
		Family:   engine.FamilyJanggi,
		Width:    9,
		Height:   10,
		StartFEN: JanggiFEN,
		Pieces: []engine.PieceDef{
			{Type: chess.JanggiSoldier, Symbol: "P"},
			{Type: chess.Horse, Symbol: "N"},
			{Type: chess.JanggiElephant, Symbol: "B"},
			{Type: chess.JanggiChariot, Symbol: "R"},
			{Type: chess.JanggiCannon, Symbol: "C"},
			{Type: chess.Guard, Symbol: "A"},
			{Type: chess.King, Symbol: "K"},
		},
		Royal:         chess.King,
		FiftyMoveRule: 120,
		NFold:         3,
		Restriction:   engine.JanggiRestriction,
		Movement:      rules,
		Check:         rules,
		Notation:      rules,
		Results:       rules,
	}
}
