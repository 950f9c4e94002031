package variants

import (
	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
)

// Starting positions.
const (
	StandardFEN    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	CapablancaFEN  = "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR w KQkq - 0 1"
	GothicFEN      = "rnbqckabnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNBQCKABNR w KQkq - 0 1"
	AlmostFEN      = "rnbckbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBCKBNR w KQkq - 0 1"
	RacingKingsFEN = "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1"
	ThreeCheckFEN  = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3+3 0 1"
	HordeFEN       = "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1"
	AntichessFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	CrazyhouseFEN  = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1"
	PlacementFEN   = "8/pppppppp/8/8/8/8/PPPPPPPP/8[NNBBRRQKnnbbrrqk] w - - 0 1"
	SeirawanFEN    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[HEhe] w KQBCDFGkqbcdfg - 0 1"
	ShatranjFEN    = "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR w - - 0 1"
	MakrukFEN      = "rnsmksnr/8/pppppppp/8/8/PPPPPPPP/8/RNSKMSNR w - - 0 1"
)

var (
	chessPieces = []engine.PieceDef{
		{Type: chess.Pawn, Symbol: "P"},
		{Type: chess.Knight, Symbol: "N"},
		{Type: chess.Bishop, Symbol: "B"},
		{Type: chess.Rook, Symbol: "R"},
		{Type: chess.Queen, Symbol: "Q"},
		{Type: chess.King, Symbol: "K"},
	}
	archbishop = engine.PieceDef{Type: chess.Archbishop, Symbol: "A"}
	chancellor = engine.PieceDef{Type: chess.Chancellor, Symbol: "C"}

	orthodoxPromotions = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
)

func pieces(base []engine.PieceDef, extra ...engine.PieceDef) []engine.PieceDef {
	out := append([]engine.PieceDef(nil), base...)
	return append(out, extra...)
}

// western returns the configuration of orthodox chess under a new name and
// starting position, ready to be adjusted by the caller.
func western(name, fen string) *engine.Variant {
	rules := engine.WesternRules{}
	return &engine.Variant{
		Name:            name,
		Family:          engine.FamilyWestern,
		Width:           8,
		Height:          8,
		StartFEN:        fen,
		Pieces:          chessPieces,
		Royal:           chess.King,
		Castling:        true,
		PawnType:        chess.Pawn,
		DoubleStepRanks: [2][]int{{1}, {1}},
		EnPassant:       true,
		PromotionRank:   7,
		Promotions:      orthodoxPromotions,
		FiftyMoveRule:   100,
		NFold:           3,
		Movement:        rules,
		Check:           rules,
		Notation:        rules,
		Results:         rules,
	}
}

// Standard is orthodox chess.
func Standard() *engine.Variant {
	return western("standard", StandardFEN)
}

// FischeRandom is Chess960: orthodox rules from a shuffled back rank, with
// castling rooks on any file. Positions come from engine.Chess960FEN.
func FischeRandom() *engine.Variant {
	v := western("fischerandom", StandardFEN)
	v.RandomSetup = true
	return v
}

// Capablanca is played on 10x8 with an archbishop and a chancellor.
func Capablanca() *engine.Variant {
	v := western("capablanca", CapablancaFEN)
	v.Width = 10
	v.Pieces = pieces(chessPieces, archbishop, chancellor)
	v.Promotions = []chess.PieceType{chess.Queen, chess.Chancellor, chess.Archbishop, chess.Rook, chess.Bishop, chess.Knight}
	return v
}

// Gothic is Capablanca chess from a different setup.
func Gothic() *engine.Variant {
	v := Capablanca()
	v.Name = "gothic"
	v.StartFEN = GothicFEN
	return v
}

// CapaRandom is Capablanca chess with random-setup castling.
func CapaRandom() *engine.Variant {
	v := Capablanca()
	v.Name = "caparandom"
	v.RandomSetup = true
	return v
}

// Almost is orthodox chess with a chancellor in place of the queen.
func Almost() *engine.Variant {
	v := western("almost", AlmostFEN)
	v.Pieces = pieces(chessPieces[:4], chancellor, chessPieces[5])
	v.Promotions = []chess.PieceType{chess.Chancellor, chess.Rook, chess.Bishop, chess.Knight}
	return v
}

// RacingKings is a race of the kings to the eighth rank in which no side
// may give check.
func RacingKings() *engine.Variant {
	v := western("racingkings", RacingKingsFEN)
	v.Castling = false
	v.EnPassant = false
	rules := racingKings{}
	v.Check = rules
	v.Results = rules
	return v
}

// KingOfTheHill is won by bringing the king to one of the four centre
// squares.
func KingOfTheHill() *engine.Variant {
	v := western("kingofthehill", StandardFEN)
	v.Results = kingOfTheHill{}
	return v
}

// ThreeCheck is won by giving check three times.
func ThreeCheck() *engine.Variant {
	v := western("threecheck", ThreeCheckFEN)
	v.CheckCounting = true
	return v
}

// Horde pits White's kingless pawn horde against a normal army. White's
// first-rank pawns may step twice.
func Horde() *engine.Variant {
	v := western("horde", HordeFEN)
	v.DoubleStepRanks = [2][]int{{0, 1}, {1}}
	v.Results = horde{}
	return v
}

// Antichess is won by losing every piece or being stalemated. Capturing
// is compulsory and the king is an ordinary piece.
func Antichess() *engine.Variant {
	v := western("antichess", AntichessFEN)
	v.Royal = chess.NoPieceType
	v.Castling = false
	v.Promotions = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.King}
	rules := antichess{}
	v.Check = rules
	v.Results = rules
	return v
}

// Grid forbids moves that start and end in the same 2x2 block.
func Grid() *engine.Variant {
	v := western("grid", StandardFEN)
	v.Restriction = gridRestriction
	return v
}

// Crazyhouse returns captured pieces to the captor's hand. Promoted pieces
// go back as pawns.
func Crazyhouse() *engine.Variant {
	v := western("crazyhouse", CrazyhouseFEN)
	v.Drops = true
	v.CapturesToHand = true
	v.Pieces = pieces(chessPieces,
		engine.PieceDef{Type: chess.PromotedKnight, Symbol: "N~", Demoted: chess.Pawn},
		engine.PieceDef{Type: chess.PromotedBishop, Symbol: "B~", Demoted: chess.Pawn},
		engine.PieceDef{Type: chess.PromotedRook, Symbol: "R~", Demoted: chess.Pawn},
		engine.PieceDef{Type: chess.PromotedQueen, Symbol: "Q~", Demoted: chess.Pawn},
	)
	v.Promotions = []chess.PieceType{chess.PromotedQueen, chess.PromotedRook, chess.PromotedBishop, chess.PromotedKnight}
	return v
}

// Placement starts with the pieces in hand. Each side drops them on its
// back rank, bishops on opposite colours, before any piece moves.
func Placement() *engine.Variant {
	v := western("placement", PlacementFEN)
	v.Drops = true
	rules := placement{}
	v.Movement = rules
	return v
}

// Seirawan adds a hawk and an elephant in hand that enter the game by
// gating onto the square a back-rank piece leaves.
func Seirawan() *engine.Variant {
	v := western("seirawan", SeirawanFEN)
	v.Gating = true
	v.Pieces = pieces(chessPieces,
		engine.PieceDef{Type: chess.Archbishop, Symbol: "H"},
		engine.PieceDef{Type: chess.Chancellor, Symbol: "E"},
	)
	v.Promotions = []chess.PieceType{chess.Queen, chess.Chancellor, chess.Archbishop, chess.Rook, chess.Bishop, chess.Knight}
	return v
}

// Shatranj is the medieval game: ferz and alfil for queen and bishop, single
// pawn steps, promotion to ferz, and wins by stalemate or baring the king.
func Shatranj() *engine.Variant {
	v := western("shatranj", ShatranjFEN)
	v.Pieces = []engine.PieceDef{
		{Type: chess.Pawn, Symbol: "P"},
		{Type: chess.Knight, Symbol: "N"},
		{Type: chess.Alfil, Symbol: "B"},
		{Type: chess.Rook, Symbol: "R"},
		{Type: chess.Ferz, Symbol: "Q"},
		{Type: chess.King, Symbol: "K"},
	}
	v.Castling = false
	v.EnPassant = false
	v.DoubleStepRanks = [2][]int{}
	v.Promotions = []chess.PieceType{chess.Ferz}
	v.StalemateLoses = true
	v.BareKingLoses = true
	return v
}

// Makruk is Thai chess: pawns start on the third rank and promote to a met
// on the sixth.
func Makruk() *engine.Variant {
	v := western("makruk", MakrukFEN)
	v.Pieces = []engine.PieceDef{
		{Type: chess.Pawn, Symbol: "P"},
		{Type: chess.Knight, Symbol: "N"},
		{Type: chess.Khon, Symbol: "S"},
		{Type: chess.Rook, Symbol: "R"},
		{Type: chess.Ferz, Symbol: "M"},
		{Type: chess.King, Symbol: "K"},
	}
	v.Castling = false
	v.EnPassant = false
	v.DoubleStepRanks = [2][]int{}
	v.PromotionRank = 5
	v.Promotions = []chess.PieceType{chess.Ferz}
	return v
}
