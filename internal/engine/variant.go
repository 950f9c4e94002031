package engine

import (
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// Family identifies a rule family sharing geometry, check and notation rules.
type Family int

const (
	FamilyWestern Family = iota
	FamilyShogi
	FamilyXiangqi
	FamilyJanggi
	FamilyConnect
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyWestern:
		return "western"
	case FamilyShogi:
		return "shogi"
	case FamilyXiangqi:
		return "xiangqi"
	case FamilyJanggi:
		return "janggi"
	case FamilyConnect:
		return "connect"
	}
	return "unknown"
}

// Castling wings.
const (
	KingSide  = 0
	QueenSide = 1
)

// PieceDef assigns a symbol to a piece type within a variant.
type PieceDef struct {
	Type chess.PieceType
	// Symbol is White's FEN symbol, e.g. "N", "+P" or "Q~". Black uses the
	// lower-case form.
	Symbol string
	// SAN overrides the letter used in SAN. Empty means Symbol without any
	// trailing "~".
	SAN string
	// Promoted is the type this piece becomes when it promotes in a
	// promotion zone (Shogi family).
	Promoted chess.PieceType
	// Demoted is the type handed to the captor's reserve. NoPieceType means
	// the piece keeps its type.
	Demoted chess.PieceType
}

// Restriction reports whether piece p may move (or attack) from one mailbox
// index to another. It is consulted by both move generation and attack
// detection.
type Restriction func(b *Board, p chess.Piece, from, to int) bool

// MovementRules generates and applies moves for a rule family.
type MovementRules interface {
	// PieceMoves appends the pseudo-legal moves of the piece on sq.
	PieceMoves(b *Board, sq int, out []chess.Move) []chess.Move
	// DropMoves appends the pseudo-legal drops of the side to move,
	// restricted to type filter unless it is NoPieceType.
	DropMoves(b *Board, filter chess.PieceType, out []chess.Move) []chess.Move
	// Apply changes the board for m and returns the captured piece. The
	// side to move is still the mover.
	Apply(b *Board, m chess.Move) chess.Piece
	// Revert undoes the board changes of Apply. Castling rights, en passant,
	// counters and the key have already been restored.
	Revert(b *Board, m chess.Move, moved, captured chess.Piece)
}

// CheckRules decides which pseudo-legal moves are legal.
type CheckRules interface {
	// MoveExists reports whether m is produced by pseudo-legal generation.
	MoveExists(b *Board, m chess.Move) bool
	// IsLegalMove reports whether m, already known to exist, leaves a legal
	// position.
	IsLegalMove(b *Board, m chess.Move) bool
	// IsLegalPosition reports whether the side that just moved is not left
	// in a forbidden state, typically in check.
	IsLegalPosition(b *Board) bool
}

// MoveFilter is implemented by CheckRules that restrict the legal move list
// as a whole, such as compulsory captures.
type MoveFilter interface {
	FilterMoves(b *Board, moves []chess.Move) []chess.Move
}

// NotationDialect reads and writes the family specific parts of FEN, SAN
// and LAN.
type NotationDialect interface {
	// SetFENTrailer parses the fields after the side to move.
	SetFENTrailer(b *Board, fields []string) error
	// FENTrailer writes the fields after the side to move.
	FENTrailer(b *Board, n FENNotation) string
	SquareName(b *Board, sq int) string
	LAN(b *Board, m chess.Move) string
	SAN(b *Board, m chess.Move) string
	ParseSAN(b *Board, s string) (chess.Move, error)
}

// ResultRules decides whether the game has ended.
type ResultRules interface {
	Result(b *Board) chess.Result
}

// Variant is the configuration of one rule set. A Variant is never modified
// after construction and may be shared by any number of boards.
type Variant struct {
	Name     string
	Family   Family
	Width    int
	Height   int
	StartFEN string
	Pieces   []PieceDef

	// Royal is the piece type that may not be left in check. NoPieceType
	// disables check.
	Royal chess.PieceType

	// Western family.
	Castling        bool
	RandomSetup     bool // castling rooks on arbitrary files, king-takes-rook LAN
	PawnType        chess.PieceType
	DoubleStepRanks [2][]int // relative ranks from which pawns may step twice
	EnPassant       bool
	PromotionRank   int // relative rank on which pawns promote
	Promotions      []chess.PieceType
	CheckCounting   bool // three-check counters
	Gating          bool // Seirawan gating from the reserve
	StalemateLoses  bool
	BareKingLoses   bool
	FiftyMoveRule   int // plies without capture or pawn move that draw; 0 disables

	// Drops and reserves.
	Drops          bool
	CapturesToHand bool

	// Shogi family.
	PromotionZone int

	// Connect family.
	ConnectN int
	Gravity  bool

	// NFold is the number of occurrences of a position that draws; 0
	// disables repetition draws.
	NFold int

	Restriction Restriction

	Movement MovementRules
	Check    CheckRules
	Notation NotationDialect
	Results  ResultRules
}

// Def returns the piece definition of type t, or nil if the variant does
// not use it.
func (v *Variant) Def(t chess.PieceType) *PieceDef {
	for i := range v.Pieces {
		if v.Pieces[i].Type == t {
			return &v.Pieces[i]
		}
	}
	return nil
}

// Symbol returns the FEN symbol of p in this variant.
func (v *Variant) Symbol(p chess.Piece) string {
	d := v.Def(p.Type())
	if d == nil {
		return "?"
	}
	if p.Side() == chess.Black {
		return strings.ToLower(d.Symbol)
	}
	return d.Symbol
}

// SANSymbol returns the SAN letter of piece type t.
func (v *Variant) SANSymbol(t chess.PieceType) string {
	d := v.Def(t)
	if d == nil {
		return "?"
	}
	if d.SAN != "" {
		return d.SAN
	}
	return strings.TrimSuffix(d.Symbol, "~")
}

// captureType returns the type that goes to the captor's reserve.
func (v *Variant) captureType(t chess.PieceType) chess.PieceType {
	if d := v.Def(t); d != nil && d.Demoted != chess.NoPieceType {
		return d.Demoted
	}
	return t
}
