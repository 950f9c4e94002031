// Package chess provides the value types shared by every variant: sides,
// piece types, pieces, squares, moves and game results.
package chess

// Side represents the owner of a piece or the player to move.
type Side int

const (
	White Side = iota
	Black
	NoSide
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoSide"
}

// Opposite returns the other side. NoSide is its own opposite.
func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

// PieceType identifies a movement pattern. The catalogue is shared by all
// variants; each variant picks a subset and assigns its own symbols.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Archbishop // bishop + knight; the Seirawan hawk
	Chancellor // rook + knight; the Seirawan elephant

	// Crazyhouse promoted pieces revert to pawns when captured.
	PromotedKnight
	PromotedBishop
	PromotedRook
	PromotedQueen

	Ferz
	Alfil
	Khon

	ShogiPawn
	Lance
	ShogiKnight
	Silver
	Gold
	Tokin
	PromotedLance
	PromotedShogiKnight
	PromotedSilver
	DragonHorse
	DragonKing

	General
	Advisor
	Elephant
	Horse
	Cannon
	Soldier

	Guard
	JanggiElephant
	JanggiChariot
	JanggiCannon
	JanggiSoldier

	Stone

	NumPieceTypes
)

// wallType is the type of the sentinel wall piece.
const wallType = NumPieceTypes

var pieceTypeNames = [...]string{
	NoPieceType:         "None",
	Pawn:                "Pawn",
	Knight:              "Knight",
	Bishop:              "Bishop",
	Rook:                "Rook",
	Queen:               "Queen",
	King:                "King",
	Archbishop:          "Archbishop",
	Chancellor:          "Chancellor",
	PromotedKnight:      "PromotedKnight",
	PromotedBishop:      "PromotedBishop",
	PromotedRook:        "PromotedRook",
	PromotedQueen:       "PromotedQueen",
	Ferz:                "Ferz",
	Alfil:               "Alfil",
	Khon:                "Khon",
	ShogiPawn:           "ShogiPawn",
	Lance:               "Lance",
	ShogiKnight:         "ShogiKnight",
	Silver:              "Silver",
	Gold:                "Gold",
	Tokin:               "Tokin",
	PromotedLance:       "PromotedLance",
	PromotedShogiKnight: "PromotedShogiKnight",
	PromotedSilver:      "PromotedSilver",
	DragonHorse:         "DragonHorse",
	DragonKing:          "DragonKing",
	General:             "General",
	Advisor:             "Advisor",
	Elephant:            "Elephant",
	Horse:               "Horse",
	Cannon:              "Cannon",
	Soldier:             "Soldier",
	Guard:               "Guard",
	JanggiElephant:      "JanggiElephant",
	JanggiChariot:       "JanggiChariot",
	JanggiCannon:        "JanggiCannon",
	JanggiSoldier:       "JanggiSoldier",
	Stone:               "Stone",
}

// String returns the name of a piece type.
func (t PieceType) String() string {
	if t >= 0 && int(t) < len(pieceTypeNames) {
		return pieceTypeNames[t]
	}
	if t == wallType {
		return "Wall"
	}
	return "Unknown"
}

// Piece packs a piece type and a side into a single comparable value.
type Piece int

// SideShift is the number of low bits holding the side.
const SideShift = 2

// NoPiece marks an empty square and WallPiece marks the sentinel ring around
// the playable area. Both carry NoSide and differ from every real piece.
var (
	NoPiece   = MakePiece(NoPieceType, NoSide)
	WallPiece = MakePiece(wallType, NoSide)
)

// MakePiece creates a piece of the given type and side.
func MakePiece(t PieceType, s Side) Piece {
	return Piece(int(t)<<SideShift | int(s))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(t, White)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(t, Black)
}

// Side extracts the side of a piece.
func (p Piece) Side() Side {
	return Side(p & (1<<SideShift - 1))
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> SideShift)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// IsWall reports whether p is the wall sentinel.
func (p Piece) IsWall() bool {
	return p == WallPiece
}

// IsValid reports whether p is a real piece belonging to a player.
func (p Piece) IsValid() bool {
	t := p.Type()
	return t > NoPieceType && t < NumPieceTypes && p.Side() < NoSide
}

// String returns a readable form such as "White Knight".
func (p Piece) String() string {
	switch {
	case p.IsEmpty():
		return "Empty"
	case p.IsWall():
		return "Wall"
	}
	return p.Side().String() + " " + p.Type().String()
}
