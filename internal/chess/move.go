package chess

// EffectKind tags an additional effect of a move beyond moving, capturing
// and promoting.
type EffectKind uint8

const (
	// EffectNone is an ordinary move.
	EffectNone EffectKind = iota
	// EffectGate places a reserve piece on the square the moving piece left.
	EffectGate
	// EffectGateRook places a reserve piece on the rook's origin square of a
	// castling move.
	EffectGateRook
)

// Effect is an explicit move side effect together with the piece type it
// introduces.
type Effect struct {
	Kind  EffectKind
	Piece PieceType
}

// Move is a (source, target, promotion) triple of mailbox indices.
//
// Source 0 is the reserved wall cell and marks a drop of the piece type held
// in Promotion. The zero Move is the null move. For castling the target is
// the square of the castling rook.
type Move struct {
	Source    int
	Target    int
	Promotion PieceType
	Effect    Effect
}

// NullMove is the move with source and target 0.
var NullMove Move

// NewMove creates a move between two mailbox indices.
func NewMove(source, target int, promotion PieceType) Move {
	return Move{Source: source, Target: target, Promotion: promotion}
}

// NewDrop creates a drop of a reserve piece of type t on target.
func NewDrop(t PieceType, target int) Move {
	return Move{Target: target, Promotion: t}
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.Source == 0 && m.Target == 0
}

// IsDrop reports whether m places a reserve piece.
func (m Move) IsDrop() bool {
	return m.Source == 0 && m.Target != 0
}

// DroppedType returns the dropped piece type, or NoPieceType for board moves.
func (m Move) DroppedType() PieceType {
	if m.IsDrop() {
		return m.Promotion
	}
	return NoPieceType
}

// PromotionType returns the type the moving piece becomes, or NoPieceType.
func (m Move) PromotionType() PieceType {
	if m.IsDrop() {
		return NoPieceType
	}
	return m.Promotion
}

// WithEffect returns a copy of m carrying effect e.
func (m Move) WithEffect(kind EffectKind, t PieceType) Move {
	m.Effect = Effect{Kind: kind, Piece: t}
	return m
}

// NullMoveString is the notation of a null move.
const NullMoveString = "0000"
