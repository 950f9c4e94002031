// Package engine provides the variant board: a padded mailbox position with
// move generation, legality, make/undo, Zobrist hashing and notation, plus
// the rule families that specialise it.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/hashing"
)

// Wall padding of the mailbox: one column on each side and two rows above
// and below. A single guard cell before and after the grid keeps two-square
// diagonal leaps from the corners inside the array; the leading one is index
// 0, the drop source.
const (
	wallColumns = 1
	wallRows    = 2
	guardCells  = 1
)

// auxState holds variant extras that are restored wholesale on undo.
type auxState struct {
	checks [2]int    // remaining checks to give
	gates  [2]uint64 // back-rank files that may still gate, one bit per file
}

// historyEntry holds everything needed to invert one ply.
type historyEntry struct {
	move       chess.Move
	moved      chess.Piece
	captured   chess.Piece
	castling   [2][2]int
	epSquare   int
	reversible int
	key        uint64
	aux        auxState
}

// lameDelta is a lame leap converted to mailbox deltas.
type lameDelta struct {
	legs []int
	dest int
}

// pieceDeltas is a movement converted to mailbox deltas for one side.
type pieceDeltas struct {
	steps    []int
	quiets   []int
	captures []int
	slides   []int
	cannon   []int
	lame     []lameDelta
	kind     cannonKind
}

// Board is a position of one variant. A Board is owned by a single
// goroutine; Clone gives each worker its own copy.
type Board struct {
	v    *Variant
	keys *hashing.Table

	width, height, stride int
	first, last           int

	squares    []chess.Piece
	side       chess.Side
	reserve    [2][]int
	castling   [2][2]int // [side][wing] castling rook square, 0 for none
	epSquare   int
	reversible int
	startPly   int
	history    []historyEntry
	key        uint64
	kings      [2]int
	aux        auxState
	tr         *Transition

	defs    [chess.NumPieceTypes]*PieceDef
	symbols map[string]chess.Piece
	deltas  [chess.NumPieceTypes][2]pieceDeltas
	attacks [2]attackTable
	inPlay  []chess.PieceType
}

// NewKeys builds the Zobrist table sized for variant v.
func NewKeys(v *Variant) *hashing.Table {
	slots := 1
	if v.Drops || v.Gating {
		slots = v.Width * v.Height
	}
	cells := (v.Width+2*wallColumns)*(v.Height+2*wallRows) + 2*guardCells
	return hashing.NewTable(hashing.DefaultSeed, int(chess.NumPieceTypes), cells, slots)
}

// NewBoard creates a board for variant v set to its starting position.
// keys may be shared between boards of the same variant; nil builds a new
// table. It panics if the variant's own starting FEN does not load.
func NewBoard(v *Variant, keys *hashing.Table) *Board {
	if keys == nil {
		keys = NewKeys(v)
	}
	b := &Board{
		v:      v,
		keys:   keys,
		width:  v.Width,
		height: v.Height,
		stride: v.Width + 2*wallColumns,
	}
	b.initialize()
	if err := b.SetFEN(v.StartFEN); err != nil {
		panic(fmt.Sprintf("engine: start position of %s: %v", v.Name, err))
	}
	return b
}

// initialize sizes the mailbox and derives the per-variant tables.
func (b *Board) initialize() {
	size := b.stride*(b.height+2*wallRows) + 2*guardCells
	b.squares = make([]chess.Piece, size)
	for i := range b.squares {
		b.squares[i] = chess.WallPiece
	}
	b.first = b.index(0, b.height-1)
	b.last = b.index(b.width-1, 0)
	b.clearSquares()
	for s := 0; s < 2; s++ {
		b.reserve[s] = make([]int, chess.NumPieceTypes)
	}

	b.symbols = make(map[string]chess.Piece)
	for i := range b.v.Pieces {
		d := &b.v.Pieces[i]
		b.defs[d.Type] = d
		b.symbols[d.Symbol] = chess.W(d.Type)
		b.symbols[strings.ToLower(d.Symbol)] = chess.B(d.Type)
		b.inPlay = append(b.inPlay, d.Type)
	}
	for _, t := range b.inPlay {
		for s := chess.White; s <= chess.Black; s++ {
			b.deltas[t][s] = b.convert(&movements[t], s)
		}
	}
	b.buildAttackTables()
}

// clearSquares empties the playable area.
func (b *Board) clearSquares() {
	for r := 0; r < b.height; r++ {
		for f := 0; f < b.width; f++ {
			b.squares[b.index(f, r)] = chess.NoPiece
		}
	}
}

// delta converts a White-relative offset to a mailbox delta for side s.
func (b *Board) delta(o offset, s chess.Side) int {
	if s == chess.Black {
		return o.df + o.dr*b.stride
	}
	return o.df - o.dr*b.stride
}

func (b *Board) convert(mv *movement, s chess.Side) pieceDeltas {
	conv := func(os []offset) []int {
		var ds []int
		for _, o := range os {
			ds = append(ds, b.delta(o, s))
		}
		return ds
	}
	pd := pieceDeltas{
		steps:    conv(mv.steps),
		quiets:   conv(mv.quiets),
		captures: conv(mv.captures),
		slides:   conv(mv.slides),
		cannon:   conv(mv.cannon),
		kind:     mv.kind,
	}
	for _, l := range mv.lame {
		pd.lame = append(pd.lame, lameDelta{legs: conv(l.legs), dest: b.delta(l.dest, s)})
	}
	return pd
}

// index maps a file and rank to a mailbox index. Rank 0 is at the bottom.
func (b *Board) index(file, rank int) int {
	return guardCells + (b.height-1-rank+wallRows)*b.stride + wallColumns + file
}

func (b *Board) inside(file, rank int) bool {
	return file >= 0 && file < b.width && rank >= 0 && rank < b.height
}

func (b *Board) fileOf(sq int) int {
	return (sq-guardCells)%b.stride - wallColumns
}

func (b *Board) rankOf(sq int) int {
	return b.height - 1 - ((sq-guardCells)/b.stride - wallRows)
}

// relativeRank returns the rank of sq counted from side's own edge.
func (b *Board) relativeRank(s chess.Side, sq int) int {
	if s == chess.Black {
		return b.height - 1 - b.rankOf(sq)
	}
	return b.rankOf(sq)
}

// forward returns the mailbox delta of one step towards the opponent.
func (b *Board) forward(s chess.Side) int {
	if s == chess.Black {
		return b.stride
	}
	return -b.stride
}

// Index returns the mailbox index of sq, or 0 if sq is off the board.
func (b *Board) Index(sq chess.Square) int {
	if !b.inside(sq.File, sq.Rank) {
		return 0
	}
	return b.index(sq.File, sq.Rank)
}

// SquareOf returns the square of a mailbox index, or InvalidSquare for
// wall cells.
func (b *Board) SquareOf(idx int) chess.Square {
	if idx <= 0 || idx >= len(b.squares) {
		return chess.InvalidSquare
	}
	f, r := b.fileOf(idx), b.rankOf(idx)
	if !b.inside(f, r) {
		return chess.InvalidSquare
	}
	return chess.Square{File: f, Rank: r}
}

// Variant returns the rule set of the board.
func (b *Board) Variant() *Variant {
	return b.v
}

// Keys returns the Zobrist table the board hashes with.
func (b *Board) Keys() *hashing.Table {
	return b.keys
}

// Width returns the number of files.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of ranks.
func (b *Board) Height() int {
	return b.height
}

// At returns the piece on a mailbox index. Wall cells hold WallPiece.
func (b *Board) At(idx int) chess.Piece {
	return b.squares[idx]
}

// PieceAt returns the piece on sq, or WallPiece when sq is off the board.
func (b *Board) PieceAt(sq chess.Square) chess.Piece {
	idx := b.Index(sq)
	if idx == 0 {
		return chess.WallPiece
	}
	return b.squares[idx]
}

// SideToMove returns the side to move.
func (b *Board) SideToMove() chess.Side {
	return b.side
}

// Key returns the Zobrist key of the position.
func (b *Board) Key() uint64 {
	return b.key
}

// EnPassantSquare returns the en passant target index, or 0.
func (b *Board) EnPassantSquare() int {
	return b.epSquare
}

// CastlingRook returns the rook square of side's castling right on wing, or
// 0 if the right is gone.
func (b *Board) CastlingRook(s chess.Side, wing int) int {
	return b.castling[s][wing]
}

// ReversibleMoveCount returns the plies since the last irreversible move.
func (b *Board) ReversibleMoveCount() int {
	return b.reversible
}

// PlyCount returns the number of plies played since the game start,
// including those implied by the loaded FEN.
func (b *Board) PlyCount() int {
	return b.startPly + len(b.history)
}

// FullMoveNumber returns the move number shown in FEN.
func (b *Board) FullMoveNumber() int {
	return b.PlyCount()/2 + 1
}

// HistoryLength returns the number of moves that can be undone.
func (b *Board) HistoryLength() int {
	return len(b.history)
}

// LastMove returns the most recent move, or the null move.
func (b *Board) LastMove() chess.Move {
	if len(b.history) == 0 {
		return chess.NullMove
	}
	return b.history[len(b.history)-1].move
}

// ReserveCount returns how many pieces like p are in p's side's reserve.
func (b *Board) ReserveCount(p chess.Piece) int {
	if !p.IsValid() {
		return 0
	}
	return b.reserve[p.Side()][p.Type()]
}

// ReserveTotal returns the number of reserve pieces held by side s.
func (b *Board) ReserveTotal(s chess.Side) int {
	n := 0
	for _, c := range b.reserve[s] {
		n += c
	}
	return n
}

// KingSquare returns the index of side s's royal piece, or 0.
func (b *Board) KingSquare(s chess.Side) int {
	return b.kings[s]
}

// RemainingChecks returns how many checks side s must still give in
// check-counting variants.
func (b *Board) RemainingChecks(s chess.Side) int {
	return b.aux.checks[s]
}

// CanGate reports whether side s may still gate on the back-rank file.
func (b *Board) CanGate(s chess.Side, file int) bool {
	return b.aux.gates[s]&(1<<uint(file)) != 0
}

// PieceCount returns the number of pieces of side s on the board.
func (b *Board) PieceCount(s chess.Side) int {
	n := 0
	for sq := b.first; sq <= b.last; sq++ {
		if b.squares[sq].Side() == s {
			n++
		}
	}
	return n
}

// Squares returns the playable mailbox indices from a8-side to h1-side.
func (b *Board) Squares() []int {
	out := make([]int, 0, b.width*b.height)
	for sq := b.first; sq <= b.last; sq++ {
		if b.SquareOf(sq).IsValid() {
			out = append(out, sq)
		}
	}
	return out
}

// setSquare places p on sq, keeping the key and king cache current.
func (b *Board) setSquare(sq int, p chess.Piece) {
	old := b.squares[sq]
	if old == p {
		return
	}
	if old.IsValid() {
		b.key ^= b.keys.Piece(int(old.Type()), int(old.Side()), sq)
		if old.Type() == b.v.Royal && b.kings[old.Side()] == sq {
			b.kings[old.Side()] = 0
		}
	}
	if p.IsValid() {
		b.key ^= b.keys.Piece(int(p.Type()), int(p.Side()), sq)
		if p.Type() == b.v.Royal {
			b.kings[p.Side()] = sq
		}
	}
	b.squares[sq] = p
	b.tr.addSquare(b.SquareOf(sq))
}

// addToReserve puts p into its side's reserve.
func (b *Board) addToReserve(p chess.Piece) {
	s, t := p.Side(), p.Type()
	n := b.reserve[s][t]
	b.key ^= b.keys.ReservePiece(int(t), int(s), n)
	b.reserve[s][t] = n + 1
	b.tr.addReserve(p)
}

// removeFromReserve takes p out of its side's reserve.
func (b *Board) removeFromReserve(p chess.Piece) {
	s, t := p.Side(), p.Type()
	n := b.reserve[s][t] - 1
	if n < 0 {
		panic(fmt.Sprintf("engine: no %v in reserve", p))
	}
	b.key ^= b.keys.ReservePiece(int(t), int(s), n)
	b.reserve[s][t] = n
	b.tr.addReserve(p)
}

// setCastlingRook changes side's castling right on wing.
func (b *Board) setCastlingRook(s chess.Side, wing, sq int) {
	old := b.castling[s][wing]
	if old == sq {
		return
	}
	if old != 0 {
		b.key ^= b.keys.Castling(int(s), old)
	}
	if sq != 0 {
		b.key ^= b.keys.Castling(int(s), sq)
	}
	b.castling[s][wing] = sq
}

// SetCastlingRook grants or removes (sq 0) a castling right. Variants that
// create rights during play, such as placement chess, use it.
func (b *Board) SetCastlingRook(s chess.Side, wing int, sq chess.Square) {
	b.setCastlingRook(s, wing, b.Index(sq))
}

func (b *Board) setEnPassant(sq int) {
	if b.epSquare == sq {
		return
	}
	if b.epSquare != 0 {
		b.key ^= b.keys.EnPassant(b.epSquare)
	}
	if sq != 0 {
		b.key ^= b.keys.EnPassant(sq)
	}
	b.epSquare = sq
}

func (b *Board) setGate(s chess.Side, file int, on bool) {
	if b.CanGate(s, file) == on {
		return
	}
	b.key ^= b.keys.Gate(int(s), file)
	b.aux.gates[s] ^= 1 << uint(file)
}

func (b *Board) setChecks(s chess.Side, n int) {
	if b.aux.checks[s] == n {
		return
	}
	b.key ^= b.keys.CheckCount(int(s), b.aux.checks[s]) ^ b.keys.CheckCount(int(s), n)
	b.aux.checks[s] = n
}

// ComputeKey recomputes the Zobrist key from scratch.
func (b *Board) ComputeKey() uint64 {
	var k uint64
	for sq := b.first; sq <= b.last; sq++ {
		if p := b.squares[sq]; p.IsValid() {
			k ^= b.keys.Piece(int(p.Type()), int(p.Side()), sq)
		}
	}
	if b.side == chess.Black {
		k ^= b.keys.Side()
	}
	for s := 0; s < 2; s++ {
		for wing := 0; wing < 2; wing++ {
			if sq := b.castling[s][wing]; sq != 0 {
				k ^= b.keys.Castling(s, sq)
			}
		}
		for t, n := range b.reserve[s] {
			for slot := 0; slot < n; slot++ {
				k ^= b.keys.ReservePiece(t, s, slot)
			}
		}
		for f := 0; f < b.width; f++ {
			if b.aux.gates[s]&(1<<uint(f)) != 0 {
				k ^= b.keys.Gate(s, f)
			}
		}
		if b.v.CheckCounting {
			k ^= b.keys.CheckCount(s, b.aux.checks[s])
		}
	}
	if b.epSquare != 0 {
		k ^= b.keys.EnPassant(b.epSquare)
	}
	return k
}

// Reset reloads the variant's starting position.
func (b *Board) Reset() {
	if err := b.SetFEN(b.v.StartFEN); err != nil {
		panic(fmt.Sprintf("engine: start position of %s: %v", b.v.Name, err))
	}
}

// Clone returns an independent copy sharing the immutable tables.
func (b *Board) Clone() *Board {
	c := *b
	c.squares = append([]chess.Piece(nil), b.squares...)
	for s := 0; s < 2; s++ {
		c.reserve[s] = append([]int(nil), b.reserve[s]...)
	}
	c.history = append([]historyEntry(nil), b.history...)
	c.tr = nil
	return &c
}

// Equal reports whether two boards hold the same game-relevant state.
// Move counters and history are ignored.
func (b *Board) Equal(o *Board) bool {
	if b.v != o.v || b.side != o.side || b.castling != o.castling ||
		b.epSquare != o.epSquare || b.aux != o.aux || b.key != o.key {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != o.squares[i] {
			return false
		}
	}
	for s := 0; s < 2; s++ {
		for t := range b.reserve[s] {
			if b.reserve[s][t] != o.reserve[s][t] {
				return false
			}
		}
	}
	return true
}

// String renders the board as text, White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.height - 1; r >= 0; r-- {
		for f := 0; f < b.width; f++ {
			p := b.squares[b.index(f, r)]
			switch {
			case p.IsEmpty():
				sb.WriteString(" .")
			case p.IsWall():
				sb.WriteString(" *")
			default:
				sym := b.v.Symbol(p)
				if len(sym) < 2 {
					sb.WriteByte(' ')
				}
				sb.WriteString(sym)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
