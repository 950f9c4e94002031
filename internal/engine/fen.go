package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/errors"
)

// FENNotation selects how castling rights are written.
type FENNotation int

const (
	// XFEN writes KQkq, falling back to the rook's file letter when the
	// castling rook is not the outermost one on its wing.
	XFEN FENNotation = iota
	// ShredderFEN always writes the rook's file letter.
	ShredderFEN
)

// maxSymbolLength bounds the length of a piece symbol such as "+P" or "Q~".
const maxSymbolLength = 2

// fenError builds the error returned for a rejected FEN field.
func fenError(fen, field, value string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, FEN: fen, Field: field, Value: value}
}

// UsesReserve reports whether positions of v carry a bracketed reserve.
func (v *Variant) UsesReserve() bool {
	return (v.Drops || v.Gating) && v.Family != FamilyConnect
}

// SetFEN loads a position. On failure the board must be reloaded before it
// is used again.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fenError(fen, "board", "")
	}

	b.clearState()

	placement, reserve := fields[0], ""
	if i := strings.IndexByte(placement, '['); i >= 0 {
		if !strings.HasSuffix(placement, "]") {
			return fenError(fen, "reserve", placement[i:])
		}
		placement, reserve = placement[:i], placement[i+1:len(placement)-1]
	}
	if err := b.setPlacement(placement); err != nil {
		return fenError(fen, "board", err.Error())
	}
	if err := b.setReserve(reserve); err != nil {
		return fenError(fen, "reserve", reserve)
	}

	b.side = chess.White
	if len(fields) > 1 {
		switch fields[1] {
		case "w", "W":
		case "b", "B":
			b.side = chess.Black
		default:
			return fenError(fen, "side to move", fields[1])
		}
	}
	b.startPly = 0
	if b.side == chess.Black {
		b.startPly = 1
	}

	var trailer []string
	if len(fields) > 2 {
		trailer = fields[2:]
	}
	if err := b.v.Notation.SetFENTrailer(b, trailer); err != nil {
		var fe *errors.FENError
		if errors.As(err, &fe) {
			fe.FEN = fen
			return fe
		}
		return fenError(fen, "trailer", err.Error())
	}

	b.key = b.ComputeKey()
	if !b.validKings() || !b.v.Check.IsLegalPosition(b) {
		return fenError(fen, "position", "side not to move can be captured")
	}
	return nil
}

// clearState empties the board and all counters.
func (b *Board) clearState() {
	b.clearSquares()
	for s := 0; s < 2; s++ {
		for t := range b.reserve[s] {
			b.reserve[s][t] = 0
		}
	}
	b.side = chess.White
	b.castling = [2][2]int{}
	b.epSquare = 0
	b.reversible = 0
	b.startPly = 0
	b.history = b.history[:0]
	b.kings = [2]int{}
	b.aux = auxState{}
	b.key = 0
	b.tr = nil
}

// validKings reports whether no side has more than one royal piece.
func (b *Board) validKings() bool {
	if b.v.Royal == chess.NoPieceType {
		return true
	}
	var count [2]int
	for sq := b.first; sq <= b.last; sq++ {
		if p := b.squares[sq]; p.IsValid() && p.Type() == b.v.Royal {
			count[p.Side()]++
		}
	}
	return count[chess.White] <= 1 && count[chess.Black] <= 1
}

// matchSymbol returns the piece whose symbol is the longest prefix of s and
// the symbol's length.
func (b *Board) matchSymbol(s string) (chess.Piece, int) {
	for n := maxSymbolLength; n >= 1; n-- {
		if len(s) < n {
			continue
		}
		if p, ok := b.symbols[s[:n]]; ok {
			return p, n
		}
	}
	return chess.NoPiece, 0
}

func (b *Board) setPlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != b.height {
		return errors.Wrapf(errors.ErrInvalidFEN, "%d ranks", len(rows))
	}
	for i, row := range rows {
		rank := b.height - 1 - i
		file := 0
		for j := 0; j < len(row); {
			c := row[j]
			switch {
			case c >= '0' && c <= '9':
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				n, _ := strconv.Atoi(row[j:k])
				if n == 0 {
					return errors.Wrapf(errors.ErrInvalidFEN, "empty run %q", row[j:k])
				}
				file += n
				j = k
				continue
			case c == '*':
				if file >= b.width {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %d too long", rank+1)
				}
				b.squares[b.index(file, rank)] = chess.WallPiece
				file++
				j++
				continue
			}
			p, n := b.matchSymbol(row[j:])
			if n == 0 {
				return errors.Wrapf(errors.ErrInvalidFEN, "unknown piece %q", row[j:j+1])
			}
			if file >= b.width {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d too long", rank+1)
			}
			b.setSquare(b.index(file, rank), p)
			file++
			j += n
		}
		if file != b.width {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}
	return nil
}

func (b *Board) setReserve(reserve string) error {
	if reserve == "" || reserve == "-" {
		return nil
	}
	if !b.v.UsesReserve() {
		return errors.ErrInvalidFEN
	}
	for j := 0; j < len(reserve); {
		count := 1
		if c := reserve[j]; c >= '0' && c <= '9' {
			k := j
			for k < len(reserve) && reserve[k] >= '0' && reserve[k] <= '9' {
				k++
			}
			var err error
			if count, err = strconv.Atoi(reserve[j:k]); err != nil || count < 1 {
				return errors.ErrInvalidFEN
			}
			j = k
		}
		p, n := b.matchSymbol(reserve[j:])
		if n == 0 {
			return errors.ErrInvalidFEN
		}
		// Each held piece needs its own reserve key slot.
		if b.ReserveCount(p)+count > b.keys.ReserveSlots() {
			return errors.ErrInvalidFEN
		}
		for ; count > 0; count-- {
			b.addToReserve(p)
		}
		j += n
	}
	return nil
}

// FEN returns the position in FEN, writing castling rights in notation n.
func (b *Board) FEN(n FENNotation) string {
	var sb strings.Builder
	for r := b.height - 1; r >= 0; r-- {
		empty := 0
		for f := 0; f < b.width; f++ {
			p := b.squares[b.index(f, r)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if p.IsWall() {
				sb.WriteByte('*')
			} else {
				sb.WriteString(b.v.Symbol(p))
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	if b.v.UsesReserve() {
		sb.WriteByte('[')
		sb.WriteString(b.reserveString())
		sb.WriteByte(']')
	}

	sb.WriteByte(' ')
	if b.side == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	if t := b.v.Notation.FENTrailer(b, n); t != "" {
		sb.WriteByte(' ')
		sb.WriteString(t)
	}
	return sb.String()
}

// reserveString lists the reserve pieces, White first. An empty Shogi hand
// is written as "-".
func (b *Board) reserveString() string {
	var sb strings.Builder
	for s := chess.White; s <= chess.Black; s++ {
		for _, d := range b.v.Pieces {
			p := chess.MakePiece(d.Type, s)
			for i := 0; i < b.reserve[s][d.Type]; i++ {
				sb.WriteString(b.v.Symbol(p))
			}
		}
	}
	if sb.Len() == 0 && b.v.Family == FamilyShogi {
		return "-"
	}
	return sb.String()
}

// setMoveCounters parses the halfmove and fullmove fields. Empty strings
// keep the defaults.
func (b *Board) setMoveCounters(halfmove, fullmove string) error {
	if halfmove != "" && halfmove != "-" {
		n, err := strconv.Atoi(halfmove)
		if err != nil || n < 0 {
			return fenError("", "halfmove clock", halfmove)
		}
		b.reversible = n
	}
	if fullmove != "" && fullmove != "-" {
		n, err := strconv.Atoi(fullmove)
		if err != nil || n < 1 {
			return fenError("", "fullmove number", fullmove)
		}
		b.startPly = 2 * (n - 1)
		if b.side == chess.Black {
			b.startPly++
		}
	}
	return nil
}
