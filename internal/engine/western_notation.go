package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/errors"
	"github.com/lgbarn/varboard-go/internal/hashing"
	"github.com/lgbarn/varboard-go/internal/parser"
)

// SetFENTrailer implements NotationDialect: castling, en passant, optional
// remaining checks, halfmove clock and fullmove number.
func (WesternRules) SetFENTrailer(b *Board, fields []string) error {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	if c := field(0); c != "" {
		if err := b.setCastlingField(c); err != nil {
			return err
		}
	}

	if ep := field(1); ep != "" && ep != "-" {
		sq, n := chess.ParseSquare(ep)
		idx := b.Index(sq)
		if n != len(ep) || idx == 0 {
			return fenError("", "en passant", ep)
		}
		if b.epCapturable(idx, b.side) {
			b.epSquare = idx
		}
	}

	rest := 2
	if b.v.CheckCounting {
		b.aux.checks = [2]int{3, 3}
		if c := field(2); strings.Contains(c, "+") {
			w, bl, _ := strings.Cut(c, "+")
			nw, err1 := strconv.Atoi(w)
			nb, err2 := strconv.Atoi(bl)
			if err1 != nil || err2 != nil || nw < 0 || nb < 0 ||
				nw > hashing.MaxChecks || nb > hashing.MaxChecks {
				return fenError("", "checks", c)
			}
			b.aux.checks = [2]int{nw, nb}
			rest++
		}
	}
	return b.setMoveCounters(field(rest), field(rest+1))
}

// FENTrailer implements NotationDialect.
func (WesternRules) FENTrailer(b *Board, n FENNotation) string {
	parts := []string{b.castlingField(n), "-"}
	if b.epSquare != 0 {
		parts[1] = b.SquareOf(b.epSquare).String()
	}
	if b.v.CheckCounting {
		parts = append(parts, strconv.Itoa(b.aux.checks[chess.White])+"+"+strconv.Itoa(b.aux.checks[chess.Black]))
	}
	parts = append(parts, strconv.Itoa(b.reversible), strconv.Itoa(b.FullMoveNumber()))
	return strings.Join(parts, " ")
}

// SquareName implements NotationDialect.
func (WesternRules) SquareName(b *Board, sq int) string {
	return b.SquareOf(sq).String()
}

// LAN implements NotationDialect.
func (WesternRules) LAN(b *Board, m chess.Move) string {
	return b.westernLAN(m)
}

// SAN implements NotationDialect.
func (WesternRules) SAN(b *Board, m chess.Move) string {
	var sb strings.Builder
	name := func(sq int) string { return b.SquareOf(sq).String() }

	switch {
	case m.IsDrop():
		sb.WriteString(b.v.SANSymbol(m.Promotion) + "@" + name(m.Target))

	case b.isCastling(m):
		if b.castlingWing(m) == KingSide {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		switch m.Effect.Kind {
		case chess.EffectGate:
			sb.WriteString("/" + b.v.SANSymbol(m.Effect.Piece) + name(m.Source))
		case chess.EffectGateRook:
			sb.WriteString("/" + b.v.SANSymbol(m.Effect.Piece) + name(m.Target))
		}

	default:
		p := b.squares[m.Source]
		capture := b.IsCapture(m)
		if p.Type() == b.v.PawnType {
			if capture {
				sb.WriteString(b.algebraicFile(m.Source) + "x")
			}
		} else {
			sb.WriteString(b.v.SANSymbol(p.Type()))
			sb.WriteString(b.disambiguation(m, b.sameKindTargets(m), b.algebraicFile, b.algebraicRank))
			if capture {
				sb.WriteByte('x')
			}
		}
		sb.WriteString(name(m.Target))
		if m.Promotion != chess.NoPieceType {
			sb.WriteString("=" + b.v.SANSymbol(m.Promotion))
		}
		if m.Effect.Kind == chess.EffectGate {
			sb.WriteString("/" + b.v.SANSymbol(m.Effect.Piece))
		}
	}

	sb.WriteString(b.checkSuffix(m))
	return sb.String()
}

// ParseSAN implements NotationDialect.
func (WesternRules) ParseSAN(b *Board, s string) (chess.Move, error) {
	d, err := parser.DecodeSAN(s)
	if err != nil {
		return chess.NullMove, err
	}
	if d.Null {
		return chess.NullMove, errors.ErrIllegalMove
	}
	return b.matchSAN(d)
}

// matchSAN returns the only legal move described by d.
func (b *Board) matchSAN(d parser.SAN) (chess.Move, error) {
	var found []chess.Move
	for _, m := range b.LegalMoves() {
		if b.sanMatches(d, m) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return chess.NullMove, errors.Wrapf(errors.ErrIllegalMove, "no legal move matches %q", d.Text)
	case 1:
		return found[0], nil
	}
	return chess.NullMove, errors.Wrapf(errors.ErrAmbiguousMove, "%d moves match %q", len(found), d.Text)
}

func (b *Board) letterIs(t chess.PieceType, c byte) bool {
	return b.v.SANSymbol(t) == string(c)
}

func (b *Board) sanMatches(d parser.SAN, m chess.Move) bool {
	if !b.gateMatches(d, m) {
		return false
	}

	if d.Castle != parser.NoCastle {
		if !b.isCastling(m) {
			return false
		}
		wing := b.castlingWing(m)
		return (d.Castle == parser.KingsideCastle) == (wing == KingSide)
	}

	if d.Drop || m.IsDrop() {
		if !d.Drop || !m.IsDrop() || b.SquareOf(m.Target) != d.To {
			return false
		}
		if d.Piece == 0 {
			return m.Promotion == b.v.PawnType
		}
		return b.letterIs(m.Promotion, d.Piece)
	}

	if b.isCastling(m) {
		return false
	}
	p := b.squares[m.Source]
	if d.Piece == 0 {
		if p.Type() != b.v.PawnType {
			return false
		}
	} else if !b.letterIs(p.Type(), d.Piece) {
		return false
	}

	if b.SquareOf(m.Target) != d.To {
		return false
	}
	from := b.SquareOf(m.Source)
	if (d.From.File >= 0 && d.From.File != from.File) || (d.From.Rank >= 0 && d.From.Rank != from.Rank) {
		return false
	}

	if d.Promotion == 0 {
		return m.Promotion == chess.NoPieceType
	}
	return m.Promotion != chess.NoPieceType && b.letterIs(m.Promotion, d.Promotion)
}

func (b *Board) gateMatches(d parser.SAN, m chess.Move) bool {
	if d.Gate == 0 {
		return m.Effect.Kind == chess.EffectNone
	}
	if m.Effect.Kind == chess.EffectNone || !b.letterIs(m.Effect.Piece, d.Gate) {
		return false
	}
	if !d.GateSquare.IsValid() {
		return m.Effect.Kind == chess.EffectGate
	}
	sq := m.Source
	if m.Effect.Kind == chess.EffectGateRook {
		sq = m.Target
	}
	return b.SquareOf(sq) == d.GateSquare
}
