package engine

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/errors"
)

// MoveNotation selects SAN or LAN move text.
type MoveNotation int

const (
	SAN MoveNotation = iota
	LAN
)

// String returns the notation name.
func (n MoveNotation) String() string {
	if n == LAN {
		return "lan"
	}
	return "san"
}

// MoveString renders m, a legal move of the side to move, in notation n.
func (b *Board) MoveString(m chess.Move, n MoveNotation) string {
	if m.IsNull() {
		return chess.NullMoveString
	}
	if n == LAN {
		return b.v.Notation.LAN(b, m)
	}
	return b.v.Notation.SAN(b, m)
}

// SANMoveString renders m in SAN.
func (b *Board) SANMoveString(m chess.Move) string {
	return b.MoveString(m, SAN)
}

// LANMoveString renders m in LAN.
func (b *Board) LANMoveString(m chess.Move) string {
	return b.MoveString(m, LAN)
}

// MoveFromString finds the legal move written as LAN or SAN. Text matching
// no legal move wraps ErrIllegalMove or ErrInvalidMove; text matching
// several wraps ErrAmbiguousMove.
func (b *Board) MoveFromString(s string) (chess.Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return chess.NullMove, b.moveError(s, errors.ErrInvalidMove)
	}
	if m, ok := b.matchLAN(s); ok {
		return m, nil
	}
	m, err := b.v.Notation.ParseSAN(b, s)
	if err != nil {
		return chess.NullMove, b.moveError(s, err)
	}
	return m, nil
}

func (b *Board) moveError(s string, err error) error {
	return &errors.MoveError{Err: err, Notation: s, Ply: b.PlyCount() + 1, Variant: b.v.Name}
}

// matchLAN returns the legal move whose LAN is s. Castling may also be
// written in the form the canonical LAN does not use, as long as that does
// not collide with another move's canonical LAN.
func (b *Board) matchLAN(s string) (chess.Move, bool) {
	legal := b.LegalMoves()
	for _, m := range legal {
		if b.v.Notation.LAN(b, m) == s {
			return m, true
		}
	}
	for _, m := range legal {
		if b.isCastling(m) && m.Effect.Kind == chess.EffectNone && b.castlingAltLAN(m) == s {
			return m, true
		}
	}
	return chess.NullMove, false
}

// westernLAN writes coordinate notation: e2e4, e7e8q, N@f3, castling as the
// king's move in fixed setups and king-takes-rook in random ones, and a
// gated piece letter at the end.
func (b *Board) westernLAN(m chess.Move) string {
	name := func(sq int) string { return b.v.Notation.SquareName(b, sq) }
	if m.IsDrop() {
		return b.v.SANSymbol(m.Promotion) + "@" + name(m.Target)
	}
	var sb strings.Builder
	switch {
	case b.isCastling(m) && m.Effect.Kind == chess.EffectGateRook:
		sb.WriteString(name(m.Target) + name(m.Source))
	case b.isCastling(m) && !b.v.RandomSetup:
		kingTo, _ := b.castlingTargets(b.side, b.castlingWing(m))
		sb.WriteString(name(m.Source) + name(kingTo))
	default:
		sb.WriteString(name(m.Source) + name(m.Target))
	}
	if m.Promotion != chess.NoPieceType {
		sb.WriteString(strings.ToLower(b.v.SANSymbol(m.Promotion)))
	}
	if m.Effect.Kind != chess.EffectNone {
		sb.WriteString(strings.ToLower(b.v.SANSymbol(m.Effect.Piece)))
	}
	return sb.String()
}

// castlingAltLAN returns the castling LAN form that westernLAN does not
// produce.
func (b *Board) castlingAltLAN(m chess.Move) string {
	name := func(sq int) string { return b.v.Notation.SquareName(b, sq) }
	if b.v.RandomSetup {
		kingTo, _ := b.castlingTargets(b.side, b.castlingWing(m))
		return name(m.Source) + name(kingTo)
	}
	return name(m.Source) + name(m.Target)
}

// sameKindTargets returns the legal moves other than m that move a piece
// with the same SAN letter to the same target.
func (b *Board) sameKindTargets(m chess.Move) []chess.Move {
	letter := b.v.SANSymbol(b.squares[m.Source].Type())
	var out []chess.Move
	for _, t := range b.inPlay {
		if b.v.SANSymbol(t) != letter {
			continue
		}
		for _, o := range b.GenerateMoves(nil, t) {
			if o.Target != m.Target || o.Source == m.Source || o.IsDrop() || b.isCastling(o) {
				continue
			}
			if b.IsLegalMove(o) {
				out = append(out, o)
			}
		}
	}
	return out
}

// disambiguation returns the file, rank or both of m's source, whichever
// first tells it apart from the other moves in others.
func (b *Board) disambiguation(m chess.Move, others []chess.Move, file func(int) string, rank func(int) string) string {
	if len(others) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, o := range others {
		if b.fileOf(o.Source) == b.fileOf(m.Source) {
			sameFile = true
		}
		if b.rankOf(o.Source) == b.rankOf(m.Source) {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return file(m.Source)
	case !sameRank:
		return rank(m.Source)
	}
	return file(m.Source) + rank(m.Source)
}

// checkSuffix returns "+" or "#" when m gives check or mate.
func (b *Board) checkSuffix(m chess.Move) string {
	if b.v.Royal == chess.NoPieceType {
		return ""
	}
	suffix := ""
	b.WithMove(m, func() bool {
		if b.InCheck(b.side) {
			suffix = "+"
			if !b.HasLegalMoves() {
				suffix = "#"
			}
		}
		return true
	})
	return suffix
}

func (b *Board) algebraicFile(sq int) string {
	return string(rune('a' + b.fileOf(sq)))
}

func (b *Board) algebraicRank(sq int) string {
	return strconv.Itoa(b.rankOf(sq) + 1)
}

// matchRendered returns the legal move whose canonical text is s or, failing
// that, the only legal move that accepts s as an alternative spelling.
// Dialects without a grammar of their own parse SAN this way.
func (b *Board) matchRendered(s string, canonical func(chess.Move) string, alternates func(chess.Move) []string) (chess.Move, error) {
	legal := b.LegalMoves()
	for _, m := range legal {
		if canonical(m) == s {
			return m, nil
		}
	}
	var found []chess.Move
	if alternates != nil {
		for _, m := range legal {
			if slices.Contains(alternates(m), s) {
				found = append(found, m)
			}
		}
	}
	switch len(found) {
	case 0:
		return chess.NullMove, errors.Wrapf(errors.ErrIllegalMove, "no legal move matches %q", s)
	case 1:
		return found[0], nil
	}
	return chess.NullMove, errors.Wrapf(errors.ErrAmbiguousMove, "%d moves match %q", len(found), s)
}

// letterSAN writes a move as piece letter, source hint, capture mark and
// target, the form shared by the Xiangqi and Janggi dialects.
func (b *Board) letterSAN(m chess.Move, hint string) string {
	var sb strings.Builder
	sb.WriteString(b.v.SANSymbol(b.squares[m.Source].Type()))
	sb.WriteString(hint)
	if b.IsCapture(m) {
		sb.WriteByte('x')
	}
	sb.WriteString(b.v.Notation.SquareName(b, m.Target))
	return sb.String()
}

// letterSANForms lists the spellings of m that letterSAN accepts: every
// source hint, each with and without a check suffix.
func (b *Board) letterSANForms(m chess.Move) []string {
	suffix := b.checkSuffix(m)
	var forms []string
	for _, hint := range []string{"", b.algebraicFile(m.Source), b.algebraicRank(m.Source), b.SquareOf(m.Source).String()} {
		s := b.letterSAN(m, hint)
		forms = append(forms, s)
		if suffix != "" {
			forms = append(forms, s+suffix)
		}
	}
	return forms
}
