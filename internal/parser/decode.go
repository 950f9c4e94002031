package parser

import (
	"strings"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/errors"
)

// Castle identifies the castling wing named by SAN text.
type Castle int

const (
	NoCastle Castle = iota
	KingsideCastle
	QueensideCastle
)

// SAN is the syntactic content of a SAN move. Nothing is checked against a
// position; the board matches it against its legal moves.
type SAN struct {
	Text string

	// Piece is the upper-case piece letter, 0 for a pawn.
	Piece byte
	// From holds any disambiguation; File or Rank is -1 when absent.
	From chess.Square
	To   chess.Square

	Capture   bool
	Drop      bool
	Promotion byte
	Castle    Castle
	Null      bool

	// Gate is the piece letter placed by a gating move, GateSquare the
	// square it is placed on when given.
	Gate       byte
	GateSquare chess.Square

	Check bool
	Mate  bool
}

// isFile returns true if c can name a file.
func isFile(c byte) bool {
	return c >= 'a' && c <= 'z' && c != 'x'
}

// isDigit returns true if c is a rank digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isPieceLetter returns true if c is an upper-case piece letter.
func isPieceLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' && c != 'O'
}

// isCapture returns true if c is a capture character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isAnnotation returns true if c is a move annotation character.
func isAnnotation(c byte) bool {
	return c == '!' || c == '?'
}

// DecodeSAN parses SAN move text. Ranks may have several digits, so moves
// on boards taller than nine ranks decode as well.
func DecodeSAN(moveString string) (SAN, error) {
	san := SAN{
		Text:       moveString,
		From:       chess.InvalidSquare,
		To:         chess.InvalidSquare,
		GateSquare: chess.InvalidSquare,
	}
	fail := func() (SAN, error) {
		return SAN{Text: moveString}, errors.Wrapf(errors.ErrInvalidMove, "decode %q", moveString)
	}

	switch moveString {
	case "--", "Z0", chess.NullMoveString:
		san.Null = true
		return san, nil
	}

	pos := 0

	currentChar := func() byte {
		if pos >= len(moveString) {
			return 0
		}
		return moveString[pos]
	}

	advance := func() {
		if pos < len(moveString) {
			pos++
		}
	}

	remaining := func() string {
		if pos >= len(moveString) {
			return ""
		}
		return moveString[pos:]
	}

	// coordinate reads an optional file letter followed by optional rank
	// digits.
	coordinate := func() (chess.Square, bool) {
		sq := chess.Square{File: -1, Rank: -1}
		if isFile(currentChar()) {
			sq.File = int(currentChar() - 'a')
			advance()
		}
		start := pos
		for isDigit(currentChar()) {
			advance()
		}
		if pos > start {
			n := 0
			for _, c := range moveString[start:pos] {
				n = n*10 + int(c-'0')
			}
			if n < 1 {
				return sq, false
			}
			sq.Rank = n - 1
		}
		return sq, sq.File >= 0 || sq.Rank >= 0
	}

	// square reads a complete square.
	square := func() (chess.Square, bool) {
		sq, ok := coordinate()
		return sq, ok && sq.File >= 0 && sq.Rank >= 0
	}

	switch {
	case isCastlingChar(currentChar()):
		advance()
		if currentChar() == '-' {
			advance()
		}
		if !isCastlingChar(currentChar()) {
			return fail()
		}
		advance()
		san.Castle = KingsideCastle
		if currentChar() == '-' && pos+1 < len(moveString) && isCastlingChar(moveString[pos+1]) {
			advance()
		}
		if isCastlingChar(currentChar()) {
			advance()
			san.Castle = QueensideCastle
		}
		san.Piece = 'K'

	default:
		if isPieceLetter(currentChar()) {
			san.Piece = currentChar()
			advance()
			if currentChar() == '~' {
				advance()
			}
		}
		if currentChar() == '@' {
			advance()
			san.Drop = true
			to, ok := square()
			if !ok {
				return fail()
			}
			san.To = to
			break
		}

		first, hasFirst := coordinate()
		if isCapture(currentChar()) {
			san.Capture = true
			advance()
		} else if hasFirst && currentChar() == '-' {
			advance()
		}
		if isFile(currentChar()) || isDigit(currentChar()) {
			to, ok := square()
			if !ok {
				return fail()
			}
			san.To = to
			if hasFirst {
				san.From = first
			}
		} else {
			if !hasFirst || first.File < 0 || first.Rank < 0 || san.Capture {
				return fail()
			}
			san.To = first
		}

		if currentChar() == '=' {
			advance()
			c := currentChar()
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			if !isPieceLetter(c) {
				return fail()
			}
			san.Promotion = c
			advance()
		} else if san.Piece == 0 && isPieceLetter(currentChar()) {
			san.Promotion = currentChar()
			advance()
		}
	}

	if currentChar() == '/' {
		advance()
		if !isPieceLetter(currentChar()) {
			return fail()
		}
		san.Gate = currentChar()
		advance()
		if isFile(currentChar()) {
			sq, ok := square()
			if !ok {
				return fail()
			}
			san.GateSquare = sq
		}
	}

	for isCheck(currentChar()) || isAnnotation(currentChar()) {
		switch currentChar() {
		case '+':
			san.Check = true
		case '#':
			san.Mate = true
		}
		advance()
	}

	if rest := remaining(); rest != "" && rest != "ep" && rest != "e.p." {
		return fail()
	}
	return san, nil
}

// IsLAN reports whether text looks like coordinate notation: two squares
// with an optional trailing promotion letter, or a drop.
func IsLAN(text string) bool {
	if strings.Contains(text, "@") || strings.Contains(text, "*") {
		return true
	}
	from, n := chess.ParseSquare(text)
	if n == 0 || !from.IsValid() {
		return false
	}
	_, m := chess.ParseSquare(text[n:])
	return m > 0
}
