package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Lexer tokenizes movetext.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	ravLevel uint
	eof      bool
	log      io.Writer
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	// Initialize all to error
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	// Whitespace
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	// Brackets
	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd

	// Special symbols
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['%'] = Percent
	chTab[';'] = Percent
	chTab['*'] = Star
	chTab['-'] = Dash

	// Digits
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}

	// Alpha characters (upper and lowercase), drops and promoted pieces
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['@'] = Alpha
	chTab['+'] = Alpha

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	for c := byte('a'); c <= 'z'; c++ {
		moveChars[c] = true
		moveChars[c-32] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		moveChars[c] = true
	}

	// Captures, drops, promotion, gating, checks and separators
	for _, c := range []byte{'x', ':', '-', '=', '@', '*', '+', '#', '/', '~', '!', '?'} {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader. Diagnostics go to log;
// nil discards them.
func NewLexer(r io.Reader, log io.Writer) *Lexer {
	if log == nil {
		log = io.Discard
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		log:    log,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() Token {
	// Need a new line?
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return Token{Type: EOFToken}
		}
		return Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for chTab[l.currentChar()] == Whitespace && l.pos < len(l.line) {
			l.advance()
		}
		return Token{Type: NoToken}

	case TagStart:
		end := strings.IndexByte(l.line[l.pos:], ']')
		if end < 0 {
			text := l.line[l.pos:]
			l.pos = len(l.line)
			return Token{Type: TagToken, Text: strings.TrimSpace(text)}
		}
		text := l.line[l.pos : l.pos+end]
		l.pos += end + 1
		return Token{Type: TagToken, Text: strings.TrimSpace(text)}

	case CommentStart:
		return l.gatherComment()

	case CommentEnd, TagEnd:
		fmt.Fprintf(l.log, "Unmatched %c on line %d.\n", ch, l.lineNum)
		return Token{Type: NoToken}

	case NAGToken:
		start := l.pos
		for unicode.IsDigit(rune(l.currentChar())) {
			l.advance()
		}
		return Token{Type: NAGToken, Text: "$" + l.line[start:l.pos]}

	case Annotate:
		for chTab[l.currentChar()] == Annotate {
			l.advance()
		}
		return Token{Type: NAGToken, Text: annotationToNAG(l.line[symbolStart:l.pos])}

	case Dot:
		for chTab[l.currentChar()] == Dot {
			l.advance()
		}
		return Token{Type: NoToken}

	case RAVStart:
		l.ravLevel++
		return Token{Type: RAVStart}

	case RAVEnd:
		if l.ravLevel > 0 {
			l.ravLevel--
			return Token{Type: RAVEnd}
		}
		fmt.Fprintf(l.log, "Too many ')' found on line %d.\n", l.lineNum)
		return Token{Type: NoToken}

	case Percent:
		// Rest of line comment
		l.pos = len(l.line)
		return Token{Type: NoToken}

	case Alpha:
		return l.gatherMove(symbolStart)

	case Digit:
		return l.gatherNumeric(ch, symbolStart)

	case Star:
		return Token{Type: TerminatingResult, Text: "*"}

	case Dash:
		if l.currentChar() == '-' {
			l.advance()
			return Token{Type: MoveToken, Text: "--"}
		}
		fmt.Fprintf(l.log, "Single '-' not allowed on line %d.\n", l.lineNum)
		return Token{Type: NoToken}

	default:
		fmt.Fprintf(l.log, "Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		for l.pos < len(l.line) && chTab[l.currentChar()] == ErrorToken {
			l.advance()
		}
		return Token{Type: NoToken}
	}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() Token {
	var sb strings.Builder
	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}
	fmt.Fprintf(l.log, "Missing end of comment.\n")
	return Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
}

// gatherMove gathers a run of move characters. Trailing annotation
// characters are left to the NAG handling.
func (l *Lexer) gatherMove(symbolStart int) Token {
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}
	text := strings.TrimRight(l.line[symbolStart:l.pos], "!?")
	if text == "" || text == "+" {
		return Token{Type: NoToken}
	}
	return Token{Type: MoveToken, Text: text}
}

// gatherNumeric handles tokens starting with a digit: results, castling
// written with zeros, move numbers and coordinate moves such as 7g7f.
func (l *Lexer) gatherNumeric(initialDigit byte, symbolStart int) Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return Token{Type: TerminatingResult, Text: "0-1"}
		}
		if strings.HasPrefix(remaining, "-0") {
			return l.gatherMove(symbolStart)
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return Token{Type: TerminatingResult, Text: "1-0"}
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos += 2
			if strings.HasPrefix(l.line[l.pos:], "-1/2") {
				l.pos += 4
			}
			return Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}

	for unicode.IsDigit(rune(l.currentChar())) {
		l.advance()
	}
	if c := l.currentChar(); c >= 'a' && c <= 'z' {
		return l.gatherMove(symbolStart)
	}
	var moveNum uint
	fmt.Sscanf(l.line[symbolStart:l.pos], "%d", &moveNum) //nolint:gosec // G104: default 0 is acceptable
	for l.currentChar() == '.' {
		l.advance()
	}
	return Token{Type: MoveNumber, Number: moveNum}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// RAVLevel returns the current RAV nesting level.
func (l *Lexer) RAVLevel() uint {
	return l.ravLevel
}
