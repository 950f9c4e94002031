package parser

import (
	"io"
	"strings"
)

// Movetext is the main line of a move sequence.
type Movetext struct {
	Moves    []string
	Comments []string
	Result   string
}

// Parser reads movetext from the lexer, keeping the main line and dropping
// variations.
type Parser struct {
	lexer        *Lexer
	currentToken Token
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader, log io.Writer) *Parser {
	p := &Parser{
		lexer: NewLexer(r, log),
	}
	p.nextToken()
	return p
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// Parse reads the whole input. Tag pairs are skipped, so a PGN game body
// can be passed as is.
func (p *Parser) Parse() *Movetext {
	mt := &Movetext{Result: "*"}
	for p.currentToken.Type != EOFToken {
		switch p.currentToken.Type {
		case MoveToken:
			mt.Moves = append(mt.Moves, p.currentToken.Text)
		case CommentToken:
			mt.Comments = append(mt.Comments, p.currentToken.Text)
		case RAVStart:
			p.skipVariation()
		case TerminatingResult:
			mt.Result = p.currentToken.Text
		}
		p.nextToken()
	}
	return mt
}

// skipVariation consumes tokens up to the matching RAVEnd.
func (p *Parser) skipVariation() {
	depth := 1
	for depth > 0 {
		p.nextToken()
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken:
			return
		}
	}
}

// ParseMovetext splits movetext such as "1. e4 e5 2. Nf3 {good} Nc6 *" into
// its main-line moves.
func ParseMovetext(text string) *Movetext {
	return NewParser(strings.NewReader(text), nil).Parse()
}
