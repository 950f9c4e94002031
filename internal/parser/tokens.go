// Package parser decodes move text: single SAN or LAN moves and whole
// movetext sequences with move numbers, comments, variations and results.
package parser

// TokenType is the kind of a lexical token. The first group is what Next
// returns; the rest classify single characters while scanning.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	CommentToken
	NAGToken
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult

	Whitespace
	TagStart
	TagEnd
	CommentStart
	CommentEnd
	Annotate
	Dot
	Percent
	Alpha
	Digit
	Star
	Dash
	NoToken
	ErrorToken
)

// String names the token types Next can return.
func (t TokenType) String() string {
	switch t {
	case EOFToken:
		return "end of input"
	case TagToken:
		return "tag pair"
	case CommentToken:
		return "comment"
	case NAGToken:
		return "NAG"
	case MoveNumber:
		return "move number"
	case RAVStart:
		return "variation start"
	case RAVEnd:
		return "variation end"
	case MoveToken:
		return "move"
	case TerminatingResult:
		return "result"
	}
	return "character class"
}

// Token is one lexical token.
type Token struct {
	Type TokenType
	// Text is the move, comment, NAG, tag or result text.
	Text string
	// Number is the value of a MoveNumber token.
	Number uint
	Line   uint
}
