package chess

// ResultType classifies the state of a game.
type ResultType int

const (
	NoResult ResultType = iota
	Win
	Draw
)

// Result is the outcome of a game. Winner is NoSide unless Type is Win.
type Result struct {
	Type   ResultType
	Winner Side
	Reason string
}

// Ongoing is the result of a game that has not ended.
var Ongoing = Result{Type: NoResult, Winner: NoSide}

// WinFor returns a win for side with the given reason.
func WinFor(side Side, reason string) Result {
	return Result{Type: Win, Winner: side, Reason: reason}
}

// DrawBy returns a draw with the given reason.
func DrawBy(reason string) Result {
	return Result{Type: Draw, Winner: NoSide, Reason: reason}
}

// IsOver reports whether the game has ended.
func (r Result) IsOver() bool {
	return r.Type != NoResult
}

// String renders the result in PGN form.
func (r Result) String() string {
	switch r.Type {
	case Win:
		if r.Winner == White {
			return "1-0"
		}
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}
