package chess

import "strconv"

// Square is a zero-based (file, rank) coordinate. Rank 0 is White's back rank.
type Square struct {
	File int
	Rank int
}

// InvalidSquare is the sentinel for "no square".
var InvalidSquare = Square{File: -1, Rank: -1}

// IsValid reports whether s is not the sentinel. It does not check that s
// lies inside any particular board.
func (s Square) IsValid() bool {
	return s.File >= 0 && s.Rank >= 0
}

// String returns the algebraic name of the square, e.g. "e4" or "j10".
// Files past 'z' are not supported.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string(rune('a'+s.File)) + strconv.Itoa(s.Rank+1)
}

// ParseSquare reads an algebraic square name at the start of text and
// returns it with the number of bytes consumed. Ranks may have several
// digits. It returns InvalidSquare and 0 when text does not start with a
// square.
func ParseSquare(text string) (Square, int) {
	if len(text) < 2 || text[0] < 'a' || text[0] > 'z' {
		return InvalidSquare, 0
	}
	n := 1
	for n < len(text) && text[n] >= '0' && text[n] <= '9' {
		n++
	}
	if n == 1 {
		return InvalidSquare, 0
	}
	rank, err := strconv.Atoi(text[1:n])
	if err != nil || rank < 1 {
		return InvalidSquare, 0
	}
	return Square{File: int(text[0] - 'a'), Rank: rank - 1}, n
}
