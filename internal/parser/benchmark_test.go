package parser

import (
	"strings"
	"testing"
)

const gameText = `[Event "Test"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. c3 Nf6 5. d4 exd4 6. cxd4 Bb4+ 7. Nc3 Nxe4
8. O-O Nxc3 9. bxc3 Bxc3 10. Qb3 Bxa1 11. Bxf7+ Kf8 12. Bg5 Ne7 13. Ne5 Bxd4
14. Bg6 d5 15. Qf3+ Bf5 16. Bxf5 Bxe5 17. Be6+ Bf6 18. Bxf6 gxf6 19. Qxf6+ Ke8
20. Qf7# 1-0
`

func BenchmarkParseMovetext(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ParseMovetext(gameText)
	}
}

func BenchmarkLexer_NextToken(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := NewLexer(strings.NewReader(gameText), nil)
		for tok := l.NextToken(); tok.Type != EOFToken; tok = l.NextToken() {
		}
	}
}

func BenchmarkDecodeSAN(b *testing.B) {
	moves := []string{"e4", "Nf3", "exd5", "O-O-O", "e8=Q+", "Nbd7", "R1e1", "N@f3"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_, _ = DecodeSAN(m)
		}
	}
}
