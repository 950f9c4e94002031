package engine

import "github.com/lgbarn/varboard-go/internal/chess"

// offset is a (file, rank) displacement seen from White. Black mirrors the
// rank component.
type offset struct {
	df, dr int
}

// lameLeap is a leap that is blocked when any leg square is occupied.
type lameLeap struct {
	legs []offset
	dest offset
}

type cannonKind int

const (
	cannonNone cannonKind = iota
	// cannonXiangqi moves like a rook and captures over exactly one screen.
	cannonXiangqi
	// cannonJanggi both moves and captures over one screen that is not a
	// cannon, and never captures a cannon.
	cannonJanggi
)

// movement describes how a piece type moves. Steps move or capture, quiets
// only move and captures only capture.
type movement struct {
	steps    []offset
	quiets   []offset
	captures []offset
	slides   []offset
	lame     []lameLeap
	cannon   []offset
	kind     cannonKind
}

var (
	orthogonal = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonal   = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	allAround  = append(append([]offset{}, orthogonal...), diagonal...)
	knightHops = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	alfilHops  = []offset{{2, 2}, {2, -2}, {-2, -2}, {-2, 2}}
	goldSteps  = []offset{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
	silverStep = []offset{{-1, 1}, {0, 1}, {1, 1}, {-1, -1}, {1, -1}}
)

func join(sets ...[]offset) []offset {
	var out []offset
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// horseLeaps are knight moves blocked by the orthogonally adjacent square.
func horseLeaps() []lameLeap {
	var leaps []lameLeap
	for _, h := range knightHops {
		leg := offset{0, sign(h.dr)}
		if abs(h.df) == 2 {
			leg = offset{sign(h.df), 0}
		}
		leaps = append(leaps, lameLeap{legs: []offset{leg}, dest: h})
	}
	return leaps
}

// elephantLeaps are two-square diagonal leaps blocked by the middle square.
func elephantLeaps() []lameLeap {
	var leaps []lameLeap
	for _, d := range diagonal {
		leaps = append(leaps, lameLeap{legs: []offset{d}, dest: offset{2 * d.df, 2 * d.dr}})
	}
	return leaps
}

// janggiElephantLeaps go one square orthogonally and then two diagonally
// outward, with both intermediate squares empty.
func janggiElephantLeaps() []lameLeap {
	var leaps []lameLeap
	for _, o := range orthogonal {
		for _, side := range []int{-1, 1} {
			var d offset
			if o.df == 0 {
				d = offset{side, o.dr}
			} else {
				d = offset{o.df, side}
			}
			leaps = append(leaps, lameLeap{
				legs: []offset{o, {o.df + d.df, o.dr + d.dr}},
				dest: offset{o.df + 2*d.df, o.dr + 2*d.dr},
			})
		}
	}
	return leaps
}

// movements is the catalogue of movement patterns indexed by piece type.
var movements = func() [chess.NumPieceTypes]movement {
	var m [chess.NumPieceTypes]movement

	m[chess.Pawn] = movement{quiets: []offset{{0, 1}}, captures: []offset{{-1, 1}, {1, 1}}}
	m[chess.Knight] = movement{steps: knightHops}
	m[chess.Bishop] = movement{slides: diagonal}
	m[chess.Rook] = movement{slides: orthogonal}
	m[chess.Queen] = movement{slides: allAround}
	m[chess.King] = movement{steps: allAround}
	m[chess.Archbishop] = movement{steps: knightHops, slides: diagonal}
	m[chess.Chancellor] = movement{steps: knightHops, slides: orthogonal}

	m[chess.PromotedKnight] = m[chess.Knight]
	m[chess.PromotedBishop] = m[chess.Bishop]
	m[chess.PromotedRook] = m[chess.Rook]
	m[chess.PromotedQueen] = m[chess.Queen]

	m[chess.Ferz] = movement{steps: diagonal}
	m[chess.Alfil] = movement{steps: alfilHops}
	m[chess.Khon] = movement{steps: silverStep}

	m[chess.ShogiPawn] = movement{steps: []offset{{0, 1}}}
	m[chess.Lance] = movement{slides: []offset{{0, 1}}}
	m[chess.ShogiKnight] = movement{steps: []offset{{-1, 2}, {1, 2}}}
	m[chess.Silver] = movement{steps: silverStep}
	m[chess.Gold] = movement{steps: goldSteps}
	m[chess.Tokin] = m[chess.Gold]
	m[chess.PromotedLance] = m[chess.Gold]
	m[chess.PromotedShogiKnight] = m[chess.Gold]
	m[chess.PromotedSilver] = m[chess.Gold]
	m[chess.DragonHorse] = movement{steps: orthogonal, slides: diagonal}
	m[chess.DragonKing] = movement{steps: diagonal, slides: orthogonal}

	m[chess.General] = movement{steps: orthogonal}
	m[chess.Advisor] = movement{steps: diagonal}
	m[chess.Elephant] = movement{lame: elephantLeaps()}
	m[chess.Horse] = movement{lame: horseLeaps()}
	m[chess.Cannon] = movement{cannon: orthogonal, kind: cannonXiangqi}
	m[chess.Soldier] = movement{steps: []offset{{0, 1}, {-1, 0}, {1, 0}}}

	m[chess.Guard] = movement{steps: allAround}
	m[chess.JanggiElephant] = movement{lame: janggiElephantLeaps()}
	m[chess.JanggiChariot] = movement{slides: allAround}
	m[chess.JanggiCannon] = movement{cannon: allAround, kind: cannonJanggi}
	m[chess.JanggiSoldier] = movement{steps: []offset{{0, 1}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1}}}

	return m
}()

// canMoveFromRank reports whether a piece of type t standing on relative
// rank rel of a board with the given height has any forward-or-sideways
// destination left. Shogi uses it for forced promotion and drop limits.
func canMoveFromRank(t chess.PieceType, rel, height int) bool {
	mv := &movements[t]
	for _, set := range [][]offset{mv.steps, mv.quiets, mv.captures, mv.slides} {
		for _, o := range set {
			if rel+o.dr < height {
				return true
			}
		}
	}
	for _, l := range mv.lame {
		if rel+l.dest.dr < height {
			return true
		}
	}
	return false
}
