// Package variants defines the concrete rule sets built on the engine's
// rule families and looks them up by name.
package variants

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/varboard-go/internal/engine"
	"github.com/lgbarn/varboard-go/internal/errors"
)

// registry maps variant names to their configurations. Variants are never
// modified after construction.
var registry = func() map[string]*engine.Variant {
	all := []*engine.Variant{
		Standard(),
		FischeRandom(),
		Capablanca(),
		Gothic(),
		CapaRandom(),
		Almost(),
		RacingKings(),
		KingOfTheHill(),
		ThreeCheck(),
		Horde(),
		Antichess(),
		Grid(),
		Crazyhouse(),
		Placement(),
		Seirawan(),
		Shatranj(),
		Makruk(),
		Shogi(),
		MiniShogi(),
		JudkinsShogi(),
		Xiangqi(),
		Janggi(),
		Gomoku(),
		ConnectFour(),
		TicTacToe(),
	}
	m := make(map[string]*engine.Variant, len(all))
	for _, v := range all {
		m[v.Name] = v
	}
	return m
}()

// aliases are alternative spellings accepted by Get.
var aliases = map[string]string{
	"chess":    "standard",
	"chess960": "fischerandom",
	"koth":     "kingofthehill",
	"3check":   "threecheck",
	"giveaway": "antichess",
	"zh":       "crazyhouse",
	"cfour":    "connectfour",
}

// Names returns the registered variant names in alphabetical order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// Get returns the variant called name. Names are case-insensitive and a
// few common aliases are understood.
func Get(name string) (*engine.Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	v, ok := registry[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownVariant, "%q", name)
	}
	return v, nil
}

// NewBoard returns a board of the named variant in its starting position,
// with a key table of its own.
func NewBoard(name string) (*engine.Board, error) {
	v, err := Get(name)
	if err != nil {
		return nil, err
	}
	return engine.NewBoard(v, nil), nil
}
