package question

import (
	"regexp"
	"strings"

	"github.com/dugoutgrid/dugout-data/internal/lookup"
)

// TeamSpec is a classified team condition.
type TeamSpec struct {
	Name string
	Abbr string
}

// AwardSpec is a classified award condition. ID "All Star" is a sentinel
// sourced from the all-star relation rather than awards_players.
type AwardSpec struct {
	Name string
	ID   string
}

// PlayerSpec is a classified player-attribute condition carrying a
// precomputed SQL-safe predicate over the people relation.
type PlayerSpec struct {
	Name  string
	Where string
}

// PositionSpec is a classified position condition mapped to its
// games-played column in appearances.
type PositionSpec struct {
	Name   string
	Column string
}

// classifiers bundles all five category classifiers over one immutable set
// of lookup tables. Every handler shares a single bundle, so classification
// never drifts between shapes; disambiguation is registry order alone.
type classifiers struct {
	tables *lookup.Tables
}

func (c *classifiers) team(cond string) (TeamSpec, bool) {
	abbr, ok := c.tables.Teams[cond]
	if !ok {
		return TeamSpec{}, false
	}
	return TeamSpec{Name: cond, Abbr: abbr}, true
}

func (c *classifiers) award(cond string) (AwardSpec, bool) {
	id, ok := c.tables.Awards[cond]
	if !ok {
		return AwardSpec{}, false
	}
	return AwardSpec{Name: cond, ID: id}, true
}

func (c *classifiers) player(cond string) (PlayerSpec, bool) {
	where, ok := c.tables.Players[cond]
	if !ok {
		return PlayerSpec{}, false
	}
	return PlayerSpec{Name: cond, Where: where}, true
}

// Position grammar: fixed verb phrasings first, then the generic
// "Played {Position} min. 1 game" form.
var (
	rePitched  = regexp.MustCompile(`(?i)^Pitched\s+min\.\s+1\s+game$`)
	reCaught   = regexp.MustCompile(`(?i)^Caught\s+min\.\s+1\s+game$`)
	reDHPlayed = regexp.MustCompile(`(?i)^Designated\s+Hitter\s+min\.\s+1\s+game$`)
	rePlayed   = regexp.MustCompile(`(?i)^Played\s+(.+)\s+min\.\s+1\s+game$`)
)

func (c *classifiers) position(cond string) (PositionSpec, bool) {
	switch {
	case rePitched.MatchString(cond):
		return PositionSpec{Name: "Pitcher", Column: c.tables.Positions["Pitcher"]}, true
	case reCaught.MatchString(cond):
		return PositionSpec{Name: "Catcher", Column: c.tables.Positions["Catcher"]}, true
	case reDHPlayed.MatchString(cond):
		return PositionSpec{Name: "Designated Hitter", Column: c.tables.Positions["Designated Hitter"]}, true
	}

	m := rePlayed.FindStringSubmatch(cond)
	if m == nil {
		return PositionSpec{}, false
	}
	name := strings.TrimSpace(m[1])
	col, ok := c.tables.Positions[name]
	if !ok {
		// Tolerate casing variance: retry with the title-cased name.
		col, ok = c.tables.Positions[titleCase(name)]
	}
	if !ok || col == "" {
		return PositionSpec{}, false
	}
	return PositionSpec{Name: name, Column: col}, true
}

// titleCase capitalizes the first letter of each space-separated word and
// lowercases the rest, matching the normalization the lookup keys use.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
