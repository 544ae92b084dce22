package question

import (
	"fmt"
	"strconv"

	"github.com/dugoutgrid/dugout-data/internal/lookup"
)

// referenceYear is the fixed year ages are computed against. Bump alongside
// dataset refreshes.
const referenceYear = 2025

// modernEraCutoff excludes 19th-century records from the aggregations that
// filter on it.
const modernEraCutoff = 1899

// rankedProjection is the shared final SELECT every compiled query ends
// with: project the suggestion fields from people for each player_id in the
// given CTE, ranked by career bWAR (missing last) then age.
func rankedProjection(cte string) string {
	return fmt.Sprintf(`SELECT
  CONCAT(p.name_first, ' ', p.name_last) AS name,
  p.primary_position AS position,
  substr(p.debut, 1, 4) || '-' || substr(p.final_game, 1, 4) AS pro_career,
  %d - p.birth_year AS age,
  ROW_NUMBER() OVER (ORDER BY p.bwar_career IS NULL, p.bwar_career DESC, p.birth_year) AS lps,
  p.bbref_id
FROM %s m
LEFT JOIN people p ON p.player_id = m.player_id
ORDER BY p.bwar_career IS NULL, p.bwar_career DESC, age DESC;`, referenceYear, cte)
}

// awardCTE selects the player set for an award. "All Star" is sourced from
// the dedicated all-star relation, every other award from awards_players.
func awardCTE(alias, awardID string) string {
	if awardID == lookup.AllStarAward {
		return fmt.Sprintf(`%s AS (
    SELECT DISTINCT player_id
    FROM all_star_fulls
)`, alias)
	}
	return fmt.Sprintf(`%s AS (
    SELECT DISTINCT player_id
    FROM awards_players
    WHERE award_id = '%s'
)`, alias, awardID)
}

// teamCTE selects players with any appearance for the team.
func teamCTE(alias, abbr string) string {
	return fmt.Sprintf(`%s AS (
    SELECT DISTINCT player_id
    FROM appearances
    WHERE team_id = '%s'
)`, alias, abbr)
}

// playerCTE selects players satisfying a precomputed predicate over people.
func playerCTE(alias, where string) string {
	return fmt.Sprintf(`%s AS (
    SELECT DISTINCT player_id
    FROM people
    WHERE %s
)`, alias, where)
}

// positionCTE selects players with nonzero career games at a position.
func positionCTE(alias, column string) string {
	return fmt.Sprintf(`%s AS (
    SELECT player_id
    FROM appearances
    GROUP BY player_id
    HAVING SUM(%s) > 0
)`, alias, column)
}

// intersectCTE combines two player-set CTEs on player identifier.
func intersectCTE(alias, a, b string) string {
	return fmt.Sprintf(`%s AS (
    SELECT player_id
    FROM %s
    INTERSECT
    SELECT player_id
    FROM %s
)`, alias, a, b)
}

// cte builds the player-set CTE for a stat condition. Single thresholds
// aggregate the column (or formula) at the timeframe's granularity;
// compound thresholds are one aggregation with both HAVING conditions, so
// both must hold in the same grouping row.
func (s *StatCondition) cte(alias string) (string, error) {
	if s.Compound != nil {
		c := s.Compound
		return fmt.Sprintf(`%s AS (
    SELECT DISTINCT player_id
    FROM %s
    WHERE year_id > %d
    GROUP BY %s
    HAVING SUM(%s) >= %s
      AND SUM(%s) >= %s
)`, alias, c.Table, modernEraCutoff, groupBy(c.Timeframe),
			c.First.Column, formatThreshold(c.First.Value),
			c.Second.Column, formatThreshold(c.Second.Value)), nil
	}

	expr, err := statExpr(s.Single)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`%s AS (
    SELECT DISTINCT player_id
    FROM %s
    GROUP BY %s
    HAVING %s %s %s
)`, alias, s.Single.Table, groupBy(s.Single.Timeframe),
		expr, s.Single.Op, formatThreshold(s.Single.Value)), nil
}

// statExpr returns the aggregate expression for a stat. A spec with neither
// column nor formula means the stat table diverged from the classifier's;
// unreachable while both read the same table, surfaced as an error so the
// handler boundary contains it.
func statExpr(s *StatSpec) (string, error) {
	if s.Column != "" {
		return fmt.Sprintf("SUM(%s)", s.Column), nil
	}
	if s.Formula != "" {
		return s.Formula, nil
	}
	return "", fmt.Errorf("stat %q has neither column nor formula", s.Name)
}

func groupBy(tf Timeframe) string {
	if tf == TimeframeSeason {
		return "player_id, year_id"
	}
	return "player_id"
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
