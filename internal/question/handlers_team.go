package question

import "fmt"

// --------------------------------------------------------------------------
// team_team
// --------------------------------------------------------------------------

type teamTeamData struct {
	First  TeamSpec
	Second TeamSpec
}

type teamTeamHandler struct{ *classifiers }

func (h *teamTeamHandler) Shape() Shape { return ShapeTeamTeam }

func (h *teamTeamHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	t1, ok1 := h.team(c1)
	t2, ok2 := h.team(c2)
	if !ok1 || !ok2 {
		return nil, false
	}
	return teamTeamData{First: t1, Second: t2}, true
}

// Build compiles "played for both teams" as one grouped aggregate over the
// union of the two targets, not an intersection of per-team sets: a player
// qualifies when their modern-era appearances cover 2 distinct target teams.
func (h *teamTeamHandler) Build(data any) (string, error) {
	d, ok := data.(teamTeamData)
	if !ok {
		return "", fmt.Errorf("team_team: unexpected match data %T", data)
	}
	return fmt.Sprintf(`WITH target_teams AS (
    SELECT '%s' AS team_id
    UNION ALL
    SELECT '%s' AS team_id
),
players_both_teams AS (
    SELECT a.player_id
    FROM appearances a
    JOIN target_teams t ON a.team_id = t.team_id
    WHERE a.year_id > %d
    GROUP BY a.player_id
    HAVING COUNT(DISTINCT a.team_id) = 2
)
%s`, d.First.Abbr, d.Second.Abbr, modernEraCutoff, rankedProjection("players_both_teams")), nil
}

// --------------------------------------------------------------------------
// team_stat
// --------------------------------------------------------------------------

type teamStatData struct {
	Team TeamSpec
	Stat *StatCondition
}

type teamStatHandler struct{ *classifiers }

func (h *teamStatHandler) Shape() Shape { return ShapeTeamStat }

func (h *teamStatHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	team, stat, ok := matchPair(c1, c2, h.team, h.stat)
	if !ok {
		return nil, false
	}
	return teamStatData{Team: team, Stat: stat}, true
}

func (h *teamStatHandler) Build(data any) (string, error) {
	d, ok := data.(teamStatData)
	if !ok {
		return "", fmt.Errorf("team_stat: unexpected match data %T", data)
	}

	// Season-granularity single stats scope the aggregation to seasons with
	// the team directly; everything else intersects independent sets.
	if d.Stat.Single != nil && d.Stat.Single.Timeframe == TimeframeSeason {
		expr, err := statExpr(d.Stat.Single)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`WITH team_season_condition AS (
    SELECT DISTINCT player_id
    FROM %s
    WHERE team_id = '%s'
    GROUP BY player_id, year_id
    HAVING %s %s %s
)
%s`, d.Stat.Single.Table, d.Team.Abbr, expr, d.Stat.Single.Op,
			formatThreshold(d.Stat.Single.Value), rankedProjection("team_season_condition")), nil
	}

	statCTE, err := d.Stat.cte("stat_condition")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		statCTE,
		teamCTE("team_condition", d.Team.Abbr),
		intersectCTE("team_stat_intersection", "stat_condition", "team_condition"),
		rankedProjection("team_stat_intersection")), nil
}

// --------------------------------------------------------------------------
// team_position
// --------------------------------------------------------------------------

type teamPositionData struct {
	Team     TeamSpec
	Position PositionSpec
}

type teamPositionHandler struct{ *classifiers }

func (h *teamPositionHandler) Shape() Shape { return ShapeTeamPosition }

func (h *teamPositionHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	team, pos, ok := matchPair(c1, c2, h.team, h.position)
	if !ok {
		return nil, false
	}
	return teamPositionData{Team: team, Position: pos}, true
}

func (h *teamPositionHandler) Build(data any) (string, error) {
	d, ok := data.(teamPositionData)
	if !ok {
		return "", fmt.Errorf("team_position: unexpected match data %T", data)
	}
	return fmt.Sprintf(`WITH team_position_condition AS (
    SELECT player_id
    FROM appearances
    WHERE team_id = '%s'
    GROUP BY player_id
    HAVING SUM(%s) > 0
)
%s`, d.Team.Abbr, d.Position.Column, rankedProjection("team_position_condition")), nil
}

// --------------------------------------------------------------------------
// team_player
// --------------------------------------------------------------------------

type teamPlayerData struct {
	Team   TeamSpec
	Player PlayerSpec
}

type teamPlayerHandler struct{ *classifiers }

func (h *teamPlayerHandler) Shape() Shape { return ShapeTeamPlayer }

func (h *teamPlayerHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	team, player, ok := matchPair(c1, c2, h.team, h.player)
	if !ok {
		return nil, false
	}
	return teamPlayerData{Team: team, Player: player}, true
}

func (h *teamPlayerHandler) Build(data any) (string, error) {
	d, ok := data.(teamPlayerData)
	if !ok {
		return "", fmt.Errorf("team_player: unexpected match data %T", data)
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		teamCTE("team_condition", d.Team.Abbr),
		playerCTE("player_condition", d.Player.Where),
		intersectCTE("team_player_intersection", "team_condition", "player_condition"),
		rankedProjection("team_player_intersection")), nil
}
