package question

import (
	"fmt"

	"github.com/dugoutgrid/dugout-data/internal/lookup"
)

// --------------------------------------------------------------------------
// award_award
// --------------------------------------------------------------------------

type awardAwardData struct {
	First  AwardSpec
	Second AwardSpec
}

type awardAwardHandler struct{ *classifiers }

func (h *awardAwardHandler) Shape() Shape { return ShapeAwardAward }

func (h *awardAwardHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	a1, ok1 := h.award(c1)
	a2, ok2 := h.award(c2)
	if !ok1 || !ok2 {
		return nil, false
	}
	return awardAwardData{First: a1, Second: a2}, true
}

func (h *awardAwardHandler) Build(data any) (string, error) {
	d, ok := data.(awardAwardData)
	if !ok {
		return "", fmt.Errorf("award_award: unexpected match data %T", data)
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		awardCTE("award1_players", d.First.ID),
		awardCTE("award2_players", d.Second.ID),
		intersectCTE("award_intersection", "award1_players", "award2_players"),
		rankedProjection("award_intersection")), nil
}

// --------------------------------------------------------------------------
// award_team
// --------------------------------------------------------------------------

type awardTeamData struct {
	Award AwardSpec
	Team  TeamSpec
}

type awardTeamHandler struct{ *classifiers }

func (h *awardTeamHandler) Shape() Shape { return ShapeAwardTeam }

func (h *awardTeamHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	award, team, ok := matchPair(c1, c2, h.award, h.team)
	if !ok {
		return nil, false
	}
	return awardTeamData{Award: award, Team: team}, true
}

func (h *awardTeamHandler) Build(data any) (string, error) {
	d, ok := data.(awardTeamData)
	if !ok {
		return "", fmt.Errorf("award_team: unexpected match data %T", data)
	}

	// All-star appearances carry the team, so the single relation answers
	// both conditions at once.
	if d.Award.ID == lookup.AllStarAward {
		return fmt.Sprintf(`WITH award_team_condition AS (
    SELECT DISTINCT player_id
    FROM all_star_fulls
    WHERE team_id = '%s'
)
%s`, d.Team.Abbr, rankedProjection("award_team_condition")), nil
	}

	// Other awards name no team; require the award year to line up with an
	// appearance year for the team.
	return fmt.Sprintf(`WITH award_condition AS (
    SELECT DISTINCT player_id, year_id
    FROM awards_players
    WHERE award_id = '%s'
),
team_condition AS (
    SELECT DISTINCT player_id, year_id
    FROM appearances
    WHERE team_id = '%s'
),
award_team_intersection AS (
    SELECT ac.player_id
    FROM award_condition ac
    INNER JOIN team_condition tc ON ac.player_id = tc.player_id AND ac.year_id = tc.year_id
)
%s`, d.Award.ID, d.Team.Abbr, rankedProjection("award_team_intersection")), nil
}

// --------------------------------------------------------------------------
// award_stat
// --------------------------------------------------------------------------

type awardStatData struct {
	Award AwardSpec
	Stat  *StatCondition
}

type awardStatHandler struct{ *classifiers }

func (h *awardStatHandler) Shape() Shape { return ShapeAwardStat }

func (h *awardStatHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	award, stat, ok := matchPair(c1, c2, h.award, h.stat)
	if !ok {
		return nil, false
	}
	return awardStatData{Award: award, Stat: stat}, true
}

func (h *awardStatHandler) Build(data any) (string, error) {
	d, ok := data.(awardStatData)
	if !ok {
		return "", fmt.Errorf("award_stat: unexpected match data %T", data)
	}
	statCTE, err := d.Stat.cte("stat_condition")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		awardCTE("award_condition", d.Award.ID),
		statCTE,
		intersectCTE("award_stat_intersection", "award_condition", "stat_condition"),
		rankedProjection("award_stat_intersection")), nil
}

// --------------------------------------------------------------------------
// award_position
// --------------------------------------------------------------------------

type awardPositionData struct {
	Award    AwardSpec
	Position PositionSpec
}

type awardPositionHandler struct{ *classifiers }

func (h *awardPositionHandler) Shape() Shape { return ShapeAwardPosition }

func (h *awardPositionHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	award, pos, ok := matchPair(c1, c2, h.award, h.position)
	if !ok {
		return nil, false
	}
	return awardPositionData{Award: award, Position: pos}, true
}

func (h *awardPositionHandler) Build(data any) (string, error) {
	d, ok := data.(awardPositionData)
	if !ok {
		return "", fmt.Errorf("award_position: unexpected match data %T", data)
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		awardCTE("award_condition", d.Award.ID),
		positionCTE("position_condition", d.Position.Column),
		intersectCTE("award_position_intersection", "award_condition", "position_condition"),
		rankedProjection("award_position_intersection")), nil
}

// --------------------------------------------------------------------------
// award_player
// --------------------------------------------------------------------------

type awardPlayerData struct {
	Award  AwardSpec
	Player PlayerSpec
}

type awardPlayerHandler struct{ *classifiers }

func (h *awardPlayerHandler) Shape() Shape { return ShapeAwardPlayer }

func (h *awardPlayerHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	award, player, ok := matchPair(c1, c2, h.award, h.player)
	if !ok {
		return nil, false
	}
	return awardPlayerData{Award: award, Player: player}, true
}

func (h *awardPlayerHandler) Build(data any) (string, error) {
	d, ok := data.(awardPlayerData)
	if !ok {
		return "", fmt.Errorf("award_player: unexpected match data %T", data)
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		awardCTE("award_condition", d.Award.ID),
		playerCTE("player_condition", d.Player.Where),
		intersectCTE("award_player_intersection", "award_condition", "player_condition"),
		rankedProjection("award_player_intersection")), nil
}
