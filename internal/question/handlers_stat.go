package question

import "fmt"

// --------------------------------------------------------------------------
// stat_stat
// --------------------------------------------------------------------------

type statStatData struct {
	First  *StatCondition
	Second *StatCondition
}

type statStatHandler struct{ *classifiers }

func (h *statStatHandler) Shape() Shape { return ShapeStatStat }

func (h *statStatHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	s1, ok1 := h.stat(c1)
	s2, ok2 := h.stat(c2)
	if !ok1 || !ok2 {
		return nil, false
	}
	return statStatData{First: s1, Second: s2}, true
}

func (h *statStatHandler) Build(data any) (string, error) {
	d, ok := data.(statStatData)
	if !ok {
		return "", fmt.Errorf("stat_stat: unexpected match data %T", data)
	}
	cte1, err := d.First.cte("stat_condition1")
	if err != nil {
		return "", err
	}
	cte2, err := d.Second.cte("stat_condition2")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		cte1,
		cte2,
		intersectCTE("stat_intersection", "stat_condition1", "stat_condition2"),
		rankedProjection("stat_intersection")), nil
}

// --------------------------------------------------------------------------
// stat_position
// --------------------------------------------------------------------------

type statPositionData struct {
	Stat     *StatCondition
	Position PositionSpec
}

type statPositionHandler struct{ *classifiers }

func (h *statPositionHandler) Shape() Shape { return ShapeStatPosition }

func (h *statPositionHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	stat, pos, ok := matchPair(c1, c2, h.stat, h.position)
	if !ok {
		return nil, false
	}
	return statPositionData{Stat: stat, Position: pos}, true
}

func (h *statPositionHandler) Build(data any) (string, error) {
	d, ok := data.(statPositionData)
	if !ok {
		return "", fmt.Errorf("stat_position: unexpected match data %T", data)
	}
	statCTE, err := d.Stat.cte("stat_condition")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		statCTE,
		positionCTE("position_condition", d.Position.Column),
		intersectCTE("stat_position_intersection", "stat_condition", "position_condition"),
		rankedProjection("stat_position_intersection")), nil
}

// --------------------------------------------------------------------------
// stat_player
// --------------------------------------------------------------------------

type statPlayerData struct {
	Stat   *StatCondition
	Player PlayerSpec
}

type statPlayerHandler struct{ *classifiers }

func (h *statPlayerHandler) Shape() Shape { return ShapeStatPlayer }

func (h *statPlayerHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	stat, player, ok := matchPair(c1, c2, h.stat, h.player)
	if !ok {
		return nil, false
	}
	return statPlayerData{Stat: stat, Player: player}, true
}

func (h *statPlayerHandler) Build(data any) (string, error) {
	d, ok := data.(statPlayerData)
	if !ok {
		return "", fmt.Errorf("stat_player: unexpected match data %T", data)
	}
	statCTE, err := d.Stat.cte("stat_condition")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		statCTE,
		playerCTE("player_condition", d.Player.Where),
		intersectCTE("stat_player_intersection", "stat_condition", "player_condition"),
		rankedProjection("stat_player_intersection")), nil
}
