package question

import "fmt"

// --------------------------------------------------------------------------
// position_position
// --------------------------------------------------------------------------

type positionPositionData struct {
	First  PositionSpec
	Second PositionSpec
}

type positionPositionHandler struct{ *classifiers }

func (h *positionPositionHandler) Shape() Shape { return ShapePositionPosition }

func (h *positionPositionHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	p1, ok1 := h.position(c1)
	p2, ok2 := h.position(c2)
	if !ok1 || !ok2 {
		return nil, false
	}
	return positionPositionData{First: p1, Second: p2}, true
}

// Build expresses "nonzero games at both positions" as a single aggregate
// with two HAVING conditions over career appearance totals.
func (h *positionPositionHandler) Build(data any) (string, error) {
	d, ok := data.(positionPositionData)
	if !ok {
		return "", fmt.Errorf("position_position: unexpected match data %T", data)
	}
	return fmt.Sprintf(`WITH both_positions_condition AS (
    SELECT player_id
    FROM appearances
    GROUP BY player_id
    HAVING SUM(%s) > 0 AND SUM(%s) > 0
)
%s`, d.First.Column, d.Second.Column, rankedProjection("both_positions_condition")), nil
}

// --------------------------------------------------------------------------
// position_player
// --------------------------------------------------------------------------

type positionPlayerData struct {
	Position PositionSpec
	Player   PlayerSpec
}

type positionPlayerHandler struct{ *classifiers }

func (h *positionPlayerHandler) Shape() Shape { return ShapePositionPlayer }

func (h *positionPlayerHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	pos, player, ok := matchPair(c1, c2, h.position, h.player)
	if !ok {
		return nil, false
	}
	return positionPlayerData{Position: pos, Player: player}, true
}

func (h *positionPlayerHandler) Build(data any) (string, error) {
	d, ok := data.(positionPlayerData)
	if !ok {
		return "", fmt.Errorf("position_player: unexpected match data %T", data)
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		positionCTE("position_condition", d.Position.Column),
		playerCTE("player_condition", d.Player.Where),
		intersectCTE("position_player_intersection", "position_condition", "player_condition"),
		rankedProjection("position_player_intersection")), nil
}
