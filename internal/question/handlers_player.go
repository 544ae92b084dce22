package question

import "fmt"

type playerPlayerData struct {
	First  PlayerSpec
	Second PlayerSpec
}

type playerPlayerHandler struct{ *classifiers }

func (h *playerPlayerHandler) Shape() Shape { return ShapePlayerPlayer }

func (h *playerPlayerHandler) Match(q string) (any, bool) {
	c1, c2, ok := splitConditions(q)
	if !ok {
		return nil, false
	}
	p1, ok1 := h.player(c1)
	p2, ok2 := h.player(c2)
	if !ok1 || !ok2 {
		return nil, false
	}
	return playerPlayerData{First: p1, Second: p2}, true
}

func (h *playerPlayerHandler) Build(data any) (string, error) {
	d, ok := data.(playerPlayerData)
	if !ok {
		return "", fmt.Errorf("player_player: unexpected match data %T", data)
	}
	return fmt.Sprintf("WITH %s,\n%s,\n%s\n%s",
		playerCTE("player_condition1", d.First.Where),
		playerCTE("player_condition2", d.Second.Where),
		intersectCTE("player_intersection", "player_condition1", "player_condition2"),
		rankedProjection("player_intersection")), nil
}
