package question

// Shape identifies the condition-category pair a question resolved to.
// The zero value is Unmatched.
type Shape int

const (
	ShapeUnmatched Shape = iota
	ShapeAwardAward
	ShapeAwardTeam
	ShapeAwardStat
	ShapeAwardPosition
	ShapeAwardPlayer
	ShapeTeamTeam
	ShapeTeamStat
	ShapeTeamPosition
	ShapeTeamPlayer
	ShapeStatStat
	ShapeStatPosition
	ShapeStatPlayer
	ShapePositionPosition
	ShapePositionPlayer
	ShapePlayerPlayer
)

// String returns the wire tag used in the pattern_type field.
func (s Shape) String() string {
	switch s {
	case ShapeAwardAward:
		return "award_award"
	case ShapeAwardTeam:
		return "award_team"
	case ShapeAwardStat:
		return "award_stat"
	case ShapeAwardPosition:
		return "award_position"
	case ShapeAwardPlayer:
		return "award_player"
	case ShapeTeamTeam:
		return "team_team"
	case ShapeTeamStat:
		return "team_stat"
	case ShapeTeamPosition:
		return "team_position"
	case ShapeTeamPlayer:
		return "team_player"
	case ShapeStatStat:
		return "stat_stat"
	case ShapeStatPosition:
		return "stat_position"
	case ShapeStatPlayer:
		return "stat_player"
	case ShapePositionPosition:
		return "position_position"
	case ShapePositionPlayer:
		return "position_player"
	case ShapePlayerPlayer:
		return "player_player"
	default:
		return "unmatched"
	}
}
