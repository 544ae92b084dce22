// Package lookup holds the static classification tables the question engine
// runs against: team names, award identifiers, player predicates, position
// columns, and stat definitions. Tables are built once at startup and never
// mutated; tests inject their own fixtures.
package lookup

// Op is a SQL comparison direction for stat thresholds.
type Op string

const (
	OpGTE Op = ">="
	OpLTE Op = "<="
)

// Source tables for stat aggregation.
const (
	TableBatting  = "battings"
	TablePitching = "pitchings"
)

// AllStarAward is the sentinel award identifier whose membership comes from
// the all_star_fulls relation instead of awards_players.
const AllStarAward = "All Star"

// StatDef describes how one stat aggregates. Column is empty for formula
// stats (AVG, ERA), in which case Formula carries the aggregate expression.
type StatDef struct {
	Column  string
	Formula string
	Op      Op
	Table   string
}

// Tables is the full classifier configuration. All maps are exact-match and
// case-sensitive except where the position grammar normalizes casing.
type Tables struct {
	// Teams maps display names (including historical aliases) to the
	// 3-letter franchise abbreviation used in the fact tables.
	Teams map[string]string

	// Awards maps display names to the award_id stored in awards_players.
	Awards map[string]string

	// Players maps display names to precomputed SQL-safe boolean predicates
	// over the people relation.
	Players map[string]string

	// Positions maps position names to the games-played column in
	// appearances.
	Positions map[string]string

	// Stats maps the upper-cased stat token to its definition.
	Stats map[string]StatDef
}

// Default returns the production lookup tables.
func Default() *Tables {
	return &Tables{
		Teams: map[string]string{
			"Washington Nationals":  "WAS",
			"Toronto Blue Jays":     "TOR",
			"Texas Rangers":         "TEX",
			"Tampa Bay Rays":        "TBA",
			"St. Louis Cardinals":   "SLN",
			"San Francisco Giants":  "SFN",
			"Seattle Mariners":      "SEA",
			"San Diego Padres":      "SDN",
			"Pittsburgh Pirates":    "PIT",
			"Philadelphia Phillies": "PHI",
			"Oakland Athletics":     "OAK",
			"Athletics":             "OAK",
			"New York Yankees":      "NYA",
			"New York Mets":         "NYN",
			"Minnesota Twins":       "MIN",
			"Milwaukee Brewers":     "MIL",
			"Los Angeles Dodgers":   "LAN",
			"Kansas City Royals":    "KCA",
			"Houston Astros":        "HOU",
			"Miami Marlins":         "MIA",
			"Detroit Tigers":        "DET",
			"Colorado Rockies":      "COL",
			"Cleveland Guardians":   "CLE",
			"Cincinnati Reds":       "CIN",
			"Chicago White Sox":     "CHA",
			"Chicago Cubs":          "CHN",
			"Boston Red Sox":        "BOS",
			"Baltimore Orioles":     "BAL",
			"Atlanta Braves":        "ATL",
			"Arizona Diamondbacks":  "ARI",
			"Los Angeles Angels":    "LAA",
		},
		Awards: map[string]string{
			"Silver Slugger":     "Silver Slugger",
			"MVP":                "Most Valuable Player",
			"Gold Glove":         "Gold Glove",
			"Cy Young":           "Cy Young Award",
			"Rookie of the Year": "Rookie of the Year",
			"All Star":           AllStarAward,
		},
		Players: map[string]string{
			"Born Outside US 50 States and DC": "birth_country != 'USA'",
			"Canada":                           "birth_country = 'CAN'",
			"Dominican Republic":               "birth_country = 'D.R.'",
			"Puerto Rico":                      "birth_country = 'P.R.'",
			"United States":                    "birth_country = 'USA'",
			"Played Major Leagues":             "1 = 1",
			"World Series Champ WS Roster":     "is_ws_champ = 1",
			"Only One Team":                    "matches_only_one_team = 1",
			"40+ WAR Career":                   "bwar_career >= 40",
			"Hall of Fame":                     "hall_of_fame = 1",
			"6+ WAR Season":                    "has_6_war_season = 1",
			"Threw a No-Hitter":                "has_no_hitter = 1",
		},
		Positions: map[string]string{
			"Pitcher":           "g_p",
			"Catcher":           "g_c",
			"First Base":        "g_1b",
			"Second Base":       "g_2b",
			"Third Base":        "g_3b",
			"Shortstop":         "g_ss",
			"Left Field":        "g_lf",
			"Center Field":      "g_cf",
			"Right Field":       "g_rf",
			"Outfield":          "g_of",
			"DH":                "g_dh",
			"Designated Hitter": "g_dh",
			"Pinch Hitter":      "g_ph",
			"Pinch Runner":      "g_pr",
		},
		Stats: map[string]StatDef{
			"HITS": {Column: "h", Op: OpGTE, Table: TableBatting},
			"HR":   {Column: "hr", Op: OpGTE, Table: TableBatting},
			"RBI":  {Column: "rbi", Op: OpGTE, Table: TableBatting},
			"AVG":  {Formula: "CAST(SUM(h) AS FLOAT) / SUM(ab)", Op: OpGTE, Table: TableBatting},
			"RUN":  {Column: "r", Op: OpGTE, Table: TableBatting},
			"SB":   {Column: "sb", Op: OpGTE, Table: TableBatting},
			"2B":   {Column: "doubles", Op: OpGTE, Table: TableBatting},
			"WIN":  {Column: "w", Op: OpGTE, Table: TablePitching},
			"WINS": {Column: "w", Op: OpGTE, Table: TablePitching},
			"ERA":  {Formula: "CAST(SUM(er) AS FLOAT) / SUM(ip_outs) * 27", Op: OpLTE, Table: TablePitching},
			"K":    {Column: "so", Op: OpGTE, Table: TablePitching},
			"SAVE": {Column: "sv", Op: OpGTE, Table: TablePitching},
		},
	}
}
