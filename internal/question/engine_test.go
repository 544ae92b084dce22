package question

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugoutgrid/dugout-data/internal/lookup"
)

// fakeExec records every compiled query and returns canned rows.
type fakeExec struct {
	queries []string
	rows    []map[string]any
	err     error
}

func (f *fakeExec) Select(_ context.Context, sql string) ([]map[string]any, error) {
	f.queries = append(f.queries, sql)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeExec) lastSQL() string {
	if len(f.queries) == 0 {
		return ""
	}
	return f.queries[len(f.queries)-1]
}

func newTestEngine(exec Executor) *Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(lookup.Default(), exec, log)
}

func fakeRow(name string, rank int) map[string]any {
	return map[string]any{
		"name":       name,
		"position":   "SS",
		"pro_career": "1990-2005",
		"age":        int64(55),
		"lps":        int64(rank),
		"bbref_id":   "xx01",
	}
}

func TestEngineTeamTeam(t *testing.T) {
	exec := &fakeExec{rows: []map[string]any{fakeRow("Joe Slugger", 1)}}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "Cincinnati Reds + Chicago Cubs")

	assert.Equal(t, "team_team", res.PatternType)
	assert.Equal(t, "Cincinnati Reds + Chicago Cubs", res.Label)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Joe Slugger", res.Suggestions[0].Name)
	require.NotNil(t, res.Suggestions[0].Rank)
	assert.Equal(t, 1, *res.Suggestions[0].Rank)

	// Both-teams membership is one grouped aggregate over the union of the
	// two targets, restricted to the modern era.
	sql := exec.lastSQL()
	assert.Contains(t, sql, "'CIN'")
	assert.Contains(t, sql, "'CHN'")
	assert.Contains(t, sql, "COUNT(DISTINCT a.team_id) = 2")
	assert.Contains(t, sql, "year_id > 1899")
}

func TestEngineAllStarTeamUsesAllStarRelation(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "All Star + New York Yankees")

	assert.Equal(t, "award_team", res.PatternType)
	sql := exec.lastSQL()
	assert.Contains(t, sql, "all_star_fulls")
	assert.Contains(t, sql, "team_id = 'NYA'")
	assert.NotContains(t, sql, "awards_players")
}

func TestEngineAwardTeamJoinsOnSeason(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "MVP + New York Yankees")

	assert.Equal(t, "award_team", res.PatternType)
	sql := exec.lastSQL()
	assert.Contains(t, sql, "award_id = 'Most Valuable Player'")
	assert.Contains(t, sql, "ac.year_id = tc.year_id")
}

func TestEngineCompoundStatSingleGrouping(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "30+ HR / 30+ SB Season Batting + Hall of Fame")

	assert.Equal(t, "stat_player", res.PatternType)
	sql := exec.lastSQL()
	assert.Contains(t, sql, "GROUP BY player_id, year_id")
	assert.Contains(t, sql, "SUM(hr) >= 30")
	assert.Contains(t, sql, "SUM(sb) >= 30")
	assert.Contains(t, sql, "hall_of_fame = 1")
}

func TestEngineTeamStatSeasonScopesAggregationToTeam(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "New York Yankees + 200+ HITS Season")

	assert.Equal(t, "team_stat", res.PatternType)
	sql := exec.lastSQL()
	assert.Contains(t, sql, "FROM battings")
	assert.Contains(t, sql, "team_id = 'NYA'")
	assert.Contains(t, sql, "GROUP BY player_id, year_id")
	assert.NotContains(t, sql, "INTERSECT")
}

func TestEngineTeamStatCareerIntersectsSets(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "New York Yankees + 300+ HR Career")

	assert.Equal(t, "team_stat", res.PatternType)
	sql := exec.lastSQL()
	assert.Contains(t, sql, "GROUP BY player_id\n")
	assert.Contains(t, sql, "INTERSECT")
	assert.Contains(t, sql, "FROM appearances")
}

func TestEnginePositionPositionSingleAggregate(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "Pitched min. 1 game + Caught min. 1 game")

	assert.Equal(t, "position_position", res.PatternType)
	sql := exec.lastSQL()
	assert.Contains(t, sql, "HAVING SUM(g_p) > 0 AND SUM(g_c) > 0")
	assert.NotContains(t, sql, "INTERSECT")
}

func TestEngineDispatchPriority(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	// "All Star" classifies as an award, so the award family claims the
	// question before any later shape sees it.
	res := eng.ProcessOne(context.Background(), "All Star + Hall of Fame")
	assert.Equal(t, "award_player", res.PatternType)
}

func TestEngineTruncatesSuggestions(t *testing.T) {
	rows := make([]map[string]any, 150)
	for i := range rows {
		rows[i] = fakeRow(fmt.Sprintf("Player %d", i+1), i+1)
	}
	exec := &fakeExec{rows: rows}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "Hall of Fame + Only One Team")

	assert.Equal(t, "player_player", res.PatternType)
	require.Len(t, res.Suggestions, 100)
	assert.Equal(t, "Player 1", res.Suggestions[0].Name)
	assert.Equal(t, "Player 100", res.Suggestions[99].Name)
}

func TestEngineUnmatched(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	for _, q := range []string{
		"Hall of Fame",
		"A + B + C",
		"Narnia Knights + Hall of Fame",
		"",
	} {
		res := eng.ProcessOne(context.Background(), q)
		assert.Equal(t, "unmatched", res.PatternType, q)
		assert.Empty(t, res.Suggestions, q)
		assert.Equal(t, q, res.Label, q)
	}
	// Unmatched questions never reach the store.
	assert.Empty(t, exec.queries)
}

func TestEngineEmptyResultStillMatches(t *testing.T) {
	exec := &fakeExec{rows: []map[string]any{}}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "Cincinnati Reds + Hall of Fame")

	assert.Equal(t, "team_player", res.PatternType)
	assert.Empty(t, res.Suggestions)
}

func TestEngineExecErrorIsContained(t *testing.T) {
	exec := &fakeExec{err: errors.New("connection reset")}
	eng := newTestEngine(exec)

	res := eng.ProcessOne(context.Background(), "Cincinnati Reds + Chicago Cubs")

	// The only matching handler failed at execution, so the question falls
	// through to unmatched instead of erroring out.
	assert.Equal(t, "unmatched", res.PatternType)
	assert.Empty(t, res.Suggestions)
}

func TestEngineDeterministic(t *testing.T) {
	exec := &fakeExec{rows: []map[string]any{fakeRow("Joe Slugger", 1)}}
	eng := newTestEngine(exec)

	q := "MVP + Cy Young"
	first := eng.ProcessOne(context.Background(), q)
	second := eng.ProcessOne(context.Background(), q)

	assert.Equal(t, first, second)
	require.Len(t, exec.queries, 2)
	assert.Equal(t, exec.queries[0], exec.queries[1])
}

func TestEngineConditionOrderIndependent(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	a := eng.ProcessOne(context.Background(), "Gold Glove + Cincinnati Reds")
	b := eng.ProcessOne(context.Background(), "Cincinnati Reds + Gold Glove")

	assert.Equal(t, "award_team", a.PatternType)
	assert.Equal(t, "award_team", b.PatternType)
	require.Len(t, exec.queries, 2)
	assert.Equal(t, exec.queries[0], exec.queries[1])
}

func TestEngineBatchPreservesOrder(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	questions := []string{
		"Cincinnati Reds + Chicago Cubs",
		"not a question",
		"All Star + New York Yankees",
	}
	results := eng.Process(context.Background(), questions)

	require.Len(t, results, 3)
	assert.Equal(t, "team_team", results[0].PatternType)
	assert.Equal(t, "unmatched", results[1].PatternType)
	assert.Equal(t, "award_team", results[2].PatternType)
	for i, q := range questions {
		assert.Equal(t, q, results[i].Label)
	}
}

func TestEngineRankedProjectionShape(t *testing.T) {
	exec := &fakeExec{}
	eng := newTestEngine(exec)

	eng.ProcessOne(context.Background(), "Hall of Fame + Only One Team")

	// Every compiled query ends with the shared projection: name, career
	// span, rank ordered by bWAR with missing values last.
	sql := exec.lastSQL()
	assert.Contains(t, sql, "CONCAT(p.name_first, ' ', p.name_last) AS name")
	assert.Contains(t, sql, "ROW_NUMBER() OVER (ORDER BY p.bwar_career IS NULL, p.bwar_career DESC, p.birth_year) AS lps")
	assert.Contains(t, sql, "LEFT JOIN people p ON p.player_id = m.player_id")
}

func TestSuggestionFromRowCoercions(t *testing.T) {
	s := suggestionFromRow(map[string]any{
		"name":       []byte("Joe Slugger"),
		"position":   "SS",
		"pro_career": "1990-2005",
		"age":        float64(55),
		"lps":        nil,
		"bbref_id":   "slugjo01",
	})
	assert.Equal(t, "Joe Slugger", s.Name)
	assert.Equal(t, 55, s.Age)
	assert.Nil(t, s.Rank)
	assert.Equal(t, "slugjo01", s.BBRefID)
}
