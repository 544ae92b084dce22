package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugoutgrid/dugout-data/internal/lookup"
)

func TestStatClassifierSingle(t *testing.T) {
	c := newTestClassifiers()

	cond, ok := c.stat("300+ HR Career Batting")
	require.True(t, ok)
	require.NotNil(t, cond.Single)
	assert.Equal(t, "HR", cond.Single.Name)
	assert.Equal(t, "hr", cond.Single.Column)
	assert.Equal(t, lookup.TableBatting, cond.Single.Table)
	assert.Equal(t, TimeframeCareer, cond.Single.Timeframe)
	assert.Equal(t, 300.0, cond.Single.Value)
	assert.Equal(t, ">=", cond.Single.Op)
	assert.Equal(t, TimeframeCareer, cond.Timeframe())
}

func TestStatClassifierFormula(t *testing.T) {
	c := newTestClassifiers()

	cond, ok := c.stat("<3.00 ERA Season")
	require.True(t, ok)
	require.NotNil(t, cond.Single)
	assert.Equal(t, "ERA", cond.Single.Name)
	assert.Empty(t, cond.Single.Column)
	assert.Contains(t, cond.Single.Formula, "SUM(er)")
	assert.Equal(t, "<=", cond.Single.Op)
	assert.Equal(t, 3.0, cond.Single.Value)
	assert.Equal(t, TimeframeSeason, cond.Single.Timeframe)
}

func TestStatClassifierCompactDecimal(t *testing.T) {
	c := newTestClassifiers()

	// A leading dot means the captured digits are the fractional part:
	// ".300" is 300 / 10^3.
	cond, ok := c.stat(".300 AVG Season")
	require.True(t, ok)
	require.NotNil(t, cond.Single)
	assert.Equal(t, "AVG", cond.Single.Name)
	assert.Equal(t, 0.3, cond.Single.Value)
}

func TestStatClassifierCompound(t *testing.T) {
	c := newTestClassifiers()

	cond, ok := c.stat("30+ HR / 30+ SB Season Batting")
	require.True(t, ok)
	require.NotNil(t, cond.Compound)
	assert.Nil(t, cond.Single)
	assert.Equal(t, lookup.TableBatting, cond.Compound.Table)
	assert.Equal(t, TimeframeSeason, cond.Compound.Timeframe)
	assert.Equal(t, CompoundPart{Name: "HR", Column: "hr", Value: 30}, cond.Compound.First)
	assert.Equal(t, CompoundPart{Name: "SB", Column: "sb", Value: 30}, cond.Compound.Second)
	assert.Equal(t, TimeframeSeason, cond.Timeframe())
}

func TestStatClassifierCompoundRejectsMixedTables(t *testing.T) {
	c := newTestClassifiers()

	// HR aggregates over battings, WIN over pitchings; one grouping cannot
	// serve both.
	_, ok := c.stat("30+ HR / 30+ WIN Season")
	assert.False(t, ok)
}

func TestStatClassifierCompoundRejectsFormulaStats(t *testing.T) {
	c := newTestClassifiers()

	_, ok := c.stat("20+ WIN / 3+ ERA Season Pitching")
	assert.False(t, ok)
}

func TestStatClassifierCoarsePassThenMiss(t *testing.T) {
	c := newTestClassifiers()

	// Mentions "Career" so the coarse check passes, but WAR is not a stat;
	// the condition belongs to the player classifier instead.
	_, ok := c.stat("40+ WAR Career")
	assert.False(t, ok)
}

func TestStatClassifierNoTimeframe(t *testing.T) {
	c := newTestClassifiers()

	for _, cond := range []string{"300 Wins", "Hall of Fame", "Cincinnati Reds"} {
		_, ok := c.stat(cond)
		assert.False(t, ok, cond)
	}
}

func TestStatClassifierCaseInsensitive(t *testing.T) {
	c := newTestClassifiers()

	cond, ok := c.stat("300+ hr career")
	require.True(t, ok)
	require.NotNil(t, cond.Single)
	assert.Equal(t, "HR", cond.Single.Name)
	assert.Equal(t, TimeframeCareer, cond.Single.Timeframe)
}
