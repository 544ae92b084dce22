package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVTypedColumns(t *testing.T) {
	csv := strings.Join([]string{
		"player_id,year_id,hr,rbi,extra",
		"aaronha01,1957,44,132,ignored",
		"ruthba01,1927,60,,ignored",
	}, "\n")
	cols := []column{
		{"player_id", colText},
		{"year_id", colInt},
		{"hr", colInt},
		{"rbi", colFloat},
	}

	rows, err := parseCSV(strings.NewReader(csv), cols)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []any{"aaronha01", int64(1957), int64(44), 132.0}, rows[0])
	// Empty cells become NULL.
	assert.Equal(t, []any{"ruthba01", int64(1927), int64(60), nil}, rows[1])
}

func TestParseCSVHeaderCaseInsensitive(t *testing.T) {
	csv := "Player_ID,HR\nruthba01,60\n"
	cols := []column{{"player_id", colText}, {"hr", colInt}}

	rows, err := parseCSV(strings.NewReader(csv), cols)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []any{"ruthba01", int64(60)}, rows[0])
}

func TestParseCSVMissingColumn(t *testing.T) {
	csv := "player_id\nruthba01\n"
	cols := []column{{"player_id", colText}, {"hr", colInt}}

	_, err := parseCSV(strings.NewReader(csv), cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "hr"`)
}

func TestParseCSVBadValue(t *testing.T) {
	csv := "player_id,hr\nruthba01,sixty\n"
	cols := []column{{"player_id", colText}, {"hr", colInt}}

	_, err := parseCSV(strings.NewReader(csv), cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
