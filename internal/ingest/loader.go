package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type colKind int

const (
	colText colKind = iota
	colInt
	colFloat
)

type column struct {
	name string
	kind colKind
}

type tableSpec struct {
	file    string
	table   string
	columns []column
}

// tableSpecs lists every dataset table with the columns the engine queries.
// CSV headers are matched case-insensitively; extra CSV columns are ignored.
var tableSpecs = []tableSpec{
	{
		file:  "people.csv",
		table: "people",
		columns: []column{
			{"player_id", colText}, {"birth_year", colFloat}, {"birth_country", colText},
			{"name_first", colText}, {"name_last", colText},
			{"debut", colText}, {"final_game", colText},
			{"bwar_career", colFloat}, {"primary_position", colText}, {"bbref_id", colText},
			{"hall_of_fame", colInt}, {"is_ws_champ", colInt},
			{"matches_only_one_team", colInt}, {"has_6_war_season", colInt},
			{"has_no_hitter", colInt},
		},
	},
	{
		file:  "battings.csv",
		table: "battings",
		columns: []column{
			{"player_id", colText}, {"year_id", colInt}, {"stint", colInt},
			{"team_id", colText}, {"lg_id", colText},
			{"g", colInt}, {"ab", colInt}, {"r", colInt}, {"h", colInt},
			{"doubles", colInt}, {"triples", colInt}, {"hr", colInt},
			{"rbi", colFloat}, {"sb", colFloat}, {"cs", colFloat},
			{"bb", colInt}, {"so", colFloat},
		},
	},
	{
		file:  "pitchings.csv",
		table: "pitchings",
		columns: []column{
			{"player_id", colText}, {"year_id", colInt}, {"stint", colInt},
			{"team_id", colText}, {"lg_id", colText},
			{"w", colInt}, {"l", colInt}, {"g", colInt}, {"gs", colInt},
			{"sv", colInt}, {"ip_outs", colInt}, {"so", colInt},
			{"er", colInt}, {"h", colInt}, {"bb", colInt},
		},
	},
	{
		file:  "appearances.csv",
		table: "appearances",
		columns: []column{
			{"year_id", colInt}, {"team_id", colText}, {"lg_id", colText},
			{"player_id", colText}, {"g_all", colInt},
			{"g_p", colInt}, {"g_c", colInt}, {"g_1b", colInt}, {"g_2b", colInt},
			{"g_3b", colInt}, {"g_ss", colInt}, {"g_lf", colInt}, {"g_cf", colInt},
			{"g_rf", colInt}, {"g_of", colInt}, {"g_dh", colFloat},
			{"g_ph", colFloat}, {"g_pr", colFloat},
		},
	},
	{
		file:  "awards_players.csv",
		table: "awards_players",
		columns: []column{
			{"player_id", colText}, {"award_id", colText},
			{"year_id", colInt}, {"lg_id", colText},
		},
	},
	{
		file:  "all_star_fulls.csv",
		table: "all_star_fulls",
		columns: []column{
			{"player_id", colText}, {"year_id", colInt}, {"game_num", colInt},
			{"game_id", colText}, {"team_id", colText}, {"lg_id", colText},
			{"gp", colInt}, {"starting_pos", colText},
		},
	},
}

// Load copies every dataset CSV found in dir into its table. Missing files
// are recorded as errors and skipped; one bad table never aborts the rest.
func Load(ctx context.Context, pool *pgxpool.Pool, dir string, truncate bool, log *slog.Logger) *LoadResult {
	result := &LoadResult{}
	for _, spec := range tableSpecs {
		n, err := loadTable(ctx, pool, dir, spec, truncate)
		if err != nil {
			result.AddErrorf("%s: %v", spec.table, err)
			log.Error("table load failed", "table", spec.table, "error", err)
			continue
		}
		result.TablesLoaded++
		result.RowsCopied += n
		log.Info("table loaded", "table", spec.table, "rows", n)
	}
	return result
}

func loadTable(ctx context.Context, pool *pgxpool.Pool, dir string, spec tableSpec, truncate bool) (int64, error) {
	f, err := os.Open(filepath.Join(dir, spec.file))
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", spec.file, err)
	}
	defer f.Close()

	rows, err := parseCSV(f, spec.columns)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", spec.file, err)
	}

	if truncate {
		if _, err := pool.Exec(ctx, "TRUNCATE "+spec.table); err != nil {
			return 0, fmt.Errorf("truncate: %w", err)
		}
	}

	names := make([]string, len(spec.columns))
	for i, c := range spec.columns {
		names[i] = c.name
	}
	n, err := pool.CopyFrom(ctx, pgx.Identifier{spec.table}, names, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}
	return n, nil
}

// parseCSV reads a headered CSV and converts each row to typed values in
// spec-column order. Empty cells become NULL.
func parseCSV(r io.Reader, columns []column) ([][]any, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	positions := make([]int, len(columns))
	for i, c := range columns {
		pos, ok := index[c.name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", c.name)
		}
		positions[i] = pos
	}

	var rows [][]any
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row := make([]any, len(columns))
		for i, c := range columns {
			v, err := convert(record[positions[i]], c.kind)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, c.name, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func convert(raw string, kind colKind) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	switch kind {
	case colInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case colFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return raw, nil
	}
}
