// Package db owns the Postgres connection pool and the row-map query helper
// the question engine executes compiled queries through.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dugoutgrid/dugout-data/internal/config"
)

// Pool wraps pgxpool.Pool with the service's query helpers.
type Pool struct {
	*pgxpool.Pool
}

// New opens a pool sized from cfg and verifies connectivity before
// returning it.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.AfterConnect = prepareStatements

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Pool{Pool: pool}, nil
}

// HealthCheck runs the prepared trivial query to verify the database is
// reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// Select runs a read-only query and returns rows as string-keyed records.
// This is the question engine's Executor implementation; compiled grid
// queries all come through here.
func (p *Pool) Select(ctx context.Context, sql string) ([]map[string]any, error) {
	rows, err := p.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		record := make(map[string]any, len(fields))
		for i, f := range fields {
			record[f.Name] = values[i]
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func prepareStatements(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Prepare(ctx, "health_check", "SELECT 1"); err != nil {
		return fmt.Errorf("prepare health_check: %w", err)
	}
	return nil
}
