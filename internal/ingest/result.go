// Package ingest loads the historical baseball dataset from CSV files into
// Postgres. One CSV per fact/dimension table, bulk-copied with pgx.
package ingest

import "fmt"

// LoadResult tracks per-table row counts and errors from a dataset load.
type LoadResult struct {
	TablesLoaded int
	RowsCopied   int64
	Errors       []string
}

// AddError records an error message.
func (r *LoadResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *LoadResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the load.
func (r *LoadResult) Summary() string {
	return fmt.Sprintf("tables=%d rows=%d errors=%d",
		r.TablesLoaded, r.RowsCopied, len(r.Errors))
}
