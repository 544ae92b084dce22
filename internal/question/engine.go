// Package question classifies trivia-grid questions into known two-condition
// shapes, compiles each match into a declarative query, and maps the store's
// rows back to ranked player suggestions.
package question

import (
	"context"
	"log/slog"

	"github.com/dugoutgrid/dugout-data/internal/lookup"
)

// maxSuggestions caps the suggestion list of every matched result.
const maxSuggestions = 100

// Engine dispatches questions across the fixed handler registry.
type Engine struct {
	handlers []Handler
	exec     Executor
	log      *slog.Logger
}

// NewEngine builds an engine over the given lookup tables and store
// executor. The registry order is load-bearing: conditions can coarse-match
// more than one category, and the earlier handler always wins. Award shapes
// come first, then team, stat, position, player families.
func NewEngine(tables *lookup.Tables, exec Executor, log *slog.Logger) *Engine {
	c := &classifiers{tables: tables}
	return &Engine{
		handlers: []Handler{
			&awardAwardHandler{c},
			&awardTeamHandler{c},
			&awardStatHandler{c},
			&awardPositionHandler{c},
			&awardPlayerHandler{c},
			&teamTeamHandler{c},
			&teamStatHandler{c},
			&teamPositionHandler{c},
			&teamPlayerHandler{c},
			&statStatHandler{c},
			&statPositionHandler{c},
			&statPlayerHandler{c},
			&positionPositionHandler{c},
			&positionPlayerHandler{c},
			&playerPlayerHandler{c},
		},
		exec: exec,
		log:  log,
	}
}

// Process maps the dispatcher over a batch of questions. Output order
// matches input order and every question yields exactly one result; a
// failure in one question never aborts the rest.
func (e *Engine) Process(ctx context.Context, questions []string) []Result {
	results := make([]Result, len(questions))
	for i, q := range questions {
		results[i] = e.ProcessOne(ctx, q)
	}
	return results
}

// ProcessOne tries handlers in registry order and returns the first match's
// result, even when its suggestion list is empty. No match yields the
// "unmatched" sentinel.
func (e *Engine) ProcessOne(ctx context.Context, q string) Result {
	for _, h := range e.handlers {
		if res, ok := e.tryHandler(ctx, h, q); ok {
			return res
		}
	}
	e.log.Debug("no handler matched question", "question", q)
	return unmatchedResult(q)
}

// tryHandler runs one handler end to end. Every failure mode (panic, build
// error, store error) is contained here and reported as a non-match so
// dispatch moves on to the next handler.
func (e *Engine) tryHandler(ctx context.Context, h Handler, q string) (res Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("question handler panicked",
				"shape", h.Shape().String(), "question", q, "panic", r)
			res, ok = Result{}, false
		}
	}()

	data, matched := h.Match(q)
	if !matched {
		return Result{}, false
	}

	sql, err := h.Build(data)
	if err != nil {
		e.log.Error("query compilation failed",
			"shape", h.Shape().String(), "question", q, "error", err)
		return Result{}, false
	}

	rows, err := e.exec.Select(ctx, sql)
	if err != nil {
		e.log.Error("query execution failed",
			"shape", h.Shape().String(), "question", q, "error", err)
		return Result{}, false
	}

	if len(rows) > maxSuggestions {
		rows = rows[:maxSuggestions]
	}
	suggestions := make([]Suggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, suggestionFromRow(row))
	}
	return Result{
		Label:       q,
		Suggestions: suggestions,
		PatternType: h.Shape().String(),
	}, true
}
