package question

import (
	"context"
	"strconv"
)

// Executor runs a compiled query against the relational store and returns
// rows as string-keyed records. Single attempt, no retry; failures are
// contained at the handler boundary.
type Executor interface {
	Select(ctx context.Context, sql string) ([]map[string]any, error)
}

// Suggestion is one matching player in a question result.
type Suggestion struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	ProCareer string `json:"pro_career"`
	Age       int    `json:"age"`
	Rank      *int   `json:"lps"`
	BBRefID   string `json:"bbref_id"`
}

// Result is the outcome for a single question. PatternType is a shape tag or
// the literal "unmatched".
type Result struct {
	Label       string       `json:"label"`
	Suggestions []Suggestion `json:"suggestions"`
	PatternType string       `json:"pattern_type"`
}

func unmatchedResult(label string) Result {
	return Result{
		Label:       label,
		Suggestions: []Suggestion{},
		PatternType: ShapeUnmatched.String(),
	}
}

// suggestionFromRow maps a store row onto a Suggestion. Drivers differ in
// the concrete numeric types they return, so coercion is loose.
func suggestionFromRow(row map[string]any) Suggestion {
	return Suggestion{
		Name:      asString(row["name"]),
		Position:  asString(row["position"]),
		ProCareer: asString(row["pro_career"]),
		Age:       asInt(row["age"]),
		Rank:      asNullableInt(row["lps"]),
		BBRefID:   asString(row["bbref_id"]),
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		return 0
	}
}

func asNullableInt(v any) *int {
	if v == nil {
		return nil
	}
	n := asInt(v)
	return &n
}
