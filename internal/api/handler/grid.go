package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dugoutgrid/dugout-data/internal/api/respond"
	"github.com/dugoutgrid/dugout-data/internal/cache"
	"github.com/dugoutgrid/dugout-data/internal/question"
)

// gridResponse is the wire shape of a grid suggestion response.
type gridResponse struct {
	Suggestions []question.Result `json:"suggestions"`
}

// GetGridSuggestions answers a batch of grid questions.
// @Summary Grid suggestions
// @Description Classifies each question label, runs the compiled query, and returns ranked player suggestions per question. Unrecognized questions come back with pattern_type "unmatched" and an empty suggestion list.
// @Tags grid
// @Produce json
// @Param questions query string true "JSON array of question labels" example(["All Star + New York Yankees"])
// @Success 200 {object} handler.gridResponse
// @Router /grid [get]
func (h *Handler) GetGridSuggestions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("questions")
	questions := h.parseQuestionsParam(raw)

	cacheKey := fmt.Sprintf("grid:%s", raw)
	ttl := cache.TTLGridResults

	if body, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.NotModified(w, etag)
			return
		}
		respond.Cached(w, body, etag, ttl, true)
		return
	}

	results := h.engine.Process(r.Context(), questions)

	body, err := json.Marshal(gridResponse{Suggestions: results})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "ENCODING_FAILED", "Failed to encode results")
		return
	}

	etag := h.cache.Set(cacheKey, body, ttl)
	respond.Cached(w, body, etag, ttl, false)
}

// parseQuestionsParam decodes the questions query parameter, a JSON array of
// label strings. Malformed or absent input normalizes to an empty list; the
// engine never sees a parse failure.
func (h *Handler) parseQuestionsParam(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var questions []string
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		h.log.Error("failed to parse questions parameter", "error", err)
		return []string{}
	}
	return questions
}
