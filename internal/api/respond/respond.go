// Package respond writes the service's JSON responses: plain objects for
// health endpoints, ETagged cacheable bodies for grid answers, and the
// structured error envelope.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// errorEnvelope is the wire shape of every API error.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON encodes v and writes it with the given status. Health and metadata
// endpoints use this; their responses are never cached.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Cached writes a pre-encoded body with ETag and cache headers. The hit flag
// only affects the X-Cache diagnostic header.
func Cached(w http.ResponseWriter, body []byte, etag string, ttl time.Duration, hit bool) {
	maxAge := int(ttl.Seconds())
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, maxAge/2))
	if hit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// NotModified answers a matched conditional request.
func NotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// Error writes the structured error envelope.
func Error(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Error: errorBody{Code: code, Message: message}})
}
