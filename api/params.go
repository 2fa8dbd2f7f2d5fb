package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// uintParam parses a path segment as a positive integer id.
func uintParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// limitQuery parses ?limit with a fallback and an upper cap.
func (a *API) limitQuery(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return a.cfg.Pagination.DefaultLimit
	}
	if limit > a.cfg.Pagination.MaxLimit {
		return a.cfg.Pagination.MaxLimit
	}
	return limit
}

// offsetQuery parses ?offset, falling back to 0.
func offsetQuery(r *http.Request) int {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// jsonUint narrows a decoded JSON value to a positive integer id.
func jsonUint(v any) (uint, bool) {
	f, ok := v.(float64)
	if !ok || f < 1 || f != float64(uint(f)) {
		return 0, false
	}
	return uint(f), true
}
