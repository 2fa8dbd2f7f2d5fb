package api

import (
	"encoding/json"
	"log"
	"net/http"
)

type envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    string      `json:"details,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Pages  int   `json:"pages"`
}

func newPagination(total int64, limit, offset int) *pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &pagination{Total: total, Limit: limit, Offset: offset, Pages: pages}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: false, Error: message})
}

// respondInternalError hides the underlying error detail in production.
func (a *API) respondInternalError(w http.ResponseWriter, err error) {
	log.Printf("Internal error: %v", err)
	body := envelope{Success: false, Error: "Internal server error"}
	if !a.cfg.IsProduction() {
		body.Details = err.Error()
	}
	respondJSON(w, http.StatusInternalServerError, body)
}
