package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkwell/cache"
	"inkwell/config"
	"inkwell/database"
)

func testConfig() *config.Config {
	cfg := &config.Config{Env: "test"}
	cfg.Pagination.DefaultLimit = 10
	cfg.Pagination.MaxLimit = 100
	return cfg
}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "api.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	c := cache.New(time.Minute, time.Minute)
	t.Cleanup(c.Stop)

	return New(db, c, testConfig())
}

// seedRefs inserts one category and one user and returns their ids.
func seedRefs(t *testing.T, a *API) (categoryID, userID uint) {
	t.Helper()
	categoryID, err := a.categories.Create(&database.Category{Name: "General"})
	require.NoError(t, err)
	userID, err = a.users.Create(&database.User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	return categoryID, userID
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validPostBody(slug string) map[string]any {
	return map[string]any{
		"slug":       slug,
		"title":      "Hello",
		"categoryId": 1,
		"excerpt":    "e",
		"content":    "c",
		"createdAt":  "2024-01-01",
		"userId":     1,
		"type":       "blog",
	}
}
