package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/database"
)

func TestCreateGetDuplicateFlow(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodPost, "/posts", validPostBody("hello"))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, "Post created", created["message"])
	postID := int(created["postId"].(float64))
	require.NotZero(t, postID)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "hello", data["slug"])
	assert.Equal(t, "Hello", data["title"])
	assert.Equal(t, "2024-01-01", data["createdAt"])
	assert.Equal(t, "blog", data["type"])

	rec = doJSON(t, router, http.MethodPost, "/posts", validPostBody("hello"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Slug already exists", decodeBody(t, rec)["error"])
}

func TestCreatePostValidation(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	t.Run("missing required field", func(t *testing.T) {
		body := validPostBody("x")
		delete(body, "content")
		rec := doJSON(t, router, http.MethodPost, "/posts", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t,
			"slug, title, categoryId, excerpt, content, createdAt, userId, and type are required",
			decodeBody(t, rec)["error"])
	})

	t.Run("invalid type", func(t *testing.T) {
		body := validPostBody("x")
		body["type"] = "poem"
		rec := doJSON(t, router, http.MethodPost, "/posts", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid type, must be about, blog, event, or service", decodeBody(t, rec)["error"])
	})

	t.Run("unknown category", func(t *testing.T) {
		body := validPostBody("x")
		body["categoryId"] = 42
		rec := doJSON(t, router, http.MethodPost, "/posts", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Category not found", decodeBody(t, rec)["error"])
	})

	t.Run("unknown user", func(t *testing.T) {
		body := validPostBody("x")
		body["userId"] = 42
		rec := doJSON(t, router, http.MethodPost, "/posts", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
	})
}

func TestCreatePostDerivesSlug(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	body := validPostBody("")
	body["title"] = "Hello World, Again"
	delete(body, "slug")

	rec := doJSON(t, router, http.MethodPost, "/posts", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := int(decodeBody(t, rec)["postId"].(float64))

	post, err := a.posts.ByID(uint(postID))
	require.NoError(t, err)
	assert.Equal(t, "hello-world-again", post.Slug)
}

func TestUpdatePost(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodPost, "/posts", validPostBody("base"))
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := int(decodeBody(t, rec)["postId"].(float64))
	path := fmt.Sprintf("/posts/%d", postID)

	t.Run("partial update", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, path, map[string]any{"title": "Renamed"})
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, "Renamed", data["title"])
		assert.Equal(t, "base", data["slug"], "omitted fields keep their values")
	})

	t.Run("no recognized fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, path, map[string]any{"bogus": 1})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No valid fields to update", decodeBody(t, rec)["error"])
	})

	t.Run("unknown category blocks mutation", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, path, map[string]any{"categoryId": 42, "title": "Leaked"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Category not found", decodeBody(t, rec)["error"])

		post, err := a.posts.ByID(uint(postID))
		require.NoError(t, err)
		assert.Equal(t, "Renamed", post.Title, "row must be untouched after validation failure")
	})

	t.Run("missing post", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/posts/9999", map[string]any{"title": "Ghost"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Post not found", decodeBody(t, rec)["error"])
	})

	t.Run("duplicate slug", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/posts", validPostBody("other"))
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodPut, path, map[string]any{"slug": "other"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Slug already exists", decodeBody(t, rec)["error"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/posts/abc", map[string]any{"title": "x"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid post ID", decodeBody(t, rec)["error"])
	})
}

func TestDeletePost(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodDelete, "/posts/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/posts", validPostBody("doomed"))
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := int(decodeBody(t, rec)["postId"].(float64))

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Post deleted", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetPosts(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	for _, slug := range []string{"one", "two"} {
		rec := doJSON(t, router, http.MethodPost, "/posts", validPostBody(slug))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/posts/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All posts reset successfully", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["data"])
}

func TestListPostsPagination(t *testing.T) {
	a := newTestAPI(t)
	categoryID, userID := seedRefs(t, a)
	router := a.Routes()

	older := &database.Post{Slug: "older", Title: "Older", CategoryID: categoryID,
		Excerpt: "e", Content: "c", CreatedAt: "2024-01-01", UserID: userID, Type: "blog"}
	newer := &database.Post{Slug: "newer", Title: "Newer", CategoryID: categoryID,
		Excerpt: "e", Content: "c", CreatedAt: "2024-02-01", UserID: userID, Type: "blog"}
	for _, p := range []*database.Post{older, newer} {
		_, err := a.posts.Create(p)
		require.NoError(t, err)
	}

	rec := doJSON(t, router, http.MethodGet, "/posts?limit=1&offset=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "newer", data[0].(map[string]any)["slug"], "created_at DESC by default")

	pg := body["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pg["total"])
	assert.EqualValues(t, 1, pg["limit"])
	assert.EqualValues(t, 2, pg["pages"])
}

func TestListPostsCacheInvalidation(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Positive(t, a.cache.Len(), "listing should be cached")

	rec = doJSON(t, router, http.MethodPost, "/posts", validPostBody("fresh"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	assert.Len(t, data, 1, "write must invalidate the cached listing")
}

func TestPostsByCategory(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodGet, "/posts/category/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found", decodeBody(t, rec)["error"])

	recCreate := doJSON(t, router, http.MethodPost, "/posts", validPostBody("in-category"))
	require.Equal(t, http.StatusCreated, recCreate.Code)

	rec = doJSON(t, router, http.MethodGet, "/posts/category/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 1)
}

func TestPostsByType(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodGet, "/posts/type/poem", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid type, must be about, blog, event, or service", decodeBody(t, rec)["error"])

	recCreate := doJSON(t, router, http.MethodPost, "/posts", validPostBody("typed"))
	require.Equal(t, http.StatusCreated, recCreate.Code)

	rec = doJSON(t, router, http.MethodGet, "/posts/type/blog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 1)

	rec = doJSON(t, router, http.MethodGet, "/posts/type/event", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["data"])
}

func TestLatestPosts(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodGet, "/posts/latest?limit=0", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid limit parameter", decodeBody(t, rec)["error"])

	rec = doJSON(t, router, http.MethodGet, "/posts/latest?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	recCreate := doJSON(t, router, http.MethodPost, "/posts", validPostBody("recent"))
	require.Equal(t, http.StatusCreated, recCreate.Code)

	rec = doJSON(t, router, http.MethodGet, "/posts/latest?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 1)
}

func TestSearchPosts(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodGet, "/posts/search", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required", decodeBody(t, rec)["error"])

	body := validPostBody("findable")
	body["title"] = "A very particular needle"
	recCreate := doJSON(t, router, http.MethodPost, "/posts", body)
	require.Equal(t, http.StatusCreated, recCreate.Code)

	rec = doJSON(t, router, http.MethodGet, "/posts/search?q=needle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody(t, rec)
	assert.Len(t, result["data"].([]any), 1)
	assert.EqualValues(t, 1, result["pagination"].(map[string]any)["total"])
}

func TestHomeData(t *testing.T) {
	a := newTestAPI(t)
	seedRefs(t, a)
	router := a.Routes()

	blog := validPostBody("home-blog")
	recCreate := doJSON(t, router, http.MethodPost, "/posts", blog)
	require.Equal(t, http.StatusCreated, recCreate.Code)

	event := validPostBody("home-event")
	event["type"] = "event"
	recCreate = doJSON(t, router, http.MethodPost, "/posts", event)
	require.Equal(t, http.StatusCreated, recCreate.Code)

	rec := doJSON(t, router, http.MethodGet, "/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["latestBlogs"].([]any), 1)
	assert.Len(t, data["latestEvents"].([]any), 1)
	assert.Len(t, data["categories"].([]any), 1)
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t)
	router := a.Routes()

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", decodeBody(t, rec)["status"])
}
