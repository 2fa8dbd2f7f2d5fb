package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gosimple/slug"

	"inkwell/constants"
	"inkwell/database"
)

type postRequest struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	CategoryID uint   `json:"categoryId"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
	UserID     uint   `json:"userId"`
	Type       string `json:"type"`
}

// postListing is what the list cache stores: one page plus the table total.
type postListing struct {
	Posts []database.Post
	Total int64
}

func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := a.limitQuery(r)
	offset := offsetQuery(r)
	sort := r.URL.Query().Get("sort")
	order := r.URL.Query().Get("order")

	key := fmt.Sprintf("posts:all:%d:%d:%s:%s", limit, offset, sort, order)
	if cached, ok := a.cache.Get(key); ok {
		if listing, ok := cached.(postListing); ok {
			a.respondListing(w, listing, limit, offset)
			return
		}
	}

	posts, err := a.posts.List(limit, offset, sort, order)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	total, err := a.posts.CountAll()
	if err != nil {
		a.respondInternalError(w, err)
		return
	}

	listing := postListing{Posts: posts, Total: total}
	a.cache.Set(key, listing, 0)
	a.respondListing(w, listing, limit, offset)
}

func (a *API) respondListing(w http.ResponseWriter, listing postListing, limit, offset int) {
	respondJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       listing.Posts,
		Pagination: newPagination(listing.Total, limit, offset),
	})
}

func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	key := fmt.Sprintf("post:%d", id)
	if cached, ok := a.cache.Get(key); ok {
		if post, ok := cached.(*database.Post); ok {
			respondData(w, post)
			return
		}
	}

	post, err := a.posts.ByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		a.respondInternalError(w, err)
		return
	}

	a.cache.Set(key, post, 0)
	respondData(w, post)
}

func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A missing slug is derived from the title; every other field is
	// required as-is.
	if req.Slug == "" && req.Title != "" {
		req.Slug = slug.Make(req.Title)
	}
	if req.Slug == "" || req.Title == "" || req.CategoryID == 0 || req.Excerpt == "" ||
		req.Content == "" || req.CreatedAt == "" || req.UserID == 0 || req.Type == "" {
		respondError(w, http.StatusBadRequest,
			"slug, title, categoryId, excerpt, content, createdAt, userId, and type are required")
		return
	}
	if !database.ValidPostType(req.Type) {
		respondError(w, http.StatusBadRequest, "Invalid type, must be about, blog, event, or service")
		return
	}
	if !a.categoryExists(w, req.CategoryID, http.StatusBadRequest) {
		return
	}
	if !a.userExists(w, req.UserID) {
		return
	}

	post := database.Post{
		Slug:       req.Slug,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CreatedAt:  req.CreatedAt,
		UserID:     req.UserID,
		Type:       req.Type,
	}
	id, err := a.posts.Create(&post)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondError(w, http.StatusBadRequest, "Slug already exists")
			return
		}
		a.respondInternalError(w, err)
		return
	}

	a.invalidatePostListings()
	respondJSON(w, http.StatusCreated, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		PostID  uint   `json:"postId"`
	}{true, "Post created", id})
}

func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Partial validation: only fields present in the payload are checked.
	if raw, present := fields["type"]; present {
		t, ok := raw.(string)
		if !ok || !database.ValidPostType(t) {
			respondError(w, http.StatusBadRequest, "Invalid type, must be about, blog, event, or service")
			return
		}
	}
	if raw, present := fields["categoryId"]; present {
		categoryID, ok := jsonUint(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		if !a.categoryExists(w, categoryID, http.StatusBadRequest) {
			return
		}
		fields["categoryId"] = categoryID
	}
	if raw, present := fields["userId"]; present {
		userID, ok := jsonUint(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		if !a.userExists(w, userID) {
			return
		}
		fields["userId"] = userID
	}

	if err := a.posts.Update(id, fields); err != nil {
		switch {
		case errors.Is(err, database.ErrNoFields):
			respondError(w, http.StatusBadRequest, "No valid fields to update")
		case errors.Is(err, database.ErrNotFound):
			respondError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, database.ErrDuplicate):
			respondError(w, http.StatusBadRequest, "Slug already exists")
		default:
			a.respondInternalError(w, err)
		}
		return
	}

	a.invalidatePost(id)
	post, err := a.posts.ByID(id)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{Success: true, Message: "Post updated", Data: post})
}

func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	affected, err := a.posts.Delete(id)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	a.invalidatePost(id)
	respondMessage(w, http.StatusOK, "Post deleted")
}

func (a *API) ResetPosts(w http.ResponseWriter, r *http.Request) {
	if _, err := a.posts.ResetAll(); err != nil {
		a.respondInternalError(w, err)
		return
	}
	a.cache.Clear()
	respondMessage(w, http.StatusOK, "All posts reset successfully")
}

func (a *API) PostsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := uintParam(r, "categoryID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	if _, err := a.categories.ByID(categoryID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		a.respondInternalError(w, err)
		return
	}

	posts, err := a.posts.ByCategory(categoryID)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondData(w, posts)
}

func (a *API) PostsByType(w http.ResponseWriter, r *http.Request) {
	postType := chi.URLParam(r, "postType")
	if !database.ValidPostType(postType) {
		respondError(w, http.StatusBadRequest, "Invalid type, must be about, blog, event, or service")
		return
	}

	posts, err := a.posts.ByType(postType)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondData(w, posts)
}

func (a *API) LatestPosts(w http.ResponseWriter, r *http.Request) {
	limit := constants.DEFAULT_LATEST_POSTS
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	posts, err := a.posts.Latest(limit)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondData(w, posts)
}

func (a *API) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Search query is required")
		return
	}
	limit := a.limitQuery(r)
	offset := offsetQuery(r)

	posts, total, err := a.posts.Search(query, limit, offset)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       posts,
		Pagination: newPagination(total, limit, offset),
	})
}

// HomeData bundles the landing-page payload: latest blogs and events plus
// the category list.
func (a *API) HomeData(w http.ResponseWriter, r *http.Request) {
	limit := constants.DEFAULT_LATEST_POSTS
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	blogs, err := a.posts.LatestByType("blog", limit)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	events, err := a.posts.LatestByType("event", limit)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	categories, err := a.categories.All()
	if err != nil {
		a.respondInternalError(w, err)
		return
	}

	respondData(w, map[string]any{
		"latestBlogs":  blogs,
		"latestEvents": events,
		"categories":   categories,
	})
}

// categoryExists writes the failure response itself so callers can bail
// with a bare return.
func (a *API) categoryExists(w http.ResponseWriter, id uint, missingStatus int) bool {
	if _, err := a.categories.ByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, missingStatus, "Category not found")
		} else {
			a.respondInternalError(w, err)
		}
		return false
	}
	return true
}

func (a *API) userExists(w http.ResponseWriter, id uint) bool {
	if _, err := a.users.ByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusBadRequest, "User not found")
		} else {
			a.respondInternalError(w, err)
		}
		return false
	}
	return true
}

func (a *API) invalidatePostListings() {
	a.cache.DeletePrefix("posts:")
}

func (a *API) invalidatePost(id uint) {
	a.cache.Delete(fmt.Sprintf("post:%d", id))
	a.invalidatePostListings()
}
