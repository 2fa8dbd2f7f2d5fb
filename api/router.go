package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Routes returns the /api/v1 route tree. Global middleware (CORS, rate
// limiting, logging) lives with the server setup in main.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", a.ListPosts)
		r.Get("/latest", a.LatestPosts)
		r.Get("/search", a.SearchPosts)
		r.Get("/category/{categoryID}", a.PostsByCategory)
		r.Get("/type/{postType}", a.PostsByType)
		r.Get("/{id}", a.GetPost)
		r.With(a.RequireAuth).Post("/", a.CreatePost)
		r.With(a.RequireAuth).Post("/reset", a.ResetPosts)
		r.With(a.RequireAuth).Put("/{id}", a.UpdatePost)
		r.With(a.RequireAuth).Delete("/{id}", a.DeletePost)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", a.ListCategories)
		r.Get("/{id}", a.GetCategory)
		r.With(a.RequireAuth).Post("/", a.CreateCategory)
		r.With(a.RequireAuth).Put("/{id}", a.UpdateCategory)
		r.With(a.RequireAuth).Delete("/{id}", a.DeleteCategory)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", a.ListUsers)
		r.Get("/{id}", a.GetUser)
		r.With(a.RequireAuth).Post("/", a.CreateUser)
		r.With(a.RequireAuth).Delete("/{id}", a.DeleteUser)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", a.CreateContact)
		r.With(a.RequireAuth).Get("/", a.ListContacts)
	})

	r.Get("/home", a.HomeData)
	r.Get("/health", a.Health)

	return r
}

// Health reports liveness plus process uptime.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"message":   "API is running smoothly",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(a.started).Seconds(),
	})
}
