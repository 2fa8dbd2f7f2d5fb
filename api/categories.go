package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/database"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.All()
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondData(w, categories)
}

func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := a.categories.ByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		a.respondInternalError(w, err)
		return
	}
	respondData(w, category)
}

func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	id, err := a.categories.Create(&database.Category{Name: req.Name})
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondError(w, http.StatusBadRequest, "Category name already exists")
			return
		}
		a.respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		CategoryID uint   `json:"categoryId"`
	}{true, "Category created", id})
}

func (a *API) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	if err := a.categories.Update(id, req.Name); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			respondError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, database.ErrDuplicate):
			respondError(w, http.StatusBadRequest, "Category name already exists")
		default:
			a.respondInternalError(w, err)
		}
		return
	}
	respondMessage(w, http.StatusOK, "Category updated")
}

func (a *API) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := a.categories.Delete(id); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			respondError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, database.ErrInUse):
			respondError(w, http.StatusBadRequest, "Category has posts and cannot be deleted")
		default:
			a.respondInternalError(w, err)
		}
		return
	}
	respondMessage(w, http.StatusOK, "Category deleted")
}
