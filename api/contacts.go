package api

import (
	"encoding/json"
	"net/http"

	"inkwell/database"
)

type contactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (a *API) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" || req.CreatedAt == "" {
		respondError(w, http.StatusBadRequest, "name, email, message, and createdAt are required")
		return
	}

	contact := database.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: req.CreatedAt,
	}
	id, err := a.contacts.Create(&contact)
	if err != nil {
		a.respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		ContactID uint   `json:"contactId"`
	}{true, "Contact created", id})
}

func (a *API) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := a.contacts.All()
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondData(w, contacts)
}
