package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/datatypes"

	"inkwell/database"
)

type userRequest struct {
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Address  json.RawMessage `json:"address"`
	Phone    string          `json:"phone"`
	Website  string          `json:"website"`
	Company  json.RawMessage `json:"company"`
}

func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.All()
	if err != nil {
		a.respondInternalError(w, err)
		return
	}
	respondData(w, users)
}

func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := a.users.ByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		a.respondInternalError(w, err)
		return
	}
	respondData(w, user)
}

func (a *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	user := database.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Address:  datatypes.JSON(req.Address),
		Phone:    req.Phone,
		Website:  req.Website,
		Company:  datatypes.JSON(req.Company),
	}
	id, err := a.users.Create(&user)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		a.respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		UserID  uint   `json:"userId"`
	}{true, "User created", id})
}

func (a *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := a.users.Delete(id); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, database.ErrInUse):
			respondError(w, http.StatusBadRequest, "User has posts and cannot be deleted")
		default:
			a.respondInternalError(w, err)
		}
		return
	}
	respondMessage(w, http.StatusOK, "User deleted")
}
