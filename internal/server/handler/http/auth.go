package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
	"github.com/ebazhanova/CoffeeToGo/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates an account and returns a fresh session.
	Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	// Login verifies credentials and returns a fresh session.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
// It expects a JSON body with non-empty email, password and name, creates
// the account and responds with the issued token and user identity.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "email, password and name are required")
		return
	}

	resp, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Login handles POST /api/auth/login.
// It verifies the credentials and responds with a freshly issued token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	resp, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
