package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ebazhanova/CoffeeToGo/internal/middleware"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// FavoritesService defines the favorites operations required by the handlers.
type FavoritesService interface {
	Coffees(ctx context.Context, userID int64) ([]models.Coffee, error)
	Add(ctx context.Context, userID, coffeeID int64) error
	Remove(ctx context.Context, userID, coffeeID int64) error
}

// FavoritesHandler handles favorites requests for the authenticated user.
type FavoritesHandler struct {
	FavoritesService FavoritesService
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	coffees, err := h.FavoritesService.Coffees(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if coffees == nil {
		coffees = []models.Coffee{}
	}
	writeJSON(w, http.StatusOK, coffees)
}

// Add handles POST /api/favorites/{coffeeID}.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.FavoritesService.Add)
}

// Remove handles DELETE /api/favorites/{coffeeID}.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.FavoritesService.Remove)
}

func (h *FavoritesHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, int64) error) {
	coffeeID, err := strconv.ParseInt(chi.URLParam(r, "coffeeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid coffee id")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	if err := op(r.Context(), userID, coffeeID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
