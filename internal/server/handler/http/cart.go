package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ebazhanova/CoffeeToGo/internal/middleware"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
	"github.com/ebazhanova/CoffeeToGo/internal/service"
)

// CartService defines the cart operations required by the handlers.
type CartService interface {
	Items(ctx context.Context, userID int64) ([]models.CartItem, error)
	Add(ctx context.Context, userID, coffeeID int64, quantity int) error
	SetQuantity(ctx context.Context, userID, coffeeID int64, quantity int) error
	Remove(ctx context.Context, userID, coffeeID int64) error
}

// CartHandler handles cart requests for the authenticated user.
type CartHandler struct {
	CartService CartService
}

// CartMutation is the JSON payload for cart add/update requests.
type CartMutation struct {
	CoffeeID int64 `json:"coffeeId"`
	Quantity int   `json:"quantity"`
}

// List handles GET /api/cart.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	items, err := h.CartService.Items(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.CartService.Add)
}

// SetQuantity handles PUT /api/cart.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.CartService.SetQuantity)
}

// mutate decodes a CartMutation and applies it with the given operation.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, int64, int) error) {
	var req CartMutation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CoffeeID == 0 {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	if err := op(r.Context(), userID, req.CoffeeID, req.Quantity); err != nil {
		if errors.Is(err, service.ErrBadQuantity) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /api/cart/{coffeeID}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	coffeeID, err := strconv.ParseInt(chi.URLParam(r, "coffeeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid coffee id")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	if err := h.CartService.Remove(r.Context(), userID, coffeeID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
