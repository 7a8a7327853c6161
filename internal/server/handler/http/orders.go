package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebazhanova/CoffeeToGo/internal/middleware"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
	"github.com/ebazhanova/CoffeeToGo/internal/service"
)

// OrderService defines the order operations required by the handlers.
type OrderService interface {
	Create(ctx context.Context, userID int64, kind, address, note string) (*models.Order, error)
	History(ctx context.Context, userID int64) ([]models.Order, error)
}

// OrderHandler handles order requests for the authenticated user.
type OrderHandler struct {
	OrderService OrderService
}

// OrderRequest is the JSON payload for order creation.
type OrderRequest struct {
	Kind    string `json:"kind"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// Create handles POST /api/orders. The order is built from the user's
// current cart; the cart is cleared on success.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	order, err := h.OrderService.Create(r.Context(), userID, req.Kind, req.Address, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrBadOrderKind),
			errors.Is(err, service.ErrAddressRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders and returns the user's order history.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	orders, err := h.OrderService.History(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
