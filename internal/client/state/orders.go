package state

import (
	"context"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// OrderHistorySnapshot is the observable state of the order history screen.
type OrderHistorySnapshot struct {
	Orders  []models.Order
	Loading bool
	Message string
}

// OrderHistory owns the past-orders screen state.
type OrderHistory struct {
	mu    sync.Mutex
	api   *api.Client
	prefs *prefs.Preferences

	orders  []models.Order
	loading bool
	message string
}

// NewOrderHistory wires the order history screen to its dependencies.
func NewOrderHistory(client *api.Client, p *prefs.Preferences) *OrderHistory {
	return &OrderHistory{api: client, prefs: p}
}

// Load fetches the user's past orders.
func (o *OrderHistory) Load(ctx context.Context) {
	o.mu.Lock()
	o.loading = true
	o.message = ""
	o.mu.Unlock()

	orders, err := o.api.Orders(ctx, o.prefs.Token())

	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = false
	if err != nil {
		o.message = messageFrom(err)
		return
	}
	o.orders = orders
}

// Snapshot returns the current screen state.
func (o *OrderHistory) Snapshot() OrderHistorySnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return OrderHistorySnapshot{Orders: o.orders, Loading: o.loading, Message: o.message}
}
