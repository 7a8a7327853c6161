package state

import (
	"context"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// CartSnapshot is the observable state of the cart screen.
type CartSnapshot struct {
	Items   []models.CartItem
	Total   float64
	Loading bool
	Message string
}

// Cart owns the cart screen state.
type Cart struct {
	mu    sync.Mutex
	api   *api.Client
	prefs *prefs.Preferences

	items   []models.CartItem
	loading bool
	message string
}

// NewCart wires the cart screen to its dependencies.
func NewCart(client *api.Client, p *prefs.Preferences) *Cart {
	return &Cart{api: client, prefs: p}
}

// Load fetches the cart contents.
func (c *Cart) Load(ctx context.Context) {
	c.begin()
	items, err := c.api.Cart(ctx, c.prefs.Token())
	c.finish(items, err, true)
}

// Add puts a coffee into the cart and reloads.
func (c *Cart) Add(ctx context.Context, coffeeID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.begin()
	token := c.prefs.Token()
	if err := c.api.AddToCart(ctx, token, coffeeID, quantity); err != nil {
		c.finish(nil, err, false)
		return
	}
	items, err := c.api.Cart(ctx, token)
	c.finish(items, err, true)
}

// SetQuantity changes a line's quantity and reloads.
func (c *Cart) SetQuantity(ctx context.Context, coffeeID int64, quantity int) {
	c.begin()
	token := c.prefs.Token()
	if err := c.api.SetCartQuantity(ctx, token, coffeeID, quantity); err != nil {
		c.finish(nil, err, false)
		return
	}
	items, err := c.api.Cart(ctx, token)
	c.finish(items, err, true)
}

// Remove deletes a line and reloads.
func (c *Cart) Remove(ctx context.Context, coffeeID int64) {
	c.begin()
	token := c.prefs.Token()
	if err := c.api.RemoveFromCart(ctx, token, coffeeID); err != nil {
		c.finish(nil, err, false)
		return
	}
	items, err := c.api.Cart(ctx, token)
	c.finish(items, err, true)
}

func (c *Cart) begin() {
	c.mu.Lock()
	c.loading = true
	c.message = ""
	c.mu.Unlock()
}

// finish clears the loading flag and either records the failure message or,
// when replace is true, swaps in the freshly loaded items.
func (c *Cart) finish(items []models.CartItem, err error, replace bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.message = messageFrom(err)
		return
	}
	if replace {
		c.items = items
	}
}

// Snapshot returns the current cart state with the running total.
func (c *Cart) Snapshot() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return CartSnapshot{Items: c.items, Total: total, Loading: c.loading, Message: c.message}
}
