package state

import (
	"context"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/geocode"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// CheckoutSnapshot is the observable state of the checkout screen.
type CheckoutSnapshot struct {
	Address     string
	Note        string
	Suggestions []geocode.Place
	Loading     bool
	Message     string
	Placed      *models.Order
}

// Checkout owns the checkout screen: address entry with autocomplete, the
// per-address courier note, and order submission.
type Checkout struct {
	mu    sync.Mutex
	api   *api.Client
	prefs *prefs.Preferences
	geo   *geocode.Client

	address     string
	note        string
	suggestions []geocode.Place
	inFlight    bool
	message     string
	placed      *models.Order
}

// NewCheckout wires the checkout screen to its dependencies and prefills
// the address and note from preferences.
func NewCheckout(client *api.Client, p *prefs.Preferences, geo *geocode.Client) *Checkout {
	c := &Checkout{api: client, prefs: p, geo: geo}
	if addr, ok := p.SavedAddress(); ok {
		c.address = addr
		if note, ok := p.AddressNote(addr); ok {
			c.note = note
		}
	}
	return c
}

// SetAddress records the delivery address and pulls up any note previously
// saved for that exact address string.
func (c *Checkout) SetAddress(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = address
	c.note = ""
	if note, ok := c.prefs.AddressNote(address); ok {
		c.note = note
	}
}

// SetNote records the courier note for the current address.
func (c *Checkout) SetNote(note string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.note = note
}

// Suggest queries the geocoder for address completions. Failures degrade to
// an empty suggestion list.
func (c *Checkout) Suggest(ctx context.Context, query string) {
	places := c.geo.Search(ctx, query)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestions = places
}

// PlaceOrder submits the order. A second call while one is in flight is a
// no-op, so a double tap cannot create two orders. On success the address
// and note are persisted for the next checkout.
func (c *Checkout) PlaceOrder(ctx context.Context, kind models.OrderKind) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return
	}
	if kind == models.Delivery && c.address == "" {
		c.message = "delivery address is required"
		c.mu.Unlock()
		return
	}
	c.inFlight = true
	c.message = ""
	address, note := c.address, c.note
	c.mu.Unlock()

	req := api.OrderRequest{Kind: string(kind)}
	if kind == models.Delivery {
		req.Address = address
		req.Note = note
	}
	order, err := c.api.CreateOrder(ctx, c.prefs.Token(), req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	if err != nil {
		c.message = messageFrom(err)
		return
	}
	c.placed = order
	if kind == models.Delivery {
		c.prefs.SaveAddress(address)
		c.prefs.SaveAddressNote(address, note)
	}
}

// Snapshot returns the current screen state.
func (c *Checkout) Snapshot() CheckoutSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CheckoutSnapshot{
		Address:     c.address,
		Note:        c.note,
		Suggestions: c.suggestions,
		Loading:     c.inFlight,
		Message:     c.message,
		Placed:      c.placed,
	}
}
