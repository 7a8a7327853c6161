package state

import (
	"context"
	"strings"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/history"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// CatalogSnapshot is the observable state of the home/catalog screen.
type CatalogSnapshot struct {
	Coffees     []models.Coffee
	Types       []models.CoffeeType
	TypeFilter  string
	Query       string
	Loading     bool
	Message     string
	Suggestions []string
}

// Catalog owns the home screen: the coffee list, category filter and
// client-side name search fed by the search history ring.
type Catalog struct {
	mu      sync.Mutex
	api     *api.Client
	prefs   *prefs.Preferences
	history *history.Ring

	coffees    []models.Coffee
	types      []models.CoffeeType
	typeFilter string
	query      string
	loading    bool
	message    string
}

// NewCatalog wires the catalog screen to its dependencies.
func NewCatalog(client *api.Client, p *prefs.Preferences, ring *history.Ring) *Catalog {
	return &Catalog{api: client, prefs: p, history: ring}
}

// Load fetches the catalog and its categories.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.message = ""
	c.mu.Unlock()

	token := c.prefs.Token()
	coffees, err := c.api.Coffees(ctx, token)
	if err != nil {
		c.fail(err)
		return
	}
	types, err := c.api.CoffeeTypes(ctx, token)
	if err != nil {
		c.fail(err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.coffees = coffees
	c.types = types
}

func (c *Catalog) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.message = messageFrom(err)
}

// SetTypeFilter restricts the visible list to one category. An empty name
// clears the filter.
func (c *Catalog) SetTypeFilter(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typeFilter = name
}

// Search sets the name query and records it in the search history. Blank
// queries clear the search without touching history.
func (c *Catalog) Search(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
	c.history.Add(query)
}

// Visible returns the coffees matching the active type filter and query,
// comparing names case-insensitively.
func (c *Catalog) Visible() []models.Coffee {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := strings.ToLower(strings.TrimSpace(c.query))
	out := make([]models.Coffee, 0, len(c.coffees))
	for _, coffee := range c.coffees {
		if c.typeFilter != "" && coffee.Type != c.typeFilter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(coffee.Name), query) {
			continue
		}
		out = append(out, coffee)
	}
	return out
}

// Snapshot returns the current screen state including history suggestions.
func (c *Catalog) Snapshot() CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CatalogSnapshot{
		Coffees:     c.coffees,
		Types:       c.types,
		TypeFilter:  c.typeFilter,
		Query:       c.query,
		Loading:     c.loading,
		Message:     c.message,
		Suggestions: c.history.Entries(),
	}
}
