package state

import (
	"context"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// FavoritesSnapshot is the observable state of the favorites screen.
type FavoritesSnapshot struct {
	Coffees []models.Coffee
	Loading bool
	Message string
}

// Favorites owns the favorites screen state.
type Favorites struct {
	mu    sync.Mutex
	api   *api.Client
	prefs *prefs.Preferences

	coffees []models.Coffee
	loading bool
	message string
}

// NewFavorites wires the favorites screen to its dependencies.
func NewFavorites(client *api.Client, p *prefs.Preferences) *Favorites {
	return &Favorites{api: client, prefs: p}
}

// Load fetches the favorite coffees.
func (f *Favorites) Load(ctx context.Context) {
	f.mu.Lock()
	f.loading = true
	f.message = ""
	f.mu.Unlock()

	coffees, err := f.api.Favorites(ctx, f.prefs.Token())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.message = messageFrom(err)
		return
	}
	f.coffees = coffees
}

// Toggle adds the coffee to favorites if absent, removes it otherwise, and
// reloads the list.
func (f *Favorites) Toggle(ctx context.Context, coffeeID int64) {
	f.mu.Lock()
	present := false
	for _, c := range f.coffees {
		if c.ID == coffeeID {
			present = true
			break
		}
	}
	f.mu.Unlock()

	token := f.prefs.Token()
	var err error
	if present {
		err = f.api.RemoveFavorite(ctx, token, coffeeID)
	} else {
		err = f.api.AddFavorite(ctx, token, coffeeID)
	}
	if err != nil {
		f.mu.Lock()
		f.message = messageFrom(err)
		f.mu.Unlock()
		return
	}
	f.Load(ctx)
}

// Snapshot returns the current screen state.
func (f *Favorites) Snapshot() FavoritesSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FavoritesSnapshot{Coffees: f.coffees, Loading: f.loading, Message: f.message}
}
