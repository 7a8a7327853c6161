package state

import (
	"context"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
)

// RegistrationSnapshot is the observable state of the registration screen.
type RegistrationSnapshot struct {
	Loading bool
	Message string
	Done    bool
}

// Registration owns the registration screen state.
type Registration struct {
	mu    sync.Mutex
	api   *api.Client
	prefs *prefs.Preferences

	loading bool
	message string
	done    bool
}

// NewRegistration wires the registration screen to its dependencies.
func NewRegistration(client *api.Client, p *prefs.Preferences) *Registration {
	return &Registration{api: client, prefs: p}
}

// Submit validates the form, registers the account and persists the
// returned session on success.
func (r *Registration) Submit(ctx context.Context, email, password, name string) {
	if email == "" || password == "" || name == "" {
		r.mu.Lock()
		r.message = "email, password and name are required"
		r.mu.Unlock()
		return
	}

	r.mu.Lock()
	r.loading = true
	r.message = ""
	r.mu.Unlock()

	resp, err := r.api.Register(ctx, email, password, name)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.message = messageFrom(err)
		return
	}
	r.prefs.SaveSession(resp.Token, resp.UserID, resp.Email, resp.Name)
	r.done = true
}

// Snapshot returns the current screen state.
func (r *Registration) Snapshot() RegistrationSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RegistrationSnapshot{Loading: r.loading, Message: r.message, Done: r.done}
}
