package state

import (
	"context"
	"sync"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
)

// SignInSnapshot is the observable state of the sign-in screen.
type SignInSnapshot struct {
	Loading bool
	Message string
	Done    bool
}

// SignIn owns the sign-in screen state.
type SignIn struct {
	mu    sync.Mutex
	api   *api.Client
	prefs *prefs.Preferences

	loading bool
	message string
	done    bool
}

// NewSignIn wires the sign-in screen to its dependencies.
func NewSignIn(client *api.Client, p *prefs.Preferences) *SignIn {
	return &SignIn{api: client, prefs: p}
}

// Submit validates the credentials, performs the login call and persists
// the session on success. A failure leaves prior state unchanged except for
// the loading flag and message.
func (s *SignIn) Submit(ctx context.Context, email, password string) {
	if email == "" || password == "" {
		s.mu.Lock()
		s.message = "email and password are required"
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.loading = true
	s.message = ""
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.message = messageFrom(err)
		return
	}
	s.prefs.SaveSession(resp.Token, resp.UserID, resp.Email, resp.Name)
	s.done = true
}

// Snapshot returns the current screen state.
func (s *SignIn) Snapshot() SignInSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SignInSnapshot{Loading: s.loading, Message: s.message, Done: s.done}
}
