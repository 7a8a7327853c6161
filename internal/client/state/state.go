// Package state holds the per-screen state owners of the client: each one
// keeps its observable state behind a mutex, exposes intents the shell
// invokes on user action, and collapses every failure into a single
// human-readable message.
package state

import (
	"errors"

	"github.com/ebazhanova/CoffeeToGo/internal/client/api"
)

// messageFrom collapses an error into the message string surfaced to the
// user. Server-reported and transport errors are shown as-is; a missing
// session gets a fixed prompt instead of being silently skipped.
func messageFrom(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, api.ErrNotAuthenticated) {
		return "please sign in first"
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
