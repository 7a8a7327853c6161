// Package history maintains a small, recency-ordered, deduplicated list of
// past search queries for suggestion display.
package history

import (
	"strings"

	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
)

const (
	// capacity is the hard upper bound on stored entries.
	capacity = 4
	// storageKey is the preference key the joined list is stored under.
	storageKey = "search_history"
	// delimiter joins entries in storage. The ASCII unit separator cannot
	// appear in typed search text.
	delimiter = "\x1f"
)

// Ring is the bounded most-recent-first search history, persisted through
// the injected preference store.
type Ring struct {
	store prefs.Store
}

// New creates a Ring over the given store.
func New(store prefs.Store) *Ring {
	return &Ring{store: store}
}

// Add records a query at the front of the history. Blank queries are
// ignored. A query already present under case-insensitive comparison is
// moved to the front with the new casing kept, never duplicated. The list
// is truncated to capacity after every insert.
func (r *Ring) Add(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	entries := r.Entries()
	kept := make([]string, 0, len(entries)+1)
	kept = append(kept, query)
	for _, e := range entries {
		if strings.EqualFold(e, query) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > capacity {
		kept = kept[:capacity]
	}

	r.store.SetString(storageKey, strings.Join(kept, delimiter))
}

// Entries returns the stored history, most recent first. An empty slice is
// returned when nothing is stored.
func (r *Ring) Entries() []string {
	raw, ok := r.store.GetString(storageKey)
	if !ok || raw == "" {
		return nil
	}
	return strings.Split(raw, delimiter)
}

// Clear removes the stored history entirely.
func (r *Ring) Clear() {
	r.store.Remove(storageKey)
}
