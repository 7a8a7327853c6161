package state

import (
	"context"
	"sync"
	"time"

	"github.com/ebazhanova/CoffeeToGo/internal/client/countdown"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
)

// Tracking owns an order-status screen: it drives the countdown machine for
// either the delivery or pickup variant and handles the delivery variant's
// persisted start-timestamp side effect.
type Tracking struct {
	mu      sync.Mutex
	prefs   *prefs.Preferences
	variant countdown.Variant
	machine *countdown.Machine
	cancel  context.CancelFunc
	snap    countdown.Snapshot
}

// NewTracking creates the screen state for the given variant and configured
// duration in minutes.
func NewTracking(p *prefs.Preferences, variant countdown.Variant, minutes float64) *Tracking {
	m := countdown.New(minutes)
	return &Tracking{prefs: p, variant: variant, machine: m, snap: m.Snapshot()}
}

// Start begins ticking. For the delivery variant the order start timestamp
// is recorded. Calling Start on an already running screen is a no-op.
func (t *Tracking) Start(ctx context.Context) {
	t.mu.Lock()
	if t.cancel != nil {
		t.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.mu.Unlock()

	if t.variant.TracksStartTimestamp() {
		t.prefs.SetOrderStartedAt(time.Now().Unix())
	}

	go t.machine.Run(runCtx, func(s countdown.Snapshot) {
		t.mu.Lock()
		t.snap = s
		t.mu.Unlock()
	})
}

// Leave stops ticking and discards the screen. The delivery variant clears
// the persisted order start timestamp. Safe to call more than once.
func (t *Tracking) Leave() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if t.variant.TracksStartTimestamp() {
		t.prefs.ClearOrderStartedAt()
	}
}

// Snapshot returns the latest countdown state.
func (t *Tracking) Snapshot() countdown.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// Variant returns which order-status screen this tracker drives.
func (t *Tracking) Variant() countdown.Variant {
	return t.variant
}
