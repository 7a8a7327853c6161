// Package countdown implements the two-state timer driving the order-status
// screens: it ticks once per second from a configured duration down to a
// terminal complete state. The same machine serves the in-delivery and
// pickup-ready screens, selected by a variant tag.
package countdown

import (
	"context"
	"math"
	"sync"
	"time"
)

// Variant selects which order-status screen the machine drives.
type Variant int

const (
	// Delivery is the courier-on-the-way screen. It is the only variant
	// with a persisted start-timestamp side effect, handled by the owner.
	Delivery Variant = iota
	// Pickup is the order-ready-at-the-counter screen.
	Pickup
)

// TracksStartTimestamp reports whether the variant persists an order start
// timestamp while active.
func (v Variant) TracksStartTimestamp() bool {
	return v == Delivery
}

// Snapshot is an immutable view of the machine's state.
type Snapshot struct {
	SecondsRemaining int
	TotalSeconds     int
	Progress         float64
	Done             bool
}

// Machine counts down from a configured duration, one second per tick.
// It performs no I/O; the owning screen drives it and reacts to snapshots.
type Machine struct {
	mu        sync.Mutex
	remaining int
	total     int
	done      bool
}

// New creates a machine for the given duration in minutes. A non-positive
// duration yields an immediately complete machine.
func New(minutes float64) *Machine {
	total := int(math.Round(minutes * 60))
	m := &Machine{remaining: total, total: total}
	if total <= 0 {
		m.done = true
	}
	return m
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// snapshotLocked builds a Snapshot. Callers must hold m.mu.
func (m *Machine) snapshotLocked() Snapshot {
	if m.done {
		return Snapshot{TotalSeconds: m.total, Progress: 1.0, Done: true}
	}
	return Snapshot{
		SecondsRemaining: m.remaining,
		TotalSeconds:     m.total,
		Progress:         1 - float64(m.remaining)/float64(m.total),
		Done:             false,
	}
}

// Tick advances the countdown by one second and returns the new state.
// Once the machine is complete further ticks change nothing.
func (m *Machine) Tick() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return m.snapshotLocked()
	}
	m.remaining--
	if m.remaining <= 0 {
		m.remaining = 0
		m.done = true
	}
	return m.snapshotLocked()
}

// Run drives the machine with a one-second ticker until it completes or ctx
// is cancelled. onTick, if non-nil, receives every snapshot including the
// terminal one.
func (m *Machine) Run(ctx context.Context, onTick func(Snapshot)) {
	if m.Snapshot().Done {
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := m.Tick()
			if onTick != nil {
				onTick(snap)
			}
			if snap.Done {
				return
			}
		}
	}
}
