package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebazhanova/CoffeeToGo/internal/client/countdown"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
)

func TestTracking_DeliveryRecordsStartTimestamp(t *testing.T) {
	p := prefs.New(prefs.NewMemStore())
	tr := NewTracking(p, countdown.Delivery, 30)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tr.Start(ctx)

	ts, ok := p.OrderStartedAt()
	require.True(t, ok)
	assert.Greater(t, ts, int64(0))

	tr.Leave()
	_, ok = p.OrderStartedAt()
	assert.False(t, ok)
}

func TestTracking_PickupLeavesTimestampAlone(t *testing.T) {
	p := prefs.New(prefs.NewMemStore())
	p.SetOrderStartedAt(1700000000)
	tr := NewTracking(p, countdown.Pickup, 5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tr.Start(ctx)
	tr.Leave()

	ts, ok := p.OrderStartedAt()
	require.True(t, ok)
	assert.Equal(t, int64(1700000000), ts)
}

func TestTracking_LeaveIsSafeTwice(t *testing.T) {
	p := prefs.New(prefs.NewMemStore())
	tr := NewTracking(p, countdown.Delivery, 30)

	tr.Start(context.Background())
	tr.Leave()
	tr.Leave()

	_, ok := p.OrderStartedAt()
	assert.False(t, ok)
}

func TestTracking_SnapshotReflectsConfiguredDuration(t *testing.T) {
	tr := NewTracking(prefs.New(prefs.NewMemStore()), countdown.Pickup, 5)

	snap := tr.Snapshot()
	assert.Equal(t, 300, snap.TotalSeconds)
	assert.Equal(t, 300, snap.SecondsRemaining)
	assert.False(t, snap.Done)
	assert.Equal(t, countdown.Pickup, tr.Variant())
}
