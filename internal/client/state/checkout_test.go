package state

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebazhanova/CoffeeToGo/internal/client/geocode"
	"github.com/ebazhanova/CoffeeToGo/internal/client/prefs"
	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

func newPrefsWithSession() *prefs.Preferences {
	p := prefs.New(prefs.NewMemStore())
	p.SaveSession("tok", 1, "a@b.com", "A")
	return p
}

func TestCheckout_PlaceOrderPersistsAddressAndNote(t *testing.T) {
	c := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Order{Number: "AB12CD34", Status: models.StatusAccepted})
	})
	p := newPrefsWithSession()
	co := NewCheckout(c, p, geocode.New("", nil))

	co.SetAddress("12 Coffee Lane")
	co.SetNote("ring twice")
	co.PlaceOrder(context.Background(), models.Delivery)

	snap := co.Snapshot()
	require.NotNil(t, snap.Placed)
	assert.Equal(t, "AB12CD34", snap.Placed.Number)

	addr, ok := p.SavedAddress()
	require.True(t, ok)
	assert.Equal(t, "12 Coffee Lane", addr)
	note, ok := p.AddressNote("12 Coffee Lane")
	require.True(t, ok)
	assert.Equal(t, "ring twice", note)
}

func TestCheckout_DeliveryRequiresAddress(t *testing.T) {
	c := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	co := NewCheckout(c, newPrefsWithSession(), geocode.New("", nil))

	co.PlaceOrder(context.Background(), models.Delivery)

	snap := co.Snapshot()
	assert.Equal(t, "delivery address is required", snap.Message)
	assert.Nil(t, snap.Placed)
}

func TestCheckout_PickupIgnoresAddress(t *testing.T) {
	var gotKind string
	c := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Kind    string `json:"kind"`
			Address string `json:"address"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotKind = req.Kind
		assert.Empty(t, req.Address)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Order{Number: "N1"})
	})
	co := NewCheckout(c, newPrefsWithSession(), geocode.New("", nil))

	co.SetAddress("12 Coffee Lane")
	co.PlaceOrder(context.Background(), models.Pickup)

	assert.Equal(t, "pickup", gotKind)
	require.NotNil(t, co.Snapshot().Placed)
}

func TestCheckout_DoubleSubmitSendsOneRequest(t *testing.T) {
	var requests atomic.Int64
	entered := make(chan struct{})
	release := make(chan struct{})
	c := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(entered)
			<-release
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Order{Number: "N1"})
	})
	co := NewCheckout(c, newPrefsWithSession(), geocode.New("", nil))
	co.SetAddress("12 Coffee Lane")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		co.PlaceOrder(context.Background(), models.Delivery)
	}()

	// second tap lands while the first request is still in flight
	<-entered
	co.PlaceOrder(context.Background(), models.Delivery)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), requests.Load())
	require.NotNil(t, co.Snapshot().Placed)
}

func TestCheckout_PrefillsSavedAddressAndNote(t *testing.T) {
	p := newPrefsWithSession()
	p.SaveAddress("12 Coffee Lane")
	p.SaveAddressNote("12 Coffee Lane", "ring twice")

	c := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {})
	co := NewCheckout(c, p, geocode.New("", nil))

	snap := co.Snapshot()
	assert.Equal(t, "12 Coffee Lane", snap.Address)
	assert.Equal(t, "ring twice", snap.Note)
}

func TestCheckout_SetAddressSwapsNote(t *testing.T) {
	p := newPrefsWithSession()
	p.SaveAddressNote("12 Coffee Lane", "ring twice")

	c := newAPIClient(t, func(w http.ResponseWriter, r *http.Request) {})
	co := NewCheckout(c, p, geocode.New("", nil))

	co.SetAddress("12 Coffee Lane")
	assert.Equal(t, "ring twice", co.Snapshot().Note)

	// an address with no saved note clears the field
	co.SetAddress("99 Other St")
	assert.Empty(t, co.Snapshot().Note)
}
