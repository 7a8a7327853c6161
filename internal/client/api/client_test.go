package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

func TestNew_ValidatesBaseURL(t *testing.T) {
	_, err := New("", nil)
	assert.Error(t, err)

	_, err = New("not a url", nil)
	assert.Error(t, err)

	c, err := New("http://localhost:8080/", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)

		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "tok", UserID: 7, Email: req.Email, Name: "A",
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestLogin_ServerErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false, Message: "invalid email or password", Code: 401,
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "a@b.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)
	assert.Equal(t, "invalid email or password", apiErr.Message)
}

func TestProtectedCalls_RequireToken(t *testing.T) {
	c, err := New("http://localhost:8080", nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.Coffees(ctx, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = c.AddToCart(ctx, "", 1, 1)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.CreateOrder(ctx, "", OrderRequest{Kind: "pickup"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.CoffeeImage(ctx, "latte", "", 0)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCoffees_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Coffee{{ID: 1, Name: "Latte", Type: "milk", Price: 3.5}})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	coffees, err := c.Coffees(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, coffees, 1)
	assert.Equal(t, "Latte", coffees[0].Name)
}

func TestDecodeError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	_, err = c.Coffees(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestCreateOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "delivery", req.Kind)
		assert.Equal(t, "1 Main St", req.Address)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Order{Number: "AB12CD34", Total: 9.5, Status: models.StatusAccepted})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	order, err := c.CreateOrder(context.Background(), "tok", OrderRequest{Kind: "delivery", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", order.Number)
}
