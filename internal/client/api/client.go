// Package api implements the REST client for the coffee service: auth,
// catalog, cart, favorites and orders. Server failures carry the structured
// error envelope; calls that need a token fail fast without one.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

const (
	defaultTimeout   = 10 * time.Second
	maxErrorBodySize = 4096
)

// ErrNotAuthenticated is returned when an operation requiring a session is
// attempted without a token.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a server-reported failure parsed from the error envelope.
type APIError struct {
	// Code is the application-level error code.
	Code int
	// Message is the human-readable description from the server.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the coffee REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL. When httpClient is nil a
// default client with a conservative timeout is used.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("api: base URL must be a valid URL")
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// RegisterRequest is the JSON payload for registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CartMutation is the JSON payload for cart add/update operations.
type CartMutation struct {
	CoffeeID int64 `json:"coffeeId"`
	Quantity int   `json:"quantity"`
}

// OrderRequest is the JSON payload for order creation.
type OrderRequest struct {
	Kind    string `json:"kind"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Register creates a new account and returns the issued session.
func (c *Client) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", RegisterRequest{Email: email, Password: password, Name: name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates an existing account and returns the issued session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Coffees fetches the full coffee catalog.
func (c *Client) Coffees(ctx context.Context, token string) ([]models.Coffee, error) {
	var out []models.Coffee
	if err := c.doAuthed(ctx, http.MethodGet, "/api/coffee", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CoffeeTypes fetches the catalog categories.
func (c *Client) CoffeeTypes(ctx context.Context, token string) ([]models.CoffeeType, error) {
	var out []models.CoffeeType
	if err := c.doAuthed(ctx, http.MethodGet, "/api/coffee/types", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CoffeeImage fetches the image bytes for the named coffee, downscaled to
// the given width when width > 0.
func (c *Client) CoffeeImage(ctx context.Context, name, token string, width int) ([]byte, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	q := url.Values{"name": {name}}
	if width > 0 {
		q.Set("width", strconv.Itoa(width))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/coffee/image?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}
	return io.ReadAll(resp.Body)
}

// Cart fetches the user's cart.
func (c *Client) Cart(ctx context.Context, token string) ([]models.CartItem, error) {
	var out []models.CartItem
	if err := c.doAuthed(ctx, http.MethodGet, "/api/cart", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToCart puts a coffee into the cart with the given quantity.
func (c *Client) AddToCart(ctx context.Context, token string, coffeeID int64, quantity int) error {
	return c.doAuthed(ctx, http.MethodPost, "/api/cart", token, CartMutation{CoffeeID: coffeeID, Quantity: quantity}, nil)
}

// SetCartQuantity changes the quantity of a cart line.
func (c *Client) SetCartQuantity(ctx context.Context, token string, coffeeID int64, quantity int) error {
	return c.doAuthed(ctx, http.MethodPut, "/api/cart", token, CartMutation{CoffeeID: coffeeID, Quantity: quantity}, nil)
}

// RemoveFromCart deletes a cart line.
func (c *Client) RemoveFromCart(ctx context.Context, token string, coffeeID int64) error {
	return c.doAuthed(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", coffeeID), token, nil, nil)
}

// Favorites fetches the user's favorite coffees.
func (c *Client) Favorites(ctx context.Context, token string) ([]models.Coffee, error) {
	var out []models.Coffee
	if err := c.doAuthed(ctx, http.MethodGet, "/api/favorites", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavorite marks a coffee as favorite.
func (c *Client) AddFavorite(ctx context.Context, token string, coffeeID int64) error {
	return c.doAuthed(ctx, http.MethodPost, fmt.Sprintf("/api/favorites/%d", coffeeID), token, nil, nil)
}

// RemoveFavorite unmarks a favorite coffee.
func (c *Client) RemoveFavorite(ctx context.Context, token string, coffeeID int64) error {
	return c.doAuthed(ctx, http.MethodDelete, fmt.Sprintf("/api/favorites/%d", coffeeID), token, nil, nil)
}

// CreateOrder places an order from the current cart contents.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (*models.Order, error) {
	var out models.Order
	if err := c.doAuthed(ctx, http.MethodPost, "/api/orders", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders fetches the user's order history, newest first.
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := c.doAuthed(ctx, http.MethodGet, "/api/orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doAuthed is do with a mandatory bearer token.
func (c *Client) doAuthed(ctx context.Context, method, path, token string, body, out any) error {
	if token == "" {
		return ErrNotAuthenticated
	}
	return c.do(ctx, method, path, token, body, out)
}

// do executes a JSON request against the API and decodes the response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, falling back to
// the raw body or status when the envelope cannot be parsed.
func (c *Client) decodeError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return &APIError{Code: resp.StatusCode, Message: resp.Status}
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return &APIError{Code: envelope.Code, Message: envelope.Message}
	}

	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{Code: resp.StatusCode, Message: msg}
}
