// Package models defines the core data structures shared between the
// coffee API server and the client.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID int64
	// Email is the login email chosen by the user.
	Email string
	// Name is the display name of the user.
	Name string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// CoffeeType is a catalog category such as "espresso" or "latte".
type CoffeeType struct {
	// ID is the unique identifier for the type.
	ID int64 `json:"id"`
	// Name is the human-readable category name.
	Name string `json:"name"`
}

// Coffee is a single catalog item offered for ordering.
type Coffee struct {
	// ID is the unique identifier for the coffee.
	ID int64 `json:"id"`
	// Name is the display name of the drink.
	Name string `json:"name"`
	// Type is the category name the drink belongs to.
	Type string `json:"type"`
	// Price is the unit price.
	Price float64 `json:"price"`
	// Description holds optional marketing text.
	Description string `json:"description,omitempty"`
}

// CartItem is one coffee line in a user's cart.
type CartItem struct {
	// CoffeeID references the catalog item.
	CoffeeID int64 `json:"coffeeId"`
	// Name is the coffee name at the time it was added.
	Name string `json:"name"`
	// Price is the unit price at the time it was added.
	Price float64 `json:"price"`
	// Quantity is the number of units, always >= 1.
	Quantity int `json:"quantity"`
}

// OrderItem is one coffee line within a placed order.
type OrderItem struct {
	// CoffeeID references the catalog item.
	CoffeeID int64 `json:"coffeeId"`
	// Name is the coffee name captured at order time.
	Name string `json:"name"`
	// Price is the unit price captured at order time.
	Price float64 `json:"price"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
}

// Order is a placed order with its delivery details and line items.
type Order struct {
	// ID is the unique identifier for the order.
	ID int64 `json:"id"`
	// Number is the short public order number shown to the user.
	Number string `json:"number"`
	// Kind is either delivery or pickup.
	Kind string `json:"kind"`
	// Address is the delivery address; empty for pickup orders.
	Address string `json:"address,omitempty"`
	// Note is the free-text courier note attached to the address.
	Note string `json:"note,omitempty"`
	// Total is the order total computed from catalog prices.
	Total float64 `json:"total"`
	// Status is the current order status.
	Status string `json:"status"`
	// CreatedAt is when the order was accepted.
	CreatedAt time.Time `json:"createdAt"`
	// Items holds the ordered lines.
	Items []OrderItem `json:"items"`
}

// OrderKind defines the set of valid order kinds.
type OrderKind string

const (
	// Delivery represents an order brought to the user's address.
	Delivery OrderKind = "delivery"
	// Pickup represents an order collected at the counter.
	Pickup OrderKind = "pickup"
)

// Order status values.
const (
	// StatusAccepted means the order has been received.
	StatusAccepted = "accepted"
	// StatusInProgress means the order is being prepared or delivered.
	StatusInProgress = "in_progress"
	// StatusDone means the order has been completed.
	StatusDone = "done"
)

// ErrorResponse is the JSON envelope the server writes on any failure.
type ErrorResponse struct {
	// Success is always false in an error envelope.
	Success bool `json:"success"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Code is the application-level error code.
	Code int `json:"code"`
}

// AuthResponse is the JSON body returned on successful login or registration.
type AuthResponse struct {
	// Token is the bearer token for subsequent requests.
	Token string `json:"token"`
	// UserID is the authenticated user's identifier.
	UserID int64 `json:"userId"`
	// Email is the authenticated user's email.
	Email string `json:"email"`
	// Name is the authenticated user's display name.
	Name string `json:"name"`
}
