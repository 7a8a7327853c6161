package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

var (
	// ErrEmptyCart is returned when placing an order with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBadOrderKind is returned for an unknown order kind.
	ErrBadOrderKind = errors.New("order kind must be delivery or pickup")
	// ErrAddressRequired is returned for a delivery order without an address.
	ErrAddressRequired = errors.New("delivery address is required")
)

// OrderRepository defines the persistence operations needed by the
// OrderService.
type OrderRepository interface {
	// Create inserts the order with its items and returns the order ID.
	Create(ctx context.Context, userID int64, order *models.Order) (int64, error)
	// OrdersByUser retrieves the user's orders, newest first.
	OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

// OrderService builds orders from the user's cart.
type OrderService struct {
	orders OrderRepository
	cart   CartRepository
}

// NewOrderService constructs an OrderService over the order and cart
// repositories.
func NewOrderService(orders OrderRepository, cart CartRepository) *OrderService {
	return &OrderService{orders: orders, cart: cart}
}

// Create turns the user's current cart into an order: the total is computed
// from the cart's captured prices, a short public number is generated, and
// the cart is cleared on success.
func (s *OrderService) Create(ctx context.Context, userID int64, kind, address, note string) (*models.Order, error) {
	switch models.OrderKind(kind) {
	case models.Delivery:
		if strings.TrimSpace(address) == "" {
			return nil, ErrAddressRequired
		}
	case models.Pickup:
		address, note = "", ""
	default:
		return nil, ErrBadOrderKind
	}

	items, err := s.cart.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			CoffeeID: item.CoffeeID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order := &models.Order{
		Number:    strings.ToUpper(uuid.NewString()[:8]),
		Kind:      kind,
		Address:   address,
		Note:      note,
		Total:     total,
		Status:    models.StatusAccepted,
		CreatedAt: time.Now().UTC(),
		Items:     orderItems,
	}

	id, err := s.orders.Create(ctx, userID, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.ID = id

	if err := s.cart.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}

// History returns the user's past orders, newest first.
func (s *OrderService) History(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.orders.OrdersByUser(ctx, userID)
}
