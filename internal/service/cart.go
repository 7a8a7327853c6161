package service

import (
	"context"
	"errors"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// ErrBadQuantity is returned when a cart mutation carries a non-positive
// quantity where one is required.
var ErrBadQuantity = errors.New("quantity must be at least 1")

// CartRepository defines the persistence operations needed by the
// CartService.
type CartRepository interface {
	// Items retrieves the user's cart lines.
	Items(ctx context.Context, userID int64) ([]models.CartItem, error)
	// Upsert inserts a cart line or replaces its quantity.
	Upsert(ctx context.Context, userID, coffeeID int64, quantity int) error
	// Remove deletes a cart line.
	Remove(ctx context.Context, userID, coffeeID int64) error
	// Clear removes all of the user's cart lines.
	Clear(ctx context.Context, userID int64) error
}

// CartService implements cart operations.
type CartService struct {
	repo CartRepository
}

// NewCartService constructs a CartService with the provided repository.
func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Items returns the user's cart.
func (s *CartService) Items(ctx context.Context, userID int64) ([]models.CartItem, error) {
	return s.repo.Items(ctx, userID)
}

// Add puts a coffee into the cart with the given quantity.
func (s *CartService) Add(ctx context.Context, userID, coffeeID int64, quantity int) error {
	if quantity < 1 {
		return ErrBadQuantity
	}
	return s.repo.Upsert(ctx, userID, coffeeID, quantity)
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, coffeeID int64, quantity int) error {
	if quantity < 1 {
		return s.repo.Remove(ctx, userID, coffeeID)
	}
	return s.repo.Upsert(ctx, userID, coffeeID, quantity)
}

// Remove deletes a cart line.
func (s *CartService) Remove(ctx context.Context, userID, coffeeID int64) error {
	return s.repo.Remove(ctx, userID, coffeeID)
}
