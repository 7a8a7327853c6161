package service

import (
	"context"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// FavoritesRepository defines the persistence operations needed by the
// FavoritesService.
type FavoritesRepository interface {
	// Coffees retrieves the user's favorite catalog items.
	Coffees(ctx context.Context, userID int64) ([]models.Coffee, error)
	// Add marks a coffee as favorite.
	Add(ctx context.Context, userID, coffeeID int64) error
	// Remove unmarks a favorite coffee.
	Remove(ctx context.Context, userID, coffeeID int64) error
}

// FavoritesService implements favorites operations.
type FavoritesService struct {
	repo FavoritesRepository
}

// NewFavoritesService constructs a FavoritesService with the provided repository.
func NewFavoritesService(repo FavoritesRepository) *FavoritesService {
	return &FavoritesService{repo: repo}
}

// Coffees returns the user's favorite coffees.
func (s *FavoritesService) Coffees(ctx context.Context, userID int64) ([]models.Coffee, error) {
	return s.repo.Coffees(ctx, userID)
}

// Add marks a coffee as favorite. Adding twice is a no-op.
func (s *FavoritesService) Add(ctx context.Context, userID, coffeeID int64) error {
	return s.repo.Add(ctx, userID, coffeeID)
}

// Remove unmarks a favorite coffee.
func (s *FavoritesService) Remove(ctx context.Context, userID, coffeeID int64) error {
	return s.repo.Remove(ctx, userID, coffeeID)
}
