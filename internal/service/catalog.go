package service

import (
	"context"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// CatalogRepository defines the persistence operations needed by the
// CatalogService.
type CatalogRepository interface {
	// Coffees retrieves the full catalog.
	Coffees(ctx context.Context) ([]models.Coffee, error)
	// CoffeeTypes retrieves all categories.
	CoffeeTypes(ctx context.Context) ([]models.CoffeeType, error)
	// CoffeeByName fetches one catalog item by exact name.
	CoffeeByName(ctx context.Context, name string) (*models.Coffee, error)
}

// CatalogService exposes catalog reads to the HTTP layer.
type CatalogService struct {
	repo CatalogRepository
}

// NewCatalogService constructs a CatalogService with the provided repository.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Coffees returns the full catalog.
func (s *CatalogService) Coffees(ctx context.Context) ([]models.Coffee, error) {
	return s.repo.Coffees(ctx)
}

// CoffeeTypes returns all categories.
func (s *CatalogService) CoffeeTypes(ctx context.Context) ([]models.CoffeeType, error) {
	return s.repo.CoffeeTypes(ctx)
}

// CoffeeByName returns one catalog item by exact name.
func (s *CatalogService) CoffeeByName(ctx context.Context, name string) (*models.Coffee, error) {
	return s.repo.CoffeeByName(ctx, name)
}
