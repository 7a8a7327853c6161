package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// PostgresCatalogRepository implements coffee catalog reads against a
// PostgreSQL database.
type PostgresCatalogRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository using the
// provided *sql.DB.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// Coffees fetches the full catalog with category names resolved.
func (s *PostgresCatalogRepository) Coffees(ctx context.Context) ([]models.Coffee, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT c.id, c.name, COALESCE(t.name, ''), c.price, c.description
		  FROM coffees c
		  LEFT JOIN coffee_types t ON t.id = c.type_id
		 ORDER BY c.id
	`)
	if err != nil {
		return nil, fmt.Errorf("Coffees: %w", err)
	}
	defer rows.Close()

	var coffees []models.Coffee
	for rows.Next() {
		var c models.Coffee
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Price, &c.Description); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		coffees = append(coffees, c)
	}
	return coffees, rows.Err()
}

// CoffeeTypes fetches all catalog categories.
func (s *PostgresCatalogRepository) CoffeeTypes(ctx context.Context) ([]models.CoffeeType, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name FROM coffee_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("CoffeeTypes: %w", err)
	}
	defer rows.Close()

	var types []models.CoffeeType
	for rows.Next() {
		var t models.CoffeeType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// CoffeeByName fetches a single catalog item by its exact name.
// sql.ErrNoRows is returned when the coffee does not exist.
func (s *PostgresCatalogRepository) CoffeeByName(ctx context.Context, name string) (*models.Coffee, error) {
	var c models.Coffee
	err := s.DB.QueryRowContext(ctx, `
		SELECT c.id, c.name, COALESCE(t.name, ''), c.price, c.description
		  FROM coffees c
		  LEFT JOIN coffee_types t ON t.id = c.type_id
		 WHERE c.name = $1
	`, name).Scan(&c.ID, &c.Name, &c.Type, &c.Price, &c.Description)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
