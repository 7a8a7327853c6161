package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// PostgresFavoritesRepository implements favorites persistence against a
// PostgreSQL database.
type PostgresFavoritesRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresFavoritesRepository creates a new PostgresFavoritesRepository
// using the provided *sql.DB.
func NewPostgresFavoritesRepository(db *sql.DB) *PostgresFavoritesRepository {
	return &PostgresFavoritesRepository{DB: db}
}

// Coffees fetches the user's favorite catalog items.
func (s *PostgresFavoritesRepository) Coffees(ctx context.Context, userID int64) ([]models.Coffee, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT c.id, c.name, COALESCE(t.name, ''), c.price, c.description
		  FROM favorites f
		  JOIN coffees c ON c.id = f.coffee_id
		  LEFT JOIN coffee_types t ON t.id = c.type_id
		 WHERE f.user_id = $1
		 ORDER BY c.id
	`, userID)
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

// Add marks a coffee as favorite. Adding an existing favorite is a no-op.
func (s *PostgresFavoritesRepository) Add(ctx context.Context, userID, coffeeID int64) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, coffee_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, coffeeID)
	return err
}

// Remove unmarks a favorite coffee.
func (s *PostgresFavoritesRepository) Remove(ctx context.Context, userID, coffeeID int64) error {
	_, err := s.DB.ExecContext(
		ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND coffee_id = $2`,
		userID, coffeeID,
	)
	return err
}
