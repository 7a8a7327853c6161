package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// PostgresCartRepository implements cart persistence against a PostgreSQL
// database.
type PostgresCartRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCartRepository creates a new PostgresCartRepository using the
// provided *sql.DB.
func NewPostgresCartRepository(db *sql.DB) *PostgresCartRepository {
	return &PostgresCartRepository{DB: db}
}

// Items fetches the user's cart lines with current catalog names and prices.
func (s *PostgresCartRepository) Items(ctx context.Context, userID int64) ([]models.CartItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT ci.coffee_id, c.name, c.price, ci.quantity
		  FROM cart_items ci
		  JOIN coffees c ON c.id = ci.coffee_id
		 WHERE ci.user_id = $1
		 ORDER BY ci.coffee_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("Items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.CoffeeID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Upsert inserts a cart line or replaces its quantity on conflict.
func (s *PostgresCartRepository) Upsert(ctx context.Context, userID, coffeeID int64, quantity int) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, coffee_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, coffee_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`, userID, coffeeID, quantity)
	return err
}

// Remove deletes a cart line.
func (s *PostgresCartRepository) Remove(ctx context.Context, userID, coffeeID int64) error {
	_, err := s.DB.ExecContext(
		ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND coffee_id = $2`,
		userID, coffeeID,
	)
	return err
}

// Clear removes every cart line for the user.
func (s *PostgresCartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
