package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// PostgresOrderRepository implements order persistence against a PostgreSQL
// database.
type PostgresOrderRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository using the
// provided *sql.DB.
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// Create inserts the order and its line items within a transaction and
// returns the generated order ID.
func (s *PostgresOrderRepository) Create(ctx context.Context, userID int64, order *models.Order) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (number, user_id, kind, address, note, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, order.Number, userID, order.Kind, order.Address, order.Note, order.Total, order.Status, order.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, coffee_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, id, item.CoffeeID, item.Name, item.Price, item.Quantity)
		if err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// OrdersByUser fetches the user's orders with their items, newest first.
func (s *PostgresOrderRepository) OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, number, kind, address, note, total, status, created_at
		  FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("OrdersByUser: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.Kind, &o.Address, &o.Note, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.itemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// itemsByOrder fetches the line items of one order.
func (s *PostgresOrderRepository) itemsByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT coffee_id, name, price, quantity
		  FROM order_items
		 WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("itemsByOrder: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.CoffeeID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
