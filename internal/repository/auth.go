// Package repository provides PostgreSQL persistence implementations for the
// coffee API services.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// PostgresAuthRepository implements user and token persistence using a
// PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// EmailExists checks whether a user with the specified email exists in the database.
// It returns true if the user exists, false otherwise.
// If an error occurs during the query, it is returned.
func (s *PostgresAuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user and returns its generated ID.
func (s *PostgresAuthRepository) CreateUser(ctx context.Context, email, name string, passwordHash []byte) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(
		ctx,
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		email, name, passwordHash,
	).Scan(&id)
	return id, err
}

// UserByEmail fetches a user record by email. sql.ErrNoRows is returned when
// no such user exists.
func (s *PostgresAuthRepository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT id, email, name, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveToken stores a bearer token for the user with its expiry.
func (s *PostgresAuthRepository) SaveToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt,
	)
	return err
}

// UserIDByToken resolves a still-valid bearer token to its user ID.
// sql.ErrNoRows is returned for unknown or expired tokens.
func (s *PostgresAuthRepository) UserIDByToken(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT user_id FROM tokens WHERE token = $1 AND expires_at > now()`,
		token,
	).Scan(&userID)
	return userID, err
}
