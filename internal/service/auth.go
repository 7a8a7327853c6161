// Package service provides business-logic services for the coffee API,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 6

var (
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for unknown or expired bearer tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrWeakPassword is returned when the password is too short.
	ErrWeakPassword = fmt.Errorf("password must be at least %d characters", minPasswordLen)
)

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// EmailExists returns true if a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// CreateUser creates a new user record and returns its ID.
	CreateUser(ctx context.Context, email, name string, passwordHash []byte) (int64, error)
	// UserByEmail fetches a user by email; sql.ErrNoRows when absent.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// SaveToken stores a bearer token with its expiry.
	SaveToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	// UserIDByToken resolves a valid token to a user ID; sql.ErrNoRows when
	// the token is unknown or expired.
	UserIDByToken(ctx context.Context, token string) (int64, error)
}

// AuthService implements registration, login and token validation.
type AuthService struct {
	// repo performs the data-layer operations.
	repo AuthRepository
	// tokenTTL is how long issued tokens stay valid.
	tokenTTL time.Duration
}

// NewAuthService constructs a new AuthService using the provided repository
// and token lifetime.
func NewAuthService(repo AuthRepository, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, tokenTTL: tokenTTL}
}

// Register creates an account, hashes the password with bcrypt and returns
// a freshly issued session. ErrEmailTaken is returned for duplicate emails.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.CreateUser(ctx, email, name, hash)
	if err != nil {
		return nil, err
	}

	return s.issueToken(ctx, userID, email, name)
}

// Login verifies the credentials and returns a freshly issued session.
// ErrInvalidCredentials is returned both for an unknown email and a wrong
// password, so the two cases are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, user.ID, user.Email, user.Name)
}

// Authenticate resolves a bearer token to its user ID. ErrInvalidToken is
// returned for unknown or expired tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	userID, err := s.repo.UserIDByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}
	return userID, nil
}

// issueToken stores a new uuid bearer token and builds the auth response.
func (s *AuthService) issueToken(ctx context.Context, userID int64, email, name string) (*models.AuthResponse, error) {
	token := uuid.NewString()
	if err := s.repo.SaveToken(ctx, token, userID, time.Now().Add(s.tokenTTL)); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	return &models.AuthResponse{Token: token, UserID: userID, Email: email, Name: name}, nil
}
