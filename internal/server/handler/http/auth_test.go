package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
	"github.com/ebazhanova/CoffeeToGo/internal/service"
)

type fakeAuthService struct {
	RegisterFunc func(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	return f.RegisterFunc(ctx, email, password, name)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return f.LoginFunc(ctx, email, password)
}

func TestAuthRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		register   func(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email":"a@b.com","password":"secret1","name":"A"}`,
			register: func(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
				return &models.AuthResponse{Token: "tok", UserID: 1, Email: email, Name: name}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"email":"a@b.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: `{"email":"a@b.com","password":"secret1","name":"A"}`,
			register: func(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
				return nil, service.ErrEmailTaken
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "weak password",
			body: `{"email":"a@b.com","password":"short","name":"A"}`,
			register: func(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
				return nil, service.ErrWeakPassword
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{AuthService: &fakeAuthService{RegisterFunc: tt.register}}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var resp models.AuthResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Token == "" {
					t.Error("expected a token in the response")
				}
			} else {
				var envelope models.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
					t.Fatalf("decode envelope: %v", err)
				}
				if envelope.Success || envelope.Code != tt.wantStatus {
					t.Errorf("unexpected envelope: %+v", envelope)
				}
			}
		})
	}
}

func TestAuthLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		login      func(ctx context.Context, email, password string) (*models.AuthResponse, error)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email":"a@b.com","password":"secret1"}`,
			login: func(ctx context.Context, email, password string) (*models.AuthResponse, error) {
				return &models.AuthResponse{Token: "tok", UserID: 1, Email: email}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing password",
			body:       `{"email":"a@b.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			body: `{"email":"a@b.com","password":"wrong"}`,
			login: func(ctx context.Context, email, password string) (*models.AuthResponse, error) {
				return nil, service.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{AuthService: &fakeAuthService{LoginFunc: tt.login}}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
