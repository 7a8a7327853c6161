package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
	"github.com/ebazhanova/CoffeeToGo/internal/service"
)

type fakeCartService struct {
	ItemsFunc       func(ctx context.Context, userID int64) ([]models.CartItem, error)
	AddFunc         func(ctx context.Context, userID, coffeeID int64, quantity int) error
	SetQuantityFunc func(ctx context.Context, userID, coffeeID int64, quantity int) error
	RemoveFunc      func(ctx context.Context, userID, coffeeID int64) error
}

func (f *fakeCartService) Items(ctx context.Context, userID int64) ([]models.CartItem, error) {
	return f.ItemsFunc(ctx, userID)
}

func (f *fakeCartService) Add(ctx context.Context, userID, coffeeID int64, quantity int) error {
	return f.AddFunc(ctx, userID, coffeeID, quantity)
}

func (f *fakeCartService) SetQuantity(ctx context.Context, userID, coffeeID int64, quantity int) error {
	return f.SetQuantityFunc(ctx, userID, coffeeID, quantity)
}

func (f *fakeCartService) Remove(ctx context.Context, userID, coffeeID int64) error {
	return f.RemoveFunc(ctx, userID, coffeeID)
}

func TestCartList_EmptyCartIsEmptyArray(t *testing.T) {
	h := &CartHandler{CartService: &fakeCartService{
		ItemsFunc: func(ctx context.Context, userID int64) ([]models.CartItem, error) { return nil, nil },
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q; want empty JSON array", body)
	}
}

func TestCartAdd(t *testing.T) {
	var gotCoffeeID int64
	var gotQty int
	h := &CartHandler{CartService: &fakeCartService{
		AddFunc: func(ctx context.Context, userID, coffeeID int64, quantity int) error {
			gotCoffeeID, gotQty = coffeeID, quantity
			return nil
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"coffeeId":2,"quantity":3}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d; want 204", rec.Code)
	}
	if gotCoffeeID != 2 || gotQty != 3 {
		t.Errorf("Add called with (%d, %d); want (2, 3)", gotCoffeeID, gotQty)
	}
}

func TestCartAdd_BadQuantity(t *testing.T) {
	h := &CartHandler{CartService: &fakeCartService{
		AddFunc: func(ctx context.Context, userID, coffeeID int64, quantity int) error {
			return service.ErrBadQuantity
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"coffeeId":2,"quantity":0}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	var envelope models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Message != service.ErrBadQuantity.Error() {
		t.Errorf("message = %q", envelope.Message)
	}
}

func TestCartAdd_InvalidBody(t *testing.T) {
	h := &CartHandler{CartService: &fakeCartService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"quantity":3}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestCartRemove(t *testing.T) {
	var gotCoffeeID int64
	h := &CartHandler{CartService: &fakeCartService{
		RemoveFunc: func(ctx context.Context, userID, coffeeID int64) error {
			gotCoffeeID = coffeeID
			return nil
		},
	}}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("coffeeID", "2")
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/2", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	h.Remove(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d; want 204", rec.Code)
	}
	if gotCoffeeID != 2 {
		t.Errorf("Remove called with coffee %d; want 2", gotCoffeeID)
	}
}

func TestCartRemove_BadID(t *testing.T) {
	h := &CartHandler{CartService: &fakeCartService{}}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("coffeeID", "latte")
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/latte", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	h.Remove(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}
