package service

import (
	"context"
	"errors"
	"testing"
)

func TestCartAdd_RejectsBadQuantity(t *testing.T) {
	s := NewCartService(&mockCartRepo{})
	if err := s.Add(context.Background(), 1, 2, 0); !errors.Is(err, ErrBadQuantity) {
		t.Errorf("expected ErrBadQuantity, got %v", err)
	}
}

func TestCartSetQuantity_ZeroRemovesLine(t *testing.T) {
	removed := false
	repo := &mockCartRepo{
		RemoveFunc: func(ctx context.Context, userID, coffeeID int64) error {
			removed = true
			return nil
		},
	}
	s := NewCartService(repo)

	if err := s.SetQuantity(context.Background(), 1, 2, 0); err != nil {
		t.Fatalf("SetQuantity failed: %v", err)
	}
	if !removed {
		t.Error("expected zero quantity to remove the line")
	}
}

func TestCartSetQuantity_PositiveUpserts(t *testing.T) {
	var gotQty int
	repo := &mockCartRepo{
		UpsertFunc: func(ctx context.Context, userID, coffeeID int64, quantity int) error {
			gotQty = quantity
			return nil
		},
	}
	s := NewCartService(repo)

	if err := s.SetQuantity(context.Background(), 1, 2, 3); err != nil {
		t.Fatalf("SetQuantity failed: %v", err)
	}
	if gotQty != 3 {
		t.Errorf("upserted quantity = %d; want 3", gotQty)
	}
}
