package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
)

func TestStartTokenCleaner_DeletesExpired(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock failed: %v", err)
	}
	defer database.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tokens WHERE expires_at < now()`)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartTokenCleaner(ctx, database, 10*time.Millisecond, zap.NewNop())

	deadline := time.Now().Add(2 * time.Second)
	for mock.ExpectationsWereMet() != nil {
		if time.Now().After(deadline) {
			t.Fatalf("cleaner never ran the delete: %v", mock.ExpectationsWereMet())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStartTokenCleaner_StopsOnCancel(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock failed: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	StartTokenCleaner(ctx, database, time.Hour, zap.NewNop())
	time.Sleep(20 * time.Millisecond)

	// no queries ran against the mock
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}
