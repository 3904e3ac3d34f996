package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/fkhayef/giftbox/internal/database"
	"github.com/fkhayef/giftbox/internal/testutil"
)

type widget struct {
	ID   uint
	Name string
}

func TestRunInTxRollsBack(t *testing.T) {
	db := testutil.NewDB(t, &widget{})
	tx := database.NewTxManager(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := database.Conn(ctx, db).Create(&widget{Name: "first"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTx() error = %v, want boom", err)
	}

	var count int64
	db.Model(&widget{}).Count(&count)
	if count != 0 {
		t.Errorf("rows after rollback = %d, want 0", count)
	}
}

func TestRunInTxCommits(t *testing.T) {
	db := testutil.NewDB(t, &widget{})
	tx := database.NewTxManager(db)

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		return database.Conn(ctx, db).Create(&widget{Name: "kept"}).Error
	})
	if err != nil {
		t.Fatalf("RunInTx() error: %v", err)
	}

	var count int64
	db.Model(&widget{}).Count(&count)
	if count != 1 {
		t.Errorf("rows after commit = %d, want 1", count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres duplicate key", &pq.Error{Code: "23505"}, true},
		{"wrapped duplicate key", fmt.Errorf("failed to create group: %w", &pq.Error{Code: "23505"}), true},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"other postgres error", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("other"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := database.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
