// Package testutil holds helpers shared by the package tests: an in-memory
// store, a fast hasher and fixed ids.
package testutil

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fkhayef/giftbox/internal/database"
)

// NewDB opens a private in-memory SQLite store migrated for models.
// The store is closed when the test ends.
func NewDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// Every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db, models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// PlainHasher is a password.Hasher that skips bcrypt's work factor.
type PlainHasher struct{}

func (PlainHasher) Hash(secret string) (string, error) {
	return "plain:" + secret, nil
}

func (PlainHasher) Verify(secret, digest string) bool {
	return strings.TrimPrefix(digest, "plain:") == secret && strings.HasPrefix(digest, "plain:")
}

// MissingID is a well-formed id that no fixture uses.
const MissingID = "000000000000000000000000"
