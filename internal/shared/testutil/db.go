// Package testutil provides an in-memory SQLite database for repository and service tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/database"
)

var dbSeq atomic.Int64

// NewDB opens an isolated in-memory database and migrates the given models.
func NewDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbSeq.Add(1))

	db, err := database.Open(database.Options{Driver: database.DriverSQLite, DSN: dsn})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if len(models) > 0 {
		if err := db.GORM.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate test database: %v", err)
		}
	}
	return db.GORM
}
