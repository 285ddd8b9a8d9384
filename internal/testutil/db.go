// Package testutil opens throwaway SQLite stores for package tests.
package testutil

import (
	"io"
	"path/filepath"
	"testing"

	"catalog_service/internal/repository"
	"catalog_service/pkg/db"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewLogger returns a logger that discards output.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// NewDB opens a migrated SQLite database in the test's temp dir with foreign
// keys enforced.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	gormDB, err := db.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), NewLogger())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := repository.Migrate(gormDB); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(gormDB)
	})
	return gormDB
}
