package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/config"
	"github.com/central-adventures/trips/internal/database"
	"github.com/central-adventures/trips/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		ClientSecret:       "test-secret",
		ProtectedPages:     []string{"destinations.html", "gallery.html", "contacts.html", "edit-profile.html"},
		LoginRedirectDelay: time.Second,
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	// Every new connection to :memory: opens an empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func testStorage(t *testing.T) storage.Provider {
	t.Helper()
	return storage.NewGormProvider(testDB(t))
}

func clientContext(clientID string) context.Context {
	return auth.WithClientID(context.Background(), clientID)
}
