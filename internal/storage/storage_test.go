package storage

import (
	"context"
	"testing"

	"github.com/central-adventures/trips/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGormProvider(t *testing.T) Provider {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewGormProvider(db)
}

func TestProviders(t *testing.T) {
	providers := map[string]func(t *testing.T) Provider{
		"Gorm":   newGormProvider,
		"Memory": func(*testing.T) Provider { return NewMemoryProvider() },
	}

	for name, newProvider := range providers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := newProvider(t)

			t.Run("MissingKey", func(t *testing.T) {
				v, ok, err := p.ForClient("client-a").GetItem(ctx, "userData")
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Empty(t, v)
			})

			t.Run("LastWriteWins", func(t *testing.T) {
				s := p.ForClient("client-a")
				require.NoError(t, s.SetItem(ctx, "isLoggedIn", "true"))
				require.NoError(t, s.SetItem(ctx, "isLoggedIn", "false"))

				v, ok, err := p.ForClient("client-a").GetItem(ctx, "isLoggedIn")
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "false", v)
			})

			t.Run("ClientsAreIsolated", func(t *testing.T) {
				require.NoError(t, p.ForClient("client-b").SetItem(ctx, "userData", `{"email":"b@x.com"}`))

				_, ok, err := p.ForClient("client-c").GetItem(ctx, "userData")
				require.NoError(t, err)
				assert.False(t, ok)

				v, ok, err := p.ForClient("client-b").GetItem(ctx, "userData")
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, `{"email":"b@x.com"}`, v)
			})
		})
	}
}
