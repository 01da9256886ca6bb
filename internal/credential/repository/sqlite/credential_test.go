package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-gcal-sync/config"
	dbsqlite "notion-gcal-sync/config/sqlite"
	"notion-gcal-sync/internal/credential/repository"
	"notion-gcal-sync/internal/credential/repository/sqlite"
	"notion-gcal-sync/pkg/log"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := dbsqlite.Connect(ctx, config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "sync.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestGetCredentialNotFound(t *testing.T) {
	repo := newRepo(t)

	rec, err := repo.GetCredential(context.Background(), "service-sync")
	require.NoError(t, err)
	assert.False(t, rec.Exists())
}

func TestUpsertAndUpdate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := created.Add(time.Hour)

	rec, err := repo.UpsertCredential(ctx, repository.UpsertCredentialOptions{
		Identity:      "service-sync",
		AccessToken:   "access-1",
		RefreshToken:  "refresh-1",
		AccessExpiry:  expiry,
		RefreshExpiry: created.Add(7 * 24 * time.Hour),
		Scope:         "https://www.googleapis.com/auth/calendar",
		TokenType:     "Bearer",
		Now:           created,
	})
	require.NoError(t, err)
	assert.True(t, rec.Exists())
	assert.Equal(t, "access-1", rec.AccessToken)
	assert.True(t, rec.AccessExpiry.Equal(expiry))
	assert.True(t, rec.CreatedAt.Equal(created))

	t.Run("refresh keeps refresh token when none supplied", func(t *testing.T) {
		later := created.Add(2 * time.Hour)
		require.NoError(t, repo.UpdateAccessToken(ctx, repository.UpdateAccessTokenOptions{
			Identity:     "service-sync",
			AccessToken:  "access-2",
			AccessExpiry: later.Add(time.Hour),
			UpdatedAt:    later,
		}))

		got, err := repo.GetCredential(ctx, "service-sync")
		require.NoError(t, err)
		assert.Equal(t, "access-2", got.AccessToken)
		assert.Equal(t, "refresh-1", got.RefreshToken)
		assert.True(t, got.UpdatedAt.Equal(later))
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("refresh replaces rotated refresh token", func(t *testing.T) {
		require.NoError(t, repo.UpdateAccessToken(ctx, repository.UpdateAccessTokenOptions{
			Identity:     "service-sync",
			AccessToken:  "access-3",
			RefreshToken: "refresh-2",
			AccessExpiry: created.Add(5 * time.Hour),
			UpdatedAt:    created.Add(4 * time.Hour),
		}))

		got, err := repo.GetCredential(ctx, "service-sync")
		require.NoError(t, err)
		assert.Equal(t, "refresh-2", got.RefreshToken)
	})

	t.Run("re-bootstrap preserves created_at", func(t *testing.T) {
		again, err := repo.UpsertCredential(ctx, repository.UpsertCredentialOptions{
			Identity:     "service-sync",
			AccessToken:  "access-new",
			RefreshToken: "refresh-new",
			AccessExpiry: created.Add(10 * time.Hour),
			TokenType:    "Bearer",
			Now:          created.Add(9 * time.Hour),
		})
		require.NoError(t, err)
		assert.True(t, again.CreatedAt.Equal(created))
		assert.Equal(t, "refresh-new", again.RefreshToken)
	})
}
