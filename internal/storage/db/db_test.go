package db

import (
	"context"
	"testing"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/config"
	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/alipala/mytacoai-mobile/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLiteRoundTrip(t *testing.T) {
	db, err := InitDB(config.StorageConfig{
		Driver:     "sqlite3",
		DSN:        "file::memory:?cache=shared",
		SessionKey: "active_challenge_session",
	})
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewRepository(db, "active_challenge_session")
	ctx := context.Background()

	_, ok, err := repo.LoadSession(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)

	started := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	session := models.ChallengeSession{ID: "s1", Active: true, StartedAt: started, CurrentCombo: 1}
	require.NoError(t, repo.SaveSession(ctx, "", session))

	session.CurrentCombo = 2
	require.NoError(t, repo.SaveSession(ctx, "", session))

	got, ok, err := repo.LoadSession(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.CurrentCombo)
	assert.True(t, started.Equal(got.StartedAt))

	require.NoError(t, repo.DeleteSession(ctx, ""))
	_, ok, err = repo.LoadSession(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetChallengeCache(ctx, models.ChallengeCacheEntry{Level: "beginner", CachedAt: started}))

	// Underscore in the cache prefix must not act as a wildcard.
	lookalike := repository.NewRepository(db, "challengeXcache:stray")
	require.NoError(t, lookalike.SaveSession(ctx, "", session))

	levels, err := repo.CachedLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"beginner"}, levels)
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(config.StorageConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}
