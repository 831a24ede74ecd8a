package database

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addAdmin(t *testing.T, repo *AdminUserRepo) *models.AdminUser {
	t.Helper()
	user := &models.AdminUser{Username: "admin", PasswordHash: "hash"}
	created, err := repo.AddIfAbsent(context.Background(), user)
	require.NoError(t, err)
	require.True(t, created)
	return user
}

func TestAdminUserRepoAddIfAbsentIsIdempotent(t *testing.T) {
	repo := NewAdminUserRepo(setupTestDB(t))
	ctx := context.Background()

	addAdmin(t, repo)
	created, err := repo.AddIfAbsent(ctx, &models.AdminUser{Username: "admin", PasswordHash: "other"})
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	require.NoError(t, repo.db.Model(&models.AdminUser{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	user, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	missing, err := repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdminUserRepoUpdatePassword(t *testing.T) {
	repo := NewAdminUserRepo(setupTestDB(t))
	ctx := context.Background()
	user := addAdmin(t, repo)

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

	found, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)
}

func TestSessionRepoFindValidHonoursExpiry(t *testing.T) {
	db := setupTestDB(t)
	users := NewAdminUserRepo(db)
	sessions := NewSessionRepo(db)
	ctx := context.Background()
	user := addAdmin(t, users)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Add(ctx, &models.AuthSession{
		UserID:    user.ID,
		Token:     "tok-1",
		ExpiresAt: now.Add(24 * time.Hour),
	}))

	found, err := sessions.FindValid(ctx, "tok-1", now)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "admin", found.User.Username)

	found, err = sessions.FindValid(ctx, "tok-1", now.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = sessions.FindValid(ctx, "unknown", now)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepoDeletes(t *testing.T) {
	db := setupTestDB(t)
	users := NewAdminUserRepo(db)
	sessions := NewSessionRepo(db)
	ctx := context.Background()
	user := addAdmin(t, users)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Add(ctx, &models.AuthSession{UserID: user.ID, Token: "expired", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, sessions.Add(ctx, &models.AuthSession{UserID: user.ID, Token: "live", ExpiresAt: now.Add(time.Hour)}))

	removed, err := sessions.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, sessions.DeleteByToken(ctx, "live"))
	require.NoError(t, sessions.DeleteByToken(ctx, "live"))

	var n int64
	require.NoError(t, db.Model(&models.AuthSession{}).Count(&n).Error)
	assert.Zero(t, n)
}
