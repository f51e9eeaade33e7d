package repository

import (
	"context"
	"testing"
	"time"

	"publicapi/internal/database"
	"publicapi/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserRepo(t *testing.T) *ApiUserRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ApiUser{}))

	return NewApiUserRepository(db)
}

func seedUser(t *testing.T, repo *ApiUserRepository, apiID string) *domain.ApiUser {
	t.Helper()

	u := &domain.ApiUser{
		APIID: apiID,
		Key:   "hashed-key",
		Name:  "test testerson",
		Email: "test@test.com",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestApiUserRepo_CreateAndGetRoundTrip(t *testing.T) {
	repo := setupUserRepo(t)

	u := &domain.ApiUser{
		APIID: "u1",
		Key:   "hashed-key",
		Name:  "A",
		Email: "a@x.com",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := repo.GetByAPIID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.APIID)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Empty(t, got.Phone)
	assert.False(t, got.Disabled)
	assert.Nil(t, got.DisabledAt)
}

func TestApiUserRepo_DuplicateAPIID(t *testing.T) {
	repo := setupUserRepo(t)
	seedUser(t, repo, "dup")

	err := repo.Create(context.Background(), &domain.ApiUser{
		APIID: "dup",
		Key:   "other-key",
		Name:  "other",
		Email: "other@test.com",
	})
	assert.ErrorIs(t, err, ErrDuplicateAPIID)
}

func TestApiUserRepo_UpdateFieldsIsPartial(t *testing.T) {
	repo := setupUserRepo(t)
	seedUser(t, repo, "u1")

	err := repo.UpdateFields(context.Background(), "u1", map[string]any{
		"name": "renamed",
	})
	require.NoError(t, err)

	got, err := repo.GetByAPIID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, "test@test.com", got.Email, "untouched field must survive")
}

func TestApiUserRepo_UpdateFieldsUnknownUser(t *testing.T) {
	repo := setupUserRepo(t)

	err := repo.UpdateFields(context.Background(), "ghost", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApiUserRepo_DisableStampsTimestamp(t *testing.T) {
	repo := setupUserRepo(t)
	seedUser(t, repo, "u1")

	first := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Disable(context.Background(), "u1", first))

	got, err := repo.GetByAPIID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, got.Disabled)
	require.NotNil(t, got.DisabledAt)

	// Disabling again is not an error and moves the stamp forward.
	second := first.Add(time.Hour)
	require.NoError(t, repo.Disable(context.Background(), "u1", second))

	got, err = repo.GetByAPIID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, got.Disabled)
	require.NotNil(t, got.DisabledAt)
	assert.True(t, got.DisabledAt.After(first), "second disable re-stamps disabled_at")
}
