package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)
	ctx := context.Background()

	op := &entity.Operator{Name: "Admin", Email: "  Admin@Example.com ", Password: "hash", Role: entity.RoleAdmin}
	require.NoError(t, repo.Create(ctx, op))
	assert.Equal(t, "admin@example.com", op.Email)

	t.Run("finds by email ignoring case", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "ADMIN@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, op.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("touches last login", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
		require.NoError(t, repo.TouchLastLogin(ctx, op.ID, at))

		found, err := repo.GetByID(ctx, op.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastLoginAt)
		assert.True(t, at.Equal(*found.LastLoginAt))
	})
}

func TestIdempotencyRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdempotencyRepository(db)
	ctx := context.Background()
	operatorID := uuid.New()

	pending := func(key string, operator uuid.UUID) *entity.IdempotencyKey {
		return &entity.IdempotencyKey{
			Key:         key,
			OperatorID:  operator,
			Endpoint:    "POST /api/v1/vendors/create",
			RequestHash: "h1",
			ExpiresAt:   time.Now().Add(time.Minute),
		}
	}

	reserved, err := repo.Reserve(ctx, pending("abc", operatorID))
	require.NoError(t, err)
	require.True(t, reserved)

	t.Run("second reservation of a held key loses", func(t *testing.T) {
		reserved, err := repo.Reserve(ctx, pending("abc", operatorID))
		require.NoError(t, err)
		assert.False(t, reserved)

		found, err := repo.GetByKey(ctx, "abc", operatorID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.IsPending())
	})

	t.Run("keys are scoped per operator", func(t *testing.T) {
		found, err := repo.GetByKey(ctx, "abc", uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)

		reserved, err := repo.Reserve(ctx, pending("abc", uuid.New()))
		require.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("complete records the response", func(t *testing.T) {
		require.NoError(t, repo.Complete(ctx, &entity.IdempotencyKey{
			Key:          "abc",
			OperatorID:   operatorID,
			RequestHash:  "h1",
			ResponseCode: 201,
			ResponseBody: `{"success":true}`,
			ExpiresAt:    time.Now().Add(time.Hour),
		}))

		found, err := repo.GetByKey(ctx, "abc", operatorID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.IsPending())
		assert.Equal(t, 201, found.ResponseCode)
		assert.Equal(t, `{"success":true}`, found.ResponseBody)
	})

	t.Run("release only drops pending keys", func(t *testing.T) {
		require.NoError(t, repo.Release(ctx, "abc", operatorID))
		found, err := repo.GetByKey(ctx, "abc", operatorID)
		require.NoError(t, err)
		assert.NotNil(t, found)

		reserved, err := repo.Reserve(ctx, pending("retry", operatorID))
		require.NoError(t, err)
		require.True(t, reserved)
		require.NoError(t, repo.Release(ctx, "retry", operatorID))

		reserved, err = repo.Reserve(ctx, pending("retry", operatorID))
		require.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("expired keys are not returned and can be reserved again", func(t *testing.T) {
		stale := pending("old", operatorID)
		stale.ExpiresAt = time.Now().Add(-time.Hour)
		require.NoError(t, db.Create(stale).Error)

		found, err := repo.GetByKey(ctx, "old", operatorID)
		require.NoError(t, err)
		assert.Nil(t, found)

		reserved, err := repo.Reserve(ctx, pending("old", operatorID))
		require.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("removes expired keys", func(t *testing.T) {
		stale := pending("gone", operatorID)
		stale.ExpiresAt = time.Now().Add(-time.Hour)
		require.NoError(t, db.Create(stale).Error)

		var before int64
		require.NoError(t, db.Model(&entity.IdempotencyKey{}).Count(&before).Error)
		require.NoError(t, repo.DeleteExpired(ctx))

		var remaining int64
		require.NoError(t, db.Model(&entity.IdempotencyKey{}).Count(&remaining).Error)
		assert.Equal(t, before-1, remaining)

		kept, err := repo.GetByKey(ctx, "abc", operatorID)
		require.NoError(t, err)
		assert.NotNil(t, kept)
	})
}
