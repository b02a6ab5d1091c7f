package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
)

// IdempotencyRepository stores replayable responses for create requests.
// A key is reserved before the request runs and completed or released after.
type IdempotencyRepository interface {
	// GetByKey retrieves an unexpired key by its key string and operator
	GetByKey(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error)
	// Reserve stores a pending key. It reports false when the operator
	// already holds an unexpired key with the same name.
	Reserve(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error)
	// Complete records the response for a reserved key
	Complete(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Release drops a pending key so the request can be retried
	Release(ctx context.Context, key string, operatorID uuid.UUID) error
	// DeleteExpired removes expired idempotency keys (for cleanup)
	DeleteExpired(ctx context.Context) error
}
