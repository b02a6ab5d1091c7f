package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
)

// OperatorRepository defines the interface for back-office user operations
type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
	GetByEmail(ctx context.Context, email string) (*entity.Operator, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
