package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment voucher data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]entity.Payment, error)
	ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]entity.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
