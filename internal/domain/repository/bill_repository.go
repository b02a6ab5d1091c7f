package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]entity.Bill, error)
	ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
