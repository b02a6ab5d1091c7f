package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.Project, error)
	// Delete removes the project together with its bills and payments
	Delete(ctx context.Context, id uuid.UUID) error
}
