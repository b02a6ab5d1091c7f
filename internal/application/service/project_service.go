package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"go.uber.org/zap"
)

// ProjectService handles project-related operations
type ProjectService struct {
	vendorRepo  repository.VendorRepository
	projectRepo repository.ProjectRepository
	ledgers     ledgerLoader
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	vendorRepo repository.VendorRepository,
	projectRepo repository.ProjectRepository,
	billRepo repository.BillRepository,
	paymentRepo repository.PaymentRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		vendorRepo:  vendorRepo,
		projectRepo: projectRepo,
		ledgers:     ledgerLoader{billRepo: billRepo, paymentRepo: paymentRepo},
		logger:      logger.Named("project"),
	}
}

// CreateProjectInput represents the create project input
type CreateProjectInput struct {
	VendorID    uuid.UUID
	ProjectName string
	CompanyName enum.CompanyName
	Estimated   ledger.Amount
}

// CreateProject validates and stores a project under an existing vendor.
func (s *ProjectService) CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error) {
	project := &entity.Project{
		VendorID:    input.VendorID,
		ProjectName: strings.TrimSpace(input.ProjectName),
		CompanyName: input.CompanyName,
		Estimated:   input.Estimated,
	}

	var v validation
	v.check(project.VendorID != uuid.Nil, "vendorId", "vendor is required")
	v.check(project.ProjectName != "", "projectName", "project name is required")
	v.check(project.CompanyName.IsValid(), "companyName", "select a valid company")
	v.check(project.Estimated.Positive(), "estimated", "estimated amount must be greater than zero")
	if err := v.err(); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("vendor_id", project.VendorID.String()),
		zap.String("company", project.CompanyName.String()),
	)
	return project, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	return project, nil
}

// VendorProjects is a vendor's project list with derived totals.
type VendorProjects struct {
	Projects []entity.ProjectLedger `json:"projects"`
	Totals   ledger.Totals          `json:"totals"`
}

// ListProjects returns the vendor's projects, newest first, each with its
// billed, paid and balance figures.
func (s *ProjectService) ListProjects(ctx context.Context, vendorID uuid.UUID) (*VendorProjects, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	projects, err := s.projectRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	ledgers, totals, err := s.ledgers.projectLedgers(ctx, projects)
	if err != nil {
		return nil, err
	}
	return &VendorProjects{Projects: ledgers, Totals: totals}, nil
}

// DeleteProject removes the project with its bills and payments.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}
