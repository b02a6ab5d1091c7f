package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
	"go.uber.org/zap"
)

// VendorService handles vendor-related operations
type VendorService struct {
	vendorRepo  repository.VendorRepository
	projectRepo repository.ProjectRepository
	ledgers     ledgerLoader
	logger      *zap.Logger
}

// NewVendorService creates a new vendor service
func NewVendorService(
	vendorRepo repository.VendorRepository,
	projectRepo repository.ProjectRepository,
	billRepo repository.BillRepository,
	paymentRepo repository.PaymentRepository,
	logger *zap.Logger,
) *VendorService {
	return &VendorService{
		vendorRepo:  vendorRepo,
		projectRepo: projectRepo,
		ledgers:     ledgerLoader{billRepo: billRepo, paymentRepo: paymentRepo},
		logger:      logger.Named("vendor"),
	}
}

// CreateVendorInput represents the create vendor input
type CreateVendorInput struct {
	Name    string
	Phone   string
	Address string
	PAN     string
	GSTIN   *string
}

// CreateVendor validates and stores a vendor. PAN and GSTIN are upper-cased;
// a blank GSTIN is stored as null.
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
		PAN:     strings.ToUpper(strings.TrimSpace(input.PAN)),
	}
	if input.GSTIN != nil {
		if gstin := strings.ToUpper(strings.TrimSpace(*input.GSTIN)); gstin != "" {
			vendor.GSTIN = &gstin
		}
	}

	var v validation
	v.check(vendor.Name != "", "name", "name is required")
	v.check(vendor.Phone != "", "phone", "phone is required")
	v.check(vendor.Address != "", "address", "address is required")
	v.check(vendor.PAN != "", "pan", "pan is required")
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("vendor created", zap.String("vendor_id", vendor.ID.String()), zap.String("name", vendor.Name))
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors returns one page of vendors matching search over name, PAN and GSTIN.
func (s *VendorService) ListVendors(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	params.Validate()
	vendors, total, err := s.vendorRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// VendorSummary is a vendor with every project's totals and the vendor-wide
// roll-up.
type VendorSummary struct {
	Vendor    *entity.Vendor         `json:"vendor"`
	Projects  []entity.ProjectLedger `json:"projects"`
	Totals    ledger.Totals          `json:"totals"`
	Formatted ledger.FormattedTotals `json:"formatted"`
}

// GetVendorSummary aggregates all of a vendor's projects.
func (s *VendorService) GetVendorSummary(ctx context.Context, id uuid.UUID) (*VendorSummary, error) {
	vendor, err := s.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	ledgers, totals, err := s.ledgers.projectLedgers(ctx, projects)
	if err != nil {
		return nil, err
	}

	return &VendorSummary{
		Vendor:    vendor,
		Projects:  ledgers,
		Totals:    totals,
		Formatted: totals.Formatted(),
	}, nil
}

// DeleteVendor removes the vendor with its projects, bills and payments.
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetVendor(ctx, id); err != nil {
		return err
	}
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("vendor deleted", zap.String("vendor_id", id.String()))
	return nil
}
