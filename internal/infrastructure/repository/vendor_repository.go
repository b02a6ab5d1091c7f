package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vendor, err
}

func (r *vendorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	var vendors []entity.Vendor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Vendor{}).
		Scopes(SearchScope(search, "name", "pan", "gstin"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&vendors).Error

	return vendors, total, err
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var projectIDs []uuid.UUID
		if err := tx.Model(&entity.Project{}).Where("vendor_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}
		if err := deleteProjectChildren(tx, projectIDs); err != nil {
			return err
		}
		if err := tx.Where("vendor_id = ?", id).Delete(&entity.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Vendor{}, "id = ?", id).Error
	})
}

// deleteProjectChildren removes the bills and payments of the given projects.
func deleteProjectChildren(tx *gorm.DB, projectIDs []uuid.UUID) error {
	if len(projectIDs) == 0 {
		return nil
	}
	if err := tx.Where("project_id IN ?", projectIDs).Delete(&entity.Bill{}).Error; err != nil {
		return err
	}
	return tx.Where("project_id IN ?", projectIDs).Delete(&entity.Payment{}).Error
}
