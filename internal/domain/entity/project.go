package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"gorm.io/gorm"
)

// Project is a billable unit of work for one vendor under one company.
// Estimated is a budget figure only and is never enforced.
type Project struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	VendorID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"vendorId"`
	ProjectName string           `gorm:"size:255;not null" json:"projectName"`
	CompanyName enum.CompanyName `gorm:"size:100;not null" json:"companyName"`
	Estimated   ledger.Amount    `gorm:"type:decimal(15,2);not null" json:"estimated"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Vendor   *Vendor   `gorm:"foreignKey:VendorID" json:"-"`
	Bills    []Bill    `gorm:"foreignKey:ProjectID" json:"-"`
	Payments []Payment `gorm:"foreignKey:ProjectID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}

// ProjectLedger is a project with its derived totals.
type ProjectLedger struct {
	Project
	ledger.Totals
}
