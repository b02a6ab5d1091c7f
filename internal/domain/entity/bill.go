package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"gorm.io/gorm"
)

// Bill is a charge raised by a vendor against a project. Bills are never
// edited, only deleted.
type Bill struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"projectId"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Amount      ledger.Amount  `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BilledAmount implements ledger.Billable.
func (b Bill) BilledAmount() ledger.Amount {
	return b.Amount
}
