package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is a contractor or supplier that projects are raised against.
type Vendor struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Phone     string         `gorm:"size:50;not null" json:"phone"`
	Address   string         `gorm:"type:text;not null" json:"address"`
	PAN       string         `gorm:"size:20;not null;column:pan" json:"pan"`
	GSTIN     *string        `gorm:"size:20;column:gstin" json:"gstin,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Projects []Project `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}

// Snapshot captures the vendor as printed on a voucher.
func (v *Vendor) Snapshot() VendorSnapshot {
	return VendorSnapshot{
		Name:    v.Name,
		GSTIN:   v.GSTIN,
		Address: v.Address,
		PAN:     v.PAN,
		Phone:   v.Phone,
	}
}

// VendorSnapshot is the vendor as it was when a payment was made.
type VendorSnapshot struct {
	Name    string  `json:"name"`
	GSTIN   *string `json:"gstin,omitempty"`
	Address string  `json:"address"`
	PAN     string  `json:"pan"`
	Phone   string  `json:"phone"`
}
