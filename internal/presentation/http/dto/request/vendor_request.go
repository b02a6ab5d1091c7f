package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
)

// CreateVendorRequest represents a vendor creation request
type CreateVendorRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Phone   string  `json:"phone" binding:"required,max=50"`
	Address string  `json:"address" binding:"required"`
	PAN     string  `json:"pan" binding:"required,pan"`
	GSTIN   *string `json:"gstin" binding:"omitempty,gstin"`
}

// VendorFilterRequest represents vendor list query parameters
type VendorFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// CreateProjectRequest represents a project creation request
type CreateProjectRequest struct {
	VendorID    uuid.UUID        `json:"vendorId" binding:"required"`
	ProjectName string           `json:"projectName" binding:"required,max=255"`
	CompanyName enum.CompanyName `json:"companyName" binding:"required,company"`
	Estimated   ledger.Amount    `json:"estimated"`
}

// CreateBillRequest represents a bill creation request. Amount is checked
// by the ledger service since it arrives leniently parsed.
type CreateBillRequest struct {
	ProjectID   uuid.UUID     `json:"projectId" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Amount      ledger.Amount `json:"amount"`
}
