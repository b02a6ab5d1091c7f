package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is a voucher recorded against a project. Vendor and company are
// copied in at creation so the voucher prints the same forever, and Total
// is fixed at creation.
type Payment struct {
	ID             uuid.UUID                           `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID      uuid.UUID                           `gorm:"type:uuid;not null;index" json:"projectId"`
	VoucherNo      string                              `gorm:"size:50;uniqueIndex;not null" json:"voucherNo"`
	Vendor         datatypes.JSONType[VendorSnapshot]  `gorm:"column:vendor_snapshot" json:"vendor"`
	Company        datatypes.JSONType[CompanySnapshot] `gorm:"column:company_snapshot" json:"company"`
	Items          datatypes.JSONSlice[ledger.Item]    `gorm:"column:items" json:"items"`
	ItemsTotal     ledger.Amount                       `gorm:"type:decimal(15,2);not null" json:"itemsTotal"`
	GST            PaymentGST                          `gorm:"embedded;embeddedPrefix:gst_" json:"gst"`
	Total          ledger.Amount                       `gorm:"type:decimal(15,2);not null" json:"total"`
	PaymentSummary PaymentSummary                      `gorm:"embedded" json:"paymentSummary"`
	CreatedAt      time.Time                           `json:"createdAt"`
	DeletedAt      gorm.DeletedAt                      `gorm:"index" json:"-"`
}

// PaymentGST is the informational tax line of a voucher.
type PaymentGST struct {
	Percentage ledger.Amount `gorm:"type:decimal(5,2);not null;default:0" json:"percentage"`
	Amount     ledger.Amount `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
}

// PaymentSummary records how the voucher was settled. BankName and
// ChequeNumber are set only for cheques.
type PaymentSummary struct {
	Mode         enum.PaymentMode `gorm:"column:payment_mode;size:30;not null" json:"mode"`
	BankName     *string          `gorm:"size:255" json:"bankName"`
	ChequeNumber *string          `gorm:"size:100" json:"chequeNumber"`
}

// CompanySnapshot is the paying company as printed on a voucher.
type CompanySnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// PaidAmount implements ledger.Payable.
func (p Payment) PaidAmount() ledger.Amount {
	return p.Total
}

// NewPayment assembles a payment from a checked voucher.
func NewPayment(projectID uuid.UUID, voucherNo string, v ledger.PreparedVoucher, vendor VendorSnapshot, company CompanySnapshot) *Payment {
	return &Payment{
		ProjectID:  projectID,
		VoucherNo:  voucherNo,
		Vendor:     datatypes.NewJSONType(vendor),
		Company:    datatypes.NewJSONType(company),
		Items:      datatypes.JSONSlice[ledger.Item](v.Items),
		ItemsTotal: v.ItemsTotal,
		GST: PaymentGST{
			Percentage: v.GST.Percentage,
			Amount:     v.GST.Amount,
		},
		Total: v.GrandTotal,
		PaymentSummary: PaymentSummary{
			Mode:         v.Details.Mode(),
			BankName:     v.Details.BankName(),
			ChequeNumber: v.Details.ChequeNumber(),
		},
	}
}
