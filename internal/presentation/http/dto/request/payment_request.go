package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
)

// PaymentItemRequest is one voucher line as entered.
type PaymentItemRequest struct {
	Description string        `json:"description"`
	Amount      ledger.Amount `json:"amount"`
}

// PaymentGSTRequest carries the GST rate. Any amount sent alongside it is
// ignored and recomputed.
type PaymentGSTRequest struct {
	Percentage ledger.Amount `json:"percentage"`
}

// PaymentSummaryRequest is how the voucher is settled. BankName and
// ChequeNumber may be null for modes other than Cheque.
type PaymentSummaryRequest struct {
	Mode         enum.PaymentMode `json:"mode"`
	BankName     string           `json:"bankName"`
	ChequeNumber string           `json:"chequeNumber"`
}

// CreatePaymentRequest represents a payment voucher creation request. It
// mirrors the payment document: gst and paymentSummary are nested, and the
// client-side itemsTotal, gst.amount and total are not trusted.
// Blank lines are dropped by the ledger before anything is stored.
type CreatePaymentRequest struct {
	ProjectID      uuid.UUID             `json:"projectId" binding:"required"`
	Items          []PaymentItemRequest  `json:"items" binding:"required,min=1"`
	GST            PaymentGSTRequest     `json:"gst"`
	PaymentSummary PaymentSummaryRequest `json:"paymentSummary"`
}

// LedgerItems converts the request lines.
func (r *CreatePaymentRequest) LedgerItems() []ledger.Item {
	items := make([]ledger.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = ledger.Item{Description: it.Description, Amount: it.Amount}
	}
	return items
}

// Draft is the voucher as entered, ready for ledger.PrepareVoucher.
func (r *CreatePaymentRequest) Draft() ledger.Draft {
	return ledger.Draft{
		Items:        r.LedgerItems(),
		GSTPercent:   r.GST.Percentage,
		Mode:         r.PaymentSummary.Mode,
		BankName:     r.PaymentSummary.BankName,
		ChequeNumber: r.PaymentSummary.ChequeNumber,
	}
}
