package ledger

import (
	"errors"
	"strings"

	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoValidItems rejects a voucher with nothing payable on it.
	ErrNoValidItems = errors.New("add at least one item with a description and an amount greater than zero")
	// ErrChequeDetailsRequired is the message shown when a cheque lacks its bank or number.
	ErrChequeDetailsRequired = errors.New("Bank Name and Cheque Number are required for Cheque payments")
	// ErrChequeNeedsDetails is returned when a cheque is built without its details.
	ErrChequeNeedsDetails  = errors.New("cheque payments must be built with NewChequeDetails")
	ErrPaymentModeRequired = errors.New("select a payment mode")
	ErrUnknownPaymentMode  = errors.New("unknown payment mode")
	ErrNegativeGST         = errors.New("gst percentage cannot be negative")
	ErrGSTTooHigh          = errors.New("gst percentage must be below 1000")
)

// maxGSTPercent is the first rate that no longer fits a decimal(5,2) column.
var maxGSTPercent = decimal.NewFromInt(1000)

// VoucherFields names the request fields a voucher error belongs to, using
// the nested paths of the payment payload.
func VoucherFields(err error) []string {
	switch {
	case errors.Is(err, ErrNoValidItems):
		return []string{"items"}
	case errors.Is(err, ErrChequeDetailsRequired):
		return []string{"paymentSummary.bankName", "paymentSummary.chequeNumber"}
	case errors.Is(err, ErrPaymentModeRequired), errors.Is(err, ErrUnknownPaymentMode), errors.Is(err, ErrChequeNeedsDetails):
		return []string{"paymentSummary.mode"}
	case errors.Is(err, ErrNegativeGST), errors.Is(err, ErrGSTTooHigh):
		return []string{"gst.percentage"}
	}
	return nil
}

// Item is one line on a payment voucher.
type Item struct {
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
}

// IsValid reports whether the item has a non-blank description and a
// positive amount.
func (i Item) IsValid() bool {
	return strings.TrimSpace(i.Description) != "" && i.Amount.Positive()
}

// ValidItems keeps the items that can be paid, preserving order. Amounts are
// rounded to MoneyPlaces first, so a line that rounds to zero is dropped.
func ValidItems(items []Item) []Item {
	valid := make([]Item, 0, len(items))
	for _, it := range items {
		it.Amount = it.Amount.RoundMoney()
		if it.IsValid() {
			valid = append(valid, it)
		}
	}
	return valid
}

// GST is the tax line shown on a voucher. It is informational and never
// added to the payable total.
type GST struct {
	Percentage Amount `json:"percentage"`
	Amount     Amount `json:"amount"`
}

// Voucher is the arithmetic of a payment voucher.
type Voucher struct {
	Items      []Item `json:"items"`
	ItemsTotal Amount `json:"itemsTotal"`
	GST        GST    `json:"gst"`
	GrandTotal Amount `json:"grandTotal"`
}

// ComputeVoucher filters items, sums them and works out the GST line. Every
// figure is held at MoneyPlaces so the stored voucher matches the returned
// one. GrandTotal always equals ItemsTotal.
func ComputeVoucher(items []Item, gstPercent Amount) Voucher {
	valid := ValidItems(items)
	total := Zero
	for _, it := range valid {
		total = total.Add(it.Amount)
	}
	gstPercent = gstPercent.RoundMoney()
	gst := NewAmount(total.Decimal.Mul(gstPercent.Decimal).Div(hundred)).RoundMoney()

	return Voucher{
		Items:      valid,
		ItemsTotal: total,
		GST:        GST{Percentage: gstPercent, Amount: gst},
		GrandTotal: total,
	}
}

// ChequeInfo identifies the instrument of a cheque payment.
type ChequeInfo struct {
	BankName     string
	ChequeNumber string
}

// PaymentDetails is the mode-specific part of a voucher. Only a Cheque
// carries bank and cheque number; every other mode has neither. The zero
// value is not usable; build one with NewChequeDetails or NewPaymentDetails.
type PaymentDetails struct {
	mode   enum.PaymentMode
	cheque *ChequeInfo
}

// NewChequeDetails builds a cheque payment. Both fields are required.
func NewChequeDetails(bankName, chequeNumber string) (PaymentDetails, error) {
	bankName = strings.TrimSpace(bankName)
	chequeNumber = strings.TrimSpace(chequeNumber)
	if bankName == "" || chequeNumber == "" {
		return PaymentDetails{}, ErrChequeDetailsRequired
	}
	return PaymentDetails{
		mode:   enum.PaymentModeCheque,
		cheque: &ChequeInfo{BankName: bankName, ChequeNumber: chequeNumber},
	}, nil
}

// NewPaymentDetails builds any non-cheque payment.
func NewPaymentDetails(mode enum.PaymentMode) (PaymentDetails, error) {
	if mode == enum.PaymentModeCheque {
		return PaymentDetails{}, ErrChequeNeedsDetails
	}
	if !mode.IsValid() {
		return PaymentDetails{}, ErrUnknownPaymentMode
	}
	return PaymentDetails{mode: mode}, nil
}

// DetailsFor picks the variant for mode. Bank and cheque inputs are
// discarded for non-cheque modes, whatever they contain.
func DetailsFor(mode enum.PaymentMode, bankName, chequeNumber string) (PaymentDetails, error) {
	if mode == enum.PaymentModeCheque {
		return NewChequeDetails(bankName, chequeNumber)
	}
	return NewPaymentDetails(mode)
}

func (d PaymentDetails) Mode() enum.PaymentMode {
	return d.mode
}

// Cheque returns the cheque info when the mode is Cheque.
func (d PaymentDetails) Cheque() (ChequeInfo, bool) {
	if d.cheque == nil {
		return ChequeInfo{}, false
	}
	return *d.cheque, true
}

// BankName is nil for every mode except Cheque.
func (d PaymentDetails) BankName() *string {
	if d.cheque == nil {
		return nil
	}
	s := d.cheque.BankName
	return &s
}

// ChequeNumber is nil for every mode except Cheque.
func (d PaymentDetails) ChequeNumber() *string {
	if d.cheque == nil {
		return nil
	}
	s := d.cheque.ChequeNumber
	return &s
}

// Draft is a voucher as entered, before any checks.
type Draft struct {
	Items        []Item
	GSTPercent   Amount
	Mode         enum.PaymentMode
	BankName     string
	ChequeNumber string
}

// PreparedVoucher is a draft that passed every precondition.
type PreparedVoucher struct {
	Voucher
	Details PaymentDetails
}

// PrepareVoucher checks a draft and computes its totals. It rejects drafts
// without valid items, without a mode or with an unknown one, with a GST rate
// outside [0, 1000), and cheques without bank and cheque number.
func PrepareVoucher(d Draft) (PreparedVoucher, error) {
	v := ComputeVoucher(d.Items, d.GSTPercent)
	if len(v.Items) == 0 {
		return PreparedVoucher{}, ErrNoValidItems
	}
	if strings.TrimSpace(string(d.Mode)) == "" {
		return PreparedVoucher{}, ErrPaymentModeRequired
	}
	if !d.Mode.IsValid() {
		return PreparedVoucher{}, ErrUnknownPaymentMode
	}
	if v.GST.Percentage.IsNegative() {
		return PreparedVoucher{}, ErrNegativeGST
	}
	if v.GST.Percentage.GreaterThanOrEqual(maxGSTPercent) {
		return PreparedVoucher{}, ErrGSTTooHigh
	}
	details, err := DetailsFor(d.Mode, d.BankName, d.ChequeNumber)
	if err != nil {
		return PreparedVoucher{}, err
	}
	return PreparedVoucher{Voucher: v, Details: details}, nil
}
