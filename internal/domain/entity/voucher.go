package entity

// VoucherLine is one printed line of a payment voucher.
type VoucherLine struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// PrintableVoucher is a payment rendered for display or thermal printing.
// It is a value object composed from a Payment at print time and is never
// stored.
type PrintableVoucher struct {
	VoucherNo    string          `json:"voucherNo"`
	Date         string          `json:"date"`
	ProjectName  string          `json:"projectName,omitempty"`
	Company      CompanySnapshot `json:"company"`
	Vendor       VendorSnapshot  `json:"vendor"`
	Lines        []VoucherLine   `json:"lines"`
	ItemsTotal   string          `json:"itemsTotal"`
	GSTLabel     string          `json:"gstLabel"`
	GSTAmount    string          `json:"gstAmount"`
	Total        string          `json:"total"`
	Mode         string          `json:"mode"`
	BankName     string          `json:"bankName,omitempty"`
	ChequeNumber string          `json:"chequeNumber,omitempty"`
}
