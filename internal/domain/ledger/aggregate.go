package ledger

// Billable is anything that contributes to the billed side of a ledger.
type Billable interface {
	BilledAmount() Amount
}

// Payable is anything that contributes to the paid side of a ledger.
type Payable interface {
	PaidAmount() Amount
}

// Totals is the billed/paid/balance triple for a project or a vendor.
// Balance is always Billed - Paid and goes negative on overpayment.
type Totals struct {
	Billed  Amount `json:"billed"`
	Paid    Amount `json:"paid"`
	Balance Amount `json:"balance"`
}

// NewTotals derives the balance from billed and paid.
func NewTotals(billed, paid Amount) Totals {
	return Totals{
		Billed:  billed,
		Paid:    paid,
		Balance: billed.Sub(paid),
	}
}

// Aggregate sums bill amounts and payment totals for a single scope. The
// caller decides the scope; no filtering or ordering is applied.
func Aggregate[B Billable, P Payable](bills []B, payments []P) Totals {
	billed := Zero
	for _, b := range bills {
		billed = billed.Add(b.BilledAmount())
	}
	paid := Zero
	for _, p := range payments {
		paid = paid.Add(p.PaidAmount())
	}
	return NewTotals(billed, paid)
}

// AggregateProjects rolls already-aggregated project totals up to vendor
// scope. It never looks at raw bills or payments.
func AggregateProjects(projects []Totals) Totals {
	billed, paid := Zero, Zero
	for _, t := range projects {
		billed = billed.Add(t.Billed)
		paid = paid.Add(t.Paid)
	}
	return NewTotals(billed, paid)
}

// Formatted renders each figure with FormatMoney.
func (t Totals) Formatted() FormattedTotals {
	return FormattedTotals{
		Billed:  FormatMoney(t.Billed),
		Paid:    FormatMoney(t.Paid),
		Balance: FormatMoney(t.Balance),
	}
}

// FormattedTotals is Totals rendered for display.
type FormattedTotals struct {
	Billed  string `json:"billed"`
	Paid    string `json:"paid"`
	Balance string `json:"balance"`
}
