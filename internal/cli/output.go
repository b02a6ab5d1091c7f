package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
)

// table writes aligned rows to w.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
	t.row(header...)
	return t
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

func writeTotals(w io.Writer, label string, totals ledger.Totals) {
	f := totals.Formatted()
	fmt.Fprintf(w, "%s\n  Billed:  %s\n  Paid:    %s\n  Balance: %s\n", label, f.Billed, f.Paid, f.Balance)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
