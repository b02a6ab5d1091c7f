package cli

import (
	"strings"

	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/spf13/cobra"
)

const barWidth = 40

func (a *app) analyticsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show headline figures across all vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			stats, err := c.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(stats)
			}
			f := stats.Formatted
			a.printf("Payments:       %s\nTotal paid:     %s\nTotal billed:   %s\nTotal payable:  %s\n",
				f.TotalPaymentCount, f.TotalPayments, f.TotalBilled, f.TotalPayable)
			return nil
		},
	}

	trend := &cobra.Command{
		Use:   "trend",
		Short: "Chart payments per day over the last 30 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			summary, err := c.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(summary)
			}
			if len(summary.Points) == 0 {
				a.printf("No payments in the last 30 days\n")
				return nil
			}
			for _, p := range summary.Points {
				a.printf("%s  %-*s  %s\n", p.Label, barWidth, bar(p.Amount, summary.AxisMax), ledger.FormatMoney(p.Amount))
			}
			a.printf("axis max %s\n", summary.AxisMaxLabel)
			return nil
		},
	}

	cmd.AddCommand(trend)
	return cmd
}

// bar scales v against ceiling into at most barWidth cells.
func bar(v, ceiling ledger.Amount) string {
	if !ceiling.Positive() || !v.Positive() {
		return ""
	}
	n := int(v.Float() / ceiling.Float() * barWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("#", n)
}
