package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/pkg/client"
	"github.com/spf13/cobra"
)

func (a *app) billsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bills",
		Aliases: []string{"bill"},
		Short:   "Record and list bills against a project",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := projectFlag(cmd)
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")
			amount, _ := cmd.Flags().GetString("amount")

			c, err := a.client()
			if err != nil {
				return err
			}
			bill, err := c.CreateBill(cmd.Context(), request.CreateBillRequest{
				ProjectID:   projectID,
				Description: description,
				Amount:      ledger.ParseAmount(amount),
			})
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(bill)
			}
			a.printf("Recorded bill %s for %s\n", bill.ID, ledger.FormatMoney(bill.Amount))
			return nil
		},
	}
	add.Flags().String("project", "", "project id")
	add.Flags().String("description", "", "what the bill is for")
	add.Flags().String("amount", "", "bill amount")

	list := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's bills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			bills, err := c.Bills(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(bills)
			}
			t := newTable(a.out, "ID", "DATE", "DESCRIPTION", "AMOUNT")
			for _, b := range bills {
				t.row(b.ID.String(), b.CreatedAt.Format("02 Jan 2006"), b.Description, ledger.FormatMoney(b.Amount))
			}
			return t.flush()
		},
	}

	cmd.AddCommand(add, list, a.deleteCommand(client.ResourceBill))
	return cmd
}

func (a *app) paymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Record and list payment vouchers",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Record a payment voucher",
		Example: `  ledgerctl payments create --project <id> --item "Cement=45000" --item "Transport=2500" \
      --gst 18 --mode Cheque --bank HDFC --cheque 000123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := projectFlag(cmd)
			if err != nil {
				return err
			}
			rawItems, _ := cmd.Flags().GetStringArray("item")
			items, err := parseItems(rawItems)
			if err != nil {
				return err
			}
			gst, _ := cmd.Flags().GetString("gst")
			mode, _ := cmd.Flags().GetString("mode")
			bank, _ := cmd.Flags().GetString("bank")
			cheque, _ := cmd.Flags().GetString("cheque")

			c, err := a.client()
			if err != nil {
				return err
			}
			payment, err := c.CreatePayment(cmd.Context(), request.CreatePaymentRequest{
				ProjectID: projectID,
				Items:     items,
				GST:       request.PaymentGSTRequest{Percentage: ledger.ParseAmount(gst)},
				PaymentSummary: request.PaymentSummaryRequest{
					Mode:         enum.PaymentMode(mode),
					BankName:     bank,
					ChequeNumber: cheque,
				},
			})
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(payment)
			}
			a.printf("Recorded voucher %s for %s\n", payment.VoucherNo, ledger.FormatMoney(payment.Total))
			return nil
		},
	}
	create.Flags().String("project", "", "project id")
	create.Flags().StringArray("item", nil, `voucher line as "description=amount", repeatable`)
	create.Flags().String("gst", "0", "GST percentage shown on the voucher")
	create.Flags().String("mode", string(enum.DefaultPaymentMode), "payment mode")
	create.Flags().String("bank", "", "bank name (cheques only)")
	create.Flags().String("cheque", "", "cheque number (cheques only)")

	list := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			payments, err := c.Payments(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(payments)
			}
			t := newTable(a.out, "ID", "VOUCHER", "DATE", "MODE", "TOTAL")
			for _, p := range payments {
				t.row(p.ID.String(), p.VoucherNo, p.CreatedAt.Format("02 Jan 2006"),
					p.PaymentSummary.Mode.String(), ledger.FormatMoney(p.Total))
			}
			return t.flush()
		},
	}

	cmd.AddCommand(create, list, a.deleteCommand(client.ResourcePayment))
	return cmd
}

func (a *app) ledgerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <project-id>",
		Short: "Show a project's bills, payments and balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			view, err := c.ProjectLedger(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(view)
			}

			if view.Project != nil {
				a.printf("%s  (%s)\n\n", view.Project.ProjectName, view.Project.CompanyName)
			}
			t := newTable(a.out, "DATE", "ENTRY", "BILLED", "PAID")
			for _, b := range view.Bills {
				t.row(b.CreatedAt.Format("02 Jan 2006"), b.Description, ledger.FormatMoney(b.Amount), "")
			}
			for _, p := range view.Payments {
				t.row(p.CreatedAt.Format("02 Jan 2006"), p.VoucherNo+" "+p.PaymentSummary.Mode.String(), "", ledger.FormatMoney(p.Total))
			}
			if err := t.flush(); err != nil {
				return err
			}
			a.printf("\n")
			writeTotals(a.out, "Project totals", view.Totals)
			return nil
		},
	}
}

func projectFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("project")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--project: %w", err)
	}
	return id, nil
}

// parseItems reads "description=amount" pairs. The amount follows the last
// '=' so descriptions may contain one.
func parseItems(raw []string) ([]request.PaymentItemRequest, error) {
	items := make([]request.PaymentItemRequest, 0, len(raw))
	for _, r := range raw {
		i := strings.LastIndex(r, "=")
		if i < 0 {
			return nil, fmt.Errorf("item %q: want description=amount", r)
		}
		items = append(items, request.PaymentItemRequest{
			Description: strings.TrimSpace(r[:i]),
			Amount:      ledger.ParseAmount(r[i+1:]),
		})
	}
	return items, nil
}
