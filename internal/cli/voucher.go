package cli

import (
	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/spf13/cobra"
)

func (a *app) voucherCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voucher",
		Short: "Show or print payment vouchers",
	}

	show := &cobra.Command{
		Use:   "show <payment-id>",
		Short: "Show a payment voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			v, err := c.Voucher(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(v)
			}
			return a.writeVoucher(v)
		},
	}

	printCmd := &cobra.Command{
		Use:   "print <payment-id>",
		Short: "Send a payment voucher to the API's printer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			result, err := c.PrintVoucher(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(result)
			}
			if result.Warning != "" {
				a.printf("Voucher %s was not printed: %s\n", result.Voucher.VoucherNo, result.Warning)
				return nil
			}
			a.printf("Printed voucher %s\n", result.Voucher.VoucherNo)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "printer",
		Short: "Show printer status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			s, err := c.PrinterStatus(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(s)
			}
			a.printf("type %s, configured %t, connected %t\n", s.Type, s.Configured, s.Connected)
			return nil
		},
	}

	cmd.AddCommand(show, printCmd, status)
	return cmd
}

func (a *app) writeVoucher(v *entity.PrintableVoucher) error {
	a.printf("%s\n%s\n\nPAYMENT VOUCHER %s   %s\n", v.Company.Name, v.Company.Address, v.VoucherNo, v.Date)
	if v.ProjectName != "" {
		a.printf("Project: %s\n", v.ProjectName)
	}
	a.printf("Paid to: %s  PAN %s\n\n", v.Vendor.Name, v.Vendor.PAN)

	t := newTable(a.out, "DESCRIPTION", "AMOUNT")
	for _, l := range v.Lines {
		t.row(l.Description, l.Amount)
	}
	t.row("Items total", v.ItemsTotal)
	t.row(v.GSTLabel, v.GSTAmount)
	t.row("TOTAL", v.Total)
	if err := t.flush(); err != nil {
		return err
	}

	a.printf("\nMode: %s\n", v.Mode)
	if v.BankName != "" {
		a.printf("Bank: %s  Cheque No: %s\n", v.BankName, v.ChequeNumber)
	}
	return nil
}
