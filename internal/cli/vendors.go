package cli

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/pkg/client"
	"github.com/spf13/cobra"
)

func (a *app) vendorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vendors",
		Aliases: []string{"vendor"},
		Short:   "List, create and remove vendors",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			search, _ := cmd.Flags().GetString("search")
			page, _ := cmd.Flags().GetInt("page")
			perPage, _ := cmd.Flags().GetInt("per-page")

			result, err := c.ListVendors(cmd.Context(), search, page, perPage)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(result)
			}

			t := newTable(a.out, "ID", "NAME", "PHONE", "PAN", "GSTIN")
			for _, v := range result.Vendors {
				t.row(v.ID.String(), v.Name, v.Phone, v.PAN, orDash(v.GSTIN))
			}
			if err := t.flush(); err != nil {
				return err
			}
			p := result.Pagination
			a.printf("page %d of %d, %s vendors\n", p.CurrentPage, p.TotalPages, strconv.FormatInt(p.Total, 10))
			return nil
		},
	}
	list.Flags().String("search", "", "match name, PAN or GSTIN")
	list.Flags().Int("page", 1, "page number")
	list.Flags().Int("per-page", 0, "page size")

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			req := request.CreateVendorRequest{}
			req.Name, _ = cmd.Flags().GetString("name")
			req.Phone, _ = cmd.Flags().GetString("phone")
			req.Address, _ = cmd.Flags().GetString("address")
			req.PAN, _ = cmd.Flags().GetString("pan")
			if cmd.Flags().Changed("gstin") {
				gstin, _ := cmd.Flags().GetString("gstin")
				req.GSTIN = &gstin
			}

			vendor, err := c.CreateVendor(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(vendor)
			}
			a.printf("Created vendor %s (%s)\n", vendor.Name, vendor.ID)
			return nil
		},
	}
	create.Flags().String("name", "", "vendor name")
	create.Flags().String("phone", "", "phone number")
	create.Flags().String("address", "", "postal address")
	create.Flags().String("pan", "", "PAN")
	create.Flags().String("gstin", "", "GSTIN (optional)")

	summary := &cobra.Command{
		Use:   "summary <vendor-id>",
		Short: "Show a vendor's projects and totals",
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
			s, err := c.VendorSummary(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(s)
			}

			a.printf("%s  PAN %s  GSTIN %s\n\n", s.Vendor.Name, s.Vendor.PAN, orDash(s.Vendor.GSTIN))
			if err := writeProjects(a.out, s.Projects); err != nil {
				return err
			}
			a.printf("\n")
			writeTotals(a.out, "Vendor totals", s.Totals)
			return nil
		},
	}

	cmd.AddCommand(list, create, summary, a.deleteCommand(client.ResourceVendor))
	return cmd
}

// deleteCommand removes one resource by id.
func (a *app) deleteCommand(resource string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <" + resource + "-id>",
		Short: "Delete a " + resource,
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
			msg, err := c.Delete(cmd.Context(), resource, id)
			if err != nil {
				return err
			}
			a.printf("%s\n", msg)
			return nil
		},
	}
}
