package cli

import (
	"io"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/pkg/client"
	"github.com/spf13/cobra"
)

func (a *app) projectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List, create and remove projects",
	}

	list := &cobra.Command{
		Use:   "list <vendor-id>",
		Short: "List a vendor's projects with billed, paid and balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vendorID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			result, err := c.VendorProjects(cmd.Context(), vendorID)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(result)
			}
			if err := writeProjects(a.out, result.Projects); err != nil {
				return err
			}
			a.printf("\n")
			writeTotals(a.out, "Vendor totals", result.Totals)
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a project under a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawVendor, _ := cmd.Flags().GetString("vendor")
			vendorID, err := uuid.Parse(rawVendor)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			company, _ := cmd.Flags().GetString("company")
			estimated, _ := cmd.Flags().GetString("estimated")

			c, err := a.client()
			if err != nil {
				return err
			}
			project, err := c.CreateProject(cmd.Context(), request.CreateProjectRequest{
				VendorID:    vendorID,
				ProjectName: name,
				CompanyName: enum.CompanyName(company),
				Estimated:   ledger.ParseAmount(estimated),
			})
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(project)
			}
			a.printf("Created project %s (%s)\n", project.ProjectName, project.ID)
			return nil
		},
	}
	create.Flags().String("vendor", "", "vendor id")
	create.Flags().String("name", "", "project name")
	create.Flags().String("company", string(enum.CompanyAirdeRealEstate), "contracting company")
	create.Flags().String("estimated", "", "estimated amount")
	_ = create.MarkFlagRequired("vendor")

	cmd.AddCommand(list, create, a.deleteCommand(client.ResourceProject))
	return cmd
}

func writeProjects(w io.Writer, projects []entity.ProjectLedger) error {
	t := newTable(w, "ID", "PROJECT", "COMPANY", "BILLED", "PAID", "BALANCE")
	for _, p := range projects {
		t.row(
			p.ID.String(),
			p.ProjectName,
			p.CompanyName.String(),
			ledger.FormatMoney(p.Billed),
			ledger.FormatMoney(p.Paid),
			ledger.FormatMoney(p.Balance),
		)
	}
	return t.flush()
}
