package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/pkg/client"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"github.com/spf13/cobra"
)

func (a *app) loginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in and print an access token",
		Example: `  export LEDGER_TOKEN=$(ledgerctl login --email admin@example.com --password secret)`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			c := client.New(a.session(), client.WithLogger(a.logger))
			tokens, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.printJSON(tokens)
			}
			a.printf("%s\n", tokens.AccessToken)
			return nil
		},
	}
	cmd.Flags().String("email", "", "operator email")
	cmd.Flags().String("password", "", "operator password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) tokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with bearer tokens",
	}

	mint := &cobra.Command{
		Use:   "mint",
		Short: "Sign an access token locally with the API's JWT secret",
		Long: `Sign an access token without calling the API. Only useful in development,
where the JWT secret is known. The secret can also come from LEDGER_JWT_SECRET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if secret == "" {
				secret = a.v.GetString("jwt_secret")
			}
			if secret == "" {
				return fmt.Errorf("--secret or LEDGER_JWT_SECRET is required")
			}
			email, _ := cmd.Flags().GetString("email")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			rawID, _ := cmd.Flags().GetString("operator-id")

			if role != entity.RoleAdmin && role != entity.RoleAccountant {
				return fmt.Errorf("role must be %q or %q", entity.RoleAdmin, entity.RoleAccountant)
			}
			operatorID := uuid.New()
			if rawID != "" {
				id, err := uuid.Parse(rawID)
				if err != nil {
					return fmt.Errorf("invalid operator id: %w", err)
				}
				operatorID = id
			}

			token, err := utils.NewJWTManager(secret, ttl, ttl).GenerateAccessToken(operatorID, email, []string{role})
			if err != nil {
				return err
			}
			a.printf("%s\n", token)
			return nil
		},
	}
	mint.Flags().String("secret", "", "JWT secret")
	mint.Flags().String("email", "dev@localhost", "email claim")
	mint.Flags().String("role", entity.RoleAdmin, "admin or accountant")
	mint.Flags().String("operator-id", "", "operator id claim (random when empty)")
	mint.Flags().Duration("ttl", 24*time.Hour, "token lifetime")

	cmd.AddCommand(mint)
	return cmd
}
