// Package cli implements ledgerctl, a command-line front end for the vendor
// ledger API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/logger"
	"github.com/sangkips/vendor-ledger-api/pkg/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var version = "1.0.0"

const defaultAPIURL = "http://localhost:8080"

// app carries what every subcommand needs. The session is read from flags
// and environment once, here, and handed to the client explicitly.
type app struct {
	v      *viper.Viper
	out    io.Writer
	logger *zap.Logger
}

// NewRootCommand builds the ledgerctl command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, logger: zap.NewNop()}
	a.v.SetEnvPrefix("LEDGER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "ledgerctl - manage vendors, projects, bills and payment vouchers",
		Long: `ledgerctl talks to the vendor ledger API.

Every command except "token mint" needs the API address and a bearer token.
Both can come from flags or from LEDGER_API_URL and LEDGER_TOKEN.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if a.v.GetBool("verbose") {
				level = "debug"
			}
			a.logger = logger.New(logger.Config{Level: level, Format: "console", Output: "stderr"}).Named("ledgerctl")
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String("api", defaultAPIURL, "API base URL (env LEDGER_API_URL)")
	flags.String("token", "", "bearer token (env LEDGER_TOKEN)")
	flags.Bool("json", false, "print raw JSON")
	flags.BoolP("verbose", "V", false, "log API calls to stderr")
	_ = a.v.BindPFlag("api_url", flags.Lookup("api"))
	_ = a.v.BindPFlag("token", flags.Lookup("token"))
	_ = a.v.BindPFlag("json", flags.Lookup("json"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))

	root.AddCommand(
		a.loginCommand(),
		a.tokenCommand(),
		a.vendorsCommand(),
		a.projectsCommand(),
		a.billsCommand(),
		a.paymentsCommand(),
		a.ledgerCommand(),
		a.analyticsCommand(),
		a.voucherCommand(),
	)
	return root
}

// Execute runs ledgerctl and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) session() client.Session {
	return client.Session{
		BaseURL: a.v.GetString("api_url"),
		Token:   a.v.GetString("token"),
	}
}

// client builds the API client for commands that need a signed-in operator.
func (a *app) client() (*client.Client, error) {
	s := a.session()
	if s.Token == "" {
		return nil, fmt.Errorf("no token: run \"ledgerctl login\" or set LEDGER_TOKEN")
	}
	return client.New(s, client.WithLogger(a.logger)), nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("json")
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
