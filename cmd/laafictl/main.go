// Command laafictl runs administrative tasks against the LaafiTech database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"laafitech/internal/infra"
)

const dbTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "laafictl",
		Short:         "LaafiTech administration",
		Long:          `Apply the database schema, publish campaigns and inspect donor matches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(publishCmd())
	cmd.AddCommand(matchCmd())
	return cmd
}

// withRunner opens the pool, hands a marker-enforcing runner to fn and closes
// the pool afterwards.
func withRunner(ctx context.Context, name string, fn func(context.Context, *infra.SQLRunner) error) error {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", name).Logger()
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return fn(ctx, infra.NewSQLRunner(pool, logger))
}
