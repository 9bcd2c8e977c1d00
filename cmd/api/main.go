package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/01moynul/autoshop-golang/internal/config"
	"github.com/01moynul/autoshop-golang/internal/database"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "autoshop",
	Short: "Autoshop API - promos, parts, articles and service bookings",
	Long: `Autoshop API serves the workshop website: promos, the parts catalogue,
articles with moderated comments, the contact form and service bookings.

Configuration is read from the environment (a .env file is loaded if present).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = config.NewLogger(os.Stdout, cfg.LogLevel)
	},
	// With no subcommand the binary behaves like "serve".
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, hashPasswordCmd)
}

// openDB connects to the primary database named by DB_DSN_PRIMARY.
func openDB(ctx context.Context) (*sql.DB, error) {
	db, err := database.OpenDB(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("connect to primary database: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
