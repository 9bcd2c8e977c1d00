package main

import (
	"github.com/01moynul/autoshop-golang/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("migration complete")
		return nil
	},
}
