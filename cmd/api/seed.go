package main

import (
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/seed"
	"github.com/01moynul/autoshop-golang/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Load promos, products and articles from a YAML file",
	Long: `Load starter content from a YAML file. Entries go through the same
validation as API requests, and loading stops at the first invalid entry.

Example:
  autoshop seed testdata/seed.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := seed.LoadFile(args[0])
		if err != nil {
			return err
		}

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		res, err := seed.Run(cmd.Context(), store.New(db, logger), f)
		if err != nil {
			return fmt.Errorf("seed %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d promos, %d products, %d articles\n", res.Promos, res.Products, res.Articles)
		return nil
	},
}
