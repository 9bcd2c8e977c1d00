package main

import (
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash to put in ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p models.Password
		if err := p.Set(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.Hash)
		return nil
	},
}
