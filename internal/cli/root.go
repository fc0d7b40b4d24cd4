// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salespipe",
		Short: "salespipe - e-commerce sales reconciliation pipeline",
		Long: `salespipe ingests the domestic sales report, the international sales
report and the product master, harmonizes their schemas, derives a unified
revenue metric and loads the result into the sales fact table.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewRunCmd())

	return rootCmd
}
