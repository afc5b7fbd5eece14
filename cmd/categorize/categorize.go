// Package categorize handles one-off categorization from the CLI.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
)

var description string

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize runs the taxonomy keyword matcher over a single
description and prints the resulting category id.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize (required)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	category := root.NewCategorizer().Categorize(description)
	fmt.Println(category)
	return nil
}
