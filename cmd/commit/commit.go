// Package commit handles committing a reviewed CSV into the ledger.
package commit

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
	"rsoni/hisab/internal/common"
	"rsoni/hisab/internal/logging"
)

var inputFile string

// Cmd represents the commit command.
var Cmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit a reviewed CSV to the ledger",
	Long: `Commit reads a review CSV produced by 'hisab parse' (after any manual
edits) and stores the whole batch in the ledger as a single atomic unit.`,
	RunE: commitFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "review.csv", "Review CSV file to commit")
}

func commitFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Commit command called",
		logging.Field{Key: logging.FieldFile, Value: inputFile})

	transactions, err := common.ReadReviewCSV(inputFile)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		fmt.Println("Nothing to commit.")
		return nil
	}

	ldg, err := root.OpenLedger()
	if err != nil {
		return err
	}
	defer func() {
		if err := ldg.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close ledger")
		}
	}()

	if err := ldg.SaveBatch(cmd.Context(), transactions); err != nil {
		return err
	}

	fmt.Printf("Committed %d transactions.\n", len(transactions))
	return nil
}
