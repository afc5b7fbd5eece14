// Package remove handles deleting a committed transaction.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
)

var transactionID string

// Cmd represents the remove command.
var Cmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"delete"},
	Short:   "Delete a committed transaction by id",
	Long: `Remove deletes one transaction from the ledger. Find the id with
'hisab list'.`,
	RunE: removeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&transactionID, "id", "i", "", "Transaction id to delete (required)")
	_ = Cmd.MarkFlagRequired("id")
}

func removeFunc(cmd *cobra.Command, args []string) error {
	ldg, err := root.OpenLedger()
	if err != nil {
		return err
	}
	defer func() {
		if err := ldg.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close ledger")
		}
	}()

	if err := ldg.DeleteTransaction(cmd.Context(), transactionID); err != nil {
		return err
	}

	fmt.Printf("Deleted transaction %s.\n", transactionID)
	return nil
}
