// Package list handles browsing the committed transaction history.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
	"rsoni/hisab/internal/currencyutils"
	"rsoni/hisab/internal/ledger"
)

var (
	searchTerm string
	typeFilter string
	category   string
)

// Cmd represents the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List committed transactions",
	Long: `List prints the committed transaction history, newest first.
Results can be narrowed by description search, direction or category.
Use the printed id with 'hisab remove' to delete an entry.`,
	RunE: listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Only show descriptions containing this text")
	Cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "Only show this direction: income or expense")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only show this category")
}

func listFunc(cmd *cobra.Command, args []string) error {
	if typeFilter != "" && typeFilter != "income" && typeFilter != "expense" {
		return fmt.Errorf("unknown type %q (use income or expense)", typeFilter)
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

	transactions, err := ldg.ListTransactions(cmd.Context())
	if err != nil {
		return err
	}

	filter := ledger.Filter{Search: searchTerm, Type: typeFilter, Category: category}
	transactions = filter.Apply(transactions)

	if len(transactions) == 0 {
		fmt.Println("No matching transactions.")
		return nil
	}

	for _, t := range transactions {
		fmt.Printf("%s  %-7s  %-13s  %12s  %s  [%s]\n",
			t.Date.Format("2006-01-02"),
			t.Type,
			t.Category,
			currencyutils.FormatCompact(t.Amount),
			t.Description,
			t.ID)
	}
	fmt.Printf("%d transaction(s)\n", len(transactions))
	return nil
}
