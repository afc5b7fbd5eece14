// Package wealth handles asset and liability tracking commands.
package wealth

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
	"rsoni/hisab/internal/currencyutils"
	"rsoni/hisab/internal/ledger"
	"rsoni/hisab/internal/models"
)

var (
	itemName   string
	itemAmount string
	itemType   string
)

// Cmd represents the wealth command.
var Cmd = &cobra.Command{
	Use:   "wealth",
	Short: "Track assets and liabilities",
	Long:  `Wealth records assets and liabilities and reports net worth.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an asset or liability",
	RunE:  addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List wealth items and net worth",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().StringVarP(&itemName, "name", "n", "", "Item name (required)")
	addCmd.Flags().StringVarP(&itemAmount, "amount", "a", "", "Item amount (required)")
	addCmd.Flags().StringVarP(&itemType, "type", "t", string(models.WealthAsset), "Item type: asset or liability")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
}

func withLedger(cmd *cobra.Command, fn func(*ledger.Ledger) error) error {
	ldg, err := root.OpenLedger()
	if err != nil {
		return err
	}
	defer func() {
		if err := ldg.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close ledger")
		}
	}()
	return fn(ldg)
}

func addFunc(cmd *cobra.Command, args []string) error {
	amount, err := currencyutils.ParseAmount(itemAmount)
	if err != nil {
		return err
	}

	wealthType := models.WealthType(itemType)
	if wealthType != models.WealthAsset && wealthType != models.WealthLiability {
		return fmt.Errorf("unknown wealth type %q (use asset or liability)", itemType)
	}

	return withLedger(cmd, func(ldg *ledger.Ledger) error {
		item := models.WealthItem{
			ID:     uuid.New().String(),
			Name:   itemName,
			Amount: amount.Abs(),
			Type:   wealthType,
		}
		if err := ldg.SaveWealthItem(cmd.Context(), item); err != nil {
			return err
		}
		fmt.Printf("Recorded %s %q at %s\n", item.Type, item.Name, currencyutils.FormatCompact(item.Amount))
		return nil
	})
}

func listFunc(cmd *cobra.Command, args []string) error {
	return withLedger(cmd, func(ldg *ledger.Ledger) error {
		items, err := ldg.ListWealthItems(cmd.Context())
		if err != nil {
			return err
		}

		for _, item := range items {
			fmt.Printf("%-10s %-25s %s\n", item.Type, item.Name, currencyutils.FormatCompact(item.Amount))
		}

		net, err := ldg.NetWorth(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Net worth: %s\n", currencyutils.FormatCompact(net))
		return nil
	})
}
