// Package tax handles the fiscal-year tax summary command.
package tax

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/report"
	"rsoni/hisab/internal/taxcalc"
)

// Cmd represents the tax command.
var Cmd = &cobra.Command{
	Use:   "tax",
	Short: "Estimate tax liability for the current fiscal year",
	Long: `Tax folds the committed transaction history and the configured
deduction profile (tax.annual_epf, tax.health_insurance) into a capped
estimate of taxable income for the running April-March fiscal year.`,
	RunE: taxFunc,
}

func taxFunc(cmd *cobra.Command, args []string) error {
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

	summary := taxcalc.Calculate(transactions, root.Cfg.TaxProfile(), time.Now())

	root.Log.Debug("Tax summary computed",
		logging.Field{Key: logging.FieldFiscalYear, Value: summary.FiscalYear},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	fmt.Print(report.RenderTaxSummary(summary))
	return nil
}
