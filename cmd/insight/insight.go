// Package insight handles the AI spending insight command.
package insight

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
	"rsoni/hisab/internal/currencyutils"
	"rsoni/hisab/internal/insight"
)

// Cmd represents the insight command.
var Cmd = &cobra.Command{
	Use:   "insight",
	Short: "Generate an AI spending insight from committed totals",
	Long: `Insight summarizes income and expenses over the committed history
and asks the Gemini model for three short observations. Requires
GEMINI_API_KEY in the environment or .env file.`,
	RunE: insightFunc,
}

func insightFunc(cmd *cobra.Command, args []string) error {
	ldg, err := root.OpenLedger()
	if err != nil {
		return err
	}
	defer func() {
		if err := ldg.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close ledger")
		}
	}()

	totals, err := ldg.Totals(cmd.Context())
	if err != nil {
		return err
	}

	generator, err := insight.NewGenerator(
		root.Cfg.AI.APIKey,
		root.Cfg.AI.Model,
		time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second,
		root.Log,
	)
	if err != nil {
		return err
	}

	text, err := generator.Generate(cmd.Context(), totals)
	if err != nil {
		return err
	}

	fmt.Printf("Income:   %s\n", currencyutils.FormatCompact(totals.Income))
	fmt.Printf("Expenses: %s\n", currencyutils.FormatCompact(totals.Expenses))
	if root.Cfg.Budget.MonthlyBudget > 0 {
		fmt.Printf("Monthly budget: %s\n",
			currencyutils.FormatCompact(decimal.NewFromFloat(root.Cfg.Budget.MonthlyBudget)))
	}
	fmt.Println()
	fmt.Println(text)
	return nil
}
