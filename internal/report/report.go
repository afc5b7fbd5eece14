// Package report renders a TaxSummary for the reporting surface. The export
// is free text; no fixed wire format is required.
package report

import (
	"fmt"
	"strings"

	"rsoni/hisab/internal/currencyutils"
	"rsoni/hisab/internal/models"
)

// RenderTaxSummary formats a fiscal-year tax summary as human-readable text.
func RenderTaxSummary(summary models.TaxSummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Tax summary for FY %s\n", summary.FiscalYear)
	fmt.Fprintf(&sb, "  Total income:        %s\n", currencyutils.FormatCompact(summary.TotalIncome))
	fmt.Fprintf(&sb, "  80C investments:     %s (counted: %s, cap ₹1.50 L)\n",
		currencyutils.FormatCompact(summary.Investments80C),
		currencyutils.FormatCompact(summary.Capped80C))
	fmt.Fprintf(&sb, "  80D insurance:       %s (counted: %s, cap ₹25,000)\n",
		currencyutils.FormatCompact(summary.Insurance80D),
		currencyutils.FormatCompact(summary.Capped80D))
	fmt.Fprintf(&sb, "  Taxable income:      %s\n", currencyutils.FormatCompact(summary.TaxableIncome))

	return sb.String()
}
