// Package taxcalc folds committed transactions and the user's deduction
// profile into a fiscal-year tax summary under the Indian April-March tax
// year. Calculation is a pure function: inputs are never mutated and
// identical inputs always produce identical output.
package taxcalc

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rsoni/hisab/internal/dateutils"
	"rsoni/hisab/internal/models"
)

// Statutory deduction limits, in rupees.
var (
	Section80CLimit   = decimal.NewFromInt(150000)
	Section80DLimit   = decimal.NewFromInt(25000)
	StandardDeduction = decimal.NewFromInt(50000)
)

// accumulator carries the running totals through the fold.
type accumulator struct {
	totalIncome    decimal.Decimal
	investments80C decimal.Decimal
	insurance80D   decimal.Decimal
}

// Calculate computes the tax summary for the fiscal year containing now.
// The window starts April 1 and has no upper bound; transactions with an
// unset date fall before every window start and are excluded rather than
// aborting the computation, so Calculate never fails.
//
// Investments80C is seeded from the profile's AnnualEPF and Insurance80D
// from HealthInsurance; transaction-derived amounts add on top of the seeds.
func Calculate(transactions []models.Transaction, profile models.TaxProfile, now time.Time) models.TaxSummary {
	windowStart := dateutils.FiscalYearStart(now)

	acc := accumulator{
		totalIncome:    decimal.Zero,
		investments80C: profile.AnnualEPF,
		insurance80D:   profile.HealthInsurance,
	}

	for _, tx := range transactions {
		if tx.Date.Before(windowStart) {
			continue
		}
		acc = fold(acc, tx)
	}

	capped80C := minDecimal(acc.investments80C, Section80CLimit)
	capped80D := minDecimal(acc.insurance80D, Section80DLimit)

	taxable := acc.totalIncome.Sub(StandardDeduction).Sub(capped80C).Sub(capped80D)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	return models.TaxSummary{
		TotalIncome:    acc.totalIncome,
		Investments80C: acc.investments80C,
		Capped80C:      capped80C,
		Insurance80D:   acc.insurance80D,
		Capped80D:      capped80D,
		TaxableIncome:  taxable,
		FiscalYear:     dateutils.FiscalYearLabel(windowStart),
	}
}

// fold applies one in-window transaction to the accumulator. Income adds to
// total income; expense transactions feed section 80C when categorized as
// investment or mentioning "lic", otherwise section 80D when categorized as
// utilities and mentioning "insurance".
func fold(acc accumulator, tx models.Transaction) accumulator {
	desc := strings.ToLower(tx.Description)

	switch {
	case tx.IsIncome():
		acc.totalIncome = acc.totalIncome.Add(tx.Amount)
	case tx.Category == "investment" || strings.Contains(desc, "lic"):
		acc.investments80C = acc.investments80C.Add(tx.Amount)
	case tx.Category == "utilities" && strings.Contains(desc, "insurance"):
		acc.insurance80D = acc.insurance80D.Add(tx.Amount)
	}

	return acc
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return b
	}
	return a
}
