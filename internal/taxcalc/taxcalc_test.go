package taxcalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rsoni/hisab/internal/models"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func tx(date time.Time, description, amount string, txType models.TransactionType, category string) models.Transaction {
	return models.Transaction{
		ID:          "t",
		Date:        date,
		Description: description,
		Amount:      d(amount),
		Type:        txType,
		Category:    category,
	}
}

func TestCalculateFiscalYearWindow(t *testing.T) {
	// June 2024 sits in fiscal year 2024-2025, so the window opens
	// April 1 2024.
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), "SALARY CR", "100000", models.TypeIncome, "salary"),
		tx(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "SALARY CR", "60000", models.TypeIncome, "salary"),
	}

	summary := Calculate(transactions, models.TaxProfile{}, now)

	assert.True(t, summary.TotalIncome.Equal(d("60000")), "March 31 must be excluded, April 1 included, got %s", summary.TotalIncome)
	assert.Equal(t, "2024-2025", summary.FiscalYear)
}

func TestCalculateJanuaryBelongsToPreviousFiscalYear(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), "SALARY CR", "50000", models.TypeIncome, "salary"),
	}

	summary := Calculate(transactions, models.TaxProfile{}, now)

	assert.True(t, summary.TotalIncome.Equal(d("50000")))
	assert.Equal(t, "2024-2025", summary.FiscalYear)
}

func TestCalculateUnsetDateIsExcluded(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(time.Time{}, "SALARY CR", "90000", models.TypeIncome, "salary"),
	}

	summary := Calculate(transactions, models.TaxProfile{}, now)

	assert.True(t, summary.TotalIncome.IsZero())
}

func TestCalculateSeedsAndTransactionAmountsAdd(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	profile := models.TaxProfile{
		AnnualEPF:       d("40000"),
		HealthInsurance: d("10000"),
	}

	transactions := []models.Transaction{
		tx(time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC), "SIP MUTUAL FUND", "20000", models.TypeExpense, "investment"),
		tx(time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC), "HEALTH INSURANCE PREMIUM", "5000", models.TypeExpense, "utilities"),
	}

	summary := Calculate(transactions, profile, now)

	assert.True(t, summary.Investments80C.Equal(d("60000")), "got %s", summary.Investments80C)
	assert.True(t, summary.Insurance80D.Equal(d("15000")), "got %s", summary.Insurance80D)
}

func TestCalculateDeductionRouting(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		transaction models.Transaction
		want80C     string
		want80D     string
	}{
		{
			name:        "investment category",
			transaction: tx(date, "STOCK BUY", "1000", models.TypeExpense, "investment"),
			want80C:     "1000",
			want80D:     "0",
		},
		{
			name:        "lic mention outside investment category",
			transaction: tx(date, "LIC PREMIUM", "2000", models.TypeExpense, "other"),
			want80C:     "2000",
			want80D:     "0",
		},
		{
			name:        "insurance mention in utilities",
			transaction: tx(date, "INSURANCE BILL", "3000", models.TypeExpense, "utilities"),
			want80C:     "0",
			want80D:     "3000",
		},
		{
			name:        "insurance mention outside utilities",
			transaction: tx(date, "INSURANCE AGENT FEE", "3000", models.TypeExpense, "other"),
			want80C:     "0",
			want80D:     "0",
		},
		{
			name:        "plain expense",
			transaction: tx(date, "GROCERY STORE", "4000", models.TypeExpense, "food"),
			want80C:     "0",
			want80D:     "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := Calculate([]models.Transaction{tc.transaction}, models.TaxProfile{}, now)
			assert.True(t, summary.Investments80C.Equal(d(tc.want80C)), "80C got %s", summary.Investments80C)
			assert.True(t, summary.Insurance80D.Equal(d(tc.want80D)), "80D got %s", summary.Insurance80D)
		})
	}
}

func TestCalculateAppliesCaps(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	profile := models.TaxProfile{
		AnnualEPF:       d("200000"),
		HealthInsurance: d("40000"),
	}

	summary := Calculate(nil, profile, now)

	assert.True(t, summary.Investments80C.Equal(d("200000")), "raw 80C keeps the uncapped total")
	assert.True(t, summary.Capped80C.Equal(Section80CLimit))
	assert.True(t, summary.Insurance80D.Equal(d("40000")))
	assert.True(t, summary.Capped80D.Equal(Section80DLimit))
}

func TestCalculateTaxableIncome(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	profile := models.TaxProfile{
		AnnualEPF:       d("150000"),
		HealthInsurance: d("25000"),
	}

	transactions := []models.Transaction{
		tx(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), "SALARY CR", "1000000", models.TypeIncome, "salary"),
	}

	summary := Calculate(transactions, profile, now)

	// 1000000 - 50000 standard - 150000 capped 80C - 25000 capped 80D.
	assert.True(t, summary.TaxableIncome.Equal(d("775000")), "got %s", summary.TaxableIncome)
}

func TestCalculateTaxableIncomeClampsAtZero(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		tx(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), "SALARY CR", "30000", models.TypeIncome, "salary"),
	}

	summary := Calculate(transactions, models.TaxProfile{}, now)

	assert.True(t, summary.TaxableIncome.IsZero())
}

func TestCalculateIsPure(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	profile := models.TaxProfile{AnnualEPF: d("10000")}

	transactions := []models.Transaction{
		tx(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), "SALARY CR", "80000", models.TypeIncome, "salary"),
		tx(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), "SIP", "5000", models.TypeExpense, "investment"),
	}
	before := make([]models.Transaction, len(transactions))
	copy(before, transactions)

	first := Calculate(transactions, profile, now)
	second := Calculate(transactions, profile, now)

	assert.Equal(t, first, second)
	assert.Equal(t, before, transactions, "inputs must not be mutated")
}
