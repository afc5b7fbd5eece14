package extractor

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsoni/hisab/internal/models"
)

func TestExtractRowRejectsNonTransactionRows(t *testing.T) {
	testCases := []struct {
		name string
		row  string
	}{
		{"empty row", ""},
		{"header without tokens", "TRANSACTION DETAILS FOR ACCOUNT"},
		{"date but no money", "15/04/2024 OPENING ENTRY"},
		{"money but no date", "BALANCE CARRIED FORWARD 5,430.00"},
		{"invalid calendar date", "32/13/2024 GHOST ENTRY 100.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ExtractRow(tc.row)
			assert.False(t, ok)
		})
	}
}

func TestExtractRowSelectsSecondToLastAmount(t *testing.T) {
	// The last money token is the running balance and must be ignored.
	tx, ok := ExtractRow("15/04/2024 UPI TRANSFER 1,200.00 1,250.00 5,430.00")

	require.True(t, ok)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1250.00")),
		"got amount %s", tx.Amount)
}

func TestExtractRowSingleMoneyToken(t *testing.T) {
	tx, ok := ExtractRow("15/04/2024 AMAZON PURCHASE 2,450.00")

	require.True(t, ok)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("2450.00")),
		"got amount %s", tx.Amount)
}

func TestExtractRowAmazonPurchase(t *testing.T) {
	tx, ok := ExtractRow("15/04/2024 AMAZON PURCHASE 2,450.00")

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "AMAZON PURCHASE", tx.Description)
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.NotEmpty(t, tx.ID)
}

func TestExtractRowSalaryCredit(t *testing.T) {
	tx, ok := ExtractRow("02.01.24 SALARY CR 55,000.00")

	require.True(t, ok)
	assert.Equal(t, models.TypeIncome, tx.Type)
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "SALARY CR", tx.Description)
}

func TestExtractRowExpandsTwoDigitYear(t *testing.T) {
	tx, ok := ExtractRow("05-06-09 OLD ENTRY 99.00")

	require.True(t, ok)
	assert.Equal(t, 2009, tx.Date.Year())
	assert.Equal(t, time.June, tx.Date.Month())
	assert.Equal(t, 5, tx.Date.Day())
}

func TestExtractRowDescriptionMayBeEmpty(t *testing.T) {
	tx, ok := ExtractRow("15/04/2024 1,000.00")

	require.True(t, ok)
	assert.Empty(t, tx.Description)
}

func TestExtractRowDirectionHeuristic(t *testing.T) {
	// The "cr" substring check is coarse and will misclassify
	// descriptions that merely contain it.
	testCases := []struct {
		name     string
		row      string
		expected models.TransactionType
	}{
		{"explicit credit marker", "15/04/2024 NEFT CR 1,000.00", models.TypeIncome},
		{"lowercase marker", "15/04/2024 refund cr 1,000.00", models.TypeIncome},
		{"plain debit", "15/04/2024 GROCERY STORE 1,000.00", models.TypeExpense},
		{"brand containing cr", "15/04/2024 MICROSOFT STORE 1,000.00", models.TypeIncome},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, ok := ExtractRow(tc.row)
			require.True(t, ok)
			assert.Equal(t, tc.expected, tx.Type)
		})
	}
}

func TestExtractSkipsNonQualifyingRows(t *testing.T) {
	rows := []string{
		"STATEMENT OF ACCOUNT",
		"15/04/2024 AMAZON PURCHASE 2,450.00",
		"CLOSING BALANCE 10,000.00",
		"02.01.24 SALARY CR 55,000.00",
	}

	transactions := Extract(rows)

	require.Len(t, transactions, 2)
	assert.Equal(t, "AMAZON PURCHASE", transactions[0].Description)
	assert.Equal(t, "SALARY CR", transactions[1].Description)
}

func TestExtractGeneratesUniqueIDs(t *testing.T) {
	rows := []string{
		"15/04/2024 FIRST 1.00",
		"15/04/2024 SECOND 2.00",
	}

	transactions := Extract(rows)

	require.Len(t, transactions, 2)
	assert.NotEqual(t, transactions[0].ID, transactions[1].ID)
}
