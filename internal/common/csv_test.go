package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsoni/hisab/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "a1",
			Date:        time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
			Description: "AMAZON PURCHASE",
			Amount:      decimal.RequireFromString("2450.00"),
			Type:        models.TypeExpense,
			Category:    "shopping",
		},
		{
			ID:          "b2",
			Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Description: "SALARY CR",
			Amount:      decimal.RequireFromString("50000.00"),
			Type:        models.TypeIncome,
			Category:    "salary",
		},
	}
}

func TestReviewCSVRoundTrip(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "review.csv")
	original := sampleTransactions()

	require.NoError(t, WriteReviewCSV(original, csvFile))

	got, err := ReadReviewCSV(csvFile)
	require.NoError(t, err)
	require.Len(t, got, len(original))

	for i := range original {
		assert.Equal(t, original[i].ID, got[i].ID)
		assert.Equal(t, original[i].Description, got[i].Description)
		assert.Equal(t, original[i].Type, got[i].Type)
		assert.Equal(t, original[i].Category, got[i].Category)
		assert.True(t, original[i].Amount.Equal(got[i].Amount), "amount got %s", got[i].Amount)
		assert.Equal(t, original[i].Date.Format("2006-01-02"), got[i].Date.Format("2006-01-02"))
	}
}

func TestWriteReviewCSVCreatesParentDir(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nested", "dir", "review.csv")

	require.NoError(t, WriteReviewCSV(sampleTransactions(), csvFile))

	_, err := os.Stat(csvFile)
	assert.NoError(t, err)
}

func TestFromReviewRow(t *testing.T) {
	testCases := []struct {
		name    string
		row     ReviewRow
		wantErr bool
	}{
		{
			name: "valid row",
			row:  ReviewRow{ID: "x", Date: "2024-04-15", Amount: "100.00", Type: "expense", Category: "food"},
		},
		{
			name:    "bad date",
			row:     ReviewRow{ID: "x", Date: "yesterday", Amount: "100.00", Type: "expense"},
			wantErr: true,
		},
		{
			name:    "bad amount",
			row:     ReviewRow{ID: "x", Date: "2024-04-15", Amount: "lots", Type: "expense"},
			wantErr: true,
		},
		{
			name:    "negative amount",
			row:     ReviewRow{ID: "x", Date: "2024-04-15", Amount: "-5.00", Type: "expense"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			row:     ReviewRow{ID: "x", Date: "2024-04-15", Amount: "100.00", Type: "transfer"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReviewRow(tc.row)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromReviewRowDefaultsCategory(t *testing.T) {
	tx, err := FromReviewRow(ReviewRow{ID: "x", Date: "2024-04-15", Amount: "100.00", Type: "income"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, tx.Category)
}

func TestReadReviewCSVRejectsInvalidRow(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "review.csv")
	content := "id,date,description,amount,type,category\n" +
		"a1,2024-04-15,OK ROW,100.00,expense,food\n" +
		"a2,not-a-date,BAD ROW,100.00,expense,food\n"
	require.NoError(t, os.WriteFile(csvFile, []byte(content), 0600))

	_, err := ReadReviewCSV(csvFile)
	assert.Error(t, err)
}

func TestReadReviewCSVMissingFile(t *testing.T) {
	_, err := ReadReviewCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
