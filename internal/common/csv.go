// Package common provides the review CSV round-trip shared by the parse and
// commit commands. Parsed candidates are written to a CSV file for human
// review; the commit command reads the (possibly edited) file back.
package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"rsoni/hisab/internal/currencyutils"
	"rsoni/hisab/internal/dateutils"
	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReviewRow is the CSV representation of one candidate transaction. Dates
// are ISO formatted so edited files stay unambiguous.
type ReviewRow struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	Category    string `csv:"category"`
}

// ToReviewRow converts a transaction into its CSV representation.
func ToReviewRow(t models.Transaction) ReviewRow {
	return ReviewRow{
		ID:          t.ID,
		Date:        dateutils.ToISODate(t.Date),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        string(t.Type),
		Category:    t.Category,
	}
}

// FromReviewRow converts one CSV row back into a transaction. Rows with an
// unparsable date or amount are rejected so no partial transaction reaches
// the ledger.
func FromReviewRow(row ReviewRow) (models.Transaction, error) {
	date, _, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("row %s: %w", row.ID, err)
	}

	amount, err := currencyutils.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("row %s: %w", row.ID, err)
	}
	if amount.IsNegative() {
		return models.Transaction{}, fmt.Errorf("row %s: amount must not be negative", row.ID)
	}

	txType := models.TransactionType(row.Type)
	if txType != models.TypeIncome && txType != models.TypeExpense {
		return models.Transaction{}, fmt.Errorf("row %s: unknown type %q", row.ID, row.Type)
	}

	category := row.Category
	if category == "" {
		category = models.CategoryOther
	}

	return models.Transaction{
		ID:          row.ID,
		Date:        date,
		Description: row.Description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
	}, nil
}

// WriteReviewCSV writes the candidate transactions to a CSV file for review.
func WriteReviewCSV(transactions []models.Transaction, csvFile string) error {
	log.Info("Writing review CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]ReviewRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, ToReviewRow(t))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadReviewCSV reads a review CSV file back into transactions. Rows the
// user deleted during review simply stay absent.
func ReadReviewCSV(csvFile string) ([]models.Transaction, error) {
	log.Info("Reading review CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile})

	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []ReviewRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := FromReviewRow(row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	log.Info("Read review CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}
