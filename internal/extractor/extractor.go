// Package extractor recognizes transaction-shaped statement rows and derives
// date, amount, description and direction fields from them by fixed
// precedence rules. Rows without the required tokens are silently dropped;
// that is expected and frequent, not an error.
package extractor

import (
	"strconv"
	"strings"
	"time"

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

// Extract scans reconstructed rows and returns one transaction per
// qualifying row. Non-qualifying rows are skipped without error.
func Extract(rows []string) []models.Transaction {
	var transactions []models.Transaction
	for i, row := range rows {
		tx, ok := ExtractRow(row)
		if !ok {
			log.Debug("Row skipped, not transaction shaped",
				logging.Field{Key: logging.FieldRow, Value: i})
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions
}

// ExtractRow applies the field-selection rules to a single row. The second
// return value is false when the row lacks a date token, lacks a money
// token, or its date token is not a valid calendar date.
func ExtractRow(row string) (models.Transaction, bool) {
	dateToken, ok := DateToken(row)
	if !ok {
		return models.Transaction{}, false
	}

	moneyTokens := MoneyTokens(row)
	if len(moneyTokens) == 0 {
		return models.Transaction{}, false
	}

	date, ok := parseDateToken(dateToken)
	if !ok {
		return models.Transaction{}, false
	}

	// With two or more money tokens the last one is the running balance;
	// the second-to-last is the transaction amount.
	amountToken := moneyTokens[0]
	if len(moneyTokens) >= 2 {
		amountToken = moneyTokens[len(moneyTokens)-2]
	}
	amount, err := currencyutils.ParseAmount(amountToken)
	if err != nil {
		return models.Transaction{}, false
	}

	return models.NewTransaction(date, deriveDescription(row, dateToken), amount.Abs(), classifyDirection(row)), true
}

// deriveDescription removes the first date token and all money tokens from
// the row, strips everything but alphanumerics and spaces, and trims. The
// result may legitimately be empty.
func deriveDescription(row, dateToken string) string {
	desc := strings.Replace(row, dateToken, "", 1)
	desc = moneyTokenRe.ReplaceAllString(desc, "")
	desc = nonAlnumRe.ReplaceAllString(desc, " ")
	desc = whitespaceRe.ReplaceAllString(desc, " ")
	return strings.TrimSpace(desc)
}

// classifyDirection marks the row as income when it contains the substring
// "cr" in any case. This is a coarse heuristic: descriptions that merely
// contain "cr" (brand names, abbreviations) will be misclassified. Known
// limitation of common date+amount statement layouts, which expose no
// explicit debit/credit column after text extraction.
func classifyDirection(row string) models.TransactionType {
	if strings.Contains(strings.ToLower(row), "cr") {
		return models.TypeIncome
	}
	return models.TypeExpense
}

// parseDateToken interprets a date token. Three separated parts are read as
// day-month-year with 2-digit years expanded to 2000+YY; anything else falls
// back to generic date parsing. Invalid calendar dates are rejected.
func parseDateToken(token string) (time.Time, bool) {
	parts := dateSeparatorRe.Split(token, -1)
	if len(parts) != 3 {
		t, _, err := dateutils.ParseDate(token)
		return t, err == nil
	}

	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if len(parts[2]) == 2 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		// time.Date normalizes overflows like day 32; a changed component
		// means the token was not a real calendar date.
		return time.Time{}, false
	}
	return t, true
}
