package extractor

import "regexp"

// Token grammar for statement rows. A row is transaction-shaped only when it
// carries at least one date-shaped token and one money-shaped token; all
// other rows are headers, footers or balance-only lines.
var (
	// dateTokenRe matches 1-2 digit day, 1-2 digit month and a 2- or
	// 4-digit year separated by '.', '/' or '-'.
	dateTokenRe = regexp.MustCompile(`\b(\d{1,2}[./-]\d{1,2}[./-]\d{2,4})\b`)

	// moneyTokenRe matches digits with optional thousands separators and
	// exactly two fraction digits.
	moneyTokenRe = regexp.MustCompile(`[\d,]+\.\d{2}`)

	dateSeparatorRe = regexp.MustCompile(`[./-]`)
	nonAlnumRe      = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// DateToken returns the first date-shaped token of the row.
func DateToken(row string) (string, bool) {
	token := dateTokenRe.FindString(row)
	return token, token != ""
}

// MoneyTokens returns all money-shaped tokens of the row in order of
// appearance.
func MoneyTokens(row string) []string {
	return moneyTokenRe.FindAllString(row, -1)
}
