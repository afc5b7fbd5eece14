// Package currencyutils provides amount parsing and Indian-style currency
// formatting used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	crore = decimal.NewFromInt(10000000)
	lakh  = decimal.NewFromInt(100000)

	symbolRe = regexp.MustCompile(`[₹$€£\s]`)
)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles thousands separators and currency symbols, e.g.
// "1,250.00", "₹ 2,450.00".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := symbolRe.ReplaceAllString(amountStr, "")
	standardized = strings.ReplaceAll(standardized, ",", "")

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// FormatCompact renders an amount in the compact Indian convention:
// crores ("₹1.23 Cr") above 1,00,00,000, lakhs ("₹2.50 L") above 1,00,000,
// and plain Indian digit grouping below that ("₹4,200").
func FormatCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(crore):
		return fmt.Sprintf("₹%s Cr", amount.Div(crore).StringFixed(2))
	case abs.GreaterThanOrEqual(lakh):
		return fmt.Sprintf("₹%s L", amount.Div(lakh).StringFixed(2))
	default:
		return "₹" + GroupIndian(amount)
	}
}

// GroupIndian formats a decimal with Indian digit grouping: the last three
// integer digits form one group, preceding digits group in pairs
// (12,34,567). A fractional part is kept only when non-zero.
func GroupIndian(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	// Round before splitting so a carry from the fraction lands in the
	// integer digits (4200.996 renders as 4,201, not 4,2001).
	abs := amount.Abs().Round(2)

	intPart := abs.Truncate(0)
	frac := abs.Sub(intPart)

	grouped := groupDigits(intPart.String())
	if !frac.IsZero() {
		grouped += strings.TrimPrefix(frac.String(), "0")
	}
	if neg {
		return "-" + grouped
	}
	return grouped
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
