package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WealthType distinguishes assets from liabilities.
type WealthType string

const (
	WealthAsset     WealthType = "asset"
	WealthLiability WealthType = "liability"
)

// WealthItem is a single asset or liability tracked outside the transaction
// ledger, used for the net-worth view.
type WealthItem struct {
	ID        string          `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Type      WealthType      `json:"type" yaml:"type"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

// Signed returns the amount with a negative sign for liabilities, so that
// summing over items yields net worth directly.
func (w WealthItem) Signed() decimal.Decimal {
	if w.Type == WealthLiability {
		return w.Amount.Neg()
	}
	return w.Amount
}
