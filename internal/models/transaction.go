package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	// TypeExpense marks money leaving the account.
	TypeExpense TransactionType = "expense"
	// TypeIncome marks money entering the account.
	TypeIncome TransactionType = "income"
)

// CategoryOther is the fallback category id assigned when no taxonomy entry
// matches a transaction's description.
const CategoryOther = "other"

// Transaction represents a single statement entry extracted from a document
// or entered manually. Amount is always non-negative; the direction is
// carried by Type.
type Transaction struct {
	ID          string          `json:"id" yaml:"id" csv:"id"`
	Date        time.Time       `json:"date" yaml:"date" csv:"-"`
	Description string          `json:"description" yaml:"description" csv:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount" csv:"amount"`
	Type        TransactionType `json:"type" yaml:"type" csv:"type"`
	Category    string          `json:"category" yaml:"category" csv:"category"`
}

// NewTransaction creates a Transaction with a freshly generated id and the
// fallback category.
func NewTransaction(date time.Time, description string, amount decimal.Decimal, txType TransactionType) Transaction {
	return Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    CategoryOther,
	}
}

// IsIncome returns true if the transaction adds money to the account.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}
