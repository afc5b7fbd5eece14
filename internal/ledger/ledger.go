// Package ledger persists committed transactions and wealth items in a
// local SQLite database. Parsed candidates pass human review first; commit
// writes the surviving batch as a single atomic unit.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"rsoni/hisab/internal/dateutils"
	"rsoni/hisab/internal/models"
)

// Ledger is a SQLite-backed store for committed transactions and wealth
// items.
type Ledger struct {
	db     *sql.DB
	dbPath string
}

// Totals is the income/expense fold over every committed transaction.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id          TEXT PRIMARY KEY,
	date        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	amount      TEXT NOT NULL,
	type        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT 'other'
);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);

CREATE TABLE IF NOT EXISTS wealth_items (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	amount     TEXT NOT NULL,
	type       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Open opens (creating if necessary) the ledger database at dbPath.
func Open(dbPath string) (*Ledger, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("ledger path must not be empty")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Ledger{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// SaveBatch commits a batch of finalized transactions as a single atomic
// unit: either every row is inserted or none is.
func (l *Ledger) SaveBatch(ctx context.Context, transactions []models.Transaction) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (id, date, description, amount, type, category)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range transactions {
		if _, err := stmt.ExecContext(ctx,
			t.ID,
			dateutils.ToISODate(t.Date),
			t.Description,
			t.Amount.String(),
			string(t.Type),
			t.Category,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// ListTransactions returns every committed transaction, newest first.
func (l *Ledger) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, date, description, amount, type, category
		 FROM transactions ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []models.Transaction
	for rows.Next() {
		var (
			t         models.Transaction
			dateStr   string
			amountStr string
			txTypeStr string
		)
		if err := rows.Scan(&t.ID, &dateStr, &t.Description, &amountStr, &txTypeStr, &t.Category); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if date, _, err := dateutils.ParseDate(dateStr); err == nil {
			t.Date = date
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for transaction %s: %w", t.ID, err)
		}
		t.Amount = amount
		t.Type = models.TransactionType(txTypeStr)

		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Filter narrows a committed-transaction list for display. Zero-value fields
// do not constrain the result.
type Filter struct {
	Search   string // case-insensitive substring of the description
	Type     string // "income" or "expense"
	Category string
}

// Apply returns the transactions matching every set filter field, preserving
// the input order.
func (f Filter) Apply(transactions []models.Transaction) []models.Transaction {
	search := strings.ToLower(f.Search)

	var matched []models.Transaction
	for _, t := range transactions {
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if f.Type != "" && string(t.Type) != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// DeleteTransaction removes one committed transaction by id.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}
	return nil
}

// Totals folds all committed transactions into income and expense sums.
func (l *Ledger) Totals(ctx context.Context) (Totals, error) {
	transactions, err := l.ListTransactions(ctx)
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range transactions {
		if t.IsIncome() {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	return totals, nil
}

// SaveWealthItem inserts one asset or liability.
func (l *Ledger) SaveWealthItem(ctx context.Context, item models.WealthItem) error {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO wealth_items (id, name, amount, type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Amount.String(), string(item.Type),
		createdAt.Format(dateutils.DateLayoutFull))
	if err != nil {
		return fmt.Errorf("failed to insert wealth item: %w", err)
	}
	return nil
}

// ListWealthItems returns all wealth items in insertion order.
func (l *Ledger) ListWealthItems(ctx context.Context) ([]models.WealthItem, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, name, amount, type, created_at FROM wealth_items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query wealth items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []models.WealthItem
	for rows.Next() {
		var (
			item       models.WealthItem
			amountStr  string
			typeStr    string
			createdStr string
		)
		if err := rows.Scan(&item.ID, &item.Name, &amountStr, &typeStr, &createdStr); err != nil {
			return nil, fmt.Errorf("failed to scan wealth item: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for wealth item %s: %w", item.ID, err)
		}
		item.Amount = amount
		item.Type = models.WealthType(typeStr)
		if created, err := time.Parse(dateutils.DateLayoutFull, createdStr); err == nil {
			item.CreatedAt = created
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// NetWorth returns assets minus liabilities over all wealth items.
func (l *Ledger) NetWorth(ctx context.Context) (decimal.Decimal, error) {
	items, err := l.ListWealthItems(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	net := decimal.Zero
	for _, item := range items {
		net = net.Add(item.Signed())
	}
	return net, nil
}
