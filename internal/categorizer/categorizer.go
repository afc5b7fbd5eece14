// Package categorizer assigns a category id to a transaction by keyword
// match against an ordered taxonomy. Matching is a fixed-priority linear
// scan: the first taxonomy entry owning a keyword that is a case-insensitive
// substring of the description wins, which keeps the result deterministic
// when several categories could match.
package categorizer

import (
	"strings"

	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/models"
	"rsoni/hisab/internal/store"
)

// CategoryStoreInterface abstracts the taxonomy source for dependency
// injection in tests.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// Categorizer holds the loaded taxonomy. It is stateless after construction
// and safe for concurrent use.
type Categorizer struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// New creates a Categorizer with the taxonomy from the given store. When
// loading fails the categorizer falls back to the built-in default taxonomy.
func New(catStore CategoryStoreInterface, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	categories, err := catStore.LoadCategories()
	if err != nil {
		logger.WithError(err).Warn("Failed to load categories, falling back to defaults")
		categories = store.DefaultCategories()
	}

	return &Categorizer{
		categories: categories,
		logger:     logger,
	}
}

// NewWithCategories creates a Categorizer over an explicit ordered taxonomy.
func NewWithCategories(categories []models.CategoryConfig, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{categories: categories, logger: logger}
}

// Categorize returns the id of the first taxonomy entry with a keyword
// contained in the description, or the fallback id when nothing matches.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(description)

	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(desc, strings.ToLower(keyword)) {
				c.logger.Debug("Description categorized by keyword",
					logging.Field{Key: logging.FieldCategory, Value: category.ID},
					logging.Field{Key: "keyword", Value: keyword})
				return category.ID
			}
		}
	}

	return models.CategoryOther
}

// Apply categorizes every transaction in place and returns the slice for
// chaining.
func (c *Categorizer) Apply(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		transactions[i].Category = c.Categorize(transactions[i].Description)
	}
	return transactions
}
