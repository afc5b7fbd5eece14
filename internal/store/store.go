// Package store provides loading and saving of category taxonomy data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

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

// CategoryStore manages loading of the ordered category taxonomy. The
// taxonomy is read-only input for the categorizer; the pipeline never
// mutates it.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for category data.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".hisab", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the ordered taxonomy from the YAML file. When no file
// exists the built-in default taxonomy is returned, so categorization always
// has a known category set to resolve against.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Categories file not found, using default taxonomy",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	yamlData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read categories file: %w", err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(yamlData, &config); err != nil {
		return nil, fmt.Errorf("could not parse categories file: %w", err)
	}

	log.Debug("Loaded categories from YAML file",
		logging.Field{Key: logging.FieldCount, Value: len(config.Categories)},
		logging.Field{Key: logging.FieldFile, Value: filePath})

	return config.Categories, nil
}

// SaveCategories writes the taxonomy back to the YAML file, creating parent
// directories as needed.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("could not marshal categories: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("could not write categories file: %w", err)
	}
	return nil
}

// DefaultCategories returns the built-in ordered taxonomy. Order matters:
// the first matching entry wins during categorization.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{ID: "food", Name: "Food", Keywords: []string{"cafe", "coffee", "zomato", "swiggy"}},
		{ID: "shopping", Name: "Shopping", Keywords: []string{"amazon", "flipkart", "myntra"}},
		{ID: "transport", Name: "Transport", Keywords: []string{"uber", "ola", "fuel"}},
		{ID: "housing", Name: "Housing", Keywords: []string{"rent", "maintenance"}},
		{ID: "utilities", Name: "Utilities", Keywords: []string{"bill", "mobile"}},
		{ID: "entertainment", Name: "Fun", Keywords: []string{"netflix", "movie"}},
		{ID: "tech", Name: "Tech", Keywords: []string{"apple", "electronics"}},
		{ID: "salary", Name: "Salary", Keywords: []string{"salary"}},
		{ID: "investment", Name: "Invest", Keywords: []string{"stock", "sip", "mutual"}},
		{ID: models.CategoryOther, Name: "Other", Keywords: []string{}},
	}
}
