package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsoni/hisab/internal/models"
)

func TestLoadCategoriesMissingFileReturnsDefaults(t *testing.T) {
	store := NewCategoryStore(filepath.Join(t.TempDir(), "absent.yaml"))

	categories, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories(), categories)
}

func TestLoadCategoriesFromYAMLPreservesOrder(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	content := `categories:
  - id: groceries
    name: Groceries
    keywords: [bigbasket, dmart]
  - id: travel
    name: Travel
    keywords: [irctc, indigo]
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	store := NewCategoryStore(file)
	categories, err := store.LoadCategories()
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "groceries", categories[0].ID)
	assert.Equal(t, []string{"bigbasket", "dmart"}, categories[0].Keywords)
	assert.Equal(t, "travel", categories[1].ID)
}

func TestLoadCategoriesInvalidYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte("categories: [not: valid: yaml"), 0600))

	store := NewCategoryStore(file)
	_, err := store.LoadCategories()
	assert.Error(t, err)
}

func TestSaveAndLoadCategoriesRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "categories.yaml")
	store := NewCategoryStore(file)

	original := []models.CategoryConfig{
		{ID: "fitness", Name: "Fitness", Keywords: []string{"gym", "cult"}},
		{ID: "pets", Name: "Pets", Keywords: []string{"vet"}},
	}
	require.NoError(t, store.SaveCategories(original))

	got, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestFindConfigFileAbsolutePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte("categories: []\n"), 0600))

	store := NewCategoryStore("")
	found, err := store.FindConfigFile(file)
	require.NoError(t, err)
	assert.Equal(t, file, found)

	_, err = store.FindConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultCategoriesEndWithFallback(t *testing.T) {
	categories := DefaultCategories()
	require.NotEmpty(t, categories)
	assert.Equal(t, models.CategoryOther, categories[len(categories)-1].ID)
}
