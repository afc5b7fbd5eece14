package models

// CategoryConfig represents one entry of the category taxonomy loaded from
// the YAML configuration. The taxonomy is ordered: when several categories'
// keywords could match a description, the first entry wins.
type CategoryConfig struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
