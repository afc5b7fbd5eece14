// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"rsoni/hisab/internal/models"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		LedgerPath     string `mapstructure:"ledger_path" yaml:"ledger_path"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"data" yaml:"data"`

	Parser struct {
		RowTolerance float64 `mapstructure:"row_tolerance" yaml:"row_tolerance"`
	} `mapstructure:"parser" yaml:"parser"`

	Tax struct {
		AnnualRent      float64 `mapstructure:"annual_rent" yaml:"annual_rent"`
		AnnualEPF       float64 `mapstructure:"annual_epf" yaml:"annual_epf"`
		HealthInsurance float64 `mapstructure:"health_insurance" yaml:"health_insurance"`
	} `mapstructure:"tax" yaml:"tax"`

	Budget struct {
		MonthlyIncome float64 `mapstructure:"monthly_income" yaml:"monthly_income"`
		MonthlyBudget float64 `mapstructure:"monthly_budget" yaml:"monthly_budget"`
		DailyBudget   float64 `mapstructure:"daily_budget" yaml:"daily_budget"`
	} `mapstructure:"budget" yaml:"budget"`

	AI struct {
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// TaxProfile converts the configured deduction inputs into the model type
// consumed by the tax calculation.
func (c *Config) TaxProfile() models.TaxProfile {
	return models.TaxProfile{
		AnnualRent:      decimal.NewFromFloat(c.Tax.AnnualRent),
		AnnualEPF:       decimal.NewFromFloat(c.Tax.AnnualEPF),
		HealthInsurance: decimal.NewFromFloat(c.Tax.HealthInsurance),
	}
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then HISAB_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.hisab")
	v.AddConfigPath(".hisab")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HISAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// API key always comes from the environment, not prefixed
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.ledger_path", defaultLedgerPath())
	v.SetDefault("data.categories_file", "categories.yaml")

	v.SetDefault("parser.row_tolerance", 5.0)

	v.SetDefault("tax.annual_rent", 0.0)
	v.SetDefault("tax.annual_epf", 0.0)
	v.SetDefault("tax.health_insurance", 0.0)

	v.SetDefault("budget.monthly_income", 0.0)
	v.SetDefault("budget.monthly_budget", 0.0)
	v.SetDefault("budget.daily_budget", 0.0)

	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Parser.RowTolerance <= 0 {
		return fmt.Errorf("parser.row_tolerance must be positive, got: %f", config.Parser.RowTolerance)
	}

	if config.Tax.AnnualRent < 0 || config.Tax.AnnualEPF < 0 || config.Tax.HealthInsurance < 0 {
		return fmt.Errorf("tax profile values must not be negative")
	}

	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	return nil
}

func defaultLedgerPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "hisab.db"
	}
	return filepath.Join(homeDir, ".hisab", "hisab.db")
}

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
