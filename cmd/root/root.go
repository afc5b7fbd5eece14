// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"rsoni/hisab/internal/categorizer"
	"rsoni/hisab/internal/common"
	"rsoni/hisab/internal/config"
	"rsoni/hisab/internal/extractor"
	"rsoni/hisab/internal/ledger"
	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/pdfparser"
	"rsoni/hisab/internal/store"
)

var (
	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRunE has run.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "hisab",
		Short: "Parse bank statements into transactions and estimate fiscal-year tax.",
		Long: `hisab extracts structured transactions from bank and credit-card
statement PDFs, writes them to a CSV for review, commits reviewed batches to
a local ledger, and estimates Indian fiscal-year tax liability from the
accumulated history and a deduction profile.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to hisab!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			adapter := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			logging.SetDefault(adapter)
			Log = adapter

			// Propagate the configured logger to all leaf packages
			pdfparser.SetLogger(adapter)
			extractor.SetLogger(adapter)
			store.SetLogger(adapter)
			common.SetLogger(adapter)

			return nil
		},
	}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.SilenceUsage = true
}

// NewCategorizer builds a categorizer over the configured taxonomy.
func NewCategorizer() *categorizer.Categorizer {
	categoryStore := store.NewCategoryStore(Cfg.Data.CategoriesFile)
	return categorizer.New(categoryStore, Log)
}

// OpenLedger opens the configured ledger database. The caller closes it.
func OpenLedger() (*ledger.Ledger, error) {
	return ledger.Open(Cfg.Data.LedgerPath)
}
