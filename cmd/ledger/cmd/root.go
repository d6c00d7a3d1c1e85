// Package cmd provides CLI commands for the ledger tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/config"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/report"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Reconcile bank statements into a personal balance ledger",
	Long: `ledger is a CLI tool that imports bank and card statements,
reconciles running balances from per-account anchor records, and
reports month-by-month balances and net worth.

It supports:
- Importing CSV statements into SQLite
- Setting an initial balance anchor per account
- Classifying each account's sign convention and propagating balances
- Monthly balance reports with bucket totals and net worth

Example:
  ledger import checking.csv
  ledger set-anchor checking --date 2024-01-01 --balance 1000.00
  ledger reconcile
  ledger report --from 2024-01 --to 2024-06`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(setAnchorCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(accountsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// openLedger loads the configuration and opens the database.
// The caller owns the returned connection.
func openLedger() (*config.Config, *db.Connection) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")
	exitOnError(cfg.EnsureDataDir(), "failed to create data directory")

	slog.Debug("Opening database", "path", cfg.DBPath)
	conn, err := db.Open(cfg.DBPath)
	exitOnError(err, "failed to open database")
	return cfg, conn
}

// loadBucketMapping resolves the report bucket mapping from configuration.
func loadBucketMapping(cfg *config.Config) *report.BucketMapping {
	if cfg.BucketMapping == "" {
		return report.DefaultBucketMapping()
	}
	mapping, err := report.LoadBucketMapping(cfg.BucketMapping)
	exitOnError(err, "failed to load bucket mapping")
	return mapping
}

// classifyAll classifies every account in the transaction table.
func classifyAll(txns []ledger.Transaction) map[string]ledger.AccountType {
	types := make(map[string]ledger.AccountType)
	for account, accountTxns := range ledger.GroupByAccount(txns) {
		types[account] = ledger.Classify(accountTxns)
	}
	return types
}

// parseMonth parses a YYYY-MM month argument.
func parseMonth(s string) (ledger.MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return ledger.MonthKey{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return ledger.MonthOf(t), nil
}

// formatCents renders an integer-cents amount as dollars.
func formatCents(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
