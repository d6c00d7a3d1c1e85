package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ingest"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/spf13/cobra"
)

var (
	importAccount string
	importDryRun  bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <statement.csv> [statement.csv...]",
	Short: "Import CSV statements into the ledger",
	Long: `Import one or more CSV bank statements into the ledger database.

This command:
1. Parses each statement (column headers are normalized automatically)
2. Names the account after the file unless --account is given
3. Drops rows already present in the ledger
4. Inserts the remaining rows into SQLite

Example:
  ledger import checking.csv savings.csv
  ledger import export.csv --account checking
  ledger import checking.csv --dry-run`,
	Args: cobra.MinimumNArgs(1),
	Run:  runImport,
}

func init() {
	// Flags
	importCmd.Flags().StringVar(&importAccount, "account", "", "Account name override (default: derived from file name)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Dry run mode (no database writes)")
}

func runImport(cmd *cobra.Command, args []string) {
	slog.Info("Starting import", "files", len(args), "dry_run", importDryRun)

	_, conn := openLedger()
	defer conn.Close()

	store := db.NewTransactionStore(conn)

	existing, err := store.ListAll()
	exitOnError(err, "failed to read existing transactions")

	var incoming []ledger.Transaction
	for _, path := range args {
		txns, err := readStatement(path)
		exitOnError(err, fmt.Sprintf("failed to read %s", path))
		slog.Info("Parsed statement", "file", path, "rows", len(txns))
		incoming = append(incoming, txns...)
	}

	newRows := ingest.NewRows(existing, incoming)
	slog.Info("New rows to import",
		"new", len(newRows),
		"skipped", len(incoming)-len(newRows),
	)

	if len(newRows) == 0 {
		fmt.Println("No new transactions to import")
		return
	}

	if importDryRun {
		fmt.Printf("[DRY RUN] Would import %d transactions:\n", len(newRows))
		for _, t := range newRows {
			fmt.Printf("  %s  %-20s  payment=%s deposit=%s  %s\n",
				t.Date.Format("2006-01-02"), t.Account,
				formatCents(t.Payment), formatCents(t.Deposit), t.Description)
		}
		return
	}

	exitOnError(store.InsertBatch(newRows), "failed to insert transactions")
	exitOnError(db.SetMetadata(conn, "last_import", time.Now().UTC().Format(time.RFC3339)), "failed to record import time")

	fmt.Printf("Imported %d transactions\n", len(newRows))
	fmt.Println("Run `ledger reconcile` to recompute balances")

	slog.Info("Import completed", "imported", len(newRows))
}

// readStatement parses one statement file, honoring the --account override.
func readStatement(path string) ([]ledger.Transaction, error) {
	if importAccount == "" {
		return ingest.ReadStatementFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer f.Close()

	return ingest.ReadStatement(f, importAccount)
}
