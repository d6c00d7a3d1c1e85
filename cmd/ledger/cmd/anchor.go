package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/spf13/cobra"
)

var (
	anchorDate    string
	anchorBalance string
)

// setAnchorCmd represents the set-anchor command.
var setAnchorCmd = &cobra.Command{
	Use:   "set-anchor <account>",
	Short: "Set an account's initial balance anchor",
	Long: `Set the initial balance anchor for an account.

The anchor is the one (date, balance) pair treated as ground truth when
reconciling the account. Each account carries at most one anchor; setting
a new one replaces the old.

Example:
  ledger set-anchor checking --date 2024-01-01 --balance 1000.00
  ledger set-anchor visa --date 2024-03-15 --balance -250.40`,
	Args: cobra.ExactArgs(1),
	Run:  runSetAnchor,
}

func init() {
	// Flags
	setAnchorCmd.Flags().StringVar(&anchorDate, "date", "", "Anchor date (YYYY-MM-DD) (required)")
	setAnchorCmd.Flags().StringVar(&anchorBalance, "balance", "", "Anchor balance in dollars, e.g. 1234.56 (required)")

	setAnchorCmd.MarkFlagRequired("date")
	setAnchorCmd.MarkFlagRequired("balance")
}

func runSetAnchor(cmd *cobra.Command, args []string) {
	account := args[0]

	date, err := time.Parse("2006-01-02", anchorDate)
	exitOnError(err, "invalid --date, expected YYYY-MM-DD")

	amount, err := decimal.NewFromString(anchorBalance)
	exitOnError(err, "invalid --balance, expected a dollar amount")
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	_, conn := openLedger()
	defer conn.Close()

	anchor := ledger.InitialBalance{
		Account: account,
		Date:    ledger.Date(date.Year(), date.Month(), date.Day()),
		Balance: cents,
	}
	exitOnError(db.NewInitialBalanceStore(conn).Upsert(anchor), "failed to save anchor")

	fmt.Printf("Anchor for %s set to %s on %s\n", account, formatCents(cents), anchor.Date.Format("2006-01-02"))
	slog.Info("Anchor saved", "account", account, "date", anchorDate, "balance", cents)
}
