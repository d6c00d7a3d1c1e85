package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/report"
	"github.com/spf13/cobra"
)

var breakdownMonth string

// breakdownCmd represents the breakdown command.
var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Per-account cash flow statistics for one month",
	Long: `Show per-account statistics for a single calendar month: starting
balance, income, expenses, net cash flow, ending balance and savings
rate.

Example:
  ledger breakdown --month 2024-03`,
	Run: runBreakdown,
}

func init() {
	// Flags
	breakdownCmd.Flags().StringVar(&breakdownMonth, "month", "", "Month to break down (YYYY-MM) (required)")

	breakdownCmd.MarkFlagRequired("month")
}

func runBreakdown(cmd *cobra.Command, args []string) {
	month, err := parseMonth(breakdownMonth)
	exitOnError(err, "invalid --month")

	cfg, conn := openLedger()
	defer conn.Close()

	txns, err := db.NewTransactionStore(conn).ListAll()
	exitOnError(err, "failed to read transactions")
	anchors, err := db.NewInitialBalanceStore(conn).List()
	exitOnError(err, "failed to read anchors")

	breakdowns := report.MonthBreakdown(txns, anchors, month, report.Options{
		Mapping: loadBucketMapping(cfg),
		Types:   classifyAll(txns),
	})
	if len(breakdowns) == 0 {
		fmt.Println("No accounts to break down")
		return
	}

	fmt.Printf("Breakdown for %s\n\n", month)
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tSTART\tINCOME\tEXPENSES\tNET\tEND\tSAVINGS RATE")
	for _, b := range breakdowns {
		rate := "-"
		if b.HasRate {
			rate = fmt.Sprintf("%.1f%%", b.SavingsRate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Account,
			formatCents(b.StartBalance),
			formatCents(b.Income),
			formatCents(b.Expenses),
			formatCents(b.NetCashFlow),
			formatCents(b.EndBalance),
			rate,
		)
	}
	exitOnError(w.Flush(), "failed to render breakdown")

	slog.Info("Breakdown rendered", "month", breakdownMonth, "accounts", len(breakdowns))
}
