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

var (
	reportFrom       string
	reportTo         string
	reportDescending bool
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly balance report with bucket totals and net worth",
	Long: `Report every account's end-of-month balance over a month range.

Accounts are grouped into buckets (checking, savings, credit, loans,
retirement) by name keyword, each bucket gets a TOTAL row, and the
table closes with TOTAL NETWORTH. Months without activity carry the
prior balance forward.

Example:
  ledger report --from 2024-01 --to 2024-06
  ledger report --from 2024-01 --to 2024-06 --descending`,
	Run: runReport,
}

func init() {
	// Flags
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "First month (YYYY-MM) (required)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Last month (YYYY-MM) (required)")
	reportCmd.Flags().BoolVar(&reportDescending, "descending", false, "Most recent month first")

	reportCmd.MarkFlagRequired("from")
	reportCmd.MarkFlagRequired("to")
}

func runReport(cmd *cobra.Command, args []string) {
	from, err := parseMonth(reportFrom)
	exitOnError(err, "invalid --from")
	to, err := parseMonth(reportTo)
	exitOnError(err, "invalid --to")
	if to.Before(from) {
		exitOnError(fmt.Errorf("--to %s precedes --from %s", reportTo, reportFrom), "invalid month range")
	}

	cfg, conn := openLedger()
	defer conn.Close()

	txns, err := db.NewTransactionStore(conn).ListAll()
	exitOnError(err, "failed to read transactions")
	anchors, err := db.NewInitialBalanceStore(conn).List()
	exitOnError(err, "failed to read anchors")

	summary := report.MonthlyBalances(txns, anchors, from, to, report.Options{
		Mapping:    loadBucketMapping(cfg),
		Types:      classifyAll(txns),
		Descending: reportDescending,
	})
	if len(summary.Months) == 0 {
		fmt.Println("Nothing to report")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "ACCOUNT")
	for _, m := range summary.Months {
		fmt.Fprintf(w, "\t%s", m)
	}
	fmt.Fprintln(w)
	for _, row := range summary.Rows {
		fmt.Fprint(w, row.Label)
		for _, v := range row.Values {
			fmt.Fprintf(w, "\t%s", formatCents(v))
		}
		fmt.Fprintln(w)
		if row.Kind != report.RowAccount {
			fmt.Fprintln(w)
		}
	}
	exitOnError(w.Flush(), "failed to render report")

	slog.Info("Report rendered", "months", len(summary.Months), "rows", len(summary.Rows))
}
