package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/spf13/cobra"
)

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts with current balances and types",
	Long: `List every account in the ledger with its classified sign
convention, anchor status, and current reconciled balance.

Example:
  ledger accounts`,
	Run: runAccounts,
}

func runAccounts(cmd *cobra.Command, args []string) {
	_, conn := openLedger()
	defer conn.Close()

	txns, err := db.NewTransactionStore(conn).ListAll()
	exitOnError(err, "failed to read transactions")
	anchors, err := db.NewInitialBalanceStore(conn).List()
	exitOnError(err, "failed to read anchors")

	groups := ledger.GroupByAccount(txns)
	names := make(map[string]bool, len(groups))
	for account := range groups {
		names[account] = true
	}
	for account := range anchors {
		names[account] = true
	}
	if len(names) == 0 {
		fmt.Println("No accounts yet. Import a statement with `ledger import`.")
		return
	}

	accounts := make([]string, 0, len(names))
	for account := range names {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tTYPE\tTRANSACTIONS\tANCHOR\tBALANCE")
	for _, account := range accounts {
		var anchor *ledger.InitialBalance
		if a, ok := anchors[account]; ok {
			anchor = &a
		}
		result := ledger.ReconcileAccount(account, groups[account], anchor)

		anchorCol := "-"
		if anchor != nil {
			anchorCol = fmt.Sprintf("%s @ %s", formatCents(anchor.Balance), anchor.Date.Format("2006-01-02"))
		}
		balanceCol := formatCents(result.FinalBalance)
		if !result.Reconciled && len(groups[account]) > 0 {
			balanceCol = "UNRECONCILED"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			account, result.Type, len(groups[account]), anchorCol, balanceCol)
	}
	exitOnError(w.Flush(), "failed to render accounts")

	slog.Info("Accounts listed", "count", len(accounts))
}
