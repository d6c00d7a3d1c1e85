package cmd

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/spf13/cobra"
)

// reconcileCmd represents the reconcile command.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [account]",
	Short: "Recompute running balances from each account's anchor",
	Long: `Classify each account's sign convention and propagate running
balances forward from its anchor record, writing the balances back to
the ledger.

Accounts whose convention cannot be determined (Type 0) are reported
as unreconciled and left untouched. An account without an anchor is
reconciled from a zero balance at its earliest transaction.

Example:
  ledger reconcile
  ledger reconcile checking`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReconcile,
}

func runReconcile(cmd *cobra.Command, args []string) {
	_, conn := openLedger()
	defer conn.Close()

	store := db.NewTransactionStore(conn)
	anchorStore := db.NewInitialBalanceStore(conn)

	var txns []ledger.Transaction
	var err error
	if len(args) == 1 {
		txns, err = store.ListByAccount(args[0])
	} else {
		txns, err = store.ListAll()
	}
	exitOnError(err, "failed to read transactions")

	if len(txns) == 0 {
		fmt.Println("No transactions to reconcile")
		return
	}

	groups := ledger.GroupByAccount(txns)
	accounts := make([]string, 0, len(groups))
	for account := range groups {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	reconciled, skipped := 0, 0
	for _, account := range accounts {
		anchor, err := anchorStore.Get(account)
		exitOnError(err, "failed to read anchor")

		result := ledger.ReconcileAccount(account, groups[account], anchor)
		if !result.Reconciled {
			fmt.Printf("%-20s  %s  UNRECONCILED (set payments or deposits, or check the data)\n",
				account, result.Type)
			skipped++
			continue
		}

		exitOnError(store.UpdateBalances(result.Transactions), "failed to write balances")
		fmt.Printf("%-20s  %s  %d transactions  balance %s\n",
			account, result.Type, len(result.Transactions), formatCents(result.FinalBalance))
		reconciled++
	}

	slog.Info("Reconcile completed", "reconciled", reconciled, "unreconciled", skipped)
}
