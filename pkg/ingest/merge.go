package ingest

import (
	"fmt"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
)

// rowKey identifies a transaction independently of user-assigned labels
// (category, payee, note), so a re-imported statement does not clobber them.
func rowKey(t ledger.Transaction) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d",
		t.Account, t.Date.Format("2006-01-02"), t.Description, t.Payment, t.Deposit)
}

// NewRows returns the incoming transactions not already present in existing.
// Duplicate rows within a statement are kept: two identical coffee purchases
// on the same day are two transactions, so matching consumes existing rows
// one-for-one.
func NewRows(existing, incoming []ledger.Transaction) []ledger.Transaction {
	counts := make(map[string]int, len(existing))
	for _, t := range existing {
		counts[rowKey(t)]++
	}

	var fresh []ledger.Transaction
	for _, t := range incoming {
		key := rowKey(t)
		if counts[key] > 0 {
			counts[key]--
			continue
		}
		fresh = append(fresh, t)
	}
	return fresh
}
