package ledger

// ReconcileResult holds the outcome of reconciling one account.
type ReconcileResult struct {
	Account      string
	Type         AccountType
	Transactions []Transaction // sorted by date, balances filled when Reconciled
	FinalBalance int64         // cents; current balance of the account
	Reconciled   bool          // false for Type0 accounts
}

// ReconcileAccount classifies an account's transactions and propagates
// balances from its anchor record. A nil anchor is the documented default:
// balance 0 anchored at the earliest transaction date.
//
// Type0 accounts are not an error: the result carries the untouched
// transactions with Reconciled set to false so the caller can flag the
// account instead of showing misleading figures. An account with no
// transactions is a safe no-op.
func ReconcileAccount(account string, txns []Transaction, anchor *InitialBalance) ReconcileResult {
	if len(txns) == 0 {
		result := ReconcileResult{Account: account, Type: Type0, Reconciled: false}
		if anchor != nil {
			result.FinalBalance = anchor.Balance
		}
		return result
	}

	accountType := Classify(txns)

	sorted := SortByDate(txns)
	ref := InitialBalance{Account: account}
	if anchor != nil {
		ref = *anchor
	} else {
		ref.Date = sorted[0].Date
	}

	updated, final, err := Propagate(sorted, ref, accountType)
	if err != nil {
		return ReconcileResult{
			Account:      account,
			Type:         accountType,
			Transactions: sorted,
			Reconciled:   false,
		}
	}

	return ReconcileResult{
		Account:      account,
		Type:         accountType,
		Transactions: updated,
		FinalBalance: final,
		Reconciled:   true,
	}
}

// GroupByAccount splits a mixed transaction table into per-account slices,
// preserving ingestion order within each account.
func GroupByAccount(txns []Transaction) map[string][]Transaction {
	groups := make(map[string][]Transaction)
	for _, t := range txns {
		groups[t.Account] = append(groups[t.Account], t)
	}
	return groups
}
