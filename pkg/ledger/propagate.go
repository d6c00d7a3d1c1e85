package ledger

import (
	"errors"
	"sort"
	"time"
)

// ErrUnclassifiable is returned when balance propagation is requested for a
// Type0 account. The caller must surface the account as unreconciled rather
// than present stale balances.
var ErrUnclassifiable = errors.New("ledger: account type is unclassifiable, balances cannot be propagated")

// ApplyDelta computes the balance after one transaction given the balance
// before it, using the arithmetic rule of the account's sign convention.
func ApplyDelta(accountType AccountType, prev, payment, deposit int64) (int64, error) {
	switch accountType {
	case Type1:
		return prev + payment + deposit, nil
	case Type2:
		return prev - payment - deposit, nil
	case Type3:
		return prev + deposit - payment, nil
	case Type4:
		return prev + payment, nil
	default:
		return prev, ErrUnclassifiable
	}
}

// Propagate fills the Balance field of every transaction of one account,
// anchored at the known (anchorDate, anchorBalance) pair and walking strictly
// forward in time. The input slice is not modified; a new slice is returned
// sorted by date (ties broken by ingestion order) together with the final
// computed balance, which becomes the account's current balance.
//
// Reference lookup: the earliest transaction dated exactly anchorDate; if
// none, the nearest transaction strictly before it; if none precedes, the
// nearest strictly after. When several transactions share the anchor date the
// earliest in sort order wins. Transactions before the reference index are
// left untouched: balances are never back-propagated.
//
// The anchor balance is the true balance as of anchorDate. For an exact or
// nearest-preceding reference the reference row therefore takes the anchor
// balance as-is; when every transaction falls after the anchor date, the
// reference row has not happened yet at the anchor, so its own delta applies
// on top of the anchor balance.
//
// An empty account is a no-op. A Type0 account returns the input unchanged
// and ErrUnclassifiable.
func Propagate(txns []Transaction, anchor InitialBalance, accountType AccountType) ([]Transaction, int64, error) {
	if len(txns) == 0 {
		return txns, anchor.Balance, nil
	}
	if !accountType.Reconcilable() {
		return txns, 0, ErrUnclassifiable
	}

	sorted := SortByDate(txns)

	ref := referenceIndex(sorted, anchor.Date)
	start := ref
	if !sorted[ref].Date.After(anchor.Date) {
		sorted[ref].Balance = anchor.Balance
		start = ref + 1
	}

	prev := anchor.Balance
	for i := start; i < len(sorted); i++ {
		next, err := ApplyDelta(accountType, prev, sorted[i].Payment, sorted[i].Deposit)
		if err != nil {
			return txns, 0, err
		}
		sorted[i].Balance = next
		prev = next
	}

	return sorted, prev, nil
}

// SortByDate returns a copy of txns in chronological order. The sort is
// stable, so transactions on the same date keep their ingestion order.
func SortByDate(txns []Transaction) []Transaction {
	sorted := make([]Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// referenceIndex locates the transaction the anchor balance attaches to.
// txns must be non-empty and sorted by date.
func referenceIndex(txns []Transaction, anchorDate time.Time) int {
	// Earliest exact date match.
	for i, t := range txns {
		if t.Date.Equal(anchorDate) {
			return i
		}
	}
	// Nearest transaction strictly preceding the anchor date.
	for i := len(txns) - 1; i >= 0; i-- {
		if txns[i].Date.Before(anchorDate) {
			return i
		}
	}
	// Everything is after the anchor date: nearest following.
	return 0
}
