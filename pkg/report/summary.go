package report

import (
	"sort"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
)

// RowKind distinguishes account rows from the derived total rows.
type RowKind int

const (
	RowAccount RowKind = iota
	RowBucketTotal
	RowNetWorth
)

// Row is one line of the monthly summary: a label and one value per month.
type Row struct {
	Label  string
	Kind   RowKind
	Values []int64 // cents, one per Summary.Months entry
}

// Summary is the month-by-account balance matrix: every account appears in
// every month column, bucket TOTAL rows follow each bucket's accounts, and a
// TOTAL NETWORTH row closes the table.
type Summary struct {
	Months []ledger.MonthKey
	Rows   []Row
}

// Options tunes summary construction.
type Options struct {
	// Mapping assigns accounts to buckets; nil uses the built-in buckets.
	Mapping *BucketMapping
	// Types supplies the classified sign convention per account so net
	// amounts honor each account's convention. Missing accounts are read
	// as the normal banking case (deposit minus payment).
	Types map[string]ledger.AccountType
	// Descending reverses the month column order for display.
	Descending bool
}

// netAmount is the signed effect of one transaction on its account balance.
func netAmount(t ledger.Transaction, accountType ledger.AccountType, known bool) int64 {
	if !known {
		accountType = ledger.Type3
	}
	net, err := ledger.ApplyDelta(accountType, 0, t.Payment, t.Deposit)
	if err != nil {
		// Unclassifiable accounts aggregate under the normal convention
		// rather than vanish from the report.
		net, _ = ledger.ApplyDelta(ledger.Type3, 0, t.Payment, t.Deposit)
	}
	return net
}

// MonthlyBalances samples every account's running balance at each month end
// of the inclusive from..to window. Balances are seeded from the account's
// anchor record (0 when absent), activity before the window is folded into
// the seed, and months without activity carry the prior balance forward.
func MonthlyBalances(txns []ledger.Transaction, anchors map[string]ledger.InitialBalance, from, to ledger.MonthKey, opts Options) Summary {
	months := ledger.MonthsBetween(from, to)
	if len(months) == 0 {
		return Summary{}
	}

	mapping := opts.Mapping
	if mapping == nil {
		mapping = DefaultBucketMapping()
	}

	// Net activity per account per month, plus pre-window activity.
	netByMonth := make(map[string]map[ledger.MonthKey]int64)
	preWindow := make(map[string]int64)
	seen := make(map[string]bool)
	for _, t := range txns {
		seen[t.Account] = true
		accountType, known := opts.Types[t.Account]
		net := netAmount(t, accountType, known)
		m := ledger.MonthOf(t.Date)
		switch {
		case m.Before(from):
			preWindow[t.Account] += net
		case to.Before(m):
			// Outside the reporting window.
		default:
			if netByMonth[t.Account] == nil {
				netByMonth[t.Account] = make(map[ledger.MonthKey]int64)
			}
			netByMonth[t.Account][m] += net
		}
	}
	for account := range anchors {
		seen[account] = true
	}

	accounts := make([]string, 0, len(seen))
	for account := range seen {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	// Cumulative end-of-month series per account.
	series := make(map[string][]int64, len(accounts))
	for _, account := range accounts {
		balance := anchors[account].Balance + preWindow[account]
		values := make([]int64, len(months))
		for i, m := range months {
			balance += netByMonth[account][m]
			values[i] = balance
		}
		series[account] = values
	}

	// Group accounts into buckets, preserving bucket order.
	byBucket := make(map[string][]string)
	for _, account := range accounts {
		bucket := mapping.BucketFor(account)
		byBucket[bucket] = append(byBucket[bucket], account)
	}
	bucketOrder := mapping.Names()
	if len(byBucket[OtherBucket]) > 0 {
		bucketOrder = append(bucketOrder, OtherBucket)
	}

	summary := Summary{Months: months}
	networth := make([]int64, len(months))
	for _, bucket := range bucketOrder {
		total := make([]int64, len(months))
		for _, account := range byBucket[bucket] {
			values := series[account]
			summary.Rows = append(summary.Rows, Row{Label: account, Kind: RowAccount, Values: values})
			for i, v := range values {
				total[i] += v
				networth[i] += v
			}
		}
		summary.Rows = append(summary.Rows, Row{Label: "TOTAL " + bucket, Kind: RowBucketTotal, Values: total})
	}
	summary.Rows = append(summary.Rows, Row{Label: "TOTAL NETWORTH", Kind: RowNetWorth, Values: networth})

	if opts.Descending {
		summary.reverse()
	}
	return summary
}

// Value looks up the balance for a row label and month.
func (s Summary) Value(label string, m ledger.MonthKey) (int64, bool) {
	col := -1
	for i, month := range s.Months {
		if month == m {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, false
	}
	for _, row := range s.Rows {
		if row.Label == label {
			return row.Values[col], true
		}
	}
	return 0, false
}

func (s *Summary) reverse() {
	for i, j := 0, len(s.Months)-1; i < j; i, j = i+1, j-1 {
		s.Months[i], s.Months[j] = s.Months[j], s.Months[i]
	}
	for _, row := range s.Rows {
		for i, j := 0, len(row.Values)-1; i < j; i, j = i+1, j-1 {
			row.Values[i], row.Values[j] = row.Values[j], row.Values[i]
		}
	}
}

// AccountBalances sums each account's net activity: the quick sidebar
// balance, independent of anchors and reconciliation.
func AccountBalances(txns []ledger.Transaction, types map[string]ledger.AccountType) map[string]int64 {
	balances := make(map[string]int64)
	for _, t := range txns {
		accountType, known := types[t.Account]
		balances[t.Account] += netAmount(t, accountType, known)
	}
	return balances
}
