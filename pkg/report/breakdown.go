package report

import (
	"sort"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
)

// AccountBreakdown holds one account's statistics for a single month.
type AccountBreakdown struct {
	Account      string
	StartBalance int64 // cents, balance entering the month
	Income       int64 // cents, sum of positive net activity
	Expenses     int64 // cents, sum of negative net activity, as a positive number
	NetCashFlow  int64 // cents, Income - Expenses
	EndBalance   int64 // cents, StartBalance + NetCashFlow
	SavingsRate  float64
	HasRate      bool // false when the rate is undefined (no income or zero start)
}

// MonthBreakdown computes per-account statistics for one calendar month:
// starting balance, income, expenses, net cash flow, ending balance and
// savings rate. The starting balance is the anchor plus all net activity
// strictly before the month.
func MonthBreakdown(txns []ledger.Transaction, anchors map[string]ledger.InitialBalance, month ledger.MonthKey, opts Options) []AccountBreakdown {
	start := make(map[string]int64)
	income := make(map[string]int64)
	expenses := make(map[string]int64)
	seen := make(map[string]bool)

	for _, t := range txns {
		seen[t.Account] = true
		accountType, known := opts.Types[t.Account]
		net := netAmount(t, accountType, known)
		m := ledger.MonthOf(t.Date)
		switch {
		case m.Before(month):
			start[t.Account] += net
		case m == month:
			if net >= 0 {
				income[t.Account] += net
			} else {
				expenses[t.Account] += -net
			}
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

	breakdowns := make([]AccountBreakdown, 0, len(accounts))
	for _, account := range accounts {
		b := AccountBreakdown{
			Account:      account,
			StartBalance: anchors[account].Balance + start[account],
			Income:       income[account],
			Expenses:     expenses[account],
		}
		b.NetCashFlow = b.Income - b.Expenses
		b.EndBalance = b.StartBalance + b.NetCashFlow
		if b.Income != 0 && b.StartBalance != 0 {
			b.SavingsRate = float64(b.NetCashFlow) / float64(b.StartBalance) * 100
			b.HasRate = true
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns
}
