package ledger_test

import (
	"testing"
	"time"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileAccount(t *testing.T) {
	jan5 := ledger.Date(2024, time.January, 5)
	jan10 := ledger.Date(2024, time.January, 10)

	t.Run("classifies and propagates with anchor", func(t *testing.T) {
		txns := []ledger.Transaction{
			datedTx(1, jan5, 0, 20000),
			datedTx(2, jan10, 5000, 0),
		}
		anchor := &ledger.InitialBalance{
			Account: "Checking",
			Date:    ledger.Date(2024, time.January, 1),
			Balance: 100000,
		}

		res := ledger.ReconcileAccount("Checking", txns, anchor)
		assert.True(t, res.Reconciled)
		assert.Equal(t, ledger.Type3, res.Type)
		assert.Equal(t, int64(115000), res.FinalBalance)
	})

	t.Run("missing anchor defaults to zero at earliest date", func(t *testing.T) {
		txns := []ledger.Transaction{
			datedTx(2, jan10, 5000, 0),
			datedTx(1, jan5, 0, 20000),
		}

		res := ledger.ReconcileAccount("Checking", txns, nil)
		require.True(t, res.Reconciled)
		// Earliest transaction is the reference with balance 0.
		assert.Equal(t, int64(0), res.Transactions[0].Balance)
		assert.Equal(t, int64(-5000), res.Transactions[1].Balance)
		assert.Equal(t, int64(-5000), res.FinalBalance)
	})

	t.Run("unclassifiable account is surfaced, not zeroed", func(t *testing.T) {
		txns := []ledger.Transaction{
			{SequenceID: 1, Date: jan5, Payment: -100, Deposit: 200, Balance: 42, Account: "Mystery"},
			{SequenceID: 2, Date: jan10, Payment: 100, Deposit: -200, Balance: 43, Account: "Mystery"},
		}

		res := ledger.ReconcileAccount("Mystery", txns, nil)
		assert.False(t, res.Reconciled)
		assert.Equal(t, ledger.Type0, res.Type)
		// Prior balances survive untouched.
		assert.Equal(t, int64(42), res.Transactions[0].Balance)
		assert.Equal(t, int64(43), res.Transactions[1].Balance)
	})

	t.Run("empty account is a no-op", func(t *testing.T) {
		res := ledger.ReconcileAccount("Empty", nil, &ledger.InitialBalance{Balance: 777})
		assert.False(t, res.Reconciled)
		assert.Empty(t, res.Transactions)
		assert.Equal(t, int64(777), res.FinalBalance)
	})
}

func TestGroupByAccount(t *testing.T) {
	txns := []ledger.Transaction{
		{SequenceID: 1, Account: "A"},
		{SequenceID: 2, Account: "B"},
		{SequenceID: 3, Account: "A"},
	}

	groups := ledger.GroupByAccount(txns)
	require.Len(t, groups, 2)
	assert.Equal(t, []int64{1, 3}, []int64{groups["A"][0].SequenceID, groups["A"][1].SequenceID})
	assert.Len(t, groups["B"], 1)
}

func TestMonthsBetween(t *testing.T) {
	from := ledger.MonthKey{Year: 2023, Month: time.November}
	to := ledger.MonthKey{Year: 2024, Month: time.February}

	months := ledger.MonthsBetween(from, to)
	require.Len(t, months, 4)
	assert.Equal(t, ledger.MonthKey{Year: 2023, Month: time.December}, months[1])
	assert.Equal(t, ledger.MonthKey{Year: 2024, Month: time.February}, months[3])

	assert.Nil(t, ledger.MonthsBetween(to, from))
}

func TestMonthKeyEnd(t *testing.T) {
	assert.Equal(t, ledger.Date(2024, time.February, 29), ledger.MonthKey{Year: 2024, Month: time.February}.End())
	assert.Equal(t, "Jan '24", ledger.MonthKey{Year: 2024, Month: time.January}.String())
}
