package ledger_test

import (
	"testing"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/stretchr/testify/assert"
)

func tx(payment, deposit, balance int64) ledger.Transaction {
	return ledger.Transaction{Payment: payment, Deposit: deposit, Balance: balance}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		txns []ledger.Transaction
		want ledger.AccountType
	}{
		{
			name: "negative payments with non-negative deposits",
			txns: []ledger.Transaction{tx(-5000, 0, 0), tx(0, 20000, 0), tx(-125, 0, 0)},
			want: ledger.Type1,
		},
		{
			name: "inverted credit card convention",
			txns: []ledger.Transaction{tx(4599, 0, 0), tx(0, -10000, 0), tx(315, 0, 0)},
			want: ledger.Type2,
		},
		{
			name: "both columns non-negative",
			txns: []ledger.Transaction{tx(5000, 0, 0), tx(0, 20000, 0)},
			want: ledger.Type3,
		},
		{
			name: "single signed payment column",
			txns: []ledger.Transaction{tx(-5000, 0, 0), tx(7000, 0, 123456)},
			want: ledger.Type4,
		},
		{
			name: "single signed column with zero balances",
			txns: []ledger.Transaction{tx(-5000, 0, 0), tx(7000, 0, 0)},
			want: ledger.Type4,
		},
		{
			name: "mixed signs in both columns with nonzero balance",
			txns: []ledger.Transaction{tx(-100, 200, 500), tx(100, -200, 300)},
			want: ledger.Type0,
		},
		{
			name: "all zeros resolves to first matching rule",
			txns: []ledger.Transaction{tx(0, 0, 0), tx(0, 0, 0)},
			want: ledger.Type1,
		},
		{
			name: "single zero transaction",
			txns: []ledger.Transaction{tx(0, 0, 0)},
			want: ledger.Type1,
		},
		{
			name: "nonzero balance but deposits unused",
			txns: []ledger.Transaction{tx(100, 0, 999), tx(-200, 0, 0)},
			want: ledger.Type4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Classify(tt.txns)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyEmptyBatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		ledger.Classify(nil)
	})
}

func TestAccountTypeString(t *testing.T) {
	assert.Equal(t, "Type 0", ledger.Type0.String())
	assert.Equal(t, "Type 1", ledger.Type1.String())
	assert.Equal(t, "Type 4", ledger.Type4.String())
	assert.False(t, ledger.Type0.Reconcilable())
	assert.True(t, ledger.Type3.Reconcilable())
}
