package db_test

import (
	"path/filepath"
	"testing"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/db"
	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.Connection {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestTransactionStoreRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	store := db.NewTransactionStore(conn)

	txns := []ledger.Transaction{
		{Date: ledger.Date(2024, 1, 5), Description: "coffee", Payment: 450, Account: "checking"},
		{Date: ledger.Date(2024, 1, 2), Description: "payroll", Deposit: 250000, Account: "checking", Category: "income"},
		{Date: ledger.Date(2024, 1, 2), Description: "transfer", Deposit: 10000, Account: "savings"},
	}
	require.NoError(t, store.InsertBatch(txns))

	got, err := store.ListByAccount("checking")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Date order, not insertion order.
	assert.Equal(t, "payroll", got[0].Description)
	assert.Equal(t, int64(250000), got[0].Deposit)
	assert.Equal(t, "income", got[0].Category)
	assert.Equal(t, "coffee", got[1].Description)
	assert.Equal(t, ledger.Date(2024, 1, 5), got[1].Date)
	assert.NotZero(t, got[0].SequenceID)

	all, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	accounts, err := store.Accounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"checking", "savings"}, accounts)
}

func TestTransactionStoreUpdateBalances(t *testing.T) {
	conn := openTestDB(t)
	store := db.NewTransactionStore(conn)

	require.NoError(t, store.InsertBatch([]ledger.Transaction{
		{Date: ledger.Date(2024, 1, 2), Deposit: 20000, Account: "checking"},
		{Date: ledger.Date(2024, 1, 5), Payment: 5000, Account: "checking"},
	}))

	txns, err := store.ListByAccount("checking")
	require.NoError(t, err)
	txns[0].Balance = 120000
	txns[1].Balance = 115000
	require.NoError(t, store.UpdateBalances(txns))

	got, err := store.ListByAccount("checking")
	require.NoError(t, err)
	assert.Equal(t, int64(120000), got[0].Balance)
	assert.Equal(t, int64(115000), got[1].Balance)
}

func TestInitialBalanceStoreUpsert(t *testing.T) {
	conn := openTestDB(t)
	store := db.NewInitialBalanceStore(conn)

	missing, err := store.Get("checking")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Upsert(ledger.InitialBalance{
		Account: "checking",
		Date:    ledger.Date(2024, 1, 1),
		Balance: 100000,
	}))

	got, err := store.Get("checking")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(100000), got.Balance)
	assert.Equal(t, ledger.Date(2024, 1, 1), got.Date)

	// Second upsert replaces, never duplicates.
	require.NoError(t, store.Upsert(ledger.InitialBalance{
		Account: "checking",
		Date:    ledger.Date(2024, 6, 1),
		Balance: 250000,
	}))

	anchors, err := store.List()
	require.NoError(t, err)
	require.Len(t, anchors, 1)
	assert.Equal(t, int64(250000), anchors["checking"].Balance)
	assert.Equal(t, ledger.Date(2024, 6, 1), anchors["checking"].Date)
}

func TestMetadata(t *testing.T) {
	conn := openTestDB(t)

	value, err := db.GetMetadata(conn, "last_import")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, db.SetMetadata(conn, "last_import", "2024-01-01T00:00:00Z"))
	require.NoError(t, db.SetMetadata(conn, "last_import", "2024-02-01T00:00:00Z"))

	value, err = db.GetMetadata(conn, "last_import")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01T00:00:00Z", value)
}
