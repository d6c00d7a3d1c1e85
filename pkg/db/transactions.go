package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
)

const dateLayout = "2006-01-02"

// TransactionStore manages the persisted transaction ledger.
type TransactionStore struct {
	conn *Connection
}

// NewTransactionStore creates a new TransactionStore instance.
func NewTransactionStore(conn *Connection) *TransactionStore {
	return &TransactionStore{conn: conn}
}

// InsertBatch inserts transactions within a single database transaction.
// Row IDs are assigned by SQLite and become the transactions' sequence IDs.
func (s *TransactionStore) InsertBatch(txns []ledger.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	return s.conn.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO transactions (date, description, payee, category, payment, deposit, balance, account, note)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, t := range txns {
			if _, err := stmt.Exec(
				t.Date.Format(dateLayout),
				t.Description,
				t.Payee,
				t.Category,
				t.Payment,
				t.Deposit,
				t.Balance,
				t.Account,
				t.Note,
			); err != nil {
				return fmt.Errorf("failed to insert transaction: %w", err)
			}
		}
		return nil
	})
}

// ListByAccount retrieves all transactions for one account, ordered by date
// with ties in insertion order.
func (s *TransactionStore) ListByAccount(account string) ([]ledger.Transaction, error) {
	return s.list(`
		SELECT id, date, description, payee, category, payment, deposit, balance, account, note
		FROM transactions
		WHERE account = ?
		ORDER BY date, id
	`, account)
}

// ListAll retrieves the full transaction table ordered by date.
func (s *TransactionStore) ListAll() ([]ledger.Transaction, error) {
	return s.list(`
		SELECT id, date, description, payee, category, payment, deposit, balance, account, note
		FROM transactions
		ORDER BY date, id
	`)
}

// Accounts returns the distinct account names present in the ledger.
func (s *TransactionStore) Accounts() ([]string, error) {
	rows, err := s.conn.Query(`SELECT DISTINCT account FROM transactions ORDER BY account`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []string
	for rows.Next() {
		var account string
		if err := rows.Scan(&account); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// UpdateBalances writes the reconciled balance of each transaction back to
// its row, keyed by sequence ID.
func (s *TransactionStore) UpdateBalances(txns []ledger.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	return s.conn.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`UPDATE transactions SET balance = ? WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare balance update: %w", err)
		}
		defer stmt.Close()

		for _, t := range txns {
			if _, err := stmt.Exec(t.Balance, t.SequenceID); err != nil {
				return fmt.Errorf("failed to update balance for row %d: %w", t.SequenceID, err)
			}
		}
		return nil
	})
}

func (s *TransactionStore) list(query string, args ...interface{}) ([]ledger.Transaction, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []ledger.Transaction
	for rows.Next() {
		var t ledger.Transaction
		var dateStr string
		if err := rows.Scan(
			&t.SequenceID,
			&dateStr,
			&t.Description,
			&t.Payee,
			&t.Category,
			&t.Payment,
			&t.Deposit,
			&t.Balance,
			&t.Account,
			&t.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", dateStr, err)
		}
		t.Date = ledger.Date(date.Year(), date.Month(), date.Day())
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
