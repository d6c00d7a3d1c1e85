package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shunichi-ikebuchi/finance-ledger/pkg/ledger"
)

// InitialBalanceStore manages the per-account balance anchors.
type InitialBalanceStore struct {
	conn *Connection
}

// NewInitialBalanceStore creates a new InitialBalanceStore instance.
func NewInitialBalanceStore(conn *Connection) *InitialBalanceStore {
	return &InitialBalanceStore{conn: conn}
}

// Upsert inserts or replaces the anchor for an account.
// An account carries at most one anchor; setting a new one overwrites it.
func (s *InitialBalanceStore) Upsert(anchor ledger.InitialBalance) error {
	_, err := s.conn.Exec(`
		INSERT INTO initial_balances (account, anchor_date, anchor_balance, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(account) DO UPDATE SET
			anchor_date = excluded.anchor_date,
			anchor_balance = excluded.anchor_balance,
			updated_at = CURRENT_TIMESTAMP
	`, anchor.Account, anchor.Date.Format(dateLayout), anchor.Balance)
	if err != nil {
		return fmt.Errorf("failed to upsert initial balance: %w", err)
	}
	return nil
}

// Get retrieves the anchor for an account.
// Returns nil if the account has no anchor.
func (s *InitialBalanceStore) Get(account string) (*ledger.InitialBalance, error) {
	var dateStr string
	anchor := ledger.InitialBalance{Account: account}
	err := s.conn.QueryRow(`
		SELECT anchor_date, anchor_balance
		FROM initial_balances
		WHERE account = ?
	`, account).Scan(&dateStr, &anchor.Balance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get initial balance: %w", err)
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid stored anchor date %q: %w", dateStr, err)
	}
	anchor.Date = ledger.Date(date.Year(), date.Month(), date.Day())
	return &anchor, nil
}

// List retrieves all anchors keyed by account name.
func (s *InitialBalanceStore) List() (map[string]ledger.InitialBalance, error) {
	rows, err := s.conn.Query(`
		SELECT account, anchor_date, anchor_balance
		FROM initial_balances
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list initial balances: %w", err)
	}
	defer rows.Close()

	anchors := make(map[string]ledger.InitialBalance)
	for rows.Next() {
		var anchor ledger.InitialBalance
		var dateStr string
		if err := rows.Scan(&anchor.Account, &dateStr, &anchor.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan initial balance: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid stored anchor date %q: %w", dateStr, err)
		}
		anchor.Date = ledger.Date(date.Year(), date.Month(), date.Day())
		anchors[anchor.Account] = anchor
	}
	return anchors, rows.Err()
}
