// Package db provides SQLite persistence for the transaction ledger,
// per-account initial balances, and metadata.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Transaction ledger
-- One row per imported or user-entered transaction. Money values are
-- integer cents; balance holds the reconciled running balance.
CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,                -- YYYY-MM-DD
    description TEXT NOT NULL DEFAULT '',
    payee TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    payment INTEGER NOT NULL DEFAULT 0,
    deposit INTEGER NOT NULL DEFAULT 0,
    balance INTEGER NOT NULL DEFAULT 0,
    account TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_transactions_account_date
    ON transactions(account, date);

-- Initial balances
-- One anchor record per account: the (date, balance) pair treated as
-- ground truth for balance propagation. Re-adding an account updates in place.
CREATE TABLE IF NOT EXISTS initial_balances (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    account TEXT NOT NULL UNIQUE,
    anchor_date TEXT NOT NULL,         -- YYYY-MM-DD
    anchor_balance INTEGER NOT NULL,   -- cents
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Metadata table
-- Stores key-value metadata, e.g. the last import timestamp.
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
