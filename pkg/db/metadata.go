package db

import (
	"database/sql"
	"fmt"
)

// SetMetadata stores a key-value metadata pair.
func SetMetadata(conn *Connection, key, value string) error {
	_, err := conn.Exec(`
		INSERT INTO metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata %s: %w", key, err)
	}
	return nil
}

// GetMetadata retrieves a metadata value by key.
// Returns an empty string if the key doesn't exist.
func GetMetadata(conn *Connection, key string) (string, error) {
	var value string
	err := conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata %s: %w", key, err)
	}
	return value, nil
}
