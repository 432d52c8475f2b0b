package repositories

import (
	"database/sql"
	"fmt"
)

// withTx runs fn inside a transaction, rolling back on any error. Every
// mutation+audit pair in the workflow goes through here so either both rows
// persist or neither does.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
