package adapter

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerpath/internal/database"
	"careerpath/internal/domain"

	"github.com/jmoiron/sqlx"
)

const (
	selectValueQuery = `SELECT store_value FROM kv_store WHERE store_key = ?`
	deleteValueQuery = `DELETE FROM kv_store WHERE store_key = ?`
	insertValueQuery = `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES (?, ?, ?)`
)

// SQLStoreAdapter implements domain.KeyValueStore on a single kv_store table.
// Queries are written with '?' placeholders and rebound for the driver.
type SQLStoreAdapter struct {
	db *sqlx.DB
}

// NewSQLStoreAdapter creates a new instance of SQLStoreAdapter.
// The kv_store table must exist (see database.RunMigrations).
func NewSQLStoreAdapter(db *sqlx.DB) domain.KeyValueStore {
	return &SQLStoreAdapter{db: db}
}

func (s *SQLStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	if err := s.db.GetContext(ctx, &value, s.db.Rebind(selectValueQuery), key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return value.String, nil
}

// Set replaces the row for key. Delete and insert run in one transaction,
// which works the same on SQLite and Oracle.
func (s *SQLStoreAdapter) Set(ctx context.Context, key string, value string) error {
	return database.WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(deleteValueQuery), key); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, tx.Rebind(insertValueQuery), key, value, time.Now().UTC())
		return err
	})
}

func (s *SQLStoreAdapter) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(deleteValueQuery), key)
	return err
}

func (s *SQLStoreAdapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
