package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/learnhub/internal/db"
)

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Get(ctx context.Context, key string) (*Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT key, value, size_bytes, updated_at FROM kv_records WHERE key = ?`, key)

	var rec Record
	var updatedAt string
	if err := row.Scan(&rec.Key, &rec.Value, &rec.SizeBytes, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning record %q: %w", key, err)
	}
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

func (r *SQLiteRecordRepo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_records (key, value, size_bytes, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			size_bytes = excluded.size_bytes,
			updated_at = excluded.updated_at`,
		key, value, len(value), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting record %q: %w", key, err)
	}
	return nil
}

// ListKeys returns every stored key in ascending order.
func (r *SQLiteRecordRepo) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM kv_records ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing record keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning record key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
