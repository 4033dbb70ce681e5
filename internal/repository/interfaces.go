package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Record is one named value in the key/value table.
type Record struct {
	Key       string
	Value     []byte
	SizeBytes int
	UpdatedAt time.Time
}

type RecordRepo interface {
	Get(ctx context.Context, key string) (*Record, error)
	Put(ctx context.Context, key string, value []byte) error
	ListKeys(ctx context.Context) ([]string, error)
}
