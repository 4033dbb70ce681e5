// Package storage provides the durable byte stores behind the progress
// store: SQLite (default), a JSON file, Redis, and process memory.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/learnhub/internal/config"
	"github.com/alexanderramin/learnhub/internal/db"
	"github.com/alexanderramin/learnhub/internal/progress"
	"github.com/alexanderramin/learnhub/internal/repository"
)

// Info describes the persisted record for diagnostics.
type Info struct {
	Backend   string
	Location  string
	Key       string
	Found     bool
	SizeBytes int
	UpdatedAt time.Time // zero when the backend does not track it

	// Records lists every key the backend holds, when it can enumerate them.
	Records []string
}

// Describer is implemented by every adapter in this package.
type Describer interface {
	Describe(ctx context.Context) (Info, error)
}

// Backend is a progress adapter together with its diagnostics and the
// resources it holds open.
type Backend interface {
	progress.Adapter
	Describer
	io.Closer
}

// Open builds the backend selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		repo := repository.NewSQLiteRecordRepo(database)
		return NewRecordAdapter(repo, cfg.Key, cfg.SQLite.Path, database), nil
	case config.BackendFile:
		return NewFileAdapter(cfg.File.Path), nil
	case config.BackendRedis:
		return OpenRedis(ctx, cfg.Redis, cfg.Key)
	case config.BackendMemory:
		return NewMemoryAdapter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}
