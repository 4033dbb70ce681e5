package storage

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/learnhub/internal/config"
	"github.com/alexanderramin/learnhub/internal/repository"
)

// RecordAdapter stores the progress payload as one row of a RecordRepo.
type RecordAdapter struct {
	repo     repository.RecordRepo
	key      string
	location string
	closer   io.Closer
}

// NewRecordAdapter binds repo to key. closer, when non-nil, is closed by
// Close (typically the *sql.DB behind repo).
func NewRecordAdapter(repo repository.RecordRepo, key, location string, closer io.Closer) *RecordAdapter {
	return &RecordAdapter{repo: repo, key: key, location: location, closer: closer}
}

func (a *RecordAdapter) Load(ctx context.Context) ([]byte, bool, error) {
	rec, err := a.repo.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (a *RecordAdapter) Save(ctx context.Context, data []byte) error {
	return a.repo.Put(ctx, a.key, data)
}

func (a *RecordAdapter) Describe(ctx context.Context) (Info, error) {
	info := Info{Backend: config.BackendSQLite, Location: a.location, Key: a.key}
	keys, err := a.repo.ListKeys(ctx)
	if err != nil {
		return info, err
	}
	info.Records = keys
	rec, err := a.repo.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return info, nil
		}
		return info, err
	}
	info.Found = true
	info.SizeBytes = rec.SizeBytes
	info.UpdatedAt = rec.UpdatedAt
	return info, nil
}

func (a *RecordAdapter) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
