package progress

import "context"

// Loader reads the persisted record. found is false when nothing has been
// stored yet; that is not an error.
type Loader interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
}

// Saver replaces the persisted record with data.
type Saver interface {
	Save(ctx context.Context, data []byte) error
}

// Adapter is a durable key/value byte store holding a single record.
type Adapter interface {
	Loader
	Saver
}
