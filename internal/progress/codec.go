package progress

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// SchemaVersion is written into every persisted record.
const SchemaVersion = 1

var (
	ErrCorruptPayload     = errors.New("corrupt progress payload")
	ErrUnsupportedVersion = errors.New("unsupported progress schema version")
)

type record struct {
	Version  int                  `json:"version"`
	Progress domain.CompletionMap `json:"progress"`
}

// rawRecord accepts both the current layout and the legacy envelope
// {"state": {"progress": ...}, "version": 1} written by the mobile app.
type rawRecord struct {
	Version  *int                 `json:"version"`
	Progress domain.CompletionMap `json:"progress"`
	State    *struct {
		Progress domain.CompletionMap `json:"progress"`
	} `json:"state"`
}

// Encode serializes the full map with the current schema version. A nil
// map is written as an empty object.
func Encode(m domain.CompletionMap) ([]byte, error) {
	if m == nil {
		m = domain.CompletionMap{}
	}
	data, err := json.Marshal(record{Version: SchemaVersion, Progress: m})
	if err != nil {
		return nil, fmt.Errorf("encoding progress: %w", err)
	}
	return data, nil
}

// Decode parses a persisted record. Unknown versions return
// ErrUnsupportedVersion; anything unparseable returns ErrCorruptPayload.
func Decode(data []byte) (domain.CompletionMap, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	if raw.Version == nil {
		return nil, fmt.Errorf("%w: missing version", ErrCorruptPayload)
	}

	migrate, ok := migrations[*raw.Version]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, *raw.Version)
	}
	m, err := migrate(&raw)
	if err != nil {
		return nil, err
	}
	return dropNilCourses(m), nil
}

// migrations maps a stored version to a function producing the current map.
var migrations = map[int]func(*rawRecord) (domain.CompletionMap, error){
	1: decodeV1,
}

func decodeV1(raw *rawRecord) (domain.CompletionMap, error) {
	switch {
	case raw.Progress != nil:
		return raw.Progress, nil
	case raw.State != nil && raw.State.Progress != nil:
		return raw.State.Progress, nil
	default:
		return nil, fmt.Errorf("%w: missing progress", ErrCorruptPayload)
	}
}

// dropNilCourses removes courses stored as JSON null so that later writes
// into them cannot hit a nil inner map.
func dropNilCourses(m domain.CompletionMap) domain.CompletionMap {
	for courseID, lessons := range m {
		if lessons == nil {
			delete(m, courseID)
		}
	}
	return m
}
