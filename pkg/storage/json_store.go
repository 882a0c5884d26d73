package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/athapong/docsense/pkg/metrics"
)

// JSONStore implements Store with one JSON file per record
type JSONStore struct {
	dir string
}

// NewJSONStore creates a new JSON store writing under dir
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{
		dir: dir,
	}
}

// Path returns the file a record with the given ID is written to
func (s *JSONStore) Path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save stores the record as indented JSON
func (s *JSONStore) Save(ctx context.Context, record *Record) error {
	if record == nil || record.ID == "" {
		return errors.New("record must have an id")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		metrics.StoreWrites.WithLabelValues("json", "error").Inc()
		return errors.Wrap(err, "failed to create store directory")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		metrics.StoreWrites.WithLabelValues("json", "error").Inc()
		return errors.Wrap(err, "failed to encode record")
	}

	// written to a temp file and renamed into place
	tmp := s.Path(record.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		metrics.StoreWrites.WithLabelValues("json", "error").Inc()
		return errors.Wrapf(err, "failed to write record %s", record.ID)
	}
	if err := os.Rename(tmp, s.Path(record.ID)); err != nil {
		metrics.StoreWrites.WithLabelValues("json", "error").Inc()
		return errors.Wrapf(err, "failed to write record %s", record.ID)
	}

	metrics.StoreWrites.WithLabelValues("json", "success").Inc()
	return nil
}

// Close implements Store
func (s *JSONStore) Close() error {
	return nil
}
