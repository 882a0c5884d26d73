package storage

import (
	"context"
	"time"

	"github.com/athapong/docsense/pkg/analysis"
)

// Record is an analyzed upload handed to a store
type Record struct {
	ID         string           `json:"id"`
	Filename   string           `json:"filename"`
	FileType   string           `json:"fileType"`
	Content    string           `json:"content"`
	UploadDate time.Time        `json:"uploadDate"`
	Analysis   *analysis.Result `json:"analysis"`
}

// Store accepts finished analysis records. Retrieval is out of scope.
type Store interface {
	// Save persists one record
	Save(ctx context.Context, record *Record) error

	// Close releases the store's resources
	Close() error
}

// NopStore discards records
type NopStore struct{}

// Save implements Store
func (NopStore) Save(ctx context.Context, record *Record) error {
	return nil
}

// Close implements Store
func (NopStore) Close() error {
	return nil
}
