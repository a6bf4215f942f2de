// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/talsdata/caseflow/internal/model"
)

// RecordFilter defines filtering options for canonical-record queries.
type RecordFilter struct {
	Source       string
	OpenedAfter  *time.Time
	OpenedBefore *time.Time
	Limit        int
	Offset       int
}

// Storage defines the contract for the persisted canonical collection.
// Records are append-only once saved; ReplaceAll is the one exception, the
// rebuild operation that swaps the whole collection for a fresh batch.
type Storage interface {
	SaveRecords(ctx context.Context, records []model.CanonicalRecord) error
	ReplaceAll(ctx context.Context, records []model.CanonicalRecord) error
	GetRecords(ctx context.Context, filter RecordFilter) ([]model.CanonicalRecord, error)
	GetRecordByCaseID(ctx context.Context, caseID string) (*model.CanonicalRecord, error)
	Count(ctx context.Context) (int, error)
	CountBySource(ctx context.Context) (map[string]int, error)
	Close() error
}

// DatasetWriter pushes the canonical dataset to the external backup store.
type DatasetWriter interface {
	Write(ctx context.Context, records []model.CanonicalRecord) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
