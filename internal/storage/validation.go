package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/talsdata/caseflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrInvalidRecord = errors.New("invalid record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecords validates a batch of canonical records.
func validateRecords(records []model.CanonicalRecord) error {
	if records == nil {
		return fmt.Errorf("%w: records", ErrNilParameter)
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: records", ErrEmptySlice)
	}

	for i := range records {
		if err := validateRecord(&records[i]); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// validateRecord checks the identity fields every stored record must carry.
func validateRecord(r *model.CanonicalRecord) error {
	if r.Source == "" {
		return fmt.Errorf("%w: missing source", ErrInvalidRecord)
	}
	if !model.ValidSource(r.Source) {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidRecord, r.Source)
	}
	return nil
}
