package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
)

// ReadCSV reads a CSV export with the same contract as the Excel parser:
// first row headers, remaining rows data.
func ReadCSV(ctx context.Context, reader io.Reader) (*model.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1 // partner exports have ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CSV file is empty", common.ErrEmptyTable)
	}

	table := buildTable(rows)

	slog.Info("Parsed CSV file",
		"columns", len(table.Headers),
		"rows", len(table.Rows))

	return table, nil
}
