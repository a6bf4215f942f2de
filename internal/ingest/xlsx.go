// Package ingest reads partner-organization exports into raw tables. It does
// no standardization of its own; header validation and cleaning happen
// downstream.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
)

// ExcelParser reads .xlsx exports.
type ExcelParser struct{}

// NewExcelParser creates a new Excel parser.
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// ParseFile reads the first worksheet of an .xlsx file: row one is the
// header row, everything after is data. Trailing blank rows are dropped and
// short rows are padded so every row has one cell per header.
func (p *ExcelParser) ParseFile(ctx context.Context, reader io.Reader) (*model.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	book, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = book.Close() }()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", common.ErrMalformedInput)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", common.ErrEmptyTable, sheets[0])
	}

	table := buildTable(rows)

	slog.Info("Parsed Excel file",
		"sheet", sheets[0],
		"columns", len(table.Headers),
		"rows", len(table.Rows))

	return table, nil
}

// buildTable assembles a raw table from string rows, trimming headers,
// padding short rows and dropping fully blank ones.
func buildTable(rows [][]string) *model.RawTable {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &model.RawTable{Headers: headers}
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		padded := make([]string, len(headers))
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}
	return table
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
