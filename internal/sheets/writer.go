package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/service"
)

// Writer implements the DatasetWriter interface for Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

var _ service.DatasetWriter = (*Writer)(nil)

// NewWriter creates a new Google Sheets dataset writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	svc, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: svc,
		logger:  logger,
	}, nil
}

func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	if config.ServiceAccountPath != "" {
		return sheets.NewService(ctx,
			option.WithCredentialsFile(config.ServiceAccountPath),
			option.WithScopes(sheets.SpreadsheetsScope))
	}

	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}
	token := &oauth2.Token{RefreshToken: config.RefreshToken}
	return sheets.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
}

// Write replaces the backup sheet's contents with the full canonical
// dataset: one header row in canonical field order, then one row per
// record. The whole sheet is cleared first so the backup always mirrors
// the collection exactly.
func (w *Writer) Write(ctx context.Context, records []model.CanonicalRecord) error {
	w.logger.Info("starting dataset backup", "records", len(records))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := w.prepareRows(records)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	w.logger.Info("dataset backup complete",
		"spreadsheet_id", spreadsheetID,
		"rows", len(values))
	return nil
}

// getOrCreateSpreadsheet finds the configured spreadsheet, creating it when
// no ID is configured.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		if _, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("configured spreadsheet not accessible: %w", err)
		}
		return w.config.SpreadsheetID, nil
	}

	created, err := w.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: w.config.SpreadsheetName},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	w.logger.Info("created backup spreadsheet", "spreadsheet_id", created.SpreadsheetId)
	return created.SpreadsheetId, nil
}

func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:ZZ", &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	return err
}

// prepareRows converts the dataset to sheet rows: the canonical header row
// followed by every record in canonical field order, all values rendered as
// strings to avoid the Sheets API re-formatting them.
func (w *Writer) prepareRows(records []model.CanonicalRecord) [][]any {
	rows := make([][]any, 0, len(records)+1)

	header := make([]any, len(model.FieldOrder))
	for i, name := range model.FieldOrder {
		header[i] = name
	}
	rows = append(rows, header)

	for i := range records {
		values := records[i].Values()
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = renderCell(v)
		}
		rows = append(rows, row)
	}
	return rows
}

func renderCell(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case *float64:
		if value == nil {
			return ""
		}
		return strconv.FormatFloat(*value, 'f', -1, 64)
	case *time.Time:
		if value == nil {
			return ""
		}
		return value.Format("2006-01-02")
	}
	return fmt.Sprint(v)
}

// writeData writes rows in batches sized to keep individual API calls
// under the payload limit.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	for start := 0; start < len(values); start += w.config.BatchSize {
		end := start + w.config.BatchSize
		if end > len(values) {
			end = len(values)
		}

		rangeStart := fmt.Sprintf("A%d", start+1)
		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeStart, &sheets.ValueRange{
			Values: values[start:end],
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to write batch at row %d: %w", start+1, err)
		}
	}
	return nil
}
