package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talsdata/caseflow/internal/cli"
	"github.com/talsdata/caseflow/internal/config"
	"github.com/talsdata/caseflow/internal/service"
	"github.com/talsdata/caseflow/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Back up the dataset to Google Sheets",
		Long: `Export the full canonical dataset to a Google Sheets spreadsheet,
replacing the spreadsheet's previous contents.

Requires Google credentials configured via the config file or environment
(GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH, or GOOGLE_SHEETS_CLIENT_ID /
GOOGLE_SHEETS_CLIENT_SECRET / GOOGLE_SHEETS_REFRESH_TOKEN).`,
		RunE: runExport,
	}

	cmd.Flags().String("source", "", "export only one organization's records")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	source, _ := cmd.Flags().GetString("source")

	sheetsConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return fmt.Errorf("failed to load sheets configuration: %w", err)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.GetRecords(ctx, service.RecordFilter{Source: source})
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	if len(records) == 0 {
		fmt.Println(cli.WarningStyle.Render("Nothing to export: dataset is empty"))
		return nil
	}

	writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}

	slog.Info("Exporting dataset to Google Sheets", "record_count", len(records))

	if err := writer.Write(ctx, records); err != nil {
		return fmt.Errorf("failed to write to Google Sheets: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d records to %q", len(records), sheetsConfig.SpreadsheetName)))
	return nil
}
