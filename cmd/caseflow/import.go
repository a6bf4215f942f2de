package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/talsdata/caseflow/internal/cli"
	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/standardize"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import --source <org> [files...]",
		Short: "Import and standardize case record exports",
		Long: `Import case-record exports from a partner organization, standardize them
into the canonical schema, and append them to the dataset.

Examples:
  # Import a single export
  caseflow import --source LAET ~/Downloads/laet_q1.xlsx

  # Import several exports at once
  caseflow import --source MALS ~/Downloads/mals_*.xlsx

  # Preview without saving
  caseflow import --source WTLS --dry-run export.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("source", "", fmt.Sprintf("organization source (%s)", strings.Join(model.OrganizationSources, ", ")))
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	if !model.ValidSource(source) {
		return fmt.Errorf("%w: %q (expected one of %s)",
			common.ErrUnknownSource, source, strings.Join(model.OrganizationSources, ", "))
	}

	slog.Info("Importing case record exports",
		"source", source,
		"file_count", len(args),
		"dry_run", dryRun)

	bar := progressbar.Default(int64(len(args)), "standardizing")
	var allRecords []model.CanonicalRecord
	fileResults := make(map[string]int)

	for _, path := range args {
		table, err := parseExportFile(ctx, path)
		if err != nil {
			slog.Error("Failed to parse file", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		if err := standardize.ValidateHeaders(table); err != nil {
			var userErr *common.UserError
			if errors.As(err, &userErr) {
				fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("⚠ %s: %s", filepath.Base(path), userErr.UserMessage)))
			}
			slog.Error("File failed header validation", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		records, err := standardize.Standardize(table, source)
		if err != nil {
			return err
		}

		fileResults[filepath.Base(path)] = len(records)
		allRecords = append(allRecords, records...)
		_ = bar.Add(1)
	}

	if len(allRecords) == 0 {
		fmt.Println(cli.WarningStyle.Render("No records found in any file"))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Import summary"))
	for file, count := range fileResults {
		fmt.Printf("  %s: %d records\n", file, count)
	}
	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Total: %d records from %s", len(allRecords), source)))

	if dryRun {
		fmt.Println(cli.SubtleStyle.Render("Dry run: nothing saved"))
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveRecords(ctx, allRecords); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Saved %d records (dataset now holds %d)", len(allRecords), total)))
	return nil
}
