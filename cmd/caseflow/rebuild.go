package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/talsdata/caseflow/internal/cli"
	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/standardize"
)

func rebuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebuild <source=file> [source=file...]",
		Short: "Rebuild the dataset from scratch",
		Long: `Rebuild the full dataset from a set of exports, replacing everything
currently stored. Each argument pairs an organization with its export file.

Example:
  caseflow rebuild LAET=laet.xlsx LAS=las.xlsx WTLS=wtls.xlsx MALS=mals.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRebuild,
	}

	return cmd
}

func runRebuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	type sourceFile struct {
		source string
		path   string
	}
	var inputs []sourceFile
	for _, arg := range args {
		source, path, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: %q (expected source=file)", common.ErrMalformedInput, arg)
		}
		if !model.ValidSource(source) {
			return fmt.Errorf("%w: %q", common.ErrUnknownSource, source)
		}
		inputs = append(inputs, sourceFile{source: source, path: path})
	}

	slog.Info("Rebuilding dataset", "input_count", len(inputs))

	bar := progressbar.Default(int64(len(inputs)), "standardizing")
	var allRecords []model.CanonicalRecord

	for _, in := range inputs {
		table, err := parseExportFile(ctx, in.path)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", in.path, err)
		}
		if err := standardize.ValidateHeaders(table); err != nil {
			return fmt.Errorf("%s: %w", in.path, err)
		}
		records, err := standardize.Standardize(table, in.source)
		if err != nil {
			return err
		}
		allRecords = append(allRecords, records...)
		_ = bar.Add(1)
	}

	if len(allRecords) == 0 {
		return common.ErrEmptyTable
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.ReplaceAll(ctx, allRecords); err != nil {
		return fmt.Errorf("failed to rebuild dataset: %w", err)
	}

	counts, err := store.CountBySource(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Rebuilt dataset with %d records", len(allRecords))))
	for _, source := range model.OrganizationSources {
		if n, ok := counts[source]; ok {
			fmt.Printf("  %s: %d\n", source, n)
		}
	}
	return nil
}
