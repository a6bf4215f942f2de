package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/talsdata/caseflow/internal/config"
	"github.com/talsdata/caseflow/internal/ingest"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/storage"
)

// databasePath resolves the SQLite database location from config, falling
// back to the standard data directory.
func databasePath() (string, error) {
	if v := viper.GetString("database.path"); v != "" {
		return config.ExpandPath(v), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "caseflow", "caseflow.db"), nil
}

// openStorage opens the record store and brings its schema up to date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// parseExportFile reads one export file into a raw table, choosing the
// parser by extension.
func parseExportFile(ctx context.Context, path string) (*model.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ingest.ReadCSV(ctx, f)
	case ".xlsx":
		return ingest.NewExcelParser().ParseFile(ctx, f)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .xlsx or .csv)", filepath.Ext(path))
	}
}
