package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial canonical case record schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS case_records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					client_id TEXT,
					case_id TEXT,
					source TEXT NOT NULL,
					date_opened DATETIME,
					date_closed DATETIME,
					days_open REAL,
					case_time REAL,
					poverty_pct REAL,
					adj_poverty_pct REAL,
					income_eligible TEXT,
					income_override_reason TEXT,
					income_waiver_status TEXT,
					asset_eligible TEXT,
					asset_override_reason TEXT,
					asset_waiver_status TEXT,
					age_intake REAL,
					gender TEXT,
					race TEXT,
					ethnicity TEXT,
					disabled TEXT,
					veteran TEXT,
					language TEXT,
					lgbt TEXT,
					citizenship TEXT,
					household_total REAL,
					household_adults REAL,
					household_children REAL,
					living_arrangement TEXT,
					county_residence TEXT,
					zip_code TEXT,
					county_dispute TEXT,
					legal_problem_code TEXT,
					funding_source TEXT,
					pai_case TEXT,
					referral_source TEXT,
					domestic_violence TEXT,
					close_reason TEXT,
					outcome_category TEXT,
					outcome_amount REAL,
					outcome TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_case_records_source ON case_records(source)`,
				`CREATE INDEX idx_case_records_date_opened ON case_records(date_opened)`,
				`CREATE INDEX idx_case_records_case_id ON case_records(case_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Index legal problem code for aggregation queries",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_case_records_problem_code ON case_records(legal_problem_code)`)
			return err
		},
	},
}

// runMigrations applies any pending migrations inside transactions.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var current int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		slog.Info("Applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}
