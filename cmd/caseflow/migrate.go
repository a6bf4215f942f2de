package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talsdata/caseflow/internal/cli"
	"github.com/talsdata/caseflow/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			statusOnly, _ := cmd.Flags().GetBool("status")

			path, err := databasePath()
			if err != nil {
				return err
			}

			store, err := storage.NewSQLiteStorage(path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() { _ = store.Close() }()

			if statusOnly {
				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Schema version: %d (expected %d)\n", version, storage.ExpectedSchemaVersion)
				if version < storage.ExpectedSchemaVersion {
					fmt.Println(cli.WarningStyle.Render("Migrations pending: run `caseflow migrate`"))
				} else {
					fmt.Println(cli.SuccessStyle.Render("Schema is up to date"))
				}
				return nil
			}

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			version, err := store.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Schema at version %d", version)))
			return nil
		},
	}

	cmd.Flags().Bool("status", false, "show the current schema version without migrating")

	return cmd
}
