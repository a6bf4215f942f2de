package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talsdata/caseflow/internal/cli"
	"github.com/talsdata/caseflow/internal/model"
)

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Show record counts by organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			counts, err := store.CountBySource(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Records by organization"))
			total := 0
			for _, source := range model.OrganizationSources {
				n := counts[source]
				total += n
				fmt.Printf("  %-5s %d\n", source, n)
			}
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("  Total %d", total)))
			return nil
		},
	}
}
