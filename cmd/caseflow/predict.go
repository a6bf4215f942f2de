package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talsdata/caseflow/internal/cli"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/predict"
	"github.com/talsdata/caseflow/internal/standardize"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run predictions for a case record",
	}

	caseTime := predictCaseTimeCmd()
	dvRisk := predictDVRiskCmd()
	for _, sub := range []*cobra.Command{caseTime, dvRisk} {
		sub.Flags().String("record", "", "JSON file with raw intake fields instead of a stored case")
		sub.Flags().String("source", model.SourceLAET, "organization source for --record input")
	}
	cmd.AddCommand(caseTime)
	cmd.AddCommand(dvRisk)

	return cmd
}

func predictCaseTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "case-time [case-id]",
		Short: "Estimate hours of attorney time for a case",
		Long: `Estimate the attorney hours a case will take, using the externally
trained duration model. The model endpoint is configured via
models.case_time_url (CASEFLOW_MODELS_CASE_TIME_URL).

The case comes either from the stored dataset (by case ID) or from a JSON
file of raw intake fields passed with --record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := resolveRecord(cmd, args)
			if err != nil {
				return err
			}

			var m predict.CaseTimeModel
			if url := viper.GetString("models.case_time_url"); url != "" {
				m = predict.NewCaseTimeHTTPModel(url)
			}

			estimate := predict.CaseTime(cmd.Context(), m, record)
			printCaseTimeEstimate(record.CaseID, estimate)
			return nil
		},
	}
}

func predictDVRiskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dv-risk [case-id]",
		Short: "Assess domestic-violence risk for a case",
		Long: `Assess domestic-violence risk for a case using the externally trained
risk model. The model endpoint is configured via models.dv_risk_url
(CASEFLOW_MODELS_DV_RISK_URL).

The case comes either from the stored dataset (by case ID) or from a JSON
file of raw intake fields passed with --record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := resolveRecord(cmd, args)
			if err != nil {
				return err
			}

			var m predict.RiskModel
			if url := viper.GetString("models.dv_risk_url"); url != "" {
				m = predict.NewRiskHTTPModel(url)
			}

			assessment := predict.DVRisk(cmd.Context(), m, record)
			printRiskAssessment(record.CaseID, assessment)
			return nil
		},
	}
}

// resolveRecord produces the record to score: a stored case looked up by
// ID, or a --record JSON file of raw intake fields run through the same
// standardization pipeline as an import.
func resolveRecord(cmd *cobra.Command, args []string) (*model.CanonicalRecord, error) {
	recordFile, _ := cmd.Flags().GetString("record")
	if recordFile != "" {
		source, _ := cmd.Flags().GetString("source")
		return recordFromJSON(recordFile, source)
	}
	if len(args) == 0 {
		return nil, errors.New("provide a case ID or --record <json-file>")
	}
	return findRecord(cmd, args[0])
}

func findRecord(cmd *cobra.Command, caseID string) (*model.CanonicalRecord, error) {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	record, err := store.GetRecordByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load case %q: %w", caseID, err)
	}
	return record, nil
}

// recordFromJSON reads a flat JSON object of raw field values and
// standardizes it like a one-row import, so predictions on ad-hoc records
// see exactly the cleaning a stored record got.
func recordFromJSON(path, source string) (*model.CanonicalRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}

	table := &model.RawTable{Rows: [][]string{nil}}
	for name, value := range fields {
		table.Headers = append(table.Headers, name)
		table.Rows[0] = append(table.Rows[0], fmt.Sprint(value))
	}

	records, err := standardize.Standardize(table, source)
	if err != nil {
		return nil, err
	}
	return &records[0], nil
}

func printCaseTimeEstimate(caseID string, e model.CaseTimeEstimate) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Case time estimate for %s", caseID)))
	if e.ComplexityCategory == model.ComplexityError {
		fmt.Println(cli.ErrorStyle.Render("  " + e.ResourceAllocation))
		return
	}
	fmt.Printf("  Predicted hours: %s\n", cli.BoldStyle.Render(strconv.FormatFloat(*e.PredictedHours, 'f', 1, 64)))
	fmt.Printf("  Complexity:      %s\n", e.ComplexityCategory)
	fmt.Printf("  %s\n", cli.SubtleStyle.Render(e.ResourceAllocation))
}

func printRiskAssessment(caseID string, a model.RiskAssessment) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("DV risk assessment for %s", caseID)))
	if a.Level == model.RiskError {
		fmt.Println(cli.ErrorStyle.Render("  " + a.Recommendation))
		return
	}

	style := cli.SuccessStyle
	switch a.Level {
	case model.RiskMedium:
		style = cli.WarningStyle
	case model.RiskHigh:
		style = cli.ErrorStyle
	}

	fmt.Printf("  Risk score: %.2f\n", *a.Score)
	fmt.Printf("  Level:      %s\n", style.Render(a.Level))
	fmt.Printf("  %s\n", cli.SubtleStyle.Render(a.Recommendation))
}
