package standardize

import (
	"errors"
	"testing"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/model"
)

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantErr bool
	}{
		{
			name:    "real header row passes",
			headers: []string{"Client ID", "Matter/Case ID", "Date Opened", "Gender", "Race"},
			wantErr: false,
		},
		{
			name:    "already canonical header row passes",
			headers: []string{"client_id", "case_id", "date_opened", "source"},
			wantErr: false,
		},
		{
			name:    "report title row rejected",
			headers: []string{"Client Report for First Quarter 2023"},
			wantErr: true,
		},
		{
			name:    "too few recognized headers rejected",
			headers: []string{"Foo", "Bar", "Baz", "Gender"},
			wantErr: true,
		},
		{
			name:    "exactly minimum recognized headers passes",
			headers: []string{"Gender", "Race", "Zip Code"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &model.RawTable{Headers: tt.headers}
			err := ValidateHeaders(table)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateHeaders(%v) error = %v, wantErr %v", tt.headers, err, tt.wantErr)
			}
			if err != nil {
				var userErr *common.UserError
				if !errors.As(err, &userErr) {
					t.Errorf("gate error is not a UserError: %v", err)
				}
				if !errors.Is(err, common.ErrMalformedInput) {
					t.Errorf("gate error does not wrap ErrMalformedInput: %v", err)
				}
			}
		})
	}
}

func TestStandardize(t *testing.T) {
	table := &model.RawTable{
		Headers: []string{"Matter/Case ID", "Gender", "Race", "Report Notes"},
		Rows: [][]string{
			{"A100", "male", "caucasian", "ignore me"},
			{"A101", "F", "nan", ""},
		},
	}

	records, err := Standardize(table, model.SourceLAET)
	if err != nil {
		t.Fatalf("Standardize failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.CaseID != "A100" {
		t.Errorf("CaseID = %q, want A100", first.CaseID)
	}
	if first.Gender != "Male" {
		t.Errorf("Gender = %q, want Male", first.Gender)
	}
	if first.Race != "White" {
		t.Errorf("Race = %q, want White", first.Race)
	}
	if first.Source != model.SourceLAET {
		t.Errorf("Source = %q, want %q", first.Source, model.SourceLAET)
	}
	if first.ClientID != "" {
		t.Errorf("ClientID = %q, want empty", first.ClientID)
	}
	if first.DateOpened != nil {
		t.Errorf("DateOpened = %v, want nil", first.DateOpened)
	}
	if first.AgeIntake != nil {
		t.Errorf("AgeIntake = %v, want nil", first.AgeIntake)
	}

	second := records[1]
	if second.Gender != "Female" {
		t.Errorf("Gender = %q, want Female", second.Gender)
	}
	if second.Race != "Other/Unknown" {
		t.Errorf("Race = %q, want Other/Unknown", second.Race)
	}
}

func TestStandardizeUnknownSource(t *testing.T) {
	table := &model.RawTable{Headers: []string{"Gender"}, Rows: [][]string{{"M"}}}

	_, err := Standardize(table, "NOPE")
	if !errors.Is(err, common.ErrUnknownSource) {
		t.Fatalf("error = %v, want ErrUnknownSource", err)
	}
}

func TestStandardizeMALSCaseIDFix(t *testing.T) {
	table := &model.RawTable{
		Headers: []string{"Matter/Case ID", "Gender", "Race"},
		Rows:    [][]string{{"12E3456", "M", "White"}},
	}

	records, err := Standardize(table, model.SourceMALS)
	if err != nil {
		t.Fatalf("Standardize failed: %v", err)
	}
	if records[0].CaseID != "123456" {
		t.Errorf("CaseID = %q, want 123456", records[0].CaseID)
	}

	records, err = Standardize(table, model.SourceLAET)
	if err != nil {
		t.Fatalf("Standardize failed: %v", err)
	}
	if records[0].CaseID != "12E3456" {
		t.Errorf("CaseID = %q, want 12E3456 for non-MALS source", records[0].CaseID)
	}
}

func TestStandardizeIdempotent(t *testing.T) {
	raw := &model.RawTable{
		Headers: []string{"Matter/Case ID", "Gender", "Race", "Date Opened", "Outcome Amount"},
		Rows:    [][]string{{"A100", "male", "caucasian", "2023-05-01 14:30:00", "$1,234.50"}},
	}

	once, err := Standardize(raw, model.SourceWTLS)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}

	// Re-standardizing the canonical output must not change anything:
	// already-canonical values map to themselves and the source column wins
	// over the caller's label.
	canonical := &model.RawTable{
		Headers: []string{"case_id", "gender", "race", "date_opened", "outcome_amount", "source"},
		Rows: [][]string{{
			once[0].CaseID,
			once[0].Gender,
			once[0].Race,
			"2023-05-01",
			"1234.50",
			once[0].Source,
		}},
	}

	twice, err := Standardize(canonical, model.SourceLAS)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	got, want := twice[0], once[0]
	if got.CaseID != want.CaseID || got.Gender != want.Gender || got.Race != want.Race {
		t.Errorf("re-standardized record differs: got %+v, want %+v", got, want)
	}
	if got.Source != model.SourceWTLS {
		t.Errorf("Source = %q, want %q from the source column", got.Source, model.SourceWTLS)
	}
	if got.DateOpened == nil || want.DateOpened == nil || !got.DateOpened.Equal(*want.DateOpened) {
		t.Errorf("DateOpened differs: got %v, want %v", got.DateOpened, want.DateOpened)
	}
	if got.OutcomeAmount == nil || *got.OutcomeAmount != *want.OutcomeAmount {
		t.Errorf("OutcomeAmount differs: got %v, want %v", got.OutcomeAmount, want.OutcomeAmount)
	}
}

func TestStandardizeRowShorterThanHeaders(t *testing.T) {
	table := &model.RawTable{
		Headers: []string{"Matter/Case ID", "Gender", "Race"},
		Rows:    [][]string{{"A100"}},
	}

	records, err := Standardize(table, model.SourceLAS)
	if err != nil {
		t.Fatalf("Standardize failed: %v", err)
	}
	if records[0].CaseID != "A100" {
		t.Errorf("CaseID = %q, want A100", records[0].CaseID)
	}
	if records[0].Gender != "Other/Unknown" {
		t.Errorf("Gender = %q, want Other/Unknown for missing cell", records[0].Gender)
	}
}
