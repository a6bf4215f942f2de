package sheets

import (
	"testing"
	"time"

	"github.com/talsdata/caseflow/internal/model"
)

func TestPrepareRows(t *testing.T) {
	age := 34.0
	amount := 1234.5
	opened := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	records := []model.CanonicalRecord{
		{
			CaseID:        "case-1",
			Source:        model.SourceLAET,
			DateOpened:    &opened,
			AgeIntake:     &age,
			OutcomeAmount: &amount,
			Gender:        "Female",
		},
		{
			CaseID: "case-2",
			Source: model.SourceMALS,
		},
	}

	w := &Writer{config: DefaultConfig()}
	rows := w.prepareRows(records)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 records", len(rows))
	}

	header := rows[0]
	if len(header) != len(model.FieldOrder) {
		t.Fatalf("header has %d cells, want %d", len(header), len(model.FieldOrder))
	}
	if header[0] != model.FieldOrder[0] {
		t.Errorf("header[0] = %v, want %v", header[0], model.FieldOrder[0])
	}

	byName := func(row []any, name string) any {
		for i, field := range model.FieldOrder {
			if field == name {
				return row[i]
			}
		}
		t.Fatalf("no field %q", name)
		return nil
	}

	first := rows[1]
	if got := byName(first, "case_id"); got != "case-1" {
		t.Errorf("case_id = %v, want case-1", got)
	}
	if got := byName(first, "date_opened"); got != "2023-05-01" {
		t.Errorf("date_opened = %v, want 2023-05-01", got)
	}
	if got := byName(first, "age_intake"); got != "34" {
		t.Errorf("age_intake = %v, want 34", got)
	}
	if got := byName(first, "outcome_amount"); got != "1234.5" {
		t.Errorf("outcome_amount = %v, want 1234.5", got)
	}

	second := rows[2]
	if got := byName(second, "date_opened"); got != "" {
		t.Errorf("missing date rendered as %v, want empty", got)
	}
	if got := byName(second, "age_intake"); got != "" {
		t.Errorf("missing numeric rendered as %v, want empty", got)
	}
}

func TestRenderCell(t *testing.T) {
	v := 2.5
	ts := time.Date(2024, 2, 29, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string passes through", "hello", "hello"},
		{"float pointer", &v, "2.5"},
		{"nil float pointer", (*float64)(nil), ""},
		{"time pointer date only", &ts, "2024-02-29"},
		{"nil time pointer", (*time.Time)(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderCell(tt.value); got != tt.want {
				t.Errorf("renderCell(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with no credentials")
	}

	cfg.ClientID = "id"
	cfg.ClientSecret = "secret"
	cfg.RefreshToken = "token"
	if err := cfg.Validate(); err != nil {
		t.Errorf("oauth config rejected: %v", err)
	}
}
