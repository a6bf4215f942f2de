package model

import "testing"

func TestValidSource(t *testing.T) {
	for _, source := range OrganizationSources {
		if !ValidSource(source) {
			t.Errorf("ValidSource(%q) = false", source)
		}
	}
	for _, source := range []string{"", "laet", "UNKNOWN"} {
		if ValidSource(source) {
			t.Errorf("ValidSource(%q) = true", source)
		}
	}
}

func TestValuesMatchFieldOrder(t *testing.T) {
	r := CanonicalRecord{CaseID: "case-1", Source: SourceLAET}
	values := r.Values()
	if len(values) != len(FieldOrder) {
		t.Fatalf("Values() has %d entries, FieldOrder has %d", len(values), len(FieldOrder))
	}

	for i, name := range FieldOrder {
		if r.Field(name) != values[i] {
			t.Errorf("Field(%q) and Values()[%d] disagree", name, i)
		}
	}
}

func TestFieldUnknownName(t *testing.T) {
	r := CanonicalRecord{}
	if got := r.Field("no_such_field"); got != nil {
		t.Errorf("Field(no_such_field) = %v, want nil", got)
	}
}

func TestRawTableCell(t *testing.T) {
	table := RawTable{
		Headers: []string{"a", "b", "c"},
		Rows: [][]string{
			{"1", "2", "3"},
			{"4"},
		},
	}

	if got := table.Cell(0, 2); got != "3" {
		t.Errorf("Cell(0,2) = %q, want 3", got)
	}
	if got := table.Cell(1, 2); got != "" {
		t.Errorf("Cell(1,2) = %q, want empty for short row", got)
	}
	if got := table.Cell(5, 0); got != "" {
		t.Errorf("Cell(5,0) = %q, want empty for missing row", got)
	}
}

func TestColumnIndex(t *testing.T) {
	table := RawTable{Headers: []string{"a", "b", "c"}}
	if got := table.ColumnIndex("b"); got != 1 {
		t.Errorf("ColumnIndex(b) = %d, want 1", got)
	}
	if got := table.ColumnIndex("z"); got != -1 {
		t.Errorf("ColumnIndex(z) = %d, want -1", got)
	}
}
