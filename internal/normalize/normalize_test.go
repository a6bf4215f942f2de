package normalize

import (
	"testing"
	"time"

	"github.com/talsdata/caseflow/internal/model"
)

func TestIsNull(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"nan", true},
		{"NaN", true},
		{"None", true},
		{"NULL", true},
		{"n/a", true},
		{"N/A", true},
		{"0", false},
		{"No", false},
		{"nanny", false},
	}

	for _, tt := range tests {
		if got := IsNull(tt.value); got != tt.want {
			t.Errorf("IsNull(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestRace(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"direct synonym", "caucasian", "White"},
		{"direct synonym mixed case", "Caucasian", "White"},
		{"already canonical", "Black", "Black"},
		{"keyword fallback", "client identifies as african american", "Black"},
		{"abbreviation", "AA", "Black"},
		{"multiracial conjunction", "white and asian", "Multiracial"},
		{"hispanic keyword", "hispanic/latino", "Hispanic"},
		{"null becomes unknown", "", "Other/Unknown"},
		{"nan becomes unknown", "nan", "Other/Unknown"},
		{"unrecognized becomes unknown", "martian", "Other/Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Race(tt.value); got != tt.want {
				t.Errorf("Race(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"male synonym", "M", "Male"},
		{"female synonym", "f", "Female"},
		{"woman keyword", "adult woman", "Female"},
		{"man keyword", "adult man", "Male"},
		{"trans before female", "transgender female", "Transgender"},
		{"non-binary before male", "non-binary male presenting", "Non-binary"},
		{"null becomes unknown", "", "Other/Unknown"},
		{"unrecognized becomes unknown", "prefer not to say", "Other/Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gender(tt.value); got != tt.want {
				t.Errorf("Gender(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLegalProblemCode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"direct lookup", "01 Bankruptcy/Debtor Relief", "01 Bankruptcy/Debtor Relief"},
		{"direct lookup case insensitive", "01 BANKRUPTCY/DEBTOR RELIEF", "01 Bankruptcy/Debtor Relief"},
		{"direct variant spelling", "02 - Collections (Repo, Def., Garn)", "02 Collection (including Repo/Def/Garnish)"},
		{"direct homeownership variant", "62 Homeownership/Real Property (Not Foreclosure)", "62 Homeownership/Real Prop. (not foreclosure)"},
		{"band keyword match", "32 Divorce and Separation", "32 Divorce/Sep./Annul."},
		{"band single digit code", "2 collection repo", "02 Collection (including Repo/Def/Garnish)"},
		{"mortgage foreclosure band", "67 Mortgage Foreclosure", "67 Mortgage Foreclosures (not predatory Lending/practices)"},
		{"mortgage predatory band", "68 Mortgage Predatory Lending", "68 Mortgage Predatory Lending/Practices"},
		{"bare code fallback", "38", "38 Support"},
		{"single digit code padded", "4", "04 Collection Practices/Creditor Harassment"},
		{"unmatched passes through", "general advice clinic", "general advice clinic"},
		{"empty becomes null", "", ""},
		{"null form becomes null", "nan", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LegalProblemCode(tt.value); got != tt.want {
				t.Errorf("LegalProblemCode(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLegalProblemCodeDeterministic(t *testing.T) {
	inputs := []string{
		"67 Mortgage Foreclosure",
		"63 landlord tenant dispute",
		"31 custody of minor children",
		"75 ssi appeal",
	}
	for _, input := range inputs {
		first := LegalProblemCode(input)
		for i := 0; i < 5; i++ {
			if got := LegalProblemCode(input); got != first {
				t.Fatalf("LegalProblemCode(%q) unstable: %q then %q", input, first, got)
			}
		}
	}
}

func TestCleanupLegalProblemLabel(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"24 Taxes (Not EITC)", "24 Taxes (not EITC)"},
		{"72 Social Security (Not SSDI)", "72 Social Security (not SSDI)"},
		{"24 Taxes (not EITC)", "24 Taxes (not EITC)"},
		{"63 Private Landlord/Tenant", "63 Private Landlord/Tenant"},
	}

	for _, tt := range tests {
		if got := CleanupLegalProblemLabel(tt.value); got != tt.want {
			t.Errorf("CleanupLegalProblemLabel(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"Yes", "Yes"},
		{"No", "No"},
		{" Yes ", "Yes"},
		{"yes", ""},
		{"1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := YesNo(tt.value); got != tt.want {
			t.Errorf("YesNo(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"yes", "Yes"},
		{"YES", "Yes"},
		{" Yes ", "Yes"},
		{"no", "No"},
		{"No", "No"},
		{"Maybe", ""},
		{"", ""},
		{"nan", ""},
	}

	for _, tt := range tests {
		if got := Eligibility(tt.value); got != tt.want {
			t.Errorf("Eligibility(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *float64
	}{
		{"dollar sign and commas", "$1,234.50", f(1234.50)},
		{"plain number", "42", f(42)},
		{"zero", "0", f(0)},
		{"empty", "", nil},
		{"null form", "nan", nil},
		{"garbage", "twelve dollars", nil},
		{"negative amount nulled", "-5", nil},
		{"negative with dollar sign nulled", "$-100", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(tt.value)
			if !floatPtrEqual(got, tt.want) {
				t.Errorf("Currency(%q) = %v, want %v", tt.value, fv(got), fv(tt.want))
			}
		})
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  *float64
	}{
		{"3", f(3)},
		{"3.5", f(3.5)},
		{" 7 ", f(7)},
		{"", nil},
		{"None", nil},
		{"abc", nil},
	}

	for _, tt := range tests {
		got := Numeric(tt.value)
		if !floatPtrEqual(got, tt.want) {
			t.Errorf("Numeric(%q) = %v, want %v", tt.value, fv(got), fv(tt.want))
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{"iso date", "2023-05-01", d(2023, 5, 1)},
		{"datetime truncated to midnight", "2023-05-01 14:30:00", d(2023, 5, 1)},
		{"us format", "5/1/2023", d(2023, 5, 1)},
		{"empty", "", nil},
		{"null form", "n/a", nil},
		{"unparseable", "sometime last spring", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.value)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Date(%q) = %v, want %v", tt.value, got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMALSCaseID(t *testing.T) {
	tests := []struct {
		name   string
		source string
		caseID string
		want   string
	}{
		{"strips E at third position for MALS", model.SourceMALS, "12E3456", "123456"},
		{"no E untouched", model.SourceMALS, "123456", "123456"},
		{"E elsewhere untouched", model.SourceMALS, "E123456", "E123456"},
		{"other source untouched", model.SourceLAET, "12E3456", "12E3456"},
		{"short id untouched", model.SourceMALS, "12", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MALSCaseID(tt.source, tt.caseID); got != tt.want {
				t.Errorf("MALSCaseID(%q, %q) = %q, want %q", tt.source, tt.caseID, got, tt.want)
			}
		})
	}
}

func f(v float64) *float64 { return &v }

func d(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &t
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fv(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
