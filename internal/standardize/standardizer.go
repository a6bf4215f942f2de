// Package standardize turns one organization's raw export table into
// canonical case records: the header gate, column renaming, field
// normalization, missing-field fill, and canonical ordering.
package standardize

import (
	"fmt"
	"strings"

	"github.com/talsdata/caseflow/internal/common"
	"github.com/talsdata/caseflow/internal/mappings"
	"github.com/talsdata/caseflow/internal/model"
	"github.com/talsdata/caseflow/internal/normalize"
)

// titleRowHeaderLen is the header-length threshold of the title-row
// heuristic: a narrow table with a header this long is almost certainly a
// report title, not a header row.
const (
	titleRowHeaderLen = 30
	titleRowMaxCols   = 3
	minKnownHeaders   = 3
)

// rejectionMessage is shown to the user when a file fails the gate.
const rejectionMessage = "the uploaded file either includes a title row or is missing the row with column names. " +
	"Make sure the first row contains column names (like 'Client ID', 'Date Opened') " +
	"and remove any report titles or labels above the header row"

// ValidateHeaders rejects a raw table whose first row cannot be a header
// row. Malformed input is refused outright rather than partially ingested:
// misaligned columns would silently corrupt the canonical dataset.
func ValidateHeaders(table *model.RawTable) error {
	known := 0
	longest := 0
	for _, h := range table.Headers {
		trimmed := strings.TrimSpace(h)
		if len(trimmed) > longest {
			longest = len(trimmed)
		}
		if _, ok := mappings.ColumnMapping[trimmed]; ok {
			known++
		} else if mappings.CanonicalFields[trimmed] {
			known++
		}
	}

	looksLikeTitleRow := len(table.Headers) <= titleRowMaxCols && longest > titleRowHeaderLen
	if looksLikeTitleRow || known < minKnownHeaders {
		return common.NewUserError(rejectionMessage, common.ErrMalformedInput)
	}
	return nil
}

// Standardize converts a raw table into canonical records, stamping every
// record with the supplied organization source. The caller is expected to
// run ValidateHeaders first; Standardize itself never fails on data-quality
// problems, only on an unknown source label.
func Standardize(table *model.RawTable, source string) ([]model.CanonicalRecord, error) {
	if !model.ValidSource(source) {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownSource, source)
	}

	columns := resolveColumns(table.Headers)

	records := make([]model.CanonicalRecord, 0, len(table.Rows))
	for i := range table.Rows {
		records = append(records, buildRecord(table, columns, i, source))
	}
	return records, nil
}

// resolveColumns maps each canonical field to the index of the first raw
// column that provides it. Raw columns that are neither a known synonym nor
// already canonical are dropped.
func resolveColumns(headers []string) map[string]int {
	columns := make(map[string]int)
	for i, h := range headers {
		trimmed := strings.TrimSpace(h)
		canonical, ok := mappings.ColumnMapping[trimmed]
		if !ok {
			if !mappings.CanonicalFields[trimmed] {
				continue
			}
			canonical = trimmed
		}
		if _, taken := columns[canonical]; !taken {
			columns[canonical] = i
		}
	}
	return columns
}

func buildRecord(table *model.RawTable, columns map[string]int, row int, source string) model.CanonicalRecord {
	cell := func(field string) (string, bool) {
		col, ok := columns[field]
		if !ok {
			return "", false
		}
		return table.Cell(row, col), true
	}
	text := func(field string) string {
		raw, ok := cell(field)
		if !ok || normalize.IsNull(raw) {
			return ""
		}
		return strings.TrimSpace(raw)
	}
	numeric := func(field string) *float64 {
		raw, _ := cell(field)
		return normalize.Numeric(raw)
	}

	r := model.CanonicalRecord{
		ClientID: text("client_id"),
		CaseID:   normalize.MALSCaseID(source, text("case_id")),
		Source:   source,

		DaysOpen: numeric("days_open"),
		CaseTime: numeric("case_time"),

		PovertyPct:           numeric("poverty_pct"),
		AdjPovertyPct:        numeric("adj_poverty_pct"),
		IncomeOverrideReason: text("income_override_reason"),
		IncomeWaiverStatus:   text("income_waiver_status"),
		AssetOverrideReason:  text("asset_override_reason"),
		AssetWaiverStatus:    text("asset_waiver_status"),

		AgeIntake:   numeric("age_intake"),
		Ethnicity:   text("ethnicity"),
		Disabled:    text("disabled"),
		Veteran:     text("veteran"),
		Language:    text("language"),
		LGBT:        text("lgbt"),
		Citizenship: text("citizenship"),

		HouseholdTotal:    numeric("household_total"),
		HouseholdAdults:   numeric("household_adults"),
		HouseholdChildren: numeric("household_children"),
		LivingArrangement: text("living_arrangement"),

		CountyResidence: text("county_residence"),
		ZipCode:         text("zip_code"),
		CountyDispute:   text("county_dispute"),

		FundingSource:  text("funding_source"),
		PAICase:        text("pai_case"),
		ReferralSource: text("referral_source"),

		CloseReason:     text("close_reason"),
		OutcomeCategory: text("outcome_category"),
		Outcome:         text("outcome"),
	}

	// A table that was standardized before carries its own source column;
	// keep it so re-standardizing is a no-op.
	if existing := text("source"); existing != "" {
		r.Source = existing
	}

	if raw, ok := cell("date_opened"); ok {
		r.DateOpened = normalize.Date(raw)
	}
	if raw, ok := cell("date_closed"); ok {
		r.DateClosed = normalize.Date(raw)
	}
	if raw, ok := cell("race"); ok {
		r.Race = normalize.Race(raw)
	}
	if raw, ok := cell("gender"); ok {
		r.Gender = normalize.Gender(raw)
	}
	if raw, ok := cell("legal_problem_code"); ok {
		r.LegalProblemCode = normalize.CleanupLegalProblemLabel(normalize.LegalProblemCode(raw))
	}
	if raw, ok := cell("domestic_violence"); ok {
		r.DomesticViolence = normalize.YesNo(strings.TrimSpace(raw))
	}
	if raw, ok := cell("income_eligible"); ok {
		r.IncomeEligible = normalize.Eligibility(raw)
	}
	if raw, ok := cell("asset_eligible"); ok {
		r.AssetEligible = normalize.Eligibility(raw)
	}
	if raw, ok := cell("outcome_amount"); ok {
		r.OutcomeAmount = normalize.Currency(raw)
	}

	return r
}
