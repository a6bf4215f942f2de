// Package normalize implements the per-field cleaning functions that turn
// raw export values into canonical ones. Every function here degrades to a
// null marker or a defined default instead of returning an error: data
// quality problems must not stop a batch.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/talsdata/caseflow/internal/mappings"
	"github.com/talsdata/caseflow/internal/model"
)

// nullForms are the textual null spellings that survive spreadsheet round
// trips.
var nullForms = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"null": true,
	"n/a":  true,
}

// IsNull reports whether a raw cell value is one of the textual null forms.
func IsNull(value string) bool {
	return nullForms[strings.ToLower(strings.TrimSpace(value))]
}

// Race resolves a raw race value to one of the canonical categories. Known
// spellings hit the synonym table; anything else runs through the keyword
// rules, with "X and Y" folding to Multiracial; the default is
// Other/Unknown.
func Race(value string) string {
	trimmed := strings.TrimSpace(value)
	if IsNull(trimmed) {
		return mappings.RaceOtherUnknown
	}
	if canonical, ok := mappings.RaceMapping[trimmed]; ok {
		return canonical
	}
	for _, category := range mappings.RaceCategories {
		if trimmed == category {
			return category
		}
	}
	if mappings.MultiracialRule(trimmed) {
		return mappings.RaceMultiracial
	}
	for _, rule := range mappings.RaceRules {
		if rule.Pattern.MatchString(trimmed) {
			return rule.Category
		}
	}
	return mappings.RaceOtherUnknown
}

// Gender resolves a raw gender value to one of the canonical categories,
// using the same two-tier table-then-rules design as Race.
func Gender(value string) string {
	trimmed := strings.TrimSpace(value)
	if IsNull(trimmed) {
		return mappings.GenderOtherUnknown
	}
	if canonical, ok := mappings.GenderMapping[trimmed]; ok {
		return canonical
	}
	for _, category := range mappings.GenderCategories {
		if trimmed == category {
			return category
		}
	}
	for _, rule := range mappings.GenderRules {
		if rule.Pattern.MatchString(trimmed) {
			return rule.Category
		}
	}
	return mappings.GenderOtherUnknown
}

// leadingDigits pulls the leading digit sequence off a code string.
var leadingDigits = regexp.MustCompile(`^\s*(\d+)`)

// LegalProblemCode resolves a raw legal-problem value to its standardized
// label through three tiers: the direct variant table, the ordered regex
// bands, and finally a bare numeric-code lookup. A value no tier can place
// is returned unchanged so it stays visible downstream instead of being
// silently dropped.
func LegalProblemCode(value string) string {
	trimmed := strings.TrimSpace(value)
	if IsNull(trimmed) {
		return ""
	}

	if label, ok := mappings.LookupLegalProblemDirect(trimmed); ok {
		return label
	}

	for _, rule := range mappings.LegalProblemPatterns {
		if !rule.Pattern.MatchString(trimmed) {
			continue
		}
		if rule.Exclude != nil && rule.Exclude.MatchString(trimmed) {
			continue
		}
		return rule.Label
	}

	if m := leadingDigits.FindStringSubmatch(trimmed); m != nil {
		code := m[1]
		if len(code) == 1 {
			code = "0" + code
		}
		if label, ok := mappings.LegalProblemByCode[code]; ok {
			return label
		}
	}

	return value
}

// CleanupLegalProblemLabel corrects the handful of near-duplicate labels
// (parenthetical case variants) that slip past the resolution tiers.
func CleanupLegalProblemLabel(value string) string {
	if fixed, ok := mappings.LegalProblemCleanup[value]; ok {
		return fixed
	}
	return value
}

// Eligibility normalizes an income/asset eligibility flag. Only the literal
// values Yes and No are accepted; everything else becomes null. Eligibility
// determinations are never inferred from sloppy input.
func Eligibility(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	titled := strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:])
	if titled == "Yes" || titled == "No" {
		return titled
	}
	return ""
}

// YesNo normalizes a flag that must be exactly "Yes" or "No"; any other
// value becomes null. Used for the domestic-violence field.
func YesNo(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "Yes" || trimmed == "No" {
		return trimmed
	}
	return ""
}

// Currency parses a dollar amount, stripping $ and comma separators.
// Unparsable values become nil, never zero: zero and "no value" are
// different facts. Outcome awards are never negative, so a negative
// amount is treated as unparsable.
func Currency(value string) *float64 {
	trimmed := strings.TrimSpace(value)
	if IsNull(trimmed) {
		return nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(trimmed)
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return nil
	}
	return &amount
}

// Numeric parses a numeric cell; unparsable values become nil.
func Numeric(value string) *float64 {
	trimmed := strings.TrimSpace(value)
	if IsNull(trimmed) {
		return nil
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Date parses a date cell with lenient format inference and truncates it to
// midnight so date-range filters compare calendar dates only. Unparsable
// values become nil.
func Date(value string) *time.Time {
	trimmed := strings.TrimSpace(value)
	if IsNull(trimmed) {
		return nil
	}
	parsed, err := dateparse.ParseLocal(trimmed)
	if err != nil {
		return nil
	}
	day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, parsed.Location())
	return &day
}

// MALSCaseID corrects a data-entry artifact specific to the MALS exporter:
// a stray 'E' at index 2 of the case ID. IDs from other organizations and
// IDs without the artifact pass through untouched.
func MALSCaseID(source, caseID string) string {
	if source != model.SourceMALS {
		return caseID
	}
	if len(caseID) > 2 && caseID[2] == 'E' {
		return caseID[:2] + caseID[3:]
	}
	return caseID
}
