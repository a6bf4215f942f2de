// Package features derives the model-input features from a single
// canonical record. Everything here is self-contained per record: missing
// values fall back to fixed constants, never to dataset statistics, so a
// prediction works with no reference population in reach.
package features

import (
	"math"
	"strings"

	"github.com/talsdata/caseflow/internal/model"
)

// ageFallback stands in for a missing intake age; a middle-aged adult is
// the training data's typical client.
const ageFallback = 45.0

// Age clipping bounds.
const (
	ageMin = 18.0
	ageMax = 100.0
)

// fallbacks replace any engineered value that comes out infinite or NaN.
var fallbacks = map[string]float64{
	"adult_child_ratio":       2.0,
	"household_density":       1.5,
	"poverty_intensity":       50.0,
	"county_match":            0,
	"age_poverty_interaction": 45.0,
	"household_complexity":    3.0,
	"high_poverty":            0,
	"elderly_case":            0,
	"large_household":         0,
}

// legalProblemGroups maps the leading digits of a legal problem code to its
// coarse category. Two-digit prefixes are checked before one-digit ones so
// the education codes (12-19) are not swallowed by the consumer band.
var legalProblemGroups = []struct {
	prefix string
	group  string
}{
	{"12", "education"}, {"13", "education"}, {"14", "education"},
	{"16", "education"}, {"19", "education"},
	{"0", "consumer_finance"}, {"1", "consumer_finance"},
	{"2", "employment"},
	{"3", "family"},
	{"4", "juvenile"},
	{"5", "health"},
	{"6", "housing"},
	{"7", "income_benefits"},
	{"8", "civil_rights"},
	{"9", "miscellaneous"},
}

// LegalProblemGroup buckets a standardized legal problem code into one of
// the ten coarse categories the case-time model was trained on.
func LegalProblemGroup(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "unknown"
	}
	for _, g := range legalProblemGroups {
		if strings.HasPrefix(trimmed, g.prefix) {
			return g.group
		}
	}
	return "other"
}

// AgeGroup buckets a (clipped) age into the model's four bands.
func AgeGroup(age float64) string {
	switch {
	case age < 25:
		return "young"
	case age < 45:
		return "middle"
	case age < 65:
		return "senior"
	default:
		return "elderly"
	}
}

// EngineerCaseTime derives the case-duration model's feature vector from
// one canonical record, applying the exact formulas the model was trained
// with. Missing numeric inputs stay NaN through the formulas so every
// derived feature touching one lands on its own fallback constant; only
// age gets prefilled, and adj_poverty_pct fills with 100 inside the
// intensity formula. The base fields pass through still nullable for the
// model's own imputation.
func EngineerCaseTime(r *model.CanonicalRecord) model.CaseTimeFeatures {
	age := valueOr(r.AgeIntake, ageFallback)
	age = clip(age, ageMin, ageMax)

	total := valueOrNaN(r.HouseholdTotal)
	adults := valueOrNaN(r.HouseholdAdults)
	children := valueOrNaN(r.HouseholdChildren)
	povertyPct := valueOrNaN(r.PovertyPct)
	adjPoverty := valueOr(r.AdjPovertyPct, 100)

	// A household with a reported zero children count takes the adult
	// count as its ratio rather than dividing by zero. A missing count is
	// not a zero: it propagates NaN into the fallback instead.
	ratio := adults / children
	if r.HouseholdChildren != nil && children == 0 {
		ratio = adults
	}

	density := total / adults
	if r.HouseholdAdults != nil && adults == 0 {
		density = 0
	}

	countyMatch := 0.0
	if countyOrUnknown(r.CountyResidence) == countyOrUnknown(r.CountyDispute) {
		countyMatch = 1
	}

	highPoverty := 0.0
	if adjPoverty < 50 {
		highPoverty = 1
	}
	elderly := 0.0
	if age >= 65 {
		elderly = 1
	}
	// NaN comparisons are false, so a missing total never flags.
	largeHousehold := 0.0
	if total >= 5 {
		largeHousehold = 1
	}

	f := model.CaseTimeFeatures{
		AgeIntake:         age,
		HouseholdTotal:    r.HouseholdTotal,
		HouseholdAdults:   r.HouseholdAdults,
		HouseholdChildren: r.HouseholdChildren,
		PovertyPct:        r.PovertyPct,
		AdjPovertyPct:     r.AdjPovertyPct,

		AdultChildRatio:       sanitize("adult_child_ratio", ratio),
		HouseholdDensity:      sanitize("household_density", density),
		PovertyIntensity:      sanitize("poverty_intensity", math.Abs(adjPoverty-100)),
		CountyMatch:           countyMatch,
		AgePovertyInteraction: sanitize("age_poverty_interaction", age*povertyPct/100),
		HouseholdComplexity:   sanitize("household_complexity", total*ratio),
		HighPoverty:           highPoverty,
		ElderlyCase:           elderly,
		LargeHousehold:        largeHousehold,

		Gender:            r.Gender,
		Race:              r.Race,
		Disabled:          r.Disabled,
		Veteran:           r.Veteran,
		CountyResidence:   r.CountyResidence,
		CountyDispute:     r.CountyDispute,
		LivingArrangement: r.LivingArrangement,
		Source:            r.Source,
		LegalProblemGroup: LegalProblemGroup(r.LegalProblemCode),
		AgeGroup:          AgeGroup(age),
	}
	return f
}

// PreprocessDVRisk prepares a record for the domestic-violence risk model.
// The saved model's own pipeline handles missing values; the one derived
// feature is the single-parent flag.
func PreprocessDVRisk(r *model.CanonicalRecord) model.DVRiskFeatures {
	singleParent := 0
	if valueOr(r.HouseholdAdults, 0) == 1 && valueOr(r.HouseholdChildren, 0) > 0 {
		singleParent = 1
	}
	return model.DVRiskFeatures{
		AgeIntake:         r.AgeIntake,
		HouseholdTotal:    r.HouseholdTotal,
		HouseholdAdults:   r.HouseholdAdults,
		HouseholdChildren: r.HouseholdChildren,
		PovertyPct:        r.PovertyPct,
		AdjPovertyPct:     r.AdjPovertyPct,
		SingleParent:      singleParent,
		Gender:            r.Gender,
		Race:              r.Race,
		ZipCode:           r.ZipCode,
		CountyResidence:   r.CountyResidence,
		LegalProblemCode:  r.LegalProblemCode,
		Source:            r.Source,
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// valueOrNaN keeps missingness visible to the formulas: a nil input turns
// into NaN, which sanitize later swaps for the feature's fallback.
func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func countyOrUnknown(county string) string {
	if county == "" {
		return "unknown"
	}
	return county
}

func sanitize(name string, v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fallbacks[name]
	}
	return v
}
