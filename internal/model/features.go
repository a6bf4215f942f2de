package model

// CaseTimeFeatures is the feature vector the case-duration model consumes:
// the base numeric intake fields, the engineered numeric features derived
// from them, and the categorical fields, in the exact order the model was
// trained on. The base fields other than age stay nullable so a missing
// intake value reaches the model as JSON null for its own imputation; age
// alone is prefilled during engineering.
type CaseTimeFeatures struct {
	// Base numeric
	AgeIntake         float64
	HouseholdTotal    *float64
	HouseholdAdults   *float64
	HouseholdChildren *float64
	PovertyPct        *float64
	AdjPovertyPct     *float64

	// Engineered numeric
	AdultChildRatio       float64
	HouseholdDensity      float64
	PovertyIntensity      float64
	CountyMatch           float64
	AgePovertyInteraction float64
	HouseholdComplexity   float64
	HighPoverty           float64
	ElderlyCase           float64
	LargeHousehold        float64

	// Categorical
	Gender            string
	Race              string
	Disabled          string
	Veteran           string
	CountyResidence   string
	CountyDispute     string
	LivingArrangement string
	Source            string
	LegalProblemGroup string
	AgeGroup          string
}

// CaseTimeFeatureOrder is the model's expected feature order.
var CaseTimeFeatureOrder = []string{
	"age_intake", "household_total", "household_adults",
	"household_children", "poverty_pct", "adj_poverty_pct",

	"adult_child_ratio", "household_density", "poverty_intensity", "county_match",
	"age_poverty_interaction", "household_complexity", "high_poverty",
	"elderly_case", "large_household",

	"gender", "race", "disabled", "veteran", "county_residence",
	"county_dispute", "living_arrangement", "source",
	"legal_problem_group", "age_group",
}

// Vector returns the feature values in CaseTimeFeatureOrder.
func (f *CaseTimeFeatures) Vector() []any {
	return []any{
		f.AgeIntake, f.HouseholdTotal, f.HouseholdAdults,
		f.HouseholdChildren, f.PovertyPct, f.AdjPovertyPct,

		f.AdultChildRatio, f.HouseholdDensity, f.PovertyIntensity, f.CountyMatch,
		f.AgePovertyInteraction, f.HouseholdComplexity, f.HighPoverty,
		f.ElderlyCase, f.LargeHousehold,

		f.Gender, f.Race, f.Disabled, f.Veteran, f.CountyResidence,
		f.CountyDispute, f.LivingArrangement, f.Source,
		f.LegalProblemGroup, f.AgeGroup,
	}
}

// DVRiskFeatures is the input shape for the domestic-violence risk model.
// The saved model's own pipeline handles missing values, so fields pass
// through mostly untouched; SingleParent is the one derived feature.
type DVRiskFeatures struct {
	AgeIntake         *float64
	HouseholdTotal    *float64
	HouseholdAdults   *float64
	HouseholdChildren *float64
	PovertyPct        *float64
	AdjPovertyPct     *float64
	SingleParent      int
	Gender            string
	Race              string
	ZipCode           string
	CountyResidence   string
	LegalProblemCode  string
	Source            string
}
