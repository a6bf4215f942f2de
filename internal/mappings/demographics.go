package mappings

import "regexp"

// Canonical race categories.
const (
	RaceWhite          = "White"
	RaceBlack          = "Black"
	RaceNativeAmerican = "Native American"
	RaceAsianPacific   = "Asian/Pacific Islander"
	RaceHispanic       = "Hispanic"
	RaceMultiracial    = "Multiracial"
	RaceOtherUnknown   = "Other/Unknown"
)

// RaceCategories is the closed output set for the race field.
var RaceCategories = []string{
	RaceWhite, RaceBlack, RaceNativeAmerican, RaceAsianPacific,
	RaceHispanic, RaceMultiracial, RaceOtherUnknown,
}

// RaceMapping maps the historical spellings seen in partner exports to the
// canonical categories. It covers the bulk of incoming volume; free-text
// variants that miss it fall through to RaceRules.
var RaceMapping = map[string]string{
	"White":               RaceWhite,
	"White (Not Hispanic)": RaceWhite,
	"Caucasian/White":      RaceWhite,
	"White - Not Hispanic": RaceWhite,

	"Black":                    RaceBlack,
	"Black (Not Hispanic)":     RaceBlack,
	"African American/Black":   RaceBlack,
	"Black or African American": RaceBlack,
	"Black - Not Hispanic":     RaceBlack,

	"Native American":                  RaceNativeAmerican,
	"Native American or Alaska Native": RaceNativeAmerican,
	"American Indian or Alaska Native": RaceNativeAmerican,

	"Asian":                                     RaceAsianPacific,
	"Asian or Pacific Islander":                 RaceAsianPacific,
	"Native Hawaiian or Other Pacific Islander": RaceAsianPacific,

	"Hispanic": RaceHispanic,

	"Mulitracial":                       RaceMultiracial,
	"Multiracial":                       RaceMultiracial,
	"Black or African American and White": RaceMultiracial,
	"American Indian or Alaska Native and White": RaceMultiracial,
	"Asian and White":                   RaceMultiracial,

	"Other":         RaceOtherUnknown,
	"Other/Unknown": RaceOtherUnknown,
	"No Response":   RaceOtherUnknown,
	"nan":           RaceOtherUnknown,
	"None":          RaceOtherUnknown,
	"":              RaceOtherUnknown,
}

// KeywordRule pairs a compiled keyword pattern with the category it selects.
// Rules are evaluated in slice order; the first match wins.
type KeywordRule struct {
	Pattern  *regexp.Regexp
	Category string
}

// raceAndTerms detects two race terms joined by "and", which folds to
// Multiracial before any single-race rule can claim the value.
var raceAndTerms = regexp.MustCompile(`(?i)\b(?:white|caucasian|black|african.?american|asian|native|indian|hispanic|latino|pacific)\b.*\band\b.*\b(?:white|caucasian|black|african.?american|asian|native|indian|hispanic|latino|pacific)\b`)

// RaceRules is the fallback classifier for race values not in RaceMapping,
// in priority order.
var RaceRules = []KeywordRule{
	{regexp.MustCompile(`(?i)\b(black|african.?american|aa)\b`), RaceBlack},
	{regexp.MustCompile(`(?i)\b(white|caucasian|european)\b`), RaceWhite},
	{regexp.MustCompile(`(?i)\b(native.?american|american.?indian|alaska|indigenous)\b`), RaceNativeAmerican},
	{regexp.MustCompile(`(?i)\b(asian|pacific.?islander|hawaiian|filipino|chinese|vietnamese|korean)\b`), RaceAsianPacific},
	{regexp.MustCompile(`(?i)\b(hispanic|latino|latina|latinx)\b`), RaceHispanic},
	{regexp.MustCompile(`(?i)\b(multi.?racial|mixed|biracial|two.?or.?more)\b`), RaceMultiracial},
}

// MultiracialRule reports whether the value names two race terms joined by
// "and".
func MultiracialRule(value string) bool {
	return raceAndTerms.MatchString(value)
}

// Canonical gender categories.
const (
	GenderFemale       = "Female"
	GenderMale         = "Male"
	GenderTransgender  = "Transgender"
	GenderNonBinary    = "Non-binary"
	GenderOtherUnknown = "Other/Unknown"
)

// GenderCategories is the closed output set for the gender field.
var GenderCategories = []string{
	GenderFemale, GenderMale, GenderTransgender, GenderNonBinary, GenderOtherUnknown,
}

// GenderMapping maps historical spellings to the canonical categories.
var GenderMapping = map[string]string{
	"Female": GenderFemale,
	"female": GenderFemale,
	"F":      GenderFemale,
	"Woman":  GenderFemale,

	"Male": GenderMale,
	"male": GenderMale,
	"M":    GenderMale,
	"Man":  GenderMale,

	"Transgender":                GenderTransgender,
	"Transgender Male to Female": GenderTransgender,
	"Transgender Female to Male": GenderTransgender,

	"Non-binary":            GenderNonBinary,
	"Non-Binary":            GenderNonBinary,
	"Nonbinary":             GenderNonBinary,
	"Gender Non-Conforming": GenderNonBinary,

	"Other":         GenderOtherUnknown,
	"Other/Unknown": GenderOtherUnknown,
	"Unknown":       GenderOtherUnknown,
	"No Response":   GenderOtherUnknown,
	"nan":           GenderOtherUnknown,
	"None":          GenderOtherUnknown,
	"":              GenderOtherUnknown,
}

// GenderRules is the fallback classifier for gender values not in
// GenderMapping, in priority order. Trans and non-binary terms run before
// the female/male rules so "trans woman" does not land on Female.
var GenderRules = []KeywordRule{
	{regexp.MustCompile(`(?i)\b(trans|transgender|mtf|ftm)\b`), GenderTransgender},
	{regexp.MustCompile(`(?i)\b(non.?binary|enby|genderqueer|gender.?fluid)\b`), GenderNonBinary},
	{regexp.MustCompile(`(?i)\b(female|woman|girl|f)\b`), GenderFemale},
	{regexp.MustCompile(`(?i)\b(male|man|boy|m)\b`), GenderMale},
}
