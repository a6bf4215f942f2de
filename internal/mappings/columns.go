// Package mappings holds the static standardization tables: column-name
// synonyms, demographic category synonyms, and the legal-problem-code rule
// set. Tables are built once at package load and never mutated, so they are
// safe to share across concurrent callers.
package mappings

// ColumnMapping maps every raw header spelling the partner organizations
// export to its canonical field name. Many raw spellings map to the same
// field.
var ColumnMapping = map[string]string{
	"Client ID":      "client_id",
	"Matter/Case ID": "case_id",
	"Case # ID":      "case_id",

	"Date Opened":         "date_opened",
	"Opened":              "date_opened",
	"Date Closed":         "date_closed",
	"Closed":              "date_closed",
	"Number of Days Open": "days_open",
	"# Days Open":         "days_open",

	"Percentage of Poverty":                  "poverty_pct",
	"Poverty %":                              "poverty_pct",
	"Adjusted Percentage of Poverty":         "adj_poverty_pct",
	"Adj. Poverty %":                         "adj_poverty_pct",
	"Income Eligible":                        "income_eligible",
	"Financial Eligibility Override Reason":  "income_override_reason",
	"Financial Override Reason":              "income_override_reason",
	"Income Waiver Request Status":           "income_waiver_status",
	"Asset Eligible":                         "asset_eligible",
	"Asset Override Reason":                  "asset_override_reason",
	"Asset Waiver Request Status":            "asset_waiver_status",

	"Gender":              "gender",
	"Race":                "race",
	"HUD 9902 Ethnicity":  "ethnicity",
	"Ethnicity":           "ethnicity",
	"Age at Intake":       "age_intake",
	"Intake Age":          "age_intake",
	"Disabled":            "disabled",
	"Living Arrangement":  "living_arrangement",
	"Veteran":             "veteran",
	"Language":            "language",
	"Identifies as LGBT?": "lgbt",
	"LGBTQ":               "lgbt",
	"Citizenship Status":  "citizenship",
	"Citizenship":         "citizenship",

	"Total Household Size":          "household_total",
	"Total Household":               "household_total",
	"Number of People 18 and Over":  "household_adults",
	"People > 18":                   "household_adults",
	"Number of People under 18":     "household_children",
	"People < 18":                   "household_children",

	"County of Residence": "county_residence",
	"Zip Code":            "zip_code",
	"County of Dispute":   "county_dispute",

	"Legal Problem Code": "legal_problem_code",
	"Close Reason":       "close_reason",
	"Funding Source":     "funding_source",
	"PAI Case?":          "pai_case",
	"PAI Case":           "pai_case",

	"How did Applicant hear about LAET?": "referral_source",
	"How did Applicant hear about LAS?":  "referral_source",
	"How did Applicant hear about WTLS?": "referral_source",
	"Outcome":                            "outcome",
	"Outcome Value Category":             "outcome_category",
	"Outcome value category":             "outcome_category",
	"Outcome Amount":                     "outcome_amount",
	"Total Time For Case":                "case_time",
	"Domestic Violence Present":          "domestic_violence",
	"Is the caller a victim of domestic violence?": "domestic_violence",
}

// CanonicalFields is the set of canonical field names, for recognizing a
// table that has already been standardized.
var CanonicalFields = func() map[string]bool {
	fields := make(map[string]bool, len(ColumnMapping))
	for _, canonical := range ColumnMapping {
		fields[canonical] = true
	}
	fields["source"] = true
	return fields
}()
