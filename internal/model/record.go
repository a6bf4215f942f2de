// Package model defines the core domain models used throughout the application.
package model

import "time"

// Organization source labels for the four partner legal-aid organizations.
const (
	SourceLAET = "LAET"
	SourceLAS  = "LAS"
	SourceWTLS = "WTLS"
	SourceMALS = "MALS"
)

// OrganizationSources lists every known organization source label.
var OrganizationSources = []string{SourceLAET, SourceLAS, SourceWTLS, SourceMALS}

// ValidSource reports whether source is one of the known organizations.
func ValidSource(source string) bool {
	for _, s := range OrganizationSources {
		if s == source {
			return true
		}
	}
	return false
}

// CanonicalRecord is one case record in the canonical schema every
// organization's export converges to. Text fields use "" as the null
// marker; numeric and date fields use nil.
type CanonicalRecord struct {
	// Identifying information
	ClientID string
	CaseID   string
	Source   string

	// Dates and duration
	DateOpened *time.Time
	DateClosed *time.Time
	DaysOpen   *float64
	CaseTime   *float64

	// Financial eligibility
	PovertyPct           *float64
	AdjPovertyPct        *float64
	IncomeEligible       string
	IncomeOverrideReason string
	IncomeWaiverStatus   string
	AssetEligible        string
	AssetOverrideReason  string
	AssetWaiverStatus    string

	// Demographics
	AgeIntake   *float64
	Gender      string
	Race        string
	Ethnicity   string
	Disabled    string
	Veteran     string
	Language    string
	LGBT        string
	Citizenship string

	// Household
	HouseholdTotal    *float64
	HouseholdAdults   *float64
	HouseholdChildren *float64
	LivingArrangement string

	// Location
	CountyResidence string
	ZipCode         string
	CountyDispute   string

	// Case details
	LegalProblemCode string
	FundingSource    string
	PAICase          string
	ReferralSource   string
	DomesticViolence string

	// Outcome
	CloseReason     string
	OutcomeCategory string
	OutcomeAmount   *float64
	Outcome         string
}

// FieldOrder is the fixed canonical column order. Storage and export both
// follow it so the dataset round-trips without reordering.
var FieldOrder = []string{
	"client_id",
	"case_id",
	"source",

	"date_opened",
	"date_closed",
	"days_open",
	"case_time",

	"poverty_pct",
	"adj_poverty_pct",
	"income_eligible",
	"income_override_reason",
	"income_waiver_status",
	"asset_eligible",
	"asset_override_reason",
	"asset_waiver_status",

	"age_intake",
	"gender",
	"race",
	"ethnicity",
	"disabled",
	"veteran",
	"language",
	"lgbt",
	"citizenship",

	"household_total",
	"household_adults",
	"household_children",
	"living_arrangement",

	"county_residence",
	"zip_code",
	"county_dispute",

	"legal_problem_code",
	"funding_source",
	"pai_case",
	"referral_source",
	"domestic_violence",

	"close_reason",
	"outcome_category",
	"outcome_amount",
	"outcome",
}

// Field returns the record's value for a canonical field name. Text fields
// come back as string, numeric fields as *float64 and dates as *time.Time.
func (r *CanonicalRecord) Field(name string) any {
	switch name {
	case "client_id":
		return r.ClientID
	case "case_id":
		return r.CaseID
	case "source":
		return r.Source
	case "date_opened":
		return r.DateOpened
	case "date_closed":
		return r.DateClosed
	case "days_open":
		return r.DaysOpen
	case "case_time":
		return r.CaseTime
	case "poverty_pct":
		return r.PovertyPct
	case "adj_poverty_pct":
		return r.AdjPovertyPct
	case "income_eligible":
		return r.IncomeEligible
	case "income_override_reason":
		return r.IncomeOverrideReason
	case "income_waiver_status":
		return r.IncomeWaiverStatus
	case "asset_eligible":
		return r.AssetEligible
	case "asset_override_reason":
		return r.AssetOverrideReason
	case "asset_waiver_status":
		return r.AssetWaiverStatus
	case "age_intake":
		return r.AgeIntake
	case "gender":
		return r.Gender
	case "race":
		return r.Race
	case "ethnicity":
		return r.Ethnicity
	case "disabled":
		return r.Disabled
	case "veteran":
		return r.Veteran
	case "language":
		return r.Language
	case "lgbt":
		return r.LGBT
	case "citizenship":
		return r.Citizenship
	case "household_total":
		return r.HouseholdTotal
	case "household_adults":
		return r.HouseholdAdults
	case "household_children":
		return r.HouseholdChildren
	case "living_arrangement":
		return r.LivingArrangement
	case "county_residence":
		return r.CountyResidence
	case "zip_code":
		return r.ZipCode
	case "county_dispute":
		return r.CountyDispute
	case "legal_problem_code":
		return r.LegalProblemCode
	case "funding_source":
		return r.FundingSource
	case "pai_case":
		return r.PAICase
	case "referral_source":
		return r.ReferralSource
	case "domestic_violence":
		return r.DomesticViolence
	case "close_reason":
		return r.CloseReason
	case "outcome_category":
		return r.OutcomeCategory
	case "outcome_amount":
		return r.OutcomeAmount
	case "outcome":
		return r.Outcome
	}
	return nil
}

// Values returns the record's values in canonical field order.
func (r *CanonicalRecord) Values() []any {
	values := make([]any, len(FieldOrder))
	for i, name := range FieldOrder {
		values[i] = r.Field(name)
	}
	return values
}
