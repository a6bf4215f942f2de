package model

// Risk levels for the domestic-violence risk assessment.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
	RiskError  = "Error"
)

// RiskAssessment is the interpreted output of the DV risk model. A failed
// prediction is still a RiskAssessment, with Level set to RiskError and the
// failure explained in Recommendation; errors never cross this boundary raw.
type RiskAssessment struct {
	Score          *float64
	Level          string
	Recommendation string
}

// ErrRiskAssessment builds the error-marker assessment for a failed
// prediction.
func ErrRiskAssessment(reason string) RiskAssessment {
	return RiskAssessment{Level: RiskError, Recommendation: reason}
}

// Complexity categories for the case-duration estimate.
const (
	ComplexityBrief    = "Brief Service"
	ComplexityModerate = "Moderate Complexity"
	ComplexityHigh     = "High Complexity"
	ComplexityError    = "Error"
)

// CaseTimeEstimate is the interpreted output of the case-duration model.
type CaseTimeEstimate struct {
	PredictedHours     *float64
	ComplexityCategory string
	ResourceAllocation string
}

// ErrCaseTimeEstimate builds the error-marker estimate for a failed
// prediction.
func ErrCaseTimeEstimate(reason string) CaseTimeEstimate {
	return CaseTimeEstimate{ComplexityCategory: ComplexityError, ResourceAllocation: reason}
}
