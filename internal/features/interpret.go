package features

import (
	"math"

	"github.com/talsdata/caseflow/internal/model"
)

// Risk thresholds tuned for the ROC-AUC optimized DV model.
const (
	riskMediumThreshold = 0.4
	riskHighThreshold   = 0.7
)

// InterpretRiskScore turns a raw model probability into a leveled
// assessment with an intake recommendation.
func InterpretRiskScore(score float64) model.RiskAssessment {
	assessment := model.RiskAssessment{Score: &score}
	switch {
	case score < riskMediumThreshold:
		assessment.Level = model.RiskLow
		assessment.Recommendation = "Standard intake process. Low probability of domestic violence based on intake data."
	case score < riskHighThreshold:
		assessment.Level = model.RiskMedium
		assessment.Recommendation = "Consider additional screening questions during intake. Some risk factors present."
	default:
		assessment.Level = model.RiskHigh
		assessment.Recommendation = "Case shows risk factors similar to past DV cases. Recommend additional screening and consider connecting to resources."
	}
	return assessment
}

// Complexity thresholds in predicted hours.
const (
	briefServiceHours       = 3.0
	moderateComplexityHours = 10.0
)

// InterpretCaseTime turns predicted hours into a complexity category with a
// resource-allocation note. Hours are rounded to one decimal for display.
func InterpretCaseTime(predictedHours float64) model.CaseTimeEstimate {
	hours := math.Round(predictedHours*10) / 10
	estimate := model.CaseTimeEstimate{PredictedHours: &hours}
	switch {
	case hours < briefServiceHours:
		estimate.ComplexityCategory = model.ComplexityBrief
		estimate.ResourceAllocation = "This case is likely to require minimal resources."
	case hours < moderateComplexityHours:
		estimate.ComplexityCategory = model.ComplexityModerate
		estimate.ResourceAllocation = "This case will require moderate resources."
	default:
		estimate.ComplexityCategory = model.ComplexityHigh
		estimate.ResourceAllocation = "This case is likely to require significant resources."
	}
	return estimate
}
