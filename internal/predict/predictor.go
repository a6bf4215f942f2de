// Package predict is the boundary to the externally trained models. The
// models themselves are opaque; this package only guarantees the feature
// vector's shape and wraps every failure in a result object so prediction
// errors never propagate past the boundary.
package predict

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talsdata/caseflow/internal/features"
	"github.com/talsdata/caseflow/internal/model"
)

// RiskModel scores DV risk for one prepared record, returning a
// probability in [0,1].
type RiskModel interface {
	Predict(ctx context.Context, input model.DVRiskFeatures) (float64, error)
}

// CaseTimeModel predicts case duration in hours for one feature vector.
type CaseTimeModel interface {
	Predict(ctx context.Context, input model.CaseTimeFeatures) (float64, error)
}

// DVRisk runs the full DV-risk pipeline for one record: preprocessing,
// prediction, interpretation. A nil or failing model yields an error-marker
// assessment, not an error.
func DVRisk(ctx context.Context, m RiskModel, record *model.CanonicalRecord) model.RiskAssessment {
	if m == nil {
		return model.ErrRiskAssessment("Could not load prediction model")
	}

	input := features.PreprocessDVRisk(record)
	score, err := m.Predict(ctx, input)
	if err != nil {
		slog.Error("DV risk prediction failed", "case_id", record.CaseID, "error", err)
		return model.ErrRiskAssessment(fmt.Sprintf("Could not process prediction: %v", err))
	}

	return features.InterpretRiskScore(score)
}

// CaseTime runs the full case-duration pipeline for one record. Failures
// degrade to an error-marker estimate with a resource-allocation message.
func CaseTime(ctx context.Context, m CaseTimeModel, record *model.CanonicalRecord) model.CaseTimeEstimate {
	if m == nil {
		return model.ErrCaseTimeEstimate("Could not load prediction model")
	}

	input := features.EngineerCaseTime(record)
	hours, err := m.Predict(ctx, input)
	if err != nil {
		slog.Error("case time prediction failed", "case_id", record.CaseID, "error", err)
		return model.ErrCaseTimeEstimate(fmt.Sprintf("Could not process prediction: %v", err))
	}

	return features.InterpretCaseTime(hours)
}
