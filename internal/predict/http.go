package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/talsdata/caseflow/internal/model"
)

// defaultTimeout bounds a single scoring call.
const defaultTimeout = 30 * time.Second

// HTTPModel scores records against a remote model endpoint that accepts a
// JSON feature payload and returns {"prediction": <float>}.
type HTTPModel struct {
	client *http.Client
	url    string
}

// NewHTTPModel creates a scoring client for the given endpoint URL.
func NewHTTPModel(url string) *HTTPModel {
	return &HTTPModel{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

type predictionResponse struct {
	Prediction float64 `json:"prediction"`
}

func (m *HTTPModel) predict(ctx context.Context, payload any) (float64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("scoring request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("scoring endpoint returned %d: %s", resp.StatusCode, data)
	}

	var parsed predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return parsed.Prediction, nil
}

// caseTimePayload is the scoring endpoint's wire shape for the case-time
// model: feature names to values, in the training feature set.
func caseTimePayload(f model.CaseTimeFeatures) map[string]any {
	payload := make(map[string]any, len(model.CaseTimeFeatureOrder))
	values := f.Vector()
	for i, name := range model.CaseTimeFeatureOrder {
		payload[name] = values[i]
	}
	return payload
}

// CaseTimeHTTPModel adapts HTTPModel to the CaseTimeModel interface.
type CaseTimeHTTPModel struct {
	*HTTPModel
}

// NewCaseTimeHTTPModel creates a case-duration scoring client.
func NewCaseTimeHTTPModel(url string) *CaseTimeHTTPModel {
	return &CaseTimeHTTPModel{HTTPModel: NewHTTPModel(url)}
}

// Predict scores one engineered feature vector.
func (m *CaseTimeHTTPModel) Predict(ctx context.Context, input model.CaseTimeFeatures) (float64, error) {
	return m.predict(ctx, caseTimePayload(input))
}

// RiskHTTPModel adapts HTTPModel to the RiskModel interface.
type RiskHTTPModel struct {
	*HTTPModel
}

// NewRiskHTTPModel creates a DV-risk scoring client.
func NewRiskHTTPModel(url string) *RiskHTTPModel {
	return &RiskHTTPModel{HTTPModel: NewHTTPModel(url)}
}

// Predict scores one prepared record and returns the model probability.
func (m *RiskHTTPModel) Predict(ctx context.Context, input model.DVRiskFeatures) (float64, error) {
	return m.predict(ctx, riskPayload(input))
}

func riskPayload(f model.DVRiskFeatures) map[string]any {
	return map[string]any{
		"age_intake":         f.AgeIntake,
		"household_total":    f.HouseholdTotal,
		"household_adults":   f.HouseholdAdults,
		"household_children": f.HouseholdChildren,
		"poverty_pct":        f.PovertyPct,
		"adj_poverty_pct":    f.AdjPovertyPct,
		"single_parent":      f.SingleParent,
		"gender":             f.Gender,
		"race":               f.Race,
		"zip_code":           f.ZipCode,
		"county_residence":   f.CountyResidence,
		"legal_problem_code": f.LegalProblemCode,
		"source":             f.Source,
	}
}
