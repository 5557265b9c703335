package classify

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/jonathan/resume-screener/internal/schemas"
)

//go:embed model.schema.json
var modelSchema string

// ModelSchema returns the JSON Schema that model files are validated against.
func ModelSchema() string {
	return modelSchema
}

// DefaultThreshold is the positive-class probability a prediction must exceed.
const DefaultThreshold = 0.5

// LogisticModel is a standardizing logistic regression: each feature is
// centred by Mean and divided by Scale before the linear decision function.
type LogisticModel struct {
	Name      string    `json:"name,omitempty"`
	Mean      []float64 `json:"mean"`
	Scale     []float64 `json:"scale"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Threshold float64   `json:"threshold,omitempty"`
}

// LoadModel reads and validates a model file.
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier model %s: %w", path, err)
	}
	model, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("classifier model %s: %w", path, err)
	}
	return model, nil
}

// ParseModel validates data against the model schema and decodes it.
func ParseModel(data []byte) (*LogisticModel, error) {
	if err := schemas.ValidateJSONString(ModelSchema(), string(data)); err != nil {
		return nil, err
	}

	var m LogisticModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode classifier model: %w", err)
	}
	if len(m.Mean) != len(m.Coef) || len(m.Scale) != len(m.Coef) {
		return nil, fmt.Errorf("classifier model: mean, scale and coef lengths differ (%d, %d, %d)",
			len(m.Mean), len(m.Scale), len(m.Coef))
	}
	if m.Threshold == 0 {
		m.Threshold = DefaultThreshold
	}
	return &m, nil
}

// InputWidth returns the expected feature vector length.
func (m *LogisticModel) InputWidth() int {
	return len(m.Coef)
}

// Probability returns the positive-class probability for features.
func (m *LogisticModel) Probability(features []float64) (float64, error) {
	if len(features) != len(m.Coef) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureWidth, len(features), len(m.Coef))
	}

	z := m.Intercept
	for i, x := range features {
		scale := m.Scale[i]
		if scale == 0 {
			scale = 1
		}
		z += m.Coef[i] * (x - m.Mean[i]) / scale
	}
	return sigmoid(z), nil
}

// Predict labels features as fit (1) when the probability exceeds the threshold.
func (m *LogisticModel) Predict(features []float64) (Result, error) {
	p, err := m.Probability(features)
	if err != nil {
		return Result{}, err
	}

	threshold := m.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if p > threshold {
		return Result{Label: 1, Confidence: p, HasConfidence: true}, nil
	}
	return Result{Label: 0, Confidence: 1 - p, HasConfidence: true}, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
