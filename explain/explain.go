package explain

import (
	"errors"
	"math"
)

// Sentinel errors returned by the explainer.
var (
	// ErrNoFeatures indicates a model without a single feature.
	ErrNoFeatures = errors.New("explain: model needs at least one feature")

	// ErrDuplicateFeature indicates two model features sharing a name.
	ErrDuplicateFeature = errors.New("explain: duplicate feature name")

	// ErrMissingFeature indicates an input record lacking one of the
	// model's features.
	ErrMissingFeature = errors.New("explain: input is missing a model feature")
)

// Prediction range; the clamp is surfaced as an explicit contribution.
const (
	minPrediction = 0
	maxPrediction = 100

	// AdjustmentFeature names the trailing contribution added only when
	// the raw prediction had to be clamped into range.
	AdjustmentFeature = "adjustment"
)

// Feature is one model input: its weight and the neutral reference
// value at which it contributes nothing.
type Feature struct {
	Name      string
	Weight    float64
	Reference float64
}

// Contribution is one feature's signed share of the prediction.
type Contribution struct {
	Feature string
	Value   float64
}

// PredictionResult is a scored input with its additive decomposition.
// Invariant: Prediction == BaseValue + Σ Contributions[i].Value.
type PredictionResult struct {
	Prediction    float64
	BaseValue     float64
	Contributions []Contribution
}

// Model is a linear additive scorer over named features.
type Model struct {
	base     float64
	features []Feature
}

// NewModel builds a model from its base value (the prediction when
// every feature sits at its reference) and feature set.
func NewModel(base float64, features []Feature) (*Model, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if seen[f.Name] {
			return nil, ErrDuplicateFeature
		}
		seen[f.Name] = true
	}

	return &Model{base: base, features: append([]Feature(nil), features...)}, nil
}

// DefaultModel returns the stock student-performance scorer: base 50
// with four engagement features whose references describe a typical
// record.
func DefaultModel() *Model {
	m, _ := NewModel(50, []Feature{
		{Name: "attendance", Weight: 0.30, Reference: 80},
		{Name: "homework", Weight: 0.25, Reference: 75},
		{Name: "participation", Weight: 0.20, Reference: 60},
		{Name: "quiz_average", Weight: 0.35, Reference: 70},
	})

	return m
}

// Features returns the model's feature order used by the decomposition.
func (m *Model) Features() []Feature {
	return append([]Feature(nil), m.features...)
}

// Explain scores one input record and decomposes the result. Every
// model feature must be present in the record; a non-finite value
// contributes exactly 0. The prediction is clamped to [0, 100] and any
// clamping appears as a trailing AdjustmentFeature contribution, so
// BaseValue plus the contribution sum always equals Prediction.
//
// Complexity: O(features).
func (m *Model) Explain(input map[string]float64) (PredictionResult, error) {
	out := PredictionResult{
		BaseValue:     m.base,
		Contributions: make([]Contribution, 0, len(m.features)+1),
	}

	sum := m.base
	for _, f := range m.features {
		x, ok := input[f.Name]
		if !ok {
			return PredictionResult{}, ErrMissingFeature
		}
		value := 0.0
		if isFinite(x) {
			value = f.Weight * (x - f.Reference)
		}
		sum += value
		out.Contributions = append(out.Contributions, Contribution{Feature: f.Name, Value: value})
	}

	out.Prediction = sum
	if clamped := math.Min(math.Max(sum, minPrediction), maxPrediction); clamped != sum {
		out.Contributions = append(out.Contributions,
			Contribution{Feature: AdjustmentFeature, Value: clamped - sum})
		out.Prediction = clamped
	}

	return out, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
