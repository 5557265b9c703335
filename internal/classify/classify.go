// Package classify predicts whether a resume fits a job from a feature vector.
package classify

import (
	"errors"
)

// ErrFeatureWidth is returned when a feature vector does not match the model input width.
var ErrFeatureWidth = errors.New("feature width does not match model")

// Result is a binary prediction.
type Result struct {
	Label         int     // 1 fit, 0 not fit
	Confidence    float64 // probability of Label, in [0,1]
	HasConfidence bool
}

// Classifier is an abstraction over fit classifiers.
type Classifier interface {
	// Predict labels a feature vector
	Predict(features []float64) (Result, error)
}
