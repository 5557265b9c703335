package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind values for recorded analyses
const (
	KindPrediction = "prediction"
	KindParse      = "parse"
)

// DefaultListLimit caps ListAnalyses when no limit is given
const DefaultListLimit = 50

// maxListLimit is the largest page ListAnalyses returns
const maxListLimit = 500

// Analysis is a stored analysis result
type Analysis struct {
	ID         uuid.UUID       `json:"id"`
	Kind       string          `json:"kind"`
	ResumeHash string          `json:"resume_sha256"`
	JobHash    string          `json:"job_sha256,omitempty"`
	Label      string          `json:"label,omitempty"`
	Score      float64         `json:"score"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AnalysisInput holds the fields for recording an analysis.
// Label is the prediction label for predictions; Score is the similarity
// score for predictions and the ATS score for parses.
type AnalysisInput struct {
	Kind       string
	ResumeHash string
	JobHash    string
	Label      string
	Score      float64
	Payload    any
}

// Validate checks the input before it is written
func (in *AnalysisInput) Validate() error {
	switch in.Kind {
	case KindPrediction, KindParse:
	default:
		return fmt.Errorf("invalid analysis kind %q", in.Kind)
	}
	if in.ResumeHash == "" {
		return fmt.Errorf("resume hash is required")
	}
	if in.Payload == nil {
		return fmt.Errorf("payload is required")
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
