package types

// Fit labels returned by the classifier mapping.
const (
	LabelFit    = "Fit"
	LabelNotFit = "Not Fit"
)

// Prediction is the fit analysis of a resume against a job description.
type Prediction struct {
	Prediction      string   `json:"prediction"`
	ConfidenceScore float64  `json:"confidence_score"`
	SimilarityScore float64  `json:"similarity_score"`
	ResumeSkills    []string `json:"resume_skills"`
	JobSkills       []string `json:"job_skills"`
	ProfileTitle    string   `json:"profile_title"`
	ResumeSummary   string   `json:"resume_summary"`
}

// IsFit reports whether the classifier labelled the pair as a fit.
func (p *Prediction) IsFit() bool {
	return p.Prediction == LabelFit
}

// LabelFor maps a binary class label to its display form.
func LabelFor(class int) string {
	if class == 1 {
		return LabelFit
	}
	return LabelNotFit
}
