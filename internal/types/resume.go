// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

// Contact holds the identity fields pulled from the top of a resume.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Title string `json:"title"`
}

// StructuredResume is the line-oriented breakdown of a resume.
// Section slices never contain the heading line itself.
type StructuredResume struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Education   []string `json:"education"`
	Experience  []string `json:"experience"`
	SkillsBlock []string `json:"skills_block"`
}

// Contact returns the identity subset of the resume.
func (r *StructuredResume) Contact() Contact {
	return Contact{Name: r.Name, Email: r.Email, Phone: r.Phone, Title: r.Title}
}

// ParsedResume is the review payload: the structured resume enriched with
// inferred title, skills, and the ATS report.
type ParsedResume struct {
	StructuredResume
	InferredTitle string     `json:"inferred_title"`
	Skills        []string   `json:"skills"`
	ATS           *ATSReport `json:"ats"`
}
