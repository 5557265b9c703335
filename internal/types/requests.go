package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// AnalyzeTextRequest is the JSON body for text-only analysis.
type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,notblank"`
	JobDescription string `json:"job_description" validate:"required,notblank"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	return validate.Struct(r)
}

// ATSCheckRequest is the JSON body for a standalone ATS check.
// The job description may be empty.
type ATSCheckRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,notblank"`
	JobDescription string `json:"job_description"`
}

// Validate validates the ATSCheckRequest using the validator.
func (r *ATSCheckRequest) Validate() error {
	return validate.Struct(r)
}
