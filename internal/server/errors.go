package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/docextract"
)

var (
	// ErrHistoryUnavailable is returned by the history routes when no database is configured
	ErrHistoryUnavailable = errors.New("analysis history not configured")
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// Messages returned to clients for known failures.
const (
	MsgUploadPDF        = "Upload a PDF file."
	MsgInvalidPDF       = "Invalid PDF file."
	MsgNoText           = "No extractable text found in PDF."
	MsgBothRequired     = "Both resume_text and job_description are required."
	MsgResumeRequired   = "resume_text is required."
	MsgModelUnavailable = "Model not loaded."
	MsgHistoryDisabled  = "Analysis history is not enabled."
	MsgInvalidRequest   = "Invalid request body."
	MsgNotFound         = "Not found."
	MsgInternal         = "Internal server error."
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var validatorErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr), errors.As(err, &validatorErrs):
		return http.StatusBadRequest
	case errors.Is(err, docextract.ErrUnsupportedType),
		errors.Is(err, docextract.ErrInvalidDocument),
		errors.Is(err, docextract.ErrEmptyText),
		errors.Is(err, analysis.ErrMissingText):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, db.ErrAnalysisNotFound):
		return http.StatusNotFound
	case errors.Is(err, analysis.ErrClassifierUnavailable),
		errors.Is(err, analysis.ErrEmbedderUnavailable),
		errors.Is(err, ErrHistoryUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the client-facing message for err.
func userMessage(err error) string {
	var validationErr *ErrValidation
	var validatorErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &validatorErrs):
		return MsgInvalidRequest
	case errors.Is(err, docextract.ErrUnsupportedType):
		return MsgUploadPDF
	case errors.Is(err, docextract.ErrInvalidDocument):
		return MsgInvalidPDF
	case errors.Is(err, docextract.ErrEmptyText):
		return MsgNoText
	case errors.Is(err, analysis.ErrMissingText):
		return MsgBothRequired
	case errors.Is(err, analysis.ErrClassifierUnavailable), errors.Is(err, analysis.ErrEmbedderUnavailable):
		return MsgModelUnavailable
	case errors.Is(err, ErrHistoryUnavailable):
		return MsgHistoryDisabled
	case errors.Is(err, ErrNotFound), errors.Is(err, db.ErrAnalysisNotFound):
		return MsgNotFound
	default:
		return MsgInternal
	}
}
