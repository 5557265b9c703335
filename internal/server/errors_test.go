package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/docextract"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "resume", Message: "resume file is required."}
	assert.Equal(t, "validation error: resume - resume file is required.", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, "resume file is required.", userMessage(err))
}

func TestHTTPStatusAndMessage(t *testing.T) {
	validatorErr := (&types.AnalyzeTextRequest{}).Validate()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unsupported type", docextract.ErrUnsupportedType, http.StatusBadRequest, MsgUploadPDF},
		{"wrapped invalid pdf", fmt.Errorf("failed to extract: %w", docextract.ErrInvalidDocument), http.StatusBadRequest, MsgInvalidPDF},
		{"empty text", docextract.ErrEmptyText, http.StatusBadRequest, MsgNoText},
		{"missing text", analysis.ErrMissingText, http.StatusBadRequest, MsgBothRequired},
		{"validator", validatorErr, http.StatusBadRequest, MsgInvalidRequest},
		{"classifier", analysis.ErrClassifierUnavailable, http.StatusServiceUnavailable, MsgModelUnavailable},
		{"history", ErrHistoryUnavailable, http.StatusServiceUnavailable, MsgHistoryDisabled},
		{"not found", ErrNotFound, http.StatusNotFound, MsgNotFound},
		{"analysis not found", fmt.Errorf("%w: 42", db.ErrAnalysisNotFound), http.StatusNotFound, MsgNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, HTTPStatus(tt.err))
			assert.Equal(t, tt.wantMsg, userMessage(tt.err))
		})
	}
}
