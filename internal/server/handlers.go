package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/docextract"
	"github.com/jonathan/resume-screener/internal/types"
)

// Multipart field names.
const (
	fieldResume         = "resume"
	fieldJobDescription = "job_description"
)

// maxJSONBytes caps JSON request bodies.
const maxJSONBytes = 2 << 20

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze predicts fit for an uploaded resume against a job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resumeText, jobDescription, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	prediction, err := s.service.Predict(r.Context(), resumeText, jobDescription)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, prediction)
}

// handleParseResume returns the structured review of an uploaded resume
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	resumeText, jobDescription, err := s.readUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.service.Parse(r.Context(), resumeText, jobDescription))
}

// handleAnalyzeText predicts fit from raw text
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeTextRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, MsgBothRequired)
		return
	}

	prediction, err := s.service.Predict(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, prediction)
}

// handleATSCheck returns only the ATS report for raw text
func (s *Server) handleATSCheck(w http.ResponseWriter, r *http.Request) {
	var req types.ATSCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, MsgResumeRequired)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.service.ATS(req.ResumeText, req.JobDescription))
}

// handleListAnalyses lists recorded analyses, newest first
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, ErrHistoryUnavailable)
		return
	}

	limit := db.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, r, &ErrValidation{Field: "limit", Message: "limit must be a positive integer."})
			return
		}
		limit = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses, "count": len(analyses)})
}

// handleGetAnalysis returns one recorded analysis
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, ErrHistoryUnavailable)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "id", Message: "Invalid analysis ID."})
		return
	}

	a, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if a == nil {
		s.writeError(w, r, ErrNotFound)
		return
	}
	s.jsonResponse(w, http.StatusOK, a)
}

// readUpload reads the resume file and optional job description from a
// multipart form and extracts the resume text.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || r.ContentLength > s.maxUpload {
			return "", "", &ErrValidation{Field: fieldResume, Message: "Upload too large."}
		}
		return "", "", &ErrValidation{Field: fieldResume, Message: "Expected a multipart form upload."}
	}

	file, header, err := r.FormFile(fieldResume)
	if err != nil {
		return "", "", &ErrValidation{Field: fieldResume, Message: "resume file is required."}
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !docextract.Supported(contentType) {
		return "", "", docextract.ErrUnsupportedType
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", err
	}

	text, err := docextract.Extract(contentType, data)
	if err != nil {
		s.log.Debug("document extraction failed",
			zap.String("filename", header.Filename),
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return "", "", err
	}

	return text, r.FormValue(fieldJobDescription), nil
}

// decodeJSON decodes a bounded JSON body.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxJSONBytes)).Decode(v)
}

// handleDeleteAnalysis removes one recorded analysis
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, ErrHistoryUnavailable)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "id", Message: "Invalid analysis ID."})
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
