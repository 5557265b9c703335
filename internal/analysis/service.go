// Package analysis ties the heuristic parser, the embedding provider, and the
// fit classifier together into the two operations the CLI and HTTP server expose.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/ats"
	"github.com/jonathan/resume-screener/internal/classify"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// previewChars bounds resume text copied into debug logs.
const previewChars = 80

// SummaryChars is the preview length of resume_summary in a prediction.
const SummaryChars = 400

var (
	// ErrClassifierUnavailable is returned by Predict when no classifier is loaded
	ErrClassifierUnavailable = errors.New("classifier not loaded")
	// ErrEmbedderUnavailable is returned by Predict when no embedder is configured
	ErrEmbedderUnavailable = errors.New("embedder not configured")
	// ErrMissingText is returned when the resume or job description is blank
	ErrMissingText = errors.New("resume text and job description are required")
)

// Recorder persists analysis results. *db.DB satisfies it.
type Recorder interface {
	SaveAnalysis(ctx context.Context, in *db.AnalysisInput) (uuid.UUID, error)
}

// Service runs predictions and resume reviews.
type Service struct {
	embedder   embedding.Embedder
	classifier classify.Classifier
	recorder   Recorder
	log        *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder records every result through r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = logger.OrNop(l) }
}

// NewService creates a Service. embedder and classifier may be nil, in which
// case Predict fails and Parse still works.
func NewService(embedder embedding.Embedder, classifier classify.Classifier, opts ...Option) *Service {
	s := &Service{
		embedder:   embedder,
		classifier: classifier,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if embedder != nil {
		s.log = logger.WithFields(s.log, zap.String(logger.FieldModel, embedder.Model()))
	}
	return s
}

// CanPredict reports whether both the embedder and classifier are present.
func (s *Service) CanPredict() bool {
	return s.embedder != nil && s.classifier != nil
}

// Predict scores how well a resume fits a job description.
func (s *Service) Predict(ctx context.Context, resumeText, jobDescription string) (*types.Prediction, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, ErrMissingText
	}
	if s.embedder == nil {
		return nil, ErrEmbedderUnavailable
	}
	if s.classifier == nil {
		return nil, ErrClassifierUnavailable
	}

	resumeHash := ingestion.Hash(resumeText)
	jobHash := ingestion.Hash(jobDescription)
	log := s.log.With(zap.String(logger.FieldResumeHash, resumeHash), zap.String(logger.FieldJobHash, jobHash))

	var resumeVec, jobVec []float64
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.embedder.Embed(gCtx, resumeText)
		if err != nil {
			return fmt.Errorf("failed to embed resume: %w", err)
		}
		resumeVec = v
		return nil
	})
	g.Go(func() error {
		v, err := s.embedder.Embed(gCtx, jobDescription)
		if err != nil {
			return fmt.Errorf("failed to embed job description: %w", err)
		}
		jobVec = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("embedded texts",
		zap.Int("dimension", len(resumeVec)),
		zap.String("resume_preview", logger.Preview(resumeText, previewChars)))

	features, err := ranking.BuildFeatureVector(resumeVec, jobVec)
	if err != nil {
		return nil, fmt.Errorf("failed to build features: %w", err)
	}

	result, err := s.classifier.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("failed to classify: %w", err)
	}

	similarity, err := ranking.CosineSimilarity(resumeVec, jobVec)
	if err != nil {
		return nil, fmt.Errorf("failed to compute similarity: %w", err)
	}

	confidence := 0.0
	if result.HasConfidence {
		confidence = result.Confidence
	}

	title := skills.InferTitle(resumeText)
	if title == "" {
		title = skills.InferTitle(jobDescription)
	}

	prediction := &types.Prediction{
		Prediction:      types.LabelFor(result.Label),
		ConfidenceScore: confidence,
		SimilarityScore: similarity,
		ResumeSkills:    skills.ExtractSkills(resumeText),
		JobSkills:       skills.ExtractSkills(jobDescription),
		ProfileTitle:    title,
		ResumeSummary:   skills.Summarize(resumeText, SummaryChars),
	}

	log.Info("prediction complete",
		zap.String("prediction", prediction.Prediction),
		zap.Float64("similarity", similarity),
		zap.Float64("confidence", confidence),
	)

	s.record(ctx, log, &db.AnalysisInput{
		Kind:       db.KindPrediction,
		ResumeHash: resumeHash,
		JobHash:    jobHash,
		Label:      prediction.Prediction,
		Score:      similarity,
		Payload:    prediction,
	})

	return prediction, nil
}

// Parse builds the structured review of a resume. jobDescription may be empty,
// in which case the ATS keyword overlap is 0.
func (s *Service) Parse(ctx context.Context, resumeText, jobDescription string) *types.ParsedResume {
	structured := parsing.ParseResume(resumeText)

	title := skills.InferTitle(resumeText)
	if title == "" {
		title = structured.Title
	}

	parsed := &types.ParsedResume{
		StructuredResume: *structured,
		InferredTitle:    title,
		Skills:           skills.ExtractSkills(resumeText),
		ATS:              ats.Check(resumeText, jobDescription),
	}

	resumeHash := ingestion.Hash(resumeText)
	jobHash := ""
	if jobDescription != "" {
		jobHash = ingestion.Hash(jobDescription)
	}
	contact := structured.Contact()
	log := s.log.With(zap.String(logger.FieldResumeHash, resumeHash))
	log.Info("resume parsed",
		zap.String("name", contact.Name),
		zap.Bool("has_email", contact.Email != ""),
		zap.Bool("has_phone", contact.Phone != ""),
		zap.Int("skills", len(parsed.Skills)),
		zap.Float64("ats_score", parsed.ATS.Score),
	)

	s.record(ctx, log, &db.AnalysisInput{
		Kind:       db.KindParse,
		ResumeHash: resumeHash,
		JobHash:    jobHash,
		Score:      parsed.ATS.Score,
		Payload:    parsed,
	})

	return parsed
}

// ATS returns only the ATS report for a resume.
func (s *Service) ATS(resumeText, jobDescription string) *types.ATSReport {
	return ats.Check(resumeText, jobDescription)
}

func (s *Service) record(ctx context.Context, log *zap.Logger, in *db.AnalysisInput) {
	if s.recorder == nil {
		return
	}
	id, err := s.recorder.SaveAnalysis(ctx, in)
	if err != nil {
		log.Warn("failed to record analysis", zap.String("kind", in.Kind), zap.Error(err))
		return
	}
	log.Debug("analysis recorded", zap.String(logger.FieldAnalysisID, id.String()))
}
