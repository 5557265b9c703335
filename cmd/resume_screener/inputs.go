package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/docextract"
	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/schemas"
)

const (
	formatText = "text"
	formatJSON = "json"

	jobFetchTimeout = 45 * time.Second
)

func checkFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid --format %q (expected %q or %q)", format, formatText, formatJSON)
	}
	return nil
}

// readResume extracts resume text from a txt, md, pdf, or docx file.
// Plain text goes through ingestion so its provenance is logged.
func readResume(path string, log *zap.Logger) (string, error) {
	if path == "" {
		return "", errors.New("resume file is required")
	}
	if docextract.ContentTypeForPath(path) != docextract.MimeText {
		text, err := docextract.ExtractFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read resume: %w", err)
		}
		return text, nil
	}

	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("failed to read resume: %w", docextract.ErrEmptyText)
	}
	log.Debug("resume ingested",
		zap.String("source", meta.Source),
		zap.String(logger.FieldResumeHash, meta.Hash),
		zap.Int("chars", meta.Chars))
	return text, nil
}

// readJobDescription loads the job description from a file or a posting URL.
// Both empty yields an empty description.
func readJobDescription(ctx context.Context, path, url string, useBrowser bool, log *zap.Logger) (string, error) {
	switch {
	case path != "" && url != "":
		return "", errors.New("use either --job or --job-url, not both")
	case url != "":
		ctx, cancel := context.WithTimeout(ctx, jobFetchTimeout)
		defer cancel()
		text, err := fetch.JobDescription(ctx, url, &fetch.Options{UseBrowser: useBrowser}, log)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	case path != "":
		text, err := docextract.ExtractFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}

func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", jsonBytes)
	return err
}

// writeOutputFile validates v against schemaRel, when the schema can be found,
// and writes it as indented JSON. A schema mismatch leaves no file behind.
func writeOutputFile(path string, v any, schemaRel string) error {
	if schemaPath := schemas.ResolveSchemaPath(schemaRel); schemaPath != "" {
		if err := validateOutput(schemaPath, v); err != nil {
			return err
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateOutput returns an error only for a schema mismatch; an unreadable
// schema is reported as a warning.
func validateOutput(schemaPath string, v any) error {
	err := schemas.ValidateValue(schemaPath, v)
	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErr):
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		return nil
	}
}
