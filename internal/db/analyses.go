package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis records an analysis and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, in *AnalysisInput) (uuid.UUID, error) {
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	payload, err := json.Marshal(in.Payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, kind, resume_sha256, job_sha256, label, score, payload)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, in.Kind, in.ResumeHash, in.JobHash, in.Label, in.Score, payload,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves an analysis by ID, returning nil when it does not exist
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, kind, resume_sha256, job_sha256, label, score, payload, created_at
		 FROM analyses WHERE id = $1`,
		id,
	)

	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses returns the most recent analyses, newest first
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, kind, resume_sha256, job_sha256, label, score, payload, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, nil
}

// ErrAnalysisNotFound is returned when deleting an analysis that does not exist.
var ErrAnalysisNotFound = errors.New("analysis not found")

// DeleteAnalysis removes an analysis by ID
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
	}
	return nil
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var (
		a       Analysis
		payload []byte
	)
	if err := row.Scan(&a.ID, &a.Kind, &a.ResumeHash, &a.JobHash, &a.Label, &a.Score, &payload, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Payload = json.RawMessage(payload)
	return &a, nil
}
