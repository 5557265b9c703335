package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/classify"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/logger"
)

// buildEmbedder returns nil when the provider cannot be configured; prediction
// then reports the embedder as unavailable instead of failing startup.
func buildEmbedder(ctx context.Context, cfg *embedding.Config, log *zap.Logger) embedding.Embedder {
	emb, err := embedding.NewEmbedder(ctx, cfg)
	if err != nil {
		log.Warn("embedder not available, prediction disabled",
			zap.String("provider", string(cfg.Provider)), zap.Error(err))
		return nil
	}
	logger.WithEmbedder(log, string(cfg.Provider), emb.Model()).Debug("embedder ready")
	return emb
}

// loadClassifier returns a nil Classifier when path is empty.
func loadClassifier(path string, log *zap.Logger) (classify.Classifier, error) {
	if path == "" {
		log.Warn("no classifier configured, prediction disabled")
		return nil, nil
	}
	model, err := classify.LoadModel(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier: %w", err)
	}
	log.Debug("classifier loaded", zap.String("path", path), zap.Int("features", model.InputWidth()))
	return model, nil
}

// openHistory connects to Postgres and creates the analyses table. It returns
// nil when no database is configured.
func openHistory(ctx context.Context, cfg *config.Config, log *zap.Logger) (*db.DB, error) {
	if !cfg.HistoryEnabled() {
		log.Info("DATABASE_URL not set, analysis history disabled")
		return nil, nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// newService wires the analysis service, recording into database when it is set.
func newService(emb embedding.Embedder, clf classify.Classifier, database *db.DB, log *zap.Logger) *analysis.Service {
	opts := []analysis.Option{analysis.WithLogger(log)}
	if database != nil {
		opts = append(opts, analysis.WithRecorder(database))
	}
	return analysis.NewService(emb, clf, opts...)
}
