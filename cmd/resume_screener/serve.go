package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing /analyze, /parse_resume, /analyze_text, and /ats_check.
Prediction routes need an embedding provider and a classifier; the /analyses history
routes need DATABASE_URL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	ctx := context.Background()

	database, err := openHistory(ctx, cfg, log)
	if err != nil {
		return err
	}
	var store server.Store
	if database != nil {
		defer database.Close()
		store = database
	}

	emb := buildEmbedder(ctx, &cfg.Embedding, log)
	if emb != nil {
		defer func() { _ = emb.Close() }()
	}
	clf, err := loadClassifier(cfg.ClassifierPath, log)
	if err != nil {
		return err
	}

	svc := newService(emb, clf, database, log)
	log.Info("starting resume screener",
		zap.Int("port", cfg.Port),
		zap.Bool("prediction", svc.CanPredict()),
		zap.Bool("history", store != nil))

	srv := server.New(server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, svc, store, log)
	return srv.Start()
}
