package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Predict whether a resume fits a job description",
	Long: "Embeds the resume and job description, scores them with the classifier, and prints the label, " +
		"confidence, similarity, and a resume summary. The result is recorded when DATABASE_URL is set.",
	RunE: runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeUseBrowser bool
	analyzeClassifier string
	analyzeProvider   string
	analyzeOutputFile string
	analyzeFormat     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job description file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "Job posting URL")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render the job posting in a headless browser when the page has little text")
	analyzeCmd.Flags().StringVar(&analyzeClassifier, "classifier", "", "Path to classifier model JSON (overrides classifier_path)")
	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "", "Embedding provider: gemini or hashing (overrides embedding.provider)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output Prediction JSON file")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", formatText, "Output format for stdout: text or json")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(analyzeFormat); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if analyzeProvider != "" {
		cfg.Embedding.Provider = embedding.Provider(analyzeProvider)
	}
	if analyzeClassifier != "" {
		cfg.ClassifierPath = analyzeClassifier
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	resumeText, err := readResume(analyzeResumeFile, log)
	if err != nil {
		return err
	}
	jobText, err := readJobDescription(ctx, analyzeJobFile, analyzeJobURL, analyzeUseBrowser, log)
	if err != nil {
		return err
	}

	emb, err := embedding.NewEmbedder(ctx, &cfg.Embedding)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = emb.Close() }()

	if cfg.ClassifierPath == "" {
		return fmt.Errorf("classifier is required (use --classifier or set classifier_path)")
	}
	clf, err := loadClassifier(cfg.ClassifierPath, log)
	if err != nil {
		return err
	}

	database, err := openHistory(ctx, cfg, log)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	prediction, err := newService(emb, clf, database, log).Predict(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if analyzeOutputFile != "" {
		if err := writeOutputFile(analyzeOutputFile, prediction, "schemas/prediction.schema.json"); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Output: %s\n", analyzeOutputFile)
		return nil
	}
	if analyzeFormat == formatJSON {
		return writeJSON(out, prediction)
	}
	observability.NewPrinter(out).PrintPrediction(prediction)
	return nil
}
