// Package main implements the resume_screener CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
)

var (
	cfgFile  string
	debugLog bool
	jsonLog  bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume screening: parsing, ATS checks, and job fit prediction",
	Long: "resume_screener structures resume text into contact details and sections, runs keyword ATS checks " +
		"against a job description, and predicts job fit from text embeddings. It runs as a CLI or an HTTP server.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file (yaml, json, or toml)")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "JSON format for logging")
}

// loadConfig resolves the config file and environment, then applies the logging flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if debugLog {
		cfg.Log.Debug = true
	}
	if jsonLog {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
