package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Run the keyword ATS check on a resume",
	Long: "Checks a resume for contact details, a clear name, enough content, and keyword overlap " +
		"with a job description read from --job or fetched from --job-url.",
	RunE: runATS,
}

var (
	atsInputFile  string
	atsJobFile    string
	atsJobURL     string
	atsUseBrowser bool
	atsFormat     string
)

func init() {
	atsCmd.Flags().StringVarP(&atsInputFile, "in", "i", "", "Path to resume file (required)")
	atsCmd.Flags().StringVar(&atsJobFile, "job", "", "Path to job description file")
	atsCmd.Flags().StringVar(&atsJobURL, "job-url", "", "Job posting URL")
	atsCmd.Flags().BoolVar(&atsUseBrowser, "use-browser", false, "Render the job posting in a headless browser when the page has little text")
	atsCmd.Flags().StringVar(&atsFormat, "format", formatText, "Output format: text or json")

	if err := atsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(atsFormat); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resumeText, err := readResume(atsInputFile, log)
	if err != nil {
		return err
	}
	jobText, err := readJobDescription(context.Background(), atsJobFile, atsJobURL, atsUseBrowser, log)
	if err != nil {
		return err
	}

	report := newService(nil, nil, nil, log).ATS(resumeText, jobText)

	if atsFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintATSReport(report)
	return nil
}
