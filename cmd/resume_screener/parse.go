package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into contact details, sections, skills, and an ATS report",
	Long: "Parse a resume file (txt, md, pdf, or docx) into a ParsedResume. With --out the JSON is written " +
		"to a file and validated against schemas/parsed_resume.schema.json.",
	RunE: runParse,
}

var (
	parseInputFile  string
	parseJobFile    string
	parseJobURL     string
	parseOutputFile string
	parseFormat     string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (required)")
	parseCmd.Flags().StringVar(&parseJobFile, "job", "", "Path to job description file used for the ATS report")
	parseCmd.Flags().StringVar(&parseJobURL, "job-url", "", "Job posting URL used for the ATS report")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file")
	parseCmd.Flags().StringVar(&parseFormat, "format", formatText, "Output format for stdout: text or json")

	if err := parseCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(parseFormat); err != nil {
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

	ctx := context.Background()

	resumeText, err := readResume(parseInputFile, log)
	if err != nil {
		return err
	}
	jobText, err := readJobDescription(ctx, parseJobFile, parseJobURL, false, log)
	if err != nil {
		return err
	}

	parsed := newService(nil, nil, nil, log).Parse(ctx, resumeText, jobText)

	out := cmd.OutOrStdout()
	if parseOutputFile != "" {
		if err := writeOutputFile(parseOutputFile, parsed, "schemas/parsed_resume.schema.json"); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Successfully parsed resume\n")
		_, _ = fmt.Fprintf(out, "Output: %s\n", parseOutputFile)
		return nil
	}

	if parseFormat == formatJSON {
		return writeJSON(out, parsed)
	}
	observability.NewPrinter(out).PrintParsedResume(parsed)
	return nil
}
