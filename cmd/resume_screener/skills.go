package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/skills"
)

// skillsSummaryChars matches the summary length of a parsed resume.
const skillsSummaryChars = 300

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skills, inferred title, and summary of a resume",
	RunE:  runSkills,
}

var (
	skillsInputFile string
	skillsFormat    string
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsInputFile, "in", "i", "", "Path to resume file (required)")
	skillsCmd.Flags().StringVar(&skillsFormat, "format", formatText, "Output format: text or json")

	if err := skillsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(skillsFormat); err != nil {
		return err
	}
	text, err := readResume(skillsInputFile, zap.NewNop())
	if err != nil {
		return err
	}

	found := skills.ExtractSkills(text)
	title := skills.InferTitle(text)
	summary := skills.Summarize(text, skillsSummaryChars)

	if skillsFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"skills":         found,
			"inferred_title": title,
			"summary":        summary,
		})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSkills(found, title, summary)
	return nil
}
