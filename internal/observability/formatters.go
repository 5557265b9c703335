// Package observability renders analysis results as boxed text for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the outer width of a box in columns
	boxWidth = 60
	// maxItemsToShow caps list sections
	maxItemsToShow = 5
)

// Printer writes formatted results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a titled box, truncating lines that do not fit
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad fits s to exactly width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// orDash renders empty values as "-".
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", heading)
	count := min(len(items), maxItemsToShow)
	for _, item := range items[:count] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > count {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-count)
	}
}

// PrintParsedResume outputs the contact block, sections, skills, and ATS report.
func (p *Printer) PrintParsedResume(r *types.ParsedResume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", orDash(r.Name))
	fmt.Fprintf(&sb, "Email:    %s\n", orDash(r.Email))
	fmt.Fprintf(&sb, "Phone:    %s\n", orDash(r.Phone))
	fmt.Fprintf(&sb, "Title:    %s\n", orDash(r.Title))
	fmt.Fprintf(&sb, "Inferred: %s\n", orDash(r.InferredTitle))
	if len(r.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills:   %s\n", strings.Join(r.Skills, ", "))
	}
	sb.WriteString("\n")
	writeList(&sb, "Education", r.Education)
	writeList(&sb, "Experience", r.Experience)
	writeList(&sb, "Skills section", r.SkillsBlock)

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintATSReport(r.ATS)
}

// PrintATSReport outputs the score, overlap, keyword matches, and issues.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	status := "PASS"
	if !report.Passed() {
		status = "REVIEW"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:    %.3f  [%s]\n", report.Score, status)
	fmt.Fprintf(&sb, "Overlap:  %.3f\n", report.Overlap)
	if len(report.MatchedKeywords) > 0 {
		fmt.Fprintf(&sb, "Matched:  %s\n", strings.Join(report.MatchedKeywords, ", "))
	}
	if len(report.MissingKeywords) > 0 {
		fmt.Fprintf(&sb, "Missing:  %s\n", strings.Join(report.MissingKeywords, ", "))
	}
	if len(report.Issues) == 0 {
		sb.WriteString("\nNo issues found.\n")
	} else {
		sb.WriteString("\n")
		for _, issue := range report.Issues {
			fmt.Fprintf(&sb, "⚠ %s\n", issue)
		}
	}

	p.printBox("ATS CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrediction outputs the fit label and scores.
func (p *Printer) PrintPrediction(pred *types.Prediction) {
	if pred == nil {
		return
	}

	mark := "✗"
	if pred.IsFit() {
		mark = "✓"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", mark, pred.Prediction)
	fmt.Fprintf(&sb, "Confidence:  %.1f%%\n", pred.ConfidenceScore*100)
	fmt.Fprintf(&sb, "Similarity:  %.3f\n", pred.SimilarityScore)
	fmt.Fprintf(&sb, "Profile:     %s\n", orDash(pred.ProfileTitle))
	fmt.Fprintf(&sb, "Resume:      %s\n", orDash(strings.Join(pred.ResumeSkills, ", ")))
	fmt.Fprintf(&sb, "Job:         %s\n", orDash(strings.Join(pred.JobSkills, ", ")))

	p.printBox("FIT PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
	if pred.ResumeSummary != "" {
		p.printBox("SUMMARY", wrap(pred.ResumeSummary, boxWidth-4))
	}
}

// PrintSkills outputs the skills, inferred title, and summary of a resume.
func (p *Printer) PrintSkills(skills []string, title, summary string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title:  %s\n", orDash(title))
	fmt.Fprintf(&sb, "Skills: %d\n", len(skills))
	for _, s := range skills {
		fmt.Fprintf(&sb, "  • %s\n", s)
	}
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
	if summary != "" {
		p.printBox("SUMMARY", wrap(summary, boxWidth-4))
	}
}

// wrap breaks text at spaces so no line exceeds width runes where possible.
func wrap(text string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
