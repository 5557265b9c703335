package parsing

import (
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

// SummaryCap is the maximum length, in characters, of StructuredResume.Summary.
const SummaryCap = 300

// ParseResume breaks resume text into identity fields, a short summary, and the
// education, experience, and skills sections. Empty text yields an empty record.
func ParseResume(text string) *types.StructuredResume {
	lines := ingestion.NormalizeLines(text)
	contact := extractContact(text, lines)
	sections := SegmentSections(text, DefaultHeadings())

	return &types.StructuredResume{
		Name:        contact.Name,
		Email:       contact.Email,
		Phone:       contact.Phone,
		Title:       contact.Title,
		Summary:     truncateRunes(ingestion.CollapseWhitespace(text), SummaryCap),
		Education:   sections[HeadingEducation],
		Experience:  sections[HeadingExperience],
		SkillsBlock: sections[HeadingSkills],
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
