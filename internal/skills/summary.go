package skills

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// Ellipsis marks a truncated summary.
const Ellipsis = "..."

// Summarize collapses whitespace in text and shortens it to at most maxChars
// characters plus Ellipsis, cutting back to the last whole word.
// Text that already fits is returned without an ellipsis.
func Summarize(text string, maxChars int) string {
	s := ingestion.CollapseWhitespace(text)
	if s == "" || maxChars <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}

	cut := runes[:maxChars]
	if runes[maxChars] != ' ' {
		for i := len(cut) - 1; i > 0; i-- {
			if cut[i] == ' ' {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRight(string(cut), " ") + Ellipsis
}
