package skills

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// rolePhrases are tried in order; the first whole-word match wins.
var rolePhrases = []string{
	"machine learning engineer",
	"data scientist",
	"machine learning",
	"ml engineer",
	"data engineer",
	"software engineer",
	"senior software engineer",
	"backend engineer",
	"frontend engineer",
	"full[- ]stack",
	"devops",
	"qa",
	"designer",
	"product manager",
	"architect",
	"cloud",
	"security",
	"researcher",
}

var rolePatterns = compileRoles(rolePhrases)

var (
	contactLike = regexp.MustCompile(`@|\d{3}[-.\s]\d{3}`)
	addressLike = regexp.MustCompile(`address|www\.|http`)
)

const (
	fallbackScanLines = 10
	minTitleWords     = 2
	maxTitleWords     = 6
)

func compileRoles(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		patterns[i] = regexp.MustCompile(`\b` + p + `\b`)
	}
	return patterns
}

// InferTitle guesses the candidate's role from text.
//
// Known role phrases are checked first and the match is returned title-cased.
// Otherwise the first short line among the opening lines that is not a contact
// or address line is returned as written.
func InferTitle(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lower := strings.ToLower(text)
	for _, re := range rolePatterns {
		if m := re.FindString(lower); m != "" {
			return titleCase(m)
		}
	}

	lines := ingestion.NormalizeLines(text)
	if len(lines) > fallbackScanLines {
		lines = lines[:fallbackScanLines]
	}
	for _, line := range lines {
		n := ingestion.TokenCount(line)
		if n < minTitleWords || n > maxTitleWords {
			continue
		}
		if contactLike.MatchString(line) || addressLike.MatchString(strings.ToLower(line)) {
			continue
		}
		return line
	}
	return ""
}

// titleCase upper-cases every letter that follows a non-letter and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
