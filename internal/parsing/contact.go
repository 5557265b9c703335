// Package parsing extracts contact details and line-oriented sections from resume text.
package parsing

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9\-.]+`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[\s-])?(\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4})`)

	// nameMarkers disqualify a line from being a name.
	nameMarkers = regexp.MustCompile(`\d|@|www\.|http`)
	// titleMarkers disqualify a line from being a title.
	titleMarkers = regexp.MustCompile(`\d|@`)
)

const (
	maxNameTokens  = 6
	maxTitleTokens = 6
)

// ExtractEmail returns the first email-like substring of text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-like substring of text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// LooksLikeName reports whether line is short and free of contact markers.
func LooksLikeName(line string) bool {
	return ingestion.TokenCount(line) <= maxNameTokens && !nameMarkers.MatchString(line)
}

// LooksLikeTitle reports whether line has 2 to 6 tokens and no digits or "@".
func LooksLikeTitle(line string) bool {
	n := ingestion.TokenCount(line)
	return n > 1 && n <= maxTitleTokens && !titleMarkers.MatchString(line)
}

// ExtractContact pulls name, email, phone, and title from resume text.
// Missing fields are left empty.
func ExtractContact(text string) types.Contact {
	lines := ingestion.NormalizeLines(text)
	return extractContact(text, lines)
}

func extractContact(text string, lines []string) types.Contact {
	c := types.Contact{
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
	}
	if len(lines) > 0 && LooksLikeName(lines[0]) {
		c.Name = lines[0]
	}
	if len(lines) > 1 && LooksLikeTitle(lines[1]) {
		c.Title = lines[1]
	}
	return c
}
