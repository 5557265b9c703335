// Package skills infers skills, a role title, and a short summary from free text
// using fixed keyword tables.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// vocabulary is the closed set of recognised skills. Multi-word entries use single spaces.
var vocabulary = []string{
	"python",
	"java",
	"javascript",
	"react",
	"fastapi",
	"docker",
	"kubernetes",
	"aws",
	"machine learning",
	"deep learning",
	"sql",
	"pandas",
	"numpy",
}

// Vocabulary returns a sorted copy of the recognised skills.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	sort.Strings(out)
	return out
}

// ExtractSkills returns the vocabulary entries that occur in text, sorted ascending.
// Matching is a case-insensitive substring test, so "javascript" also yields "java".
func ExtractSkills(text string) []string {
	normalized := ingestion.SearchForm(text)
	found := make([]string, 0, len(vocabulary))
	for _, skill := range vocabulary {
		if strings.Contains(normalized, skill) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}
