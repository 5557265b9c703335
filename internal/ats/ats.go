// Package ats scores how well a resume is likely to survive a simple applicant
// tracking system filter.
package ats

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Score weights. They sum to 1.0.
const (
	contactWeight = 0.3
	nameWeight    = 0.1
	lengthWeight  = 0.1
	keywordWeight = 0.5
)

// Length thresholds in characters.
const (
	shortResumeChars = 200
	fullResumeChars  = 400
)

// MinKeywordOverlap is the overlap below which a low-overlap issue is raised.
const MinKeywordOverlap = 0.3

// Issue messages, in the order checks run.
const (
	IssueMissingEmail   = "Missing email address."
	IssueMissingPhone   = "Missing phone number."
	IssueNameUnclear    = "Name not clearly identified at top of resume."
	IssueTooShort       = "Resume appears very short; consider adding more detail."
	IssueLowKeywordHits = "Low keyword overlap with job description (may fail simple ATS filters)."
)

var keywordSeparators = regexp.MustCompile(`[,;\n]`)

// Check runs every ATS check against resumeText and returns the weighted score
// with the issues found. jobDescription may be empty.
func Check(resumeText, jobDescription string) *types.ATSReport {
	issues := make([]string, 0, 5)

	hasEmail := parsing.ExtractEmail(resumeText) != ""
	hasPhone := parsing.ExtractPhone(resumeText) != ""
	if !hasEmail {
		issues = append(issues, IssueMissingEmail)
	}
	if !hasPhone {
		issues = append(issues, IssueMissingPhone)
	}

	first := ingestion.FirstLine(resumeText)
	hasName := first != "" && parsing.LooksLikeName(first)
	if !hasName {
		issues = append(issues, IssueNameUnclear)
	}

	chars := utf8.RuneCountInString(resumeText)
	if chars < shortResumeChars {
		issues = append(issues, IssueTooShort)
	}

	overlap, matched, missing := keywordOverlap(resumeText, jobDescription)
	if overlap < MinKeywordOverlap {
		issues = append(issues, IssueLowKeywordHits)
	}

	score := contactWeight*contactScore(hasEmail, hasPhone) +
		nameWeight*boolScore(hasName) +
		lengthWeight*lengthScore(chars) +
		keywordWeight*overlap

	return &types.ATSReport{
		Score:           round3(score),
		Overlap:         round3(overlap),
		Issues:          issues,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}

// Keywords splits a job description into lowercase keyword phrases on commas,
// semicolons, and newlines. When that yields nothing it falls back to
// whitespace tokens longer than two characters.
func Keywords(jobDescription string) []string {
	jd := strings.ToLower(jobDescription)

	var tokens []string
	for _, part := range keywordSeparators.Split(jd, -1) {
		if tok := ingestion.CollapseWhitespace(part); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) > 0 {
		return tokens
	}

	for _, word := range strings.Fields(jd) {
		if utf8.RuneCountInString(word) > 2 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// keywordOverlap returns the fraction of job keywords found in the resume,
// along with the distinct matched and missing keywords.
func keywordOverlap(resumeText, jobDescription string) (float64, []string, []string) {
	tokens := Keywords(jobDescription)
	if len(tokens) == 0 {
		return 0.0, nil, nil
	}

	normalized := ingestion.SearchForm(resumeText)
	seen := make(map[string]bool, len(tokens))
	var matched, missing []string
	hits := 0
	for _, tok := range tokens {
		found := strings.Contains(normalized, tok)
		if found {
			hits++
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if found {
			matched = append(matched, tok)
		} else {
			missing = append(missing, tok)
		}
	}

	return float64(hits) / float64(len(tokens)), matched, missing
}

// contactScore is all-or-nothing: both email and phone must be present.
func contactScore(hasEmail, hasPhone bool) float64 {
	return boolScore(hasEmail && hasPhone)
}

func lengthScore(chars int) float64 {
	switch {
	case chars >= fullResumeChars:
		return 1.0
	case chars >= shortResumeChars:
		return 0.5
	default:
		return 0.0
	}
}

func boolScore(ok bool) float64 {
	if ok {
		return 1.0
	}
	return 0.0
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
