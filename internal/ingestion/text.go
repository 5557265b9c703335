// Package ingestion turns raw document text into the line and whitespace forms
// the heuristics operate on.
package ingestion

import (
	"os"
	"strings"
)

// NormalizeLineEndings converts CRLF and lone CR line endings to LF.
func NormalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// RawLines splits text into lines without trimming or dropping blanks.
// The section segmenter relies on seeing blank lines as boundaries.
func RawLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(NormalizeLineEndings(text), "\n")
}

// NormalizeLines returns the trimmed, non-empty lines of text in document order.
// Whitespace inside a line is left alone.
func NormalizeLines(text string) []string {
	raw := RawLines(text)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// FirstLine returns the first non-empty trimmed line, or "" if there is none.
func FirstLine(text string) string {
	for _, line := range RawLines(text) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// CollapseWhitespace joins the whitespace-separated fields of text with single spaces.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SearchForm is the lowercased, whitespace-collapsed form used for keyword matching.
func SearchForm(text string) string {
	return strings.ToLower(CollapseWhitespace(text))
}

// TokenCount counts whitespace-separated tokens.
func TokenCount(line string) int {
	return len(strings.Fields(line))
}

// IngestFromFile reads a plain text resume or job description and returns its
// text with line endings normalized, plus provenance metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &IngestError{Path: path, Message: "file not found", Cause: err}
		}
		return "", nil, &IngestError{Path: path, Message: "failed to read file", Cause: err}
	}

	text := NormalizeLineEndings(string(content))
	return text, NewMetadata(text, path), nil
}
