package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// headingShape matches a short capitalized line that looks like any section heading.
// It also matches short capitalized content lines such as "MS CS"; that is a
// known limitation kept for compatibility.
var headingShape = regexp.MustCompile(`^[A-Z][A-Za-z ]{1,30}:?$`)

// Default section headings.
const (
	HeadingEducation  = "education"
	HeadingExperience = "experience"
	HeadingSkills     = "skills"
)

// DefaultHeadings lists the sections captured by ParseResume.
func DefaultHeadings() []string {
	return []string{HeadingEducation, HeadingExperience, HeadingSkills}
}

// SegmentState is the position of a Segmenter in its line stream.
type SegmentState int

const (
	// Seeking has not yet seen the heading.
	Seeking SegmentState = iota
	// Capturing is collecting lines under the heading.
	Capturing
	// Done is terminal.
	Done
)

func (s SegmentState) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case Capturing:
		return "capturing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Segmenter collects the lines of one section from a stream of raw lines.
type Segmenter struct {
	heading string
	state   SegmentState
	lines   []string
}

// NewSegmenter returns a Segmenter for heading, matched case-insensitively as a line prefix.
func NewSegmenter(heading string) *Segmenter {
	return &Segmenter{
		heading: strings.ToLower(heading),
		lines:   []string{},
	}
}

// Feed consumes one raw line and reports whether the segmenter accepts more input.
//
// A blank line ends capture once something has been captured and is otherwise
// ignored. A line starting with the heading enters Capturing and is not emitted,
// even when already capturing. While capturing, a heading-shaped line ends capture
// without being emitted.
func (s *Segmenter) Feed(line string) bool {
	if s.state == Done {
		return false
	}

	l := strings.TrimSpace(line)
	if l == "" {
		if s.state == Capturing && len(s.lines) > 0 {
			s.state = Done
			return false
		}
		return true
	}

	if strings.HasPrefix(strings.ToLower(l), s.heading) {
		s.state = Capturing
		return true
	}

	if s.state == Capturing {
		if headingShape.MatchString(l) {
			s.state = Done
			return false
		}
		s.lines = append(s.lines, l)
	}
	return true
}

// State returns the current state.
func (s *Segmenter) State() SegmentState {
	return s.state
}

// Lines returns a copy of the captured lines in document order.
func (s *Segmenter) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Segment runs a segmenter for heading over raw lines and returns what it captured.
func Segment(rawLines []string, heading string) []string {
	seg := NewSegmenter(heading)
	for _, line := range rawLines {
		if !seg.Feed(line) {
			break
		}
	}
	return seg.Lines()
}

// SegmentSections captures each heading's section from text.
// A heading that never appears maps to an empty slice.
func SegmentSections(text string, headings []string) map[string][]string {
	raw := ingestion.RawLines(text)
	sections := make(map[string][]string, len(headings))
	for _, h := range headings {
		sections[h] = Segment(raw, h)
	}
	return sections
}
