package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		heading string
		want    []string
	}{
		{
			name:    "captures until next heading",
			text:    "EDUCATION\nMS CS, Stanford 2019\nEXPERIENCE\nAcme Corp 2019-2023",
			heading: "education",
			want:    []string{"MS CS, Stanford 2019"},
		},
		{
			name:    "blank line ends capture",
			text:    "Skills\npython, go\n\nkubernetes, helm",
			heading: "skills",
			want:    []string{"python, go"},
		},
		{
			name:    "blank lines before content are ignored",
			text:    "Skills\n\n   \npython, go",
			heading: "skills",
			want:    []string{"python, go"},
		},
		{
			name:    "heading never found",
			text:    "Jane Doe\nEngineer",
			heading: "education",
			want:    []string{},
		},
		{
			name:    "heading on last line",
			text:    "Jane Doe\nExperience",
			heading: "experience",
			want:    []string{},
		},
		{
			name:    "repeated heading line is consumed",
			text:    "Experience\nacme corp, 2019\nExperience highlights\nled a team of 5",
			heading: "experience",
			want:    []string{"acme corp, 2019", "led a team of 5"},
		},
		{
			name:    "inline heading content is consumed with the heading",
			text:    "Skills: python, sql\ndocker, aws",
			heading: "skills",
			want:    []string{"docker, aws"},
		},
		{
			name:    "lines are trimmed",
			text:    "education\n   BSc Physics, 2012   ",
			heading: "education",
			want:    []string{"BSc Physics, 2012"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentSections(tt.text, []string{tt.heading})
			assert.Equal(t, tt.want, got[tt.heading])
		})
	}
}

// Short capitalized content lines look like headings and end the section early.
func TestSegment_HeadingShapeFalsePositive(t *testing.T) {
	sections := SegmentSections("Experience\nSenior Engineer\nbuilt billing systems", []string{"experience"})
	assert.Empty(t, sections["experience"])

	sections = SegmentSections("EDUCATION\nMS CS\nEXPERIENCE\nAcme Corp", DefaultHeadings())
	assert.Empty(t, sections[HeadingEducation])
	assert.Empty(t, sections[HeadingExperience])
}

func TestSegmenter_Transitions(t *testing.T) {
	seg := NewSegmenter("Education")
	assert.Equal(t, Seeking, seg.State())

	assert.True(t, seg.Feed("Jane Doe"))
	assert.Equal(t, Seeking, seg.State())

	assert.True(t, seg.Feed(""))
	assert.Equal(t, Seeking, seg.State())

	assert.True(t, seg.Feed("EDUCATION"))
	assert.Equal(t, Capturing, seg.State())

	assert.True(t, seg.Feed(""))
	assert.Equal(t, Capturing, seg.State())

	assert.True(t, seg.Feed("BS, MIT 2015"))
	assert.False(t, seg.Feed("Projects:"))
	assert.Equal(t, Done, seg.State())

	assert.False(t, seg.Feed("more, text"))
	assert.Equal(t, []string{"BS, MIT 2015"}, seg.Lines())
}

func TestSegmenter_LinesIsACopy(t *testing.T) {
	seg := NewSegmenter("skills")
	seg.Feed("skills")
	seg.Feed("go, sql")

	lines := seg.Lines()
	lines[0] = "changed"
	assert.Equal(t, []string{"go, sql"}, seg.Lines())
}

func TestSegmentState_String(t *testing.T) {
	assert.Equal(t, "seeking", Seeking.String())
	assert.Equal(t, "capturing", Capturing.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "unknown", SegmentState(9).String())
}
