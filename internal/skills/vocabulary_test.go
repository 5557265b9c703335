package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "sorted output", text: "I use Python and AWS daily", want: []string{"aws", "python"}},
		{name: "substring overlap", text: "JavaScript and React", want: []string{"java", "javascript", "react"}},
		{name: "multi-word across line break", text: "Machine\n   Learning research", want: []string{"machine learning"}},
		{name: "multi-word needs the space", text: "deeplearning", want: []string{}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSkills(tt.text))
		})
	}
}

func TestExtractSkills_SubsetOfVocabulary(t *testing.T) {
	vocab := Vocabulary()
	inputs := []string{
		"Python Python PYTHON pandas numpy SQL",
		"kubernetes docker docker-compose FastAPI",
		"deep learning and machine learning with java and javascript on aws",
		"nothing relevant here",
	}

	for _, in := range inputs {
		got := ExtractSkills(in)
		assert.True(t, sort.StringsAreSorted(got), in)

		seen := map[string]bool{}
		for _, s := range got {
			assert.Contains(t, vocab, s)
			assert.False(t, seen[s], "duplicate %q", s)
			seen[s] = true
		}
	}
}

func TestVocabulary_IsACopy(t *testing.T) {
	v := Vocabulary()
	v[0] = "cobol"
	assert.NotContains(t, Vocabulary(), "cobol")
	assert.Len(t, Vocabulary(), 13)
}
