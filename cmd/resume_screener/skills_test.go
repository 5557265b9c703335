package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsCommand(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", sampleResume)

	out, err := executeCommand(t, "skills", "--in", resume, "--format", "json")
	require.NoError(t, err)

	var got struct {
		Skills        []string `json:"skills"`
		InferredTitle string   `json:"inferred_title"`
		Summary       string   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"aws", "docker", "kubernetes", "python", "sql"}, got.Skills)
	assert.Equal(t, "Software Engineer", got.InferredTitle)
	assert.True(t, len(got.Summary) > 0 && len([]rune(got.Summary)) <= skillsSummaryChars+3)
}

func TestSkillsCommand_Text(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", sampleResume)

	out, err := executeCommand(t, "skills", "--in", resume)
	require.NoError(t, err)
	assert.Contains(t, out, "kubernetes")
}
