package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestParseCommand_JSON(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", sampleResume)
	job := writeTempFile(t, "job.txt", sampleJob)

	out, err := executeCommand(t, "parse", "--in", resume, "--job", job, "--format", "json")
	require.NoError(t, err)

	var parsed types.ParsedResume
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "Jane Doe", parsed.Name)
	assert.Equal(t, "jane.doe@example.com", parsed.Email)
	assert.Contains(t, parsed.Skills, "python")
	require.NotNil(t, parsed.ATS)
	assert.Contains(t, parsed.ATS.MatchedKeywords, "kubernetes")
}

func TestParseCommand_Text(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", sampleResume)

	out, err := executeCommand(t, "parse", "--in", resume)
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane.doe@example.com")
}

func TestParseCommand_OutFileValidates(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", sampleResume)
	outPath := filepath.Join(t.TempDir(), "parsed.json")

	out, err := executeCommand(t, "parse", "--in", resume, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully parsed resume")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ats_score"`)
}

func TestParseCommand_Errors(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", sampleResume)
	empty := writeTempFile(t, "empty.txt", "  \n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing in flag", []string{"parse"}, `required flag(s) "in" not set`},
		{"unsupported extension", []string{"parse", "--in", writeTempFile(t, "resume.rtf", "x")}, "unsupported document type"},
		{"empty document", []string{"parse", "--in", empty}, "empty extracted text"},
		{"bad format", []string{"parse", "--in", resume, "--format", "yaml"}, "invalid --format"},
		{"job file and url", []string{"parse", "--in", resume, "--job", resume, "--job-url", "https://example.com"}, "not both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
