package schemas

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/classify"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

var schemaFiles = []string{
	"ats_report.schema.json",
	"parsed_resume.schema.json",
	"prediction.schema.json",
	"classifier_model.schema.json",
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var schemaObj map[string]any
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON")
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
		})
	}
}

func TestClassifierModelSchema_MatchesEmbedded(t *testing.T) {
	data, err := os.ReadFile("classifier_model.schema.json")
	require.NoError(t, err)
	assert.JSONEq(t, classify.ModelSchema(), string(data))
}

func TestTestdata_Valid(t *testing.T) {
	tests := []struct {
		schema string
		doc    string
	}{
		{"classifier_model.schema.json", "testdata/classifier_model.json"},
		{"prediction.schema.json", "testdata/prediction.json"},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			assert.NoError(t, schemas.ValidateJSON(tt.schema, tt.doc))
		})
	}
}

func writeJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParsedResume_ServiceOutputValidates(t *testing.T) {
	svc := analysis.NewService(nil, nil)

	inputs := []string{
		"",
		"Jane Doe\nData Engineer\njane@example.com | 555-123-4567\n\nEducation\nBS Math\n\nSkills\nPython, SQL",
		"résumé\n\n\n",
	}
	for _, text := range inputs {
		parsed := svc.Parse(context.Background(), text, "Python, Go")
		err := schemas.ValidateJSON("parsed_resume.schema.json", writeJSON(t, parsed))
		assert.NoError(t, err, "input %q", text)
	}
}

func TestParsedResume_ValueValidatesWithRefs(t *testing.T) {
	parsed := analysis.NewService(nil, nil).Parse(context.Background(), "Jane Doe\njane@example.com", "")
	assert.NoError(t, schemas.ValidateValue("parsed_resume.schema.json", parsed))

	parsed.ATS.Score = 2
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, schemas.ValidateValue("parsed_resume.schema.json", parsed), &validationErr)
}

func TestPrediction_RejectsUnknownLabel(t *testing.T) {
	doc := writeJSON(t, &types.Prediction{
		Prediction:    "Maybe",
		ResumeSkills:  []string{},
		JobSkills:     []string{},
		ResumeSummary: "",
	})

	err := schemas.ValidateJSON("prediction.schema.json", doc)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "prediction", validationErr.Errors[0].Field)
}
