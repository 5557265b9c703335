package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	h1 := Hash("resume one")
	h2 := Hash("resume two")

	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, h1, Hash("resume one"))
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("Zoë", "cv.txt")

	assert.Equal(t, "cv.txt", meta.Source)
	assert.Equal(t, 3, meta.Chars)
	assert.Equal(t, Hash("Zoë"), meta.Hash)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}

func TestMetadata_ToJSON_OmitsEmptySource(t *testing.T) {
	data, err := NewMetadata("text", "").ToJSON()
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "source")
	assert.Contains(t, fields, "hash")
}
