package embedding

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbedder_Hashing(t *testing.T) {
	e, err := NewEmbedder(context.Background(), &Config{Provider: ProviderHashing, Dimension: 32})
	require.NoError(t, err)
	defer func() { _ = e.Close() }()

	assert.Equal(t, hashingModelName, e.Model())
	vec, err := e.Embed(context.Background(), "python developer")
	require.NoError(t, err)
	assert.Len(t, vec, 32)
}

func TestNewEmbedder_GeminiWithoutKey(t *testing.T) {
	_, err := NewEmbedder(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewGeminiEmbedder_RequiresKey(t *testing.T) {
	_, err := NewGeminiEmbedder(context.Background(), DefaultGeminiModel, "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestValuesFromResponse(t *testing.T) {
	vec, err := valuesFromResponse(&genai.EmbedContentResponse{
		Embedding: &genai.ContentEmbedding{Values: []float32{0.25, -0.5}},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, -0.5}, vec)

	_, err = valuesFromResponse(nil)
	assert.ErrorContains(t, err, "no embedding")

	_, err = valuesFromResponse(&genai.EmbedContentResponse{Embedding: &genai.ContentEmbedding{}})
	assert.ErrorContains(t, err, "empty embedding")
}
