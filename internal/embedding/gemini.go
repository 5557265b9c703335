package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-screener/internal/ranking"
)

// GeminiEmbedder implements Embedder for Google Gemini
type GeminiEmbedder struct {
	client *genai.Client
	model  *genai.EmbeddingModel
	name   string
}

// NewGeminiEmbedder creates a new Gemini embedder for model
func NewGeminiEmbedder(ctx context.Context, model, apiKey string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	em := client.EmbeddingModel(model)
	em.TaskType = genai.TaskTypeSemanticSimilarity

	return &GeminiEmbedder{client: client, model: em, name: model}, nil
}

// Embed returns the embedding of text
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	return valuesFromResponse(resp)
}

// Model returns the embedding model name
func (e *GeminiEmbedder) Model() string {
	return e.name
}

// Close releases resources held by the client
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// valuesFromResponse extracts the embedding values from a Gemini response
func valuesFromResponse(resp *genai.EmbedContentResponse) ([]float64, error) {
	if resp == nil || resp.Embedding == nil {
		return nil, errors.New("no embedding in response")
	}
	if len(resp.Embedding.Values) == 0 {
		return nil, errors.New("empty embedding in response")
	}
	return ranking.ToFloat64(resp.Embedding.Values), nil
}
