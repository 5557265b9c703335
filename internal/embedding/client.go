package embedding

import (
	"context"
	"fmt"
)

// Embedder is an abstraction over embedding providers.
// Identical input must produce identical vectors of a fixed, model-defined length.
type Embedder interface {
	// Embed returns the embedding of text
	Embed(ctx context.Context, text string) ([]float64, error)
	// Model returns the provider model name
	Model() string
	// Close releases any resources held by the embedder
	Close() error
}

// NewEmbedder creates an Embedder from configuration.
func NewEmbedder(ctx context.Context, config *Config) (Embedder, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Provider {
	case ProviderHashing:
		return NewHashingEmbedder(config.Dimension), nil
	case ProviderGemini:
		return NewGeminiEmbedder(ctx, config.Model, config.APIKey)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", config.Provider)
	}
}
