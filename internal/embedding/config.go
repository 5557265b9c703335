// Package embedding turns text into dense vectors through a configurable provider.
package embedding

import (
	"errors"
	"fmt"
)

// Provider names an embedding backend.
type Provider string

const (
	// ProviderGemini embeds through the Google Gemini embedding API.
	ProviderGemini Provider = "gemini"
	// ProviderHashing embeds locally with feature hashing. It needs no network access.
	ProviderHashing Provider = "hashing"
)

// Defaults per provider.
const (
	DefaultGeminiModel      = "text-embedding-004"
	DefaultHashingDimension = 384
	hashingModelName        = "feature-hashing"
)

// ErrMissingAPIKey is returned when a remote provider has no credentials.
var ErrMissingAPIKey = errors.New("API key is required")

// Config selects and configures an embedding provider.
type Config struct {
	Provider  Provider `mapstructure:"provider"`
	Model     string   `mapstructure:"model"`
	APIKey    string   `mapstructure:"api_key"`
	Dimension int      `mapstructure:"dimension"`
}

// DefaultConfig returns the default configuration (Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderGemini,
		Model:     DefaultGeminiModel,
		Dimension: DefaultHashingDimension,
	}
}

// Validate checks that the configuration names a usable provider.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("embedding provider %q: %w", c.Provider, ErrMissingAPIKey)
		}
		if c.Model == "" {
			return fmt.Errorf("embedding provider %q: model is required", c.Provider)
		}
	case ProviderHashing:
		if c.Dimension <= 0 {
			return fmt.Errorf("embedding provider %q: dimension must be positive, got %d", c.Provider, c.Dimension)
		}
	default:
		return fmt.Errorf("unknown embedding provider %q", c.Provider)
	}
	return nil
}
