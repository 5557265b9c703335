// Package config loads service configuration from a file, the environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-screener/internal/embedding"
)

// EnvPrefix prefixes every environment override, e.g. SCREENER_EMBEDDING_PROVIDER.
const EnvPrefix = "SCREENER"

// DefaultPort is the HTTP port when none is configured.
const DefaultPort = 8000

// Config is the resolved service configuration.
type Config struct {
	Port           int              `mapstructure:"port"`
	DatabaseURL    string           `mapstructure:"database_url"`
	ClassifierPath string           `mapstructure:"classifier_path"`
	MaxUploadBytes int64            `mapstructure:"max_upload_bytes"`
	Embedding      embedding.Config `mapstructure:"embedding"`
	Log            LogConfig        `mapstructure:"log"`
}

// LogConfig selects the log format and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	emb := embedding.DefaultConfig()
	return &Config{
		Port:           DefaultPort,
		MaxUploadBytes: 10 << 20,
		Embedding:      *emb,
	}
}

// Load resolves configuration. path is optional; when set the file must exist
// and parse. Environment variables override file values, and the bare
// DATABASE_URL, GEMINI_API_KEY, and PORT variables are honoured too.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// New returns a viper instance with defaults and environment bindings applied.
func New() *viper.Viper {
	v := viper.New()

	def := Defaults()
	v.SetDefault("port", def.Port)
	v.SetDefault("database_url", def.DatabaseURL)
	v.SetDefault("classifier_path", def.ClassifierPath)
	v.SetDefault("max_upload_bytes", def.MaxUploadBytes)
	v.SetDefault("embedding.provider", string(def.Embedding.Provider))
	v.SetDefault("embedding.model", def.Embedding.Model)
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.dimension", def.Embedding.Dimension)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bare names win over the prefixed ones when both are set.
	_ = v.BindEnv("database_url", "DATABASE_URL", EnvPrefix+"_DATABASE_URL")
	_ = v.BindEnv("embedding.api_key", "GEMINI_API_KEY", EnvPrefix+"_EMBEDDING_API_KEY")
	_ = v.BindEnv("port", "PORT", EnvPrefix+"_PORT")

	return v
}

// FromViper decodes v into a Config.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges and file references. Embedding settings are checked
// by the embedding package when an embedder is built.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("config error: 'port' out of range: %d", c.Port))
	}
	if c.MaxUploadBytes < 0 {
		errs = append(errs, fmt.Errorf("config error: 'max_upload_bytes' must be non-negative"))
	}
	if c.ClassifierPath != "" {
		if _, err := os.Stat(c.ClassifierPath); err != nil {
			errs = append(errs, fmt.Errorf("config error: classifier file not found: %s", c.ClassifierPath))
		}
	}
	if c.DatabaseURL != "" && !strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		errs = append(errs, fmt.Errorf("config error: 'database_url' must be a postgres URL"))
	}

	return errors.Join(errs...)
}

// HistoryEnabled reports whether analyses should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}
