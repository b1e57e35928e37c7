// Package httpapi exposes the translation orchestrator over a JSON HTTP API.
package httpapi

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the server configuration. Values resolve in three layers:
// built-in defaults, then the YAML file, then GLOT_* environment variables.
type Config struct {
	Listen        string `yaml:"listen" envconfig:"LISTEN"`
	MaxChars      int    `yaml:"max_chars" envconfig:"MAX_CHARS"`
	DefaultSource string `yaml:"default_source" envconfig:"DEFAULT_SOURCE"`
	DefaultTarget string `yaml:"default_target" envconfig:"DEFAULT_TARGET"`

	Backend BackendConfig `yaml:"backend"`
	Cache   CacheConfig   `yaml:"cache"`
}

// BackendConfig selects and configures the translation backend.
type BackendConfig struct {
	// Kind is one of "gtx", "mobile", "openai", or "none".
	// "none" marks the translation capability unavailable.
	Kind string `yaml:"kind" envconfig:"BACKEND_KIND"`

	OpenAIAPIKey string `yaml:"openai_api_key" envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"openai_model" envconfig:"OPENAI_MODEL"`

	// RequestsPerMinute throttles outgoing backend calls. 0 disables throttling.
	RequestsPerMinute int `yaml:"requests_per_minute" envconfig:"BACKEND_RPM"`

	// Retries enables the retrying decorator with this many attempts. 0 disables.
	Retries int `yaml:"retries" envconfig:"BACKEND_RETRIES"`
}

// CacheConfig configures the translation result cache.
type CacheConfig struct {
	TTLSeconds int    `yaml:"ttl_seconds" envconfig:"CACHE_TTL_SECONDS"`
	MaxEntries int    `yaml:"max_entries" envconfig:"CACHE_MAX_ENTRIES"`
	RedisURL   string `yaml:"redis_url" envconfig:"CACHE_REDIS_URL"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Listen:        ":8080",
		MaxChars:      5000,
		DefaultSource: "auto",
		DefaultTarget: "en",
		Backend: BackendConfig{
			Kind: "gtx",
		},
		Cache: CacheConfig{
			TTLSeconds: 3600,
			MaxEntries: 1024,
		},
	}
}

// LoadConfig resolves the configuration from defaults, an optional YAML file,
// and environment variables, in that order. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if err := cfg.readYAML(path); err != nil {
		return Config{}, err
	}

	if err := envconfig.Process("glot", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) readYAML(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	return nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.MaxChars < 1 {
		return fmt.Errorf("max_chars must be >= 1")
	}
	switch c.Backend.Kind {
	case "gtx", "mobile", "openai", "none":
	default:
		return fmt.Errorf("unknown backend kind %q", c.Backend.Kind)
	}
	if c.Backend.Kind == "openai" && strings.TrimSpace(c.Backend.OpenAIAPIKey) == "" {
		return fmt.Errorf("openai backend requires an API key")
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache ttl_seconds must be >= 0")
	}
	return nil
}
