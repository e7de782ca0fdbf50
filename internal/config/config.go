// Package config loads run configuration from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"teachreach/internal/infer"
)

// Provider names accepted in configuration.
const (
	ProviderNone   = infer.NoProvider
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds every setting of a run. Command-line flags are applied on
// top of the loaded values by the caller.
type Config struct {
	Paths struct {
		Input   string `yaml:"input" env:"TEACHREACH_INPUT"`
		Output  string `yaml:"output" env:"TEACHREACH_OUTPUT" validate:"required"`
		Mapping string `yaml:"mapping" env:"TEACHREACH_MAPPING"`
	} `yaml:"paths"`

	Inference struct {
		Provider     string        `yaml:"provider" env:"TEACHREACH_PROVIDER" validate:"oneof=none openai gemini"`
		Model        string        `yaml:"model" env:"TEACHREACH_MODEL"`
		BaseURL      string        `yaml:"base_url" env:"TEACHREACH_BASE_URL" validate:"omitempty,url"`
		OpenAIAPIKey string        `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
		GeminiAPIKey string        `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
		Temperature  float64       `yaml:"temperature" env:"TEACHREACH_TEMPERATURE" validate:"gte=0,lte=2"`
		MaxTokens    int           `yaml:"max_tokens" env:"TEACHREACH_MAX_TOKENS" validate:"gte=1"`
		Timeout      time.Duration `yaml:"timeout" env:"TEACHREACH_TIMEOUT" validate:"gt=0"`
	} `yaml:"inference"`

	Pipeline struct {
		Workers int `yaml:"workers" env:"TEACHREACH_WORKERS" validate:"gte=1,lte=64"`
	} `yaml:"pipeline"`

	Logging struct {
		Level  string `yaml:"level" env:"TEACHREACH_LOG_LEVEL" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" env:"TEACHREACH_LOG_FORMAT" validate:"oneof=json console"`
	} `yaml:"logging"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)

	return cfg
}

// Load reads the YAML file at path, when given, over the defaults, then
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	cfg.Inference.Provider = strings.ToLower(strings.TrimSpace(cfg.Inference.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Paths.Input = "data/teachers.csv"
	cfg.Paths.Output = "output/teachers_standardized.csv"

	cfg.Inference.Provider = ProviderOpenAI
	cfg.Inference.Temperature = infer.DefaultTemperature
	cfg.Inference.MaxTokens = infer.DefaultMaxTokens
	cfg.Inference.Timeout = infer.DefaultTimeout

	cfg.Pipeline.Workers = 1

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// APIKey returns the credential of the configured provider.
func (c *Config) APIKey() string {
	switch c.Inference.Provider {
	case ProviderOpenAI:
		return c.Inference.OpenAIAPIKey
	case ProviderGemini:
		return c.Inference.GeminiAPIKey
	default:
		return ""
	}
}

// ProviderConfig returns the settings handed to the inference provider.
func (c *Config) ProviderConfig() infer.ProviderConfig {
	return infer.ProviderConfig{
		APIKey:      c.APIKey(),
		BaseURL:     c.Inference.BaseURL,
		Model:       c.Inference.Model,
		Temperature: c.Inference.Temperature,
		MaxTokens:   c.Inference.MaxTokens,
		Timeout:     c.Inference.Timeout,
	}
}
