package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/flawscan/flawscan/internal/chunk"
)

// Config is the effective run configuration. It is assembled once at process
// start and passed explicitly; nothing reads ambient globals after Load.
type Config struct {
	Provider      string   `yaml:"provider" env:"FLAWSCAN_PROVIDER"`
	Model         string   `yaml:"model" env:"FLAWSCAN_MODEL"`
	BaseURL       string   `yaml:"baseURL" env:"BASE_URL"`
	MaxChunkWords int      `yaml:"maxChunkWords" env:"FLAWSCAN_MAX_CHUNK_WORDS"`
	OutputDir     string   `yaml:"outputDirectory" env:"FLAWSCAN_OUTPUT_DIR"`
	PromptConfig  string   `yaml:"promptConfigPath" env:"FLAWSCAN_PROMPT_CONFIG"`
	InputSources  []string `yaml:"inputSources"`
	RedactSecrets bool     `yaml:"redactSecrets"`

	// API keys come from the environment only, never from the config file.
	OpenAIKey    string `yaml:"-" env:"OPENAI_API_KEY"`
	AnthropicKey string `yaml:"-" env:"ANTHROPIC_API_KEY"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:      "openai",
		Model:         "gpt-4o",
		MaxChunkWords: chunk.DefaultMaxWords,
		OutputDir:     "flawscan-out",
		RedactSecrets: true,
	}
}

// Load builds the effective config: defaults <- YAML file <- .env/environment
// <- CLI flag overrides. path may be empty; FLAWSCAN_CONFIG is consulted
// before falling back to ./flawscan.yaml. A missing default file is not an
// error, a missing explicit file is.
func Load(path string, overrides map[string]string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("FLAWSCAN_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = "flawscan.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Absent keys leave the defaults untouched.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; env and flags still apply.
	default:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// .env is optional and never overrides variables already set.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := applyOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		switch key {
		case "provider":
			cfg.Provider = value
		case "model":
			cfg.Model = value
		case "baseURL":
			cfg.BaseURL = value
		case "outputDir":
			cfg.OutputDir = value
		case "promptConfig":
			cfg.PromptConfig = value
		case "maxChunkWords":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("maxChunkWords must be an integer: %w", err)
			}
			cfg.MaxChunkWords = n
		case "redactSecrets":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("redactSecrets must be a boolean: %w", err)
			}
			cfg.RedactSecrets = b
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
	}
	return nil
}

// Validate checks the config for values no run can proceed with.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai", "anthropic", "ollama":
	default:
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}
	if c.MaxChunkWords <= 0 {
		return fmt.Errorf("maxChunkWords must be positive, got %d", c.MaxChunkWords)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("outputDirectory must not be empty")
	}
	return nil
}

// APIKey returns the key matching the configured provider. Ollama runs
// locally and needs none.
func (c Config) APIKey() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIKey
	case "anthropic":
		return c.AnthropicKey
	default:
		return ""
	}
}

// Save writes the config as YAML. API keys are excluded by their yaml tags.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
