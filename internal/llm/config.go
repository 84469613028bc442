package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model backend. Everything is read
// from CHRONOS_* environment variables; unset values take the defaults
// below.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter",
	// "mock". Gemini is the default; the curriculum prompts were tuned
	// against it.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL, when set, targets an OpenAI-compatible endpoint.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openAI lowers the OpenRouter settings onto the OpenAI provider, which
// speaks the same protocol.
func (c OpenRouterConfig) openAI() OpenAIConfig {
	base := c.BaseURL
	if base == "" {
		base = defaultOpenRouterBaseURL
	}
	return OpenAIConfig{APIKey: c.APIKey, Model: c.Model, BaseURL: base}
}

// RetryConfig shapes the backoff in the retry middleware.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig is the configuration used when no environment overrides
// are present.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv reads the CHRONOS_* variables over DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "CHRONOS_LLM_PROVIDER")
	set(&cfg.Anthropic.APIKey, "CHRONOS_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "CHRONOS_ANTHROPIC_MODEL")
	set(&cfg.OpenAI.APIKey, "CHRONOS_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "CHRONOS_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "CHRONOS_OPENAI_BASE_URL")
	set(&cfg.Gemini.APIKey, "CHRONOS_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "CHRONOS_GEMINI_MODEL")
	set(&cfg.OpenRouter.APIKey, "CHRONOS_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "CHRONOS_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the conventional API key variables when no
// CHRONOS_* configuration selected a usable provider. Gemini wins ties
// since it is the default backend.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	missing := func(env string) error {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return missing("CHRONOS_GEMINI_API_KEY")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return missing("CHRONOS_OPENAI_API_KEY")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return missing("CHRONOS_ANTHROPIC_API_KEY")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return missing("CHRONOS_OPENROUTER_API_KEY")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
