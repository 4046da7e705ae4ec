package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Provider identifiers shared by the embeddings and llm packages.
const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
	ProviderOllama = "ollama"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

type Config struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port"`
	LogLevel        string `koanf:"log_level"`
	LogFormat       string `koanf:"log_format"` // json or console
	DefaultLanguage string `koanf:"default_language"`

	Embeddings EmbeddingConfig `koanf:"embeddings"`
	LLM        LLMConfig       `koanf:"llm"`

	OllamaHost    string `koanf:"ollama_host"`
	OpenAIAPIKey  string `koanf:"openai_api_key"`
	OpenAIBaseURL string `koanf:"openai_base_url"`
	GroqAPIKey    string `koanf:"groq_api_key"`
	GroqBaseURL   string `koanf:"groq_base_url"`
}

// EmbeddingConfig selects the provider backing the semantic intent tier.
// An empty provider disables the tier entirely; classification then relies
// on quick rules and keyword fallback.
type EmbeddingConfig struct {
	Provider  string `koanf:"provider"`
	Model     string `koanf:"model"`
	Dimension int    `koanf:"dimension"`
}

type LLMConfig struct {
	Provider         string `koanf:"provider"`
	Model            string `koanf:"model"`
	FallbackProvider string `koanf:"fallback_provider"`
	FallbackModel    string `koanf:"fallback_model"`
}

func Default() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8000,
		LogLevel:        "info",
		LogFormat:       "console",
		DefaultLanguage: "en",
		Embeddings: EmbeddingConfig{
			Provider: ProviderOllama,
			Model:    "nomic-embed-text",
		},
		LLM: LLMConfig{
			Provider:         ProviderGroq,
			Model:            "llama-3.3-70b-versatile",
			FallbackProvider: ProviderOllama,
			FallbackModel:    "llama3.2",
		},
		OllamaHost:  "http://localhost:11434",
		GroqBaseURL: groqBaseURL,
	}
}

// Load reads configuration from the given YAML file (if it exists), then
// overlays environment variable overrides (CHATBOT_*). Nested keys use a
// double underscore, e.g. CHATBOT_LLM__MODEL -> llm.model.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("access config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("CHATBOT_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "CHATBOT_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return cfg, fmt.Errorf("load env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

var validProviders = map[string]bool{
	"":             true, // disabled
	ProviderOpenAI: true,
	ProviderGroq:   true,
	ProviderOllama: true,
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if !validProviders[c.Embeddings.Provider] {
		return fmt.Errorf("invalid embeddings provider %q: must be one of openai, groq, ollama", c.Embeddings.Provider)
	}
	if !validProviders[c.LLM.Provider] {
		return fmt.Errorf("invalid llm provider %q: must be one of openai, groq, ollama", c.LLM.Provider)
	}
	if !validProviders[c.LLM.FallbackProvider] {
		return fmt.Errorf("invalid llm fallback provider %q", c.LLM.FallbackProvider)
	}
	if c.LLM.Provider != "" && c.LLM.Model == "" {
		return fmt.Errorf("llm model is required when a provider is set")
	}
	return nil
}

// APIKey returns the configured key for the given provider.
func (c Config) APIKey(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	case ProviderGroq:
		return c.GroqAPIKey
	default:
		return ""
	}
}

// BaseURL returns the API base URL override for the given provider, if any.
func (c Config) BaseURL(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return c.OpenAIBaseURL
	case ProviderGroq:
		if c.GroqBaseURL != "" {
			return c.GroqBaseURL
		}
		return groqBaseURL
	default:
		return ""
	}
}
