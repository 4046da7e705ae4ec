// Package llm wraps the chat-completion providers behind one Client
// interface. Groq exposes an OpenAI-compatible API, so it shares the
// go-openai client with a different base URL.
package llm

import (
	"context"
	"fmt"

	"github.com/mylikerahul/chatbot-engine/config"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

type Options struct {
	Provider string
	Model    string

	OllamaHost string
	APIKey     string
	BaseURL    string
}

// NewClient builds a chat client for the given provider and model. An empty
// provider returns (nil, nil); the orchestrator treats a nil client as
// unavailable and falls through to its canned responses.
func NewClient(cfg config.Config, provider, model string) (Client, error) {
	opts := Options{
		Provider:   provider,
		Model:      model,
		OllamaHost: cfg.OllamaHost,
		APIKey:     cfg.APIKey(provider),
		BaseURL:    cfg.BaseURL(provider),
	}

	switch provider {
	case "":
		return nil, nil
	case config.ProviderOllama:
		return NewOllamaClient(opts), nil
	case config.ProviderOpenAI, config.ProviderGroq:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("%s provider selected but no API key configured", provider)
		}
		return NewOpenAIClient(opts), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
