// Package embeddings provides the sentence-embedding backends used by the
// semantic intent tier. The embedder is optional: when no provider is
// configured (or the configured one is unusable) the classifier runs in
// rule-based mode.
package embeddings

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/mylikerahul/chatbot-engine/config"
)

type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type Options struct {
	Provider  string
	Model     string
	Dimension int

	OllamaHost string
	APIKey     string
	BaseURL    string
}

// NewEmbedder builds the embedder selected in cfg. An empty provider returns
// (nil, nil): embeddings disabled, not an error.
func NewEmbedder(cfg config.Config) (Embedder, error) {
	opts := Options{
		Provider:   cfg.Embeddings.Provider,
		Model:      cfg.Embeddings.Model,
		Dimension:  cfg.Embeddings.Dimension,
		OllamaHost: cfg.OllamaHost,
		APIKey:     cfg.APIKey(cfg.Embeddings.Provider),
		BaseURL:    cfg.BaseURL(cfg.Embeddings.Provider),
	}

	switch opts.Provider {
	case "":
		return nil, nil
	case config.ProviderOllama:
		return NewOllamaEmbedder(opts), nil
	case config.ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("openai embeddings selected but no API key configured")
		}
		return NewOpenAIEmbedder(opts), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", opts.Provider)
	}
}

// ToChromemFunc adapts an Embedder to the single-text signature chromem-go
// expects for its collections.
func ToChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vectors, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(vectors) == 0 {
			return nil, fmt.Errorf("embedder returned no vectors")
		}
		return vectors[0], nil
	}
}
