// Package chat orchestrates one conversational turn: classify the query,
// optionally narrow the item collection through the filter engine, then hand
// the result to a language model for the final answer. Every stage appends a
// human-readable trace entry.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mylikerahul/chatbot-engine/intent"
	"github.com/mylikerahul/chatbot-engine/llm"
	"github.com/mylikerahul/chatbot-engine/locale"
	"github.com/mylikerahul/chatbot-engine/product"
)

// Classifier is the intent resolution dependency.
type Classifier interface {
	Classify(ctx context.Context, query string) intent.Result
}

// Service runs the chat pipeline. It holds only shared read-only
// dependencies and is safe for concurrent use.
type Service struct {
	classifier Classifier
	primary    llm.Client
	fallback   llm.Client
	logger     zerolog.Logger
}

// NewService wires the pipeline. Either llm client may be nil; generation
// then degrades to the canned localized responses.
func NewService(classifier Classifier, primary, fallback llm.Client, logger zerolog.Logger) *Service {
	return &Service{
		classifier: classifier,
		primary:    primary,
		fallback:   fallback,
		logger:     logger,
	}
}

// Chat processes one request. The only error is an empty query; everything
// downstream degrades to defaults instead of failing.
func (s *Service) Chat(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return Response{}, fmt.Errorf("query cannot be empty")
	}

	resp := Response{
		TraceID:  uuid.NewString(),
		Language: locale.Normalize(req.Language, query),
	}

	resp.Thoughts = append(resp.Thoughts,
		fmt.Sprintf("Language: %s", resp.Language),
		fmt.Sprintf("Query: %s", query),
		fmt.Sprintf("Site: %s", orUnknown(req.SiteType)),
		fmt.Sprintf("Items: %d", len(req.Items)),
	)

	result := s.classifier.Classify(ctx, query)
	resp.Intent = result.Intent
	resp.Confidence = result.Confidence
	resp.Thoughts = append(resp.Thoughts, fmt.Sprintf("Intent: %s (%.0f%%)", result.Intent, result.Confidence*100))

	switch result.Intent {
	case intent.ClearChat:
		resp.Answer = locale.Translate("actions.clear", resp.Language) + "!"
		resp.ProcessingTime = time.Since(start)
		return resp, nil
	case intent.Help:
		resp.Answer = locale.HelpText(resp.Language)
		resp.ProcessingTime = time.Since(start)
		return resp, nil
	}

	items := req.Items
	if result.Intent == intent.ProductFilter && len(items) > 0 {
		if stats := product.Analyze(items); stats.PriceMin > 0 {
			resp.Thoughts = append(resp.Thoughts, fmt.Sprintf("Price range: Rs.%.0f - Rs.%.0f", stats.PriceMin, stats.PriceMax))
		}

		filter := product.ParseFilters(query)
		resp.FilterDescription = product.Describe(filter)
		resp.Thoughts = append(resp.Thoughts, fmt.Sprintf("Filters: %s", resp.FilterDescription))

		filtered := product.Apply(items, filter)
		resp.Thoughts = append(resp.Thoughts, fmt.Sprintf("Filtered: %d items", len(filtered)))

		if len(filtered) > 0 {
			items = filtered
			resp.FilteredItems = filtered
		} else {
			// Never show the user a dead end: an over-tight filter falls
			// back to the full collection.
			resp.Thoughts = append(resp.Thoughts, "No matches, using full item set")
		}
	}

	resp.Thoughts = append(resp.Thoughts, "Generating response")
	resp.Answer = s.generate(ctx, req, items, result.Intent, resp.Language)

	resp.ProcessingTime = time.Since(start)
	resp.Thoughts = append(resp.Thoughts, fmt.Sprintf("Completed in %.2fs", resp.ProcessingTime.Seconds()))

	s.logger.Info().
		Str("trace_id", resp.TraceID).
		Str("intent", string(resp.Intent)).
		Float64("confidence", resp.Confidence).
		Str("language", resp.Language).
		Int("items", len(items)).
		Dur("duration", resp.ProcessingTime).
		Msg("chat turn completed")

	return resp, nil
}

// generate walks the provider chain: primary client, then fallback client,
// then the canned localized answer. LLM failures are logged, never surfaced.
func (s *Service) generate(ctx context.Context, req Request, items []product.Item, it intent.Intent, lang string) string {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt(req.SiteType, lang)},
		{Role: llm.RoleUser, Content: formatUserPrompt(req, items, lang)},
	}

	for _, client := range []llm.Client{s.primary, s.fallback} {
		if client == nil {
			continue
		}
		answer, err := client.Generate(ctx, messages)
		if err != nil {
			s.logger.Warn().Err(err).Msg("llm generate failed, trying next provider")
			continue
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer
		}
	}

	return cannedAnswer(req, items, it, lang)
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}
