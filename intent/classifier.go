package intent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	chromem "github.com/philippgille/chromem-go"
	"github.com/rs/zerolog"

	"github.com/mylikerahul/chatbot-engine/embeddings"
)

const (
	quickRuleConfidence = 0.95
	keywordConfidence   = 0.6
	rescuedConfidence   = 0.6
	degradedConfidence  = 0.5

	// Semantic matches below this are too ambiguous to trust.
	similarityThreshold = 0.4

	collectionName = "intent-examples"
)

var (
	// A bound keyword is required; currency tokens alone are too common in
	// ordinary text ("cars 3"). Bare ₹ is unambiguous enough to keep.
	priceRuleRe = regexp.MustCompile(`(?:under|below|above|over)\s*(?:₹|rs\.?|inr)?\s*\d+|₹\s*\d+`)
	digitRe     = regexp.MustCompile(`\d`)
)

// Classifier resolves queries to intents. It is built once at startup and is
// safe for concurrent use: the embedding bank is read-only after New returns
// and every Classify call only touches per-request state.
type Classifier struct {
	embedder   embeddings.Embedder
	collection *chromem.Collection
	logger     zerolog.Logger
}

// New builds a classifier. When an embedder is supplied, the example-phrase
// bank is embedded into an in-memory chromem collection; any failure there
// degrades the classifier to rule-based mode rather than failing startup.
func New(ctx context.Context, embedder embeddings.Embedder, logger zerolog.Logger) *Classifier {
	c := &Classifier{embedder: embedder, logger: logger}

	if embedder == nil {
		logger.Info().Msg("no embedder configured, intent classifier running rule-based")
		return c
	}

	collection, err := buildExampleBank(ctx, embedder)
	if err != nil {
		logger.Warn().Err(err).Msg("embedding example bank failed, intent classifier running rule-based")
		return c
	}

	c.collection = collection
	logger.Info().Int("phrases", collection.Count()).Msg("intent classifier ready (semantic mode)")
	return c
}

func buildExampleBank(ctx context.Context, embedder embeddings.Embedder) (*chromem.Collection, error) {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	var docs []chromem.Document
	for it, phrases := range examples {
		for i, phrase := range phrases {
			docs = append(docs, chromem.Document{
				ID:       fmt.Sprintf("%s-%d", it, i),
				Content:  phrase,
				Metadata: map[string]string{"intent": string(it)},
			})
		}
	}

	if err := collection.AddDocuments(ctx, docs, 2); err != nil {
		return nil, fmt.Errorf("embed example phrases: %w", err)
	}
	return collection, nil
}

// Classify resolves a query to an intent with a confidence in [0,1]. The
// three tiers are tried in order and the first hit wins. Classification
// never fails: semantic errors fall through to the keyword tier.
func (c *Classifier) Classify(ctx context.Context, query string) Result {
	query = strings.ToLower(strings.TrimSpace(query))

	if it, ok := quickRules(query); ok {
		return Result{Intent: it, Confidence: quickRuleConfidence}
	}

	if c.collection != nil {
		result, err := c.semanticClassify(ctx, query)
		if err == nil {
			return result
		}
		c.logger.Warn().Err(err).Str("query", query).Msg("semantic classification failed, using keyword fallback")
		return Result{Intent: keywordClassify(query), Confidence: degradedConfidence}
	}

	return Result{Intent: keywordClassify(query), Confidence: keywordConfidence}
}

// quickRules handles the highest-frequency inputs with exact matches plus
// one regex for explicit price language.
func quickRules(query string) (Intent, bool) {
	switch query {
	case "hi", "hii", "hello", "hey", "namaste", "yo":
		return Greeting, true
	case "bye", "goodbye", "tata":
		return Farewell, true
	case "clear", "reset", "new chat":
		return ClearChat, true
	}

	if priceRuleRe.MatchString(query) {
		return ProductFilter, true
	}

	for _, kw := range []string{"thank", "thanks", "thanku", "shukriya"} {
		if strings.Contains(query, kw) {
			return Thanks, true
		}
	}

	return "", false
}

// semanticClassify embeds the query once and takes, per intent, the maximum
// cosine similarity against that intent's example phrases. Low-confidence
// results containing a digit are rescued as product_filter: numeric queries
// are very likely filter requests even when semantically ambiguous.
func (c *Classifier) semanticClassify(ctx context.Context, query string) (Result, error) {
	vectors, err := c.embedder.Embed(ctx, []string{query})
	if err != nil {
		return Result{}, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return Result{}, fmt.Errorf("embedder returned no vectors")
	}

	scores := make(map[Intent]float64, len(examples))
	best := GeneralQuestion
	bestScore := -1.0

	for it := range examples {
		matches, err := c.collection.QueryEmbedding(ctx, vectors[0], 1, map[string]string{"intent": string(it)}, nil)
		if err != nil {
			return Result{}, fmt.Errorf("query %s examples: %w", it, err)
		}
		if len(matches) == 0 {
			continue
		}
		score := float64(matches[0].Similarity)
		scores[it] = score
		if score > bestScore {
			best = it
			bestScore = score
		}
	}

	if bestScore < 0 {
		bestScore = 0
	}

	if bestScore < similarityThreshold {
		if digitRe.MatchString(query) {
			return Result{Intent: ProductFilter, Confidence: rescuedConfidence, Scores: scores}, nil
		}
		return Result{Intent: GeneralQuestion, Confidence: bestScore, Scores: scores}, nil
	}

	return Result{Intent: best, Confidence: bestScore, Scores: scores}, nil
}

// keywordClassify is the always-available tier: ordered keyword-set
// membership checks, general_question when nothing matches.
func keywordClassify(query string) Intent {
	productKeywords := []string{"best", "top", "cheap", "sasta", "under", "above", "price", "product", "show", "dikhao"}
	if containsAny(query, productKeywords) {
		return ProductFilter
	}

	compareKeywords := []string{"compare", "vs", "better", "difference"}
	if containsAny(query, compareKeywords) {
		return ProductCompare
	}

	if strings.Contains(query, "summar") {
		return Summarize
	}

	helpKeywords := []string{"help", "command", "how to"}
	if containsAny(query, helpKeywords) {
		return Help
	}

	return GeneralQuestion
}

func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
