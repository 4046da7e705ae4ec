package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mylikerahul/chatbot-engine/intent"
	"github.com/mylikerahul/chatbot-engine/llm"
	"github.com/mylikerahul/chatbot-engine/product"
)

type stubClassifier struct {
	result intent.Result
}

func (s *stubClassifier) Classify(ctx context.Context, query string) intent.Result {
	return s.result
}

var _ Classifier = (*stubClassifier)(nil)

type stubLLM struct {
	answer string
	err    error
	calls  int
	prompt string
}

func (s *stubLLM) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	s.calls++
	for _, msg := range messages {
		if msg.Role == llm.RoleUser {
			s.prompt = msg.Content
		}
	}
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

var _ llm.Client = (*stubLLM)(nil)

func testItems() []product.Item {
	return []product.Item{
		{ID: 1, Name: "Alpha", Price: "₹1200", Rating: "4.1"},
		{ID: 2, Name: "Beta", Price: "₹800", Rating: "4.6"},
		{ID: 3, Name: "Gamma", Price: "N/A", Rating: "3.2"},
	}
}

func newService(c Classifier, primary, fallback llm.Client) *Service {
	return NewService(c, primary, fallback, zerolog.Nop())
}

func TestChatRejectsEmptyQuery(t *testing.T) {
	svc := newService(&stubClassifier{}, &stubLLM{}, nil)
	if _, err := svc.Chat(context.Background(), Request{Query: "   "}); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestChatClearBypassesGeneration(t *testing.T) {
	llmStub := &stubLLM{answer: "should not be used"}
	svc := newService(&stubClassifier{result: intent.Result{Intent: intent.ClearChat, Confidence: 0.95}}, llmStub, nil)

	resp, err := svc.Chat(context.Background(), Request{Query: "clear", Language: "en"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Answer != "Chat cleared!" {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
	if llmStub.calls != 0 {
		t.Fatal("clear_chat must not invoke the llm")
	}
	if resp.Intent != intent.ClearChat {
		t.Fatalf("unexpected intent: %s", resp.Intent)
	}
}

func TestChatHelpReturnsLocalizedText(t *testing.T) {
	llmStub := &stubLLM{answer: "should not be used"}
	svc := newService(&stubClassifier{result: intent.Result{Intent: intent.Help, Confidence: 0.95}}, llmStub, nil)

	resp, err := svc.Chat(context.Background(), Request{Query: "help", Language: "en"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(resp.Answer, "Here's what I can do") {
		t.Fatalf("expected help text, got %q", resp.Answer)
	}
	if llmStub.calls != 0 {
		t.Fatal("help must not invoke the llm")
	}
}

func TestChatFilterNarrowsItems(t *testing.T) {
	llmStub := &stubLLM{answer: "generated"}
	svc := newService(&stubClassifier{result: intent.Result{Intent: intent.ProductFilter, Confidence: 0.95}}, llmStub, nil)

	resp, err := svc.Chat(context.Background(), Request{
		Query:    "show cheap products under 1000",
		Items:    testItems(),
		Language: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.FilteredItems) != 1 || resp.FilteredItems[0].ID != 2 {
		t.Fatalf("expected only Beta to survive, got %+v", resp.FilteredItems)
	}
	if resp.Answer != "generated" {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
	if resp.FilterDescription == "" {
		t.Fatal("expected a filter description")
	}
	if !strings.Contains(llmStub.prompt, "Beta") {
		t.Fatal("prompt should contain the filtered item")
	}
	if strings.Contains(llmStub.prompt, "Alpha") {
		t.Fatal("prompt should not contain filtered-out items")
	}
}

func TestChatEmptyFilterResultFallsBackToFullSet(t *testing.T) {
	llmStub := &stubLLM{answer: "generated"}
	svc := newService(&stubClassifier{result: intent.Result{Intent: intent.ProductFilter, Confidence: 0.95}}, llmStub, nil)

	resp, err := svc.Chat(context.Background(), Request{
		Query:    "under 5",
		Items:    testItems(),
		Language: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.FilteredItems) != 0 {
		t.Fatalf("expected no filtered items, got %+v", resp.FilteredItems)
	}
	if !strings.Contains(llmStub.prompt, "Alpha") {
		t.Fatal("generation should fall back to the full item set")
	}

	found := false
	for _, thought := range resp.Thoughts {
		if strings.Contains(thought, "using full item set") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected fallback trace entry, got %v", resp.Thoughts)
	}
}

func TestChatProviderChainFallsThrough(t *testing.T) {
	primary := &stubLLM{err: errors.New("rate limited")}
	fallback := &stubLLM{answer: "from fallback"}
	svc := newService(&stubClassifier{result: intent.Result{Intent: intent.GeneralQuestion, Confidence: 0.6}}, primary, fallback)

	resp, err := svc.Chat(context.Background(), Request{Query: "what is this page", Items: testItems(), Language: "en"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Answer != "from fallback" {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected both providers tried once, got %d/%d", primary.calls, fallback.calls)
	}
}

func TestChatCannedAnswerWhenAllProvidersFail(t *testing.T) {
	failing := &stubLLM{err: errors.New("unavailable")}

	t.Run("greeting", func(t *testing.T) {
		svc := newService(&stubClassifier{result: intent.Result{Intent: intent.Greeting, Confidence: 0.95}}, failing, nil)
		resp, err := svc.Chat(context.Background(), Request{Query: "good morning", Language: "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resp.Answer, "ShopBuddy") {
			t.Fatalf("expected canned greeting, got %q", resp.Answer)
		}
	})

	t.Run("items listing", func(t *testing.T) {
		svc := newService(&stubClassifier{result: intent.Result{Intent: intent.ProductFilter, Confidence: 0.95}}, failing, nil)
		resp, err := svc.Chat(context.Background(), Request{Query: "show products", Items: testItems(), Language: "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resp.Answer, "Beta") {
			t.Fatalf("expected item listing, got %q", resp.Answer)
		}
	})

	t.Run("no items", func(t *testing.T) {
		svc := newService(&stubClassifier{result: intent.Result{Intent: intent.GeneralQuestion, Confidence: 0.5}}, failing, nil)
		resp, err := svc.Chat(context.Background(), Request{Query: "anything here", Language: "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resp.Answer, "don't see any products") {
			t.Fatalf("expected no-items guidance, got %q", resp.Answer)
		}
	})
}

func TestChatTraceCoversStages(t *testing.T) {
	svc := newService(&stubClassifier{result: intent.Result{Intent: intent.ProductFilter, Confidence: 0.95}}, &stubLLM{answer: "ok"}, nil)

	resp, err := svc.Chat(context.Background(), Request{Query: "under 1000", Items: testItems(), Language: "en"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(resp.Thoughts, "\n")
	for _, want := range []string{"Language: en", "Intent: product_filter", "Filters:", "Filtered:", "Generating response", "Completed in"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("trace missing %q: %v", want, resp.Thoughts)
		}
	}
	if resp.TraceID == "" {
		t.Fatal("expected a trace id")
	}
}
