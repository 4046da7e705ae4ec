package chat

import (
	"time"

	"github.com/mylikerahul/chatbot-engine/intent"
	"github.com/mylikerahul/chatbot-engine/product"
)

// Request is one chat turn: the user's query plus the page snapshot the
// browser side scraped. Site and page metadata feed trace text and prompt
// construction only.
type Request struct {
	Query       string
	Items       []product.Item
	PageURL     string
	PageTitle   string
	PageContent string
	SiteType    string
	PageType    string
	Language    string // ISO 639-1 code, or "auto" to detect
}

// Response carries the generated answer together with the pipeline trace.
// Thoughts is request-scoped and append-only, one entry per stage crossed.
type Response struct {
	Answer            string
	Thoughts          []string
	FilteredItems     []product.Item
	Intent            intent.Intent
	Confidence        float64
	FilterDescription string
	ProcessingTime    time.Duration
	Language          string
	TraceID           string
}
