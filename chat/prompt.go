package chat

import (
	"fmt"
	"strings"

	"github.com/mylikerahul/chatbot-engine/product"
)

const (
	maxPromptItems     = 15
	maxExtraChars      = 60
	maxContentPreview  = 800
	promptLanguageNote = "Respond in the user's language (%s). Be friendly, concise, and data-driven."
)

func systemPrompt(siteType, lang string) string {
	var sb strings.Builder
	sb.WriteString("You are ShopBuddy, an intelligent assistant that helps users with whatever website they are browsing.\n\n")
	sb.WriteString(fmt.Sprintf("Current site: %s\n\n", orUnknown(siteType)))
	sb.WriteString("Capabilities:\n")
	sb.WriteString("1. E-commerce: filter, compare, and recommend products\n")
	sb.WriteString("2. Entertainment: recommend movies, shows, videos\n")
	sb.WriteString("3. Social and news: summarize posts and articles\n")
	sb.WriteString("4. General: analyze any page content\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Only use the provided data, never invent items or prices\n")
	sb.WriteString("2. If the data is missing, say so clearly\n")
	sb.WriteString("3. Address the user's question directly\n")
	sb.WriteString("4. Offer helpful suggestions\n")
	sb.WriteString("5. Format with bullets or numbers when it helps\n\n")
	sb.WriteString(fmt.Sprintf(promptLanguageNote, lang))
	return sb.String()
}

// buildContext renders the page snapshot for the model: up to 15 items with
// their scraped price/rating text, or a page-content preview when the
// scraper found no structured items.
func buildContext(req Request, items []product.Item) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Site: %s", orUnknown(req.SiteType)))
	parts = append(parts, fmt.Sprintf("Page: %s", orUnknown(req.PageType)))
	if req.PageTitle != "" {
		parts = append(parts, fmt.Sprintf("Title: %s", req.PageTitle))
	}

	if len(items) == 0 {
		parts = append(parts, "\nNo structured items found on this page")
		if req.PageContent != "" {
			parts = append(parts, fmt.Sprintf("\nPage content preview:\n%s", truncate(req.PageContent, maxContentPreview)))
		}
		return strings.Join(parts, "\n")
	}

	parts = append(parts, fmt.Sprintf("\nItems found (%d):", len(items)))
	for i, item := range items {
		if i == maxPromptItems {
			parts = append(parts, fmt.Sprintf("... and %d more items", len(items)-maxPromptItems))
			break
		}
		line := fmt.Sprintf("%d. %s", i+1, item.Name)
		if item.Price != "" {
			line += fmt.Sprintf("\n   Price: %s", item.Price)
		}
		if item.Rating != "" {
			line += fmt.Sprintf(" | Rating: %s", item.Rating)
		}
		if item.Extra != "" {
			line += fmt.Sprintf("\n   Info: %s", truncate(item.Extra, maxExtraChars))
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, "\n")
}

func formatUserPrompt(req Request, items []product.Item, lang string) string {
	var sb strings.Builder
	sb.WriteString("USER QUERY: ")
	sb.WriteString(req.Query)
	sb.WriteString("\n\nCONTEXT:\n")
	sb.WriteString(buildContext(req, items))
	sb.WriteString("\n\n---\nRespond helpfully. Be specific and use the data provided.")
	return sb.String()
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
