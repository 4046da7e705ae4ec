package chat

import (
	"fmt"
	"strings"

	"github.com/mylikerahul/chatbot-engine/intent"
	"github.com/mylikerahul/chatbot-engine/locale"
	"github.com/mylikerahul/chatbot-engine/product"
)

const (
	maxFallbackItems   = 8
	maxFallbackNameLen = 50
)

// cannedAnswer is the last rung of the provider chain: a localized
// rule-based reply assembled without any model call.
func cannedAnswer(req Request, items []product.Item, it intent.Intent, lang string) string {
	switch it {
	case intent.Greeting:
		return locale.Translate("greetings.hello", lang)
	case intent.Farewell:
		return locale.Translate("farewells.bye", lang)
	case intent.Thanks:
		return locale.Translate("thanks.welcome", lang)
	}

	if len(items) == 0 {
		return locale.Translate("errors.no_products_page", lang)
	}

	if it == intent.ProductFilter || it == intent.Summarize {
		return listItems(items, lang)
	}

	return locale.Translate("errors.ai_unavailable", lang) + "\n\n" + listItems(items, lang)
}

func listItems(items []product.Item, lang string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(locale.Translate("products.found", lang), len(items)))
	sb.WriteString("\n\n")

	for i, item := range items {
		if i == maxFallbackItems {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. **%s**", i+1, truncate(item.Name, maxFallbackNameLen)))
		if item.Price != "" {
			sb.WriteString(" - " + item.Price)
		}
		if item.Rating != "" {
			sb.WriteString(" | " + item.Rating)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
