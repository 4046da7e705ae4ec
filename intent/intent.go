// Package intent classifies user queries into a closed set of intents using
// a three-tier strategy: exact quick rules, embedding similarity against a
// bank of example phrases, and a keyword fallback that needs no model.
package intent

// Intent is the classified purpose of a user query.
type Intent string

const (
	Greeting        Intent = "greeting"
	Farewell        Intent = "farewell"
	Thanks          Intent = "thanks"
	Help            Intent = "help"
	ProductFilter   Intent = "product_filter"
	ProductCompare  Intent = "product_compare"
	ProductInfo     Intent = "product_info"
	PriceQuery      Intent = "price_query"
	Summarize       Intent = "summarize"
	ClearChat       Intent = "clear_chat"
	GeneralQuestion Intent = "general_question"
)

// Result is one classification outcome. Scores carries the per-intent
// similarity map from the semantic tier and is empty for the other tiers.
type Result struct {
	Intent     Intent
	Confidence float64
	Scores     map[Intent]float64
}

// examples is the phrase bank embedded once at startup for the semantic
// tier. Phrases mix English and Hinglish the way real queries arrive.
var examples = map[Intent][]string{
	Greeting: {
		"hi", "hello", "hey", "namaste", "good morning",
		"good evening", "howdy", "hola", "kaise ho", "how are you",
	},
	Farewell: {
		"bye", "goodbye", "see you", "tata", "alvida", "take care",
	},
	Thanks: {
		"thank you", "thanks", "thanku", "shukriya", "dhanyawad",
	},
	Help: {
		"help", "commands", "what can you do", "how to use", "guide",
	},
	ProductFilter: {
		"show products", "best products", "top rated", "cheap",
		"expensive", "under 1000", "above 500", "filter", "sort",
		"sasta", "mehnga", "accha", "dikhao", "batao",
	},
	ProductCompare: {
		"compare", "vs", "versus", "difference", "which is better",
	},
	ProductInfo: {
		"tell me about", "details", "information", "specs", "features",
	},
	PriceQuery: {
		"price", "cost", "kitne ka", "how much", "rate",
	},
	Summarize: {
		"summarize", "summary", "overview", "brief", "explain page",
	},
	ClearChat: {
		"clear", "reset", "new chat", "start over", "forget",
	},
	GeneralQuestion: {
		"what", "why", "how", "when", "where", "who", "explain",
	},
}
