package locale

// Translation tables keyed by dot-notation string keys. English is complete;
// other languages fall back to English for any missing key.
var translations = map[string]map[string]string{
	"en": {
		"greetings.hello": "Hello! I'm ShopBuddy, your smart shopping assistant. How can I help you today?",
		"farewells.bye":   "Goodbye! Happy shopping!",
		"thanks.welcome":  "You're welcome! Need anything else?",

		"help.intro": "Here's what I can do for you:",
		"help.commands": "- **Product Search**: 'show best products', 'top rated items'\n" +
			"- **Price Filter**: 'under 1000', 'above 5000', 'between 500 and 2000'\n" +
			"- **Sorting**: 'cheapest first', 'highest rated', 'most expensive'\n" +
			"- **Compare**: 'compare top 3', 'which is better'\n" +
			"- **Summarize**: 'summarize this page'",
		"help.tip": "Just type naturally - I understand conversational queries!",

		"actions.clear": "Chat cleared",

		"products.found":    "Found %d items:",
		"products.no_match": "No products match your filters. Try different criteria.",

		"errors.no_products_page": "I don't see any products on this page. Please navigate to a product listing page.",
		"errors.ai_unavailable":   "AI service is temporarily unavailable. Using basic responses.",
		"errors.unknown_query":    "I'm not sure I understand. Could you rephrase that?",
		"errors.try_again":        "Something went wrong. Please try again.",
	},
	"hi": {
		"greetings.hello": "Namaste! Main ShopBuddy hoon, aapka smart shopping assistant. Kaise help kar sakta hoon?",
		"farewells.bye":   "Alvida! Happy shopping!",
		"thanks.welcome":  "Koi baat nahi! Aur kuch chahiye?",

		"help.intro": "Main ye sab kar sakta hoon:",
		"help.commands": "- **Product Search**: 'best products dikhao', 'top rated items'\n" +
			"- **Price Filter**: 'under 1000', 'above 5000', '500 se 2000 tak'\n" +
			"- **Sorting**: 'sasta pehle', 'highest rated', 'mehnga pehle'\n" +
			"- **Compare**: 'top 3 compare karo'\n" +
			"- **Summarize**: 'page summarize karo'",
		"help.tip": "Naturally type karo - main samajh jaunga!",

		"actions.clear": "Chat saaf ho gayi",

		"products.found":    "%d items mile:",
		"products.no_match": "Aapke filters se koi product match nahi hua. Kuch aur try karo.",

		"errors.no_products_page": "Is page par koi product nahi dikh raha. Product listing page par jao.",
		"errors.ai_unavailable":   "AI service abhi available nahi hai. Basic responses use ho rahe hain.",
		"errors.unknown_query":    "Samajh nahi aaya. Dobara alag tarike se poochho?",
		"errors.try_again":        "Kuch galat ho gaya. Dobara try karo.",
	},
	"es": {
		"greetings.hello": "¡Hola! Soy ShopBuddy, tu asistente de compras inteligente. ¿Cómo puedo ayudarte?",
		"farewells.bye":   "¡Adiós! ¡Felices compras!",
		"thanks.welcome":  "¡De nada! ¿Necesitas algo más?",

		"help.intro": "Esto es lo que puedo hacer por ti:",
		"help.commands": "- **Buscar productos**: 'mostrar mejores productos'\n" +
			"- **Filtrar por precio**: 'under 1000', 'above 5000'\n" +
			"- **Ordenar**: 'más baratos primero', 'mejor valorados'\n" +
			"- **Comparar**: 'compara los 3 mejores'\n" +
			"- **Resumir**: 'resume esta página'",
		"help.tip": "Escribe con naturalidad, ¡entiendo consultas conversacionales!",

		"actions.clear": "Chat borrado",

		"products.found":    "Encontré %d artículos:",
		"products.no_match": "Ningún producto coincide con tus filtros. Prueba otros criterios.",

		"errors.no_products_page": "No veo productos en esta página. Ve a una página de listado de productos.",
		"errors.ai_unavailable":   "El servicio de IA no está disponible. Usando respuestas básicas.",
		"errors.unknown_query":    "No estoy seguro de entender. ¿Puedes reformularlo?",
		"errors.try_again":        "Algo salió mal. Inténtalo de nuevo.",
	},
	"fr": {
		"greetings.hello": "Bonjour ! Je suis ShopBuddy, votre assistant shopping intelligent. Comment puis-je vous aider ?",
		"farewells.bye":   "Au revoir ! Bon shopping !",
		"thanks.welcome":  "De rien ! Besoin d'autre chose ?",

		"help.intro": "Voici ce que je peux faire pour vous :",
		"help.commands": "- **Recherche de produits** : 'montrer les meilleurs produits'\n" +
			"- **Filtre de prix** : 'under 1000', 'above 5000'\n" +
			"- **Tri** : 'moins chers d'abord', 'mieux notés'\n" +
			"- **Comparer** : 'compare le top 3'\n" +
			"- **Résumer** : 'résume cette page'",
		"help.tip": "Écrivez naturellement, je comprends les requêtes conversationnelles !",

		"actions.clear": "Conversation effacée",

		"products.found":    "%d articles trouvés :",
		"products.no_match": "Aucun produit ne correspond à vos filtres. Essayez d'autres critères.",

		"errors.no_products_page": "Je ne vois aucun produit sur cette page. Allez sur une page de liste de produits.",
		"errors.ai_unavailable":   "Le service IA est temporairement indisponible. Réponses basiques utilisées.",
		"errors.unknown_query":    "Je ne suis pas sûr de comprendre. Pouvez-vous reformuler ?",
		"errors.try_again":        "Une erreur s'est produite. Veuillez réessayer.",
	},
	"de": {
		"greetings.hello": "Hallo! Ich bin ShopBuddy, dein smarter Shopping-Assistent. Wie kann ich helfen?",
		"farewells.bye":   "Tschüss! Viel Spaß beim Einkaufen!",
		"thanks.welcome":  "Gern geschehen! Brauchst du noch etwas?",

		"help.intro": "Das kann ich für dich tun:",
		"help.commands": "- **Produktsuche**: 'zeige die besten Produkte'\n" +
			"- **Preisfilter**: 'under 1000', 'above 5000'\n" +
			"- **Sortierung**: 'günstigste zuerst', 'am besten bewertet'\n" +
			"- **Vergleichen**: 'vergleiche die Top 3'\n" +
			"- **Zusammenfassen**: 'fasse diese Seite zusammen'",
		"help.tip": "Schreib einfach natürlich - ich verstehe Umgangssprache!",

		"actions.clear": "Chat geleert",

		"products.found":    "%d Artikel gefunden:",
		"products.no_match": "Keine Produkte entsprechen deinen Filtern. Versuche andere Kriterien.",

		"errors.no_products_page": "Ich sehe keine Produkte auf dieser Seite. Öffne eine Produktliste.",
		"errors.ai_unavailable":   "Der KI-Dienst ist vorübergehend nicht verfügbar. Einfache Antworten aktiv.",
		"errors.unknown_query":    "Das habe ich nicht verstanden. Kannst du es anders formulieren?",
		"errors.try_again":        "Etwas ist schiefgelaufen. Bitte versuche es erneut.",
	},
}
