// Package locale holds the translation tables and language detection used
// for canned replies (help, cleared, fallback text). The LLM handles
// localization of generated answers itself; these tables only cover the
// strings the pipeline produces without a model call.
package locale

import (
	"regexp"
	"strings"
)

const defaultLanguage = "en"

// Info describes one supported language.
type Info struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Direction  string `json:"direction"`
}

var supported = []Info{
	{Code: "en", Name: "English", NativeName: "English", Direction: "ltr"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Direction: "ltr"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Direction: "ltr"},
	{Code: "fr", Name: "French", NativeName: "Français", Direction: "ltr"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Direction: "ltr"},
}

// Languages returns the supported language metadata.
func Languages() []Info {
	return supported
}

// IsSupported reports whether code is a known language.
func IsSupported(code string) bool {
	_, ok := translations[code]
	return ok
}

// detectPatterns are checked in order; first hit wins. English is the
// default, so it carries no patterns of its own.
var detectPatterns = []struct {
	code     string
	patterns []*regexp.Regexp
}{
	{"hi", []*regexp.Regexp{
		regexp.MustCompile(`[\x{0900}-\x{097F}]`),
		regexp.MustCompile(`\b(kya|kaise|hai|hain|mujhe|batao|dikhao|chahiye|acha|theek)\b`),
	}},
	{"es", []*regexp.Regexp{
		regexp.MustCompile(`\b(hola|gracias|como|estas|quiero|mostrar|productos)\b`),
	}},
	{"fr", []*regexp.Regexp{
		regexp.MustCompile(`\b(bonjour|merci|comment|montrer|produits|prix)\b`),
	}},
	{"de", []*regexp.Regexp{
		regexp.MustCompile(`\b(hallo|danke|wie|zeigen|produkte|preis)\b`),
	}},
}

// Detect guesses the query language from script ranges and marker words,
// falling back to English.
func Detect(text string) string {
	if text == "" {
		return defaultLanguage
	}

	lower := strings.ToLower(text)
	for _, entry := range detectPatterns {
		for _, re := range entry.patterns {
			if re.MatchString(lower) {
				return entry.code
			}
		}
	}
	return defaultLanguage
}

// Normalize maps "auto" to a detected language and unknown codes to the
// default.
func Normalize(code, query string) string {
	if code == "" || code == "auto" {
		return Detect(query)
	}
	if !IsSupported(code) {
		return defaultLanguage
	}
	return code
}

// Translate looks up a dot-notation key ("actions.clear") for the given
// language, falling back to English, then to the key itself.
func Translate(key, lang string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if value, ok := translations[defaultLanguage][key]; ok {
		return value
	}
	return key
}

// HelpText assembles the localized help message.
func HelpText(lang string) string {
	return Translate("help.intro", lang) + "\n\n" +
		Translate("help.commands", lang) + "\n\n" +
		Translate("help.tip", lang)
}
