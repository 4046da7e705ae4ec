package locale

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"show me cheap phones", "en"},
		{"", "en"},
		{"mujhe sasta phone dikhao", "hi"},
		{"सस्ता फोन दिखाओ", "hi"},
		{"hola quiero ver productos", "es"},
		{"bonjour montrer les produits", "fr"},
		{"hallo zeigen Sie mir Produkte", "de"},
		{"12345", "en"},
	}

	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		code  string
		query string
		want  string
	}{
		{"en", "hola", "en"},
		{"hi", "anything", "hi"},
		{"auto", "mujhe batao", "hi"},
		{"", "bonjour", "fr"},
		{"auto", "plain english", "en"},
		{"zz", "anything", "en"},
		{"pt", "olá", "en"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.code, tt.query); got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.code, tt.query, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate("actions.clear", "en"); got != "Chat cleared" {
		t.Errorf("unexpected english translation: %q", got)
	}
	if got := Translate("actions.clear", "hi"); got != "Chat saaf ho gayi" {
		t.Errorf("unexpected hindi translation: %q", got)
	}

	// Unsupported language falls back to English.
	if got := Translate("actions.clear", "zz"); got != "Chat cleared" {
		t.Errorf("expected english fallback, got %q", got)
	}

	// Unknown key falls back to the key itself.
	if got := Translate("no.such.key", "en"); got != "no.such.key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestTranslateAllLanguagesCoverCoreKeys(t *testing.T) {
	keys := []string{
		"greetings.hello", "farewells.bye", "thanks.welcome",
		"help.intro", "help.commands", "help.tip",
		"actions.clear", "products.found", "products.no_match",
		"errors.no_products_page", "errors.ai_unavailable",
	}

	for _, info := range Languages() {
		table, ok := translations[info.Code]
		if !ok {
			t.Fatalf("no table for %s", info.Code)
		}
		for _, key := range keys {
			if _, ok := table[key]; !ok {
				t.Errorf("language %s missing key %s", info.Code, key)
			}
		}
	}
}

func TestHelpText(t *testing.T) {
	text := HelpText("en")
	for _, want := range []string{"Here's what I can do", "Price Filter", "Just type naturally"} {
		if !strings.Contains(text, want) {
			t.Errorf("help text missing %q", want)
		}
	}

	if hindi := HelpText("hi"); !strings.Contains(hindi, "Main ye sab kar sakta hoon") {
		t.Errorf("unexpected hindi help text: %q", hindi)
	}
}

func TestIsSupported(t *testing.T) {
	for _, info := range Languages() {
		if !IsSupported(info.Code) {
			t.Errorf("%s should be supported", info.Code)
		}
	}
	if IsSupported("auto") {
		t.Error("auto is a directive, not a language")
	}
}
