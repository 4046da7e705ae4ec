package product

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonNumericRe = regexp.MustCompile(`[^0-9.]`)
	decimalRe    = regexp.MustCompile(`\d+(?:\.\d+)?`)
	ratingRe     = regexp.MustCompile(`(\d+\.?\d*)`)
)

// ExtractPrice parses a free-text price field into a float. Currency symbols
// and thousands separators are tolerated. Missing, empty, "N/A", or
// unparsable input collapses to the 0.0 sentinel, never an error; callers
// must treat 0.0 as "unknown", not "free".
func ExtractPrice(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" || text == "N/A" {
		return 0
	}

	cleaned := nonNumericRe.ReplaceAllString(strings.ReplaceAll(text, ",", ""), "")
	if cleaned == "" {
		return 0
	}

	if value, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return value
	}

	// Stray dots survive the strip ("Rs. 499.50" -> ".499.50"); fall back to
	// the first decimal number in the cleaned text.
	if match := decimalRe.FindString(cleaned); match != "" {
		if value, err := strconv.ParseFloat(match, 64); err == nil {
			return value
		}
	}
	return 0
}

// ExtractRating parses a free-text rating field ("4.2 out of 5", "4,32
// ratings") into a float by taking the first decimal number found. Same
// sentinel contract as ExtractPrice.
func ExtractRating(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" || text == "N/A" {
		return 0
	}

	match := ratingRe.FindString(text)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}
