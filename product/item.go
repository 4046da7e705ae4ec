// Package product implements the deterministic half of the chat pipeline:
// numeric extraction from scraped free-text fields, filter parsing from user
// queries, and the filter/sort engine applied to item collections.
package product

// Item is one scraped record from the caller's page snapshot. Price and
// Rating are free text exactly as scraped ("₹1,299", "4.2 out of 5", "N/A");
// every consumer re-parses them through the extractors. Items are never
// mutated after arrival, filtering always produces new slices.
type Item struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Price  string `json:"price,omitempty"`
	Rating string `json:"rating,omitempty"`
	Extra  string `json:"extra,omitempty"`
	Type   string `json:"type,omitempty"`
	Image  string `json:"image,omitempty"`
}

// Stats summarizes an item collection for trace output.
type Stats struct {
	Total     int
	PriceMin  float64
	PriceMax  float64
	PriceAvg  float64
	RatingAvg float64
}

// Analyze computes collection statistics, ignoring items whose price or
// rating cannot be extracted.
func Analyze(items []Item) Stats {
	stats := Stats{Total: len(items)}
	if len(items) == 0 {
		return stats
	}

	var priceSum, ratingSum float64
	var priceCount, ratingCount int
	for _, item := range items {
		if p := ExtractPrice(item.Price); p > 0 {
			if priceCount == 0 || p < stats.PriceMin {
				stats.PriceMin = p
			}
			if p > stats.PriceMax {
				stats.PriceMax = p
			}
			priceSum += p
			priceCount++
		}
		if r := ExtractRating(item.Rating); r > 0 {
			ratingSum += r
			ratingCount++
		}
	}

	if priceCount > 0 {
		stats.PriceAvg = priceSum / float64(priceCount)
	}
	if ratingCount > 0 {
		stats.RatingAvg = ratingSum / float64(ratingCount)
	}
	return stats
}
