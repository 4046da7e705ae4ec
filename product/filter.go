package product

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Sort field and direction values used by Filter.
const (
	SortByPrice  = "price"
	SortByRating = "rating"

	SortAscending  = "asc"
	SortDescending = "desc"
)

const (
	defaultLimit = 10
	maxLimit     = 20

	// Comparison stand-in so unknown prices sort last on ascending passes.
	unknownPriceSentinel = 999999
)

// Filter holds the structured filter parameters extracted from one query.
// Nil price bounds mean "no bound". Constructed fresh per query.
type Filter struct {
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	SortDir  string
	Limit    int
}

var (
	underRe = regexp.MustCompile(`(?:under|below|niche|less than|max|upto)\s*(?:₹|rs\.?|inr)?\s*(\d+)`)
	aboveRe = regexp.MustCompile(`(?:above|over|upar|more than|min|atleast)\s*(?:₹|rs\.?|inr)?\s*(\d+)`)
	rangeRe = regexp.MustCompile(`(\d+)\s*(?:to|se|-|and)\s*(\d+)`)
	limitRe = regexp.MustCompile(`(?:top|first|show)\s*(\d+)`)
)

var (
	cheapKeywords     = []string{"cheap", "sasta", "lowest price", "budget", "kam price"}
	expensiveKeywords = []string{"expensive", "mehnga", "costly", "premium", "highest price"}
	bestKeywords      = []string{"best", "top", "highest rated", "accha", "popular"}
)

// ParseFilters extracts price bounds, sort preference, and result limit from
// a free-form query. Bound keywords take precedence over the bare
// "<n> to <m>" range form; sort keywords are checked cheap, expensive, best
// in that order, so a best/top match overrides a price-sort match. Numbers in
// the query are plain decimal integers, no separators.
func ParseFilters(query string) Filter {
	query = strings.ToLower(query)
	filter := Filter{Limit: defaultLimit}

	underMatch := underRe.FindStringSubmatch(query)
	if underMatch != nil {
		if v, err := strconv.ParseFloat(underMatch[1], 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	aboveMatch := aboveRe.FindStringSubmatch(query)
	if aboveMatch != nil {
		if v, err := strconv.ParseFloat(aboveMatch[1], 64); err == nil {
			filter.MinPrice = &v
		}
	}

	if underMatch == nil && aboveMatch == nil {
		if m := rangeRe.FindStringSubmatch(query); m != nil {
			p1, err1 := strconv.ParseFloat(m[1], 64)
			p2, err2 := strconv.ParseFloat(m[2], 64)
			if err1 == nil && err2 == nil {
				lo, hi := p1, p2
				if lo > hi {
					lo, hi = hi, lo
				}
				filter.MinPrice = &lo
				filter.MaxPrice = &hi
			}
		}
	}

	if containsAny(query, cheapKeywords) {
		filter.SortBy = SortByPrice
		filter.SortDir = SortAscending
	}
	if containsAny(query, expensiveKeywords) {
		filter.SortBy = SortByPrice
		filter.SortDir = SortDescending
	}
	if containsAny(query, bestKeywords) {
		filter.SortBy = SortByRating
		filter.SortDir = SortDescending
	}

	if m := limitRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			if n > maxLimit {
				n = maxLimit
			}
			filter.Limit = n
		}
	}

	return filter
}

// Apply runs the filter over an item collection and returns a new slice.
// Items whose price extracts to the 0.0 sentinel are excluded from bounded
// results (an unknown price cannot be proven to satisfy a bound) and sort
// last regardless of direction. Rating sorts are always descending. Equal
// keys keep their incoming relative order. The input is never modified.
func Apply(items []Item, filter Filter) []Item {
	if len(items) == 0 {
		return nil
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		price := ExtractPrice(item.Price)
		if filter.MinPrice != nil && (price <= 0 || price < *filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && (price <= 0 || price > *filter.MaxPrice) {
			continue
		}
		filtered = append(filtered, item)
	}

	switch filter.SortBy {
	case SortByPrice:
		descending := filter.SortDir == SortDescending
		sort.SliceStable(filtered, func(i, j int) bool {
			a := priceSortKey(filtered[i], descending)
			b := priceSortKey(filtered[j], descending)
			if descending {
				return a > b
			}
			return a < b
		})
	case SortByRating:
		// Direction is deliberately ignored: "best rated" always means
		// highest first.
		sort.SliceStable(filtered, func(i, j int) bool {
			return ExtractRating(filtered[i].Rating) > ExtractRating(filtered[j].Rating)
		})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func priceSortKey(item Item, descending bool) float64 {
	price := ExtractPrice(item.Price)
	if price > 0 {
		return price
	}
	// Unknown prices go last: as the largest value ascending, as the
	// smallest value descending.
	if descending {
		return 0
	}
	return unknownPriceSentinel
}

// Describe renders a filter as a short human-readable summary for traces and
// API responses, e.g. "Under Rs.1000 | Lowest first".
func Describe(filter Filter) string {
	var parts []string

	switch {
	case filter.MinPrice != nil && filter.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("Rs.%d - Rs.%d", int(*filter.MinPrice), int(*filter.MaxPrice)))
	case filter.MinPrice != nil:
		parts = append(parts, fmt.Sprintf("Above Rs.%d", int(*filter.MinPrice)))
	case filter.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("Under Rs.%d", int(*filter.MaxPrice)))
	}

	switch filter.SortBy {
	case SortByPrice:
		if filter.SortDir == SortDescending {
			parts = append(parts, "Highest first")
		} else {
			parts = append(parts, "Lowest first")
		}
	case SortByRating:
		parts = append(parts, "Best rated first")
	}

	if len(parts) == 0 {
		return "No filters"
	}
	return strings.Join(parts, " | ")
}

func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
