package product

import (
	"reflect"
	"testing"
)

func TestParseFiltersPriceBounds(t *testing.T) {
	t.Run("under sets max only", func(t *testing.T) {
		f := ParseFilters("under 1000")
		if f.MaxPrice == nil || *f.MaxPrice != 1000 {
			t.Fatalf("expected max 1000, got %v", f.MaxPrice)
		}
		if f.MinPrice != nil {
			t.Fatalf("expected no min, got %v", *f.MinPrice)
		}
	})

	t.Run("above sets min only", func(t *testing.T) {
		f := ParseFilters("above 500")
		if f.MinPrice == nil || *f.MinPrice != 500 {
			t.Fatalf("expected min 500, got %v", f.MinPrice)
		}
		if f.MaxPrice != nil {
			t.Fatalf("expected no max, got %v", *f.MaxPrice)
		}
	})

	t.Run("range sets both ordered", func(t *testing.T) {
		f := ParseFilters("1500 to 500")
		if f.MinPrice == nil || *f.MinPrice != 500 {
			t.Fatalf("expected min 500, got %v", f.MinPrice)
		}
		if f.MaxPrice == nil || *f.MaxPrice != 1500 {
			t.Fatalf("expected max 1500, got %v", f.MaxPrice)
		}
	})

	t.Run("bound keyword wins over range form", func(t *testing.T) {
		f := ParseFilters("phones under 1000 and 2000")
		if f.MaxPrice == nil || *f.MaxPrice != 1000 {
			t.Fatalf("expected max 1000, got %v", f.MaxPrice)
		}
		if f.MinPrice != nil {
			t.Fatalf("range rule should not fire when a bound matched")
		}
	})

	t.Run("currency token before number", func(t *testing.T) {
		f := ParseFilters("below rs 750")
		if f.MaxPrice == nil || *f.MaxPrice != 750 {
			t.Fatalf("expected max 750, got %v", f.MaxPrice)
		}
	})
}

func TestParseFiltersSort(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		wantBy  string
		wantDir string
	}{
		{"cheap keyword", "show cheap phones", SortByPrice, SortAscending},
		{"expensive keyword", "premium phones", SortByPrice, SortDescending},
		{"best keyword", "best headphones", SortByRating, SortDescending},
		{"rating overrides price sort", "best cheap phones", SortByRating, SortDescending},
		{"no sort", "phones under 2000", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ParseFilters(tc.query)
			if f.SortBy != tc.wantBy || f.SortDir != tc.wantDir {
				t.Fatalf("ParseFilters(%q) sort = %q/%q, want %q/%q", tc.query, f.SortBy, f.SortDir, tc.wantBy, tc.wantDir)
			}
		})
	}
}

func TestParseFiltersLimit(t *testing.T) {
	if f := ParseFilters("top 5 phones"); f.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", f.Limit)
	}
	if f := ParseFilters("show 100 items"); f.Limit != 20 {
		t.Fatalf("expected limit capped at 20, got %d", f.Limit)
	}
	if f := ParseFilters("phones"); f.Limit != 10 {
		t.Fatalf("expected default limit 10, got %d", f.Limit)
	}
}

func testItems() []Item {
	return []Item{
		{ID: 1, Name: "Budget Phone", Price: "₹100", Rating: "3.9"},
		{ID: 2, Name: "Mystery Phone", Price: "N/A", Rating: "4.8"},
		{ID: 3, Name: "Flagship Phone", Price: "₹2,000", Rating: "4.5"},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestApplyMaxPriceExcludesUnknown(t *testing.T) {
	result := Apply(testItems(), Filter{MaxPrice: floatPtr(1500), Limit: 10})

	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("expected only the ₹100 item, got %+v", result)
	}
}

func TestApplyMinPriceExcludesUnknown(t *testing.T) {
	result := Apply(testItems(), Filter{MinPrice: floatPtr(50), Limit: 10})

	for _, item := range result {
		if item.ID == 2 {
			t.Fatal("unknown-price item must not satisfy a min bound")
		}
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result))
	}
}

func TestApplySortUnknownPriceAlwaysLast(t *testing.T) {
	asc := Apply(testItems(), Filter{SortBy: SortByPrice, SortDir: SortAscending, Limit: 10})
	if asc[len(asc)-1].ID != 2 {
		t.Fatalf("ascending: unknown price should be last, got order %+v", asc)
	}

	desc := Apply(testItems(), Filter{SortBy: SortByPrice, SortDir: SortDescending, Limit: 10})
	if desc[len(desc)-1].ID != 2 {
		t.Fatalf("descending: unknown price should be last, got order %+v", desc)
	}
	if desc[0].ID != 3 {
		t.Fatalf("descending: expected flagship first, got %+v", desc)
	}
}

func TestApplyRatingSortAlwaysDescending(t *testing.T) {
	// Requested direction is ignored for rating sorts.
	result := Apply(testItems(), Filter{SortBy: SortByRating, SortDir: SortAscending, Limit: 10})

	if result[0].ID != 2 || result[1].ID != 3 || result[2].ID != 1 {
		t.Fatalf("expected rating-descending order, got %+v", result)
	}
}

func TestApplyLimitTruncatesAfterSort(t *testing.T) {
	result := Apply(testItems(), Filter{SortBy: SortByRating, Limit: 1})

	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("expected single top-rated item, got %+v", result)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	filter := Filter{MaxPrice: floatPtr(1500), SortBy: SortByPrice, SortDir: SortAscending, Limit: 10}

	once := Apply(testItems(), filter)
	twice := Apply(once, filter)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-applying the same filter changed the result: %+v vs %+v", once, twice)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := testItems()
	original := testItems()

	Apply(items, Filter{SortBy: SortByPrice, SortDir: SortDescending, Limit: 10})

	if !reflect.DeepEqual(items, original) {
		t.Fatalf("input slice was mutated: %+v", items)
	}
}

func TestApplyCheapUnderScenario(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "A", Price: "₹1200"},
		{ID: 2, Name: "B", Price: "₹800"},
		{ID: 3, Name: "C", Price: "N/A"},
	}

	filter := ParseFilters("show cheap products under 1000")
	result := Apply(items, filter)

	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("expected only the ₹800 item, got %+v", result)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"none", Filter{}, "No filters"},
		{"max only", Filter{MaxPrice: floatPtr(1000)}, "Under Rs.1000"},
		{"min only", Filter{MinPrice: floatPtr(500)}, "Above Rs.500"},
		{"range", Filter{MinPrice: floatPtr(500), MaxPrice: floatPtr(1500)}, "Rs.500 - Rs.1500"},
		{"cheap sort", Filter{SortBy: SortByPrice, SortDir: SortAscending}, "Lowest first"},
		{"combined", Filter{MaxPrice: floatPtr(1000), SortBy: SortByRating}, "Under Rs.1000 | Best rated first"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Describe(tc.filter); got != tc.want {
				t.Fatalf("Describe = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	stats := Analyze(testItems())

	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.PriceMin != 100 || stats.PriceMax != 2000 {
		t.Fatalf("expected price range 100-2000, got %v-%v", stats.PriceMin, stats.PriceMax)
	}
	if stats.PriceAvg != 1050 {
		t.Fatalf("expected avg 1050 over known prices, got %v", stats.PriceAvg)
	}
}
