package services

import (
	"context"
	"testing"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

func autocompleteStore() *fakeStore {
	return &fakeStore{restaurants: []models.Restaurant{
		{ID: "r1", Name: "Taco House", Cuisine: "Mexican", Address: "123 Gaslamp Quarter"},
		{ID: "r2", Name: "Taco Stand", Cuisine: "Mexican", Address: "999 Random St"},
		{ID: "r3", Name: "Thai Taste", Cuisine: "Thai", Address: "42 Hillcrest Ave"},
		{ID: "r4", Name: "Ocean Grill", Cuisine: "Seafood", Address: "1 Mission Beach Blvd"},
	}}
}

func TestAutocompleteEmptyInput(t *testing.T) {
	d := NewDiscovery(autocompleteStore())

	got, err := d.Autocomplete(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result for blank input, got %d suggestions", len(got))
	}
}

func TestAutocompleteZeroLimit(t *testing.T) {
	d := NewDiscovery(autocompleteStore())

	got, err := d.Autocomplete(context.Background(), "taco", 0)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result for zero limit, got %d suggestions", len(got))
	}
}

func TestAutocompleteRestaurantMatches(t *testing.T) {
	d := NewDiscovery(autocompleteStore())

	got, err := d.Autocomplete(context.Background(), "taco", 10)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}

	restaurants := 0
	for _, s := range got {
		if s.Type == types.SuggestionRestaurant {
			restaurants++
			if s.Restaurant == nil {
				t.Errorf("Restaurant suggestion %q missing its record", s.Title)
			}
		}
	}
	if restaurants != 2 {
		t.Errorf("Expected 2 restaurant suggestions for 'taco', got %d", restaurants)
	}
}

func TestAutocompleteSubtitleUsesNeighborhood(t *testing.T) {
	d := NewDiscovery(autocompleteStore())

	got, err := d.Autocomplete(context.Background(), "taco house", 10)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected single suggestion, got %d", len(got))
	}
	if got[0].Subtitle != "Mexican • Gaslamp Quarter" {
		t.Errorf("Expected cuisine and neighborhood subtitle, got %q", got[0].Subtitle)
	}
}

func TestAutocompleteCuisineAndNeighborhoodPools(t *testing.T) {
	d := NewDiscovery(autocompleteStore())

	// "mex" only matches the cuisine pool.
	got, err := d.Autocomplete(context.Background(), "mex", 10)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(got) != 1 || got[0].Type != types.SuggestionCuisine {
		t.Fatalf("Expected a single cuisine suggestion, got %+v", got)
	}
	if got[0].ID != "cuisine-mexican" || got[0].Subtitle != "Cuisine type" {
		t.Errorf("Unexpected cuisine suggestion shape: %+v", got[0])
	}

	// "hillcrest" only matches the neighborhood pool.
	got, err = d.Autocomplete(context.Background(), "hillcrest", 10)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(got) != 1 || got[0].Type != types.SuggestionNeighborhood {
		t.Fatalf("Expected a single neighborhood suggestion, got %+v", got)
	}
	if got[0].ID != "neighborhood-hillcrest" || got[0].Subtitle != "San Diego area" {
		t.Errorf("Unexpected neighborhood suggestion shape: %+v", got[0])
	}
}

func TestAutocompleteQuotaSplit(t *testing.T) {
	// Ten restaurants all matching, plus matching cuisine; limit 4 leaves
	// max(1, 4/2) = 2 restaurant slots and max(1, 4/4) = 1 for each other
	// pool.
	store := &fakeStore{}
	for i := 0; i < 10; i++ {
		store.restaurants = append(store.restaurants, models.Restaurant{
			ID:      string(rune('a' + i)),
			Name:    "Great Taco " + string(rune('A'+i)),
			Cuisine: "Tacos",
			Address: "999 Random St",
		})
	}
	d := NewDiscovery(store)

	got, err := d.Autocomplete(context.Background(), "taco", 4)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}

	counts := map[types.SuggestionType]int{}
	for _, s := range got {
		counts[s.Type]++
	}
	if counts[types.SuggestionRestaurant] != 2 {
		t.Errorf("Expected restaurant pool truncated to 2, got %d", counts[types.SuggestionRestaurant])
	}
	if counts[types.SuggestionCuisine] != 1 {
		t.Errorf("Expected cuisine pool truncated to 1, got %d", counts[types.SuggestionCuisine])
	}
	if len(got) > 4 {
		t.Errorf("Expected at most limit suggestions, got %d", len(got))
	}
}

func TestAutocompleteLimitAndDeduplication(t *testing.T) {
	d := NewDiscovery(autocompleteStore())

	got, err := d.Autocomplete(context.Background(), "a", 3)
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(got) > 3 {
		t.Errorf("Expected at most 3 suggestions, got %d", len(got))
	}

	seen := map[suggestionKey]bool{}
	for _, s := range got {
		key := suggestionKey{ID: s.ID, Type: s.Type, Title: s.Title, Subtitle: s.Subtitle}
		if seen[key] {
			t.Errorf("Duplicate suggestion in result: %+v", s)
		}
		seen[key] = true
	}
}
