package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LiamMohler/FoodCritic/types"
)

func TestGetDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/details/json" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("place_id") != "abc123" {
			t.Errorf("Expected place_id abc123, got %s", r.URL.Query().Get("place_id"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "abc123",
				"name": "Corner Bakery",
				"formatted_address": "600 Fifth Ave, San Diego, CA",
				"formatted_phone_number": "(619) 555-0199",
				"website": "https://example.com",
				"price_level": 2,
				"types": ["bakery", "food"],
				"geometry": {"location": {"lat": 32.7157, "lng": -117.1611}},
				"opening_hours": {"open_now": true}
			}
		}`))
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key", server.URL)
	details, err := client.GetDetails(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetDetails failed: %v", err)
	}
	if details.Name != "Corner Bakery" {
		t.Errorf("Expected name 'Corner Bakery', got %q", details.Name)
	}
	if details.Geometry == nil || details.Geometry.Location.Lat != 32.7157 {
		t.Errorf("Expected geometry location to be decoded, got %+v", details.Geometry)
	}
	if details.OpeningHours == nil || details.OpeningHours.OpenNow == nil || !*details.OpeningHours.OpenNow {
		t.Errorf("Expected open_now true, got %+v", details.OpeningHours)
	}
}

func TestGetDetailsNotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key", server.URL)
	if _, err := client.GetDetails(context.Background(), "missing"); err == nil {
		t.Fatal("Expected error for NOT_FOUND status, got nil")
	}
}

func TestFilterResults(t *testing.T) {
	rating := func(v float64) *float64 { return &v }
	price := func(v int) *int { return &v }

	results := []types.GooglePlaceResult{
		{Name: "Cheap Tacos", Rating: rating(4.5), PriceLevel: price(1), Types: []string{"restaurant", "mexican"}},
		{Name: "Fancy Sushi", Rating: rating(4.8), PriceLevel: price(4), Types: []string{"restaurant"}},
		{Name: "Unrated Diner", PriceLevel: price(2), Types: []string{"restaurant"}},
	}

	minRating := 4.0
	minPrice, maxPrice := 1, 3
	filtered := filterResults(results, types.GooglePlacesSearchRequest{
		MinRating:     &minRating,
		MinPriceLevel: &minPrice,
		MaxPriceLevel: &maxPrice,
	})
	if len(filtered) != 1 || filtered[0].Name != "Cheap Tacos" {
		t.Errorf("Expected only 'Cheap Tacos' to pass, got %+v", filtered)
	}

	// Cuisine keyword matches either a type tag or the name.
	filtered = filterResults(results, types.GooglePlacesSearchRequest{Cuisine: "sushi"})
	if len(filtered) != 1 || filtered[0].Name != "Fancy Sushi" {
		t.Errorf("Expected only 'Fancy Sushi' for cuisine match, got %+v", filtered)
	}
}
