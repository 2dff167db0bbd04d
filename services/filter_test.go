package services

import (
	"testing"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

func TestApplyFiltersNoCriteria(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Bravo"},
	}

	got := ApplyFilters(candidates, types.SearchCriteria{})
	if len(got) != 2 {
		t.Fatalf("Expected all candidates with empty criteria, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("Expected input order preserved, got %v then %v", got[0].ID, got[1].ID)
	}
}

func TestApplyFiltersName(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "a", Name: "Taco House"},
		{ID: "b", Name: "Ocean View Seafood"},
		{ID: "c", Name: "TACO Stand"},
	}

	got := ApplyFilters(candidates, types.SearchCriteria{Name: ptrString("taco")})
	if len(got) != 2 {
		t.Fatalf("Expected 2 case-insensitive name matches, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Expected a then c, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestApplyFiltersCuisine(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "a", Cuisine: "Mexican"},
		{ID: "b", Cuisine: "Seafood"},
	}

	got := ApplyFilters(candidates, types.SearchCriteria{Cuisine: ptrString("mex")})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("Expected only the Mexican restaurant, got %+v", got)
	}
}

func TestApplyFiltersPriceLevel(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "cheap", PriceLevel: ptrInt(1)},
		{ID: "mid", PriceLevel: ptrInt(2)},
		{ID: "unknown"}, // no price level recorded
	}

	got := ApplyFilters(candidates, types.SearchCriteria{PriceLevel: ptrInt(2)})
	if len(got) != 1 || got[0].ID != "mid" {
		t.Errorf("Expected exact price level match only, got %+v", got)
	}
}

func TestApplyFiltersOpenNow(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "open", OpenNow: ptrBool(true)},
		{ID: "closed", OpenNow: ptrBool(false)},
		{ID: "unknown"},
	}

	got := ApplyFilters(candidates, types.SearchCriteria{OpenNow: ptrBool(true)})
	if len(got) != 1 || got[0].ID != "open" {
		t.Errorf("Expected only the open restaurant, got %+v", got)
	}
}

func TestApplyFiltersMinRating(t *testing.T) {
	candidates := []models.Restaurant{
		withRatings(models.Restaurant{ID: "low"}, 3, 4),         // 3.5
		withRatings(models.Restaurant{ID: "edge"}, 4),           // 4.0
		withRatings(models.Restaurant{ID: "high"}, 5, 5, 5, 4), // 4.75
		{ID: "unrated"},
	}

	got := ApplyFilters(candidates, types.SearchCriteria{MinRating: ptrFloat(4.0)})
	if len(got) != 2 {
		t.Fatalf("Expected 2 restaurants with average >= 4.0, got %d", len(got))
	}
	if got[0].ID != "edge" || got[1].ID != "high" {
		t.Errorf("Expected edge and high, got %s and %s", got[0].ID, got[1].ID)
	}
}

func TestApplyFiltersCombined(t *testing.T) {
	candidates := []models.Restaurant{
		withRatings(models.Restaurant{ID: "a", Name: "Taco House", Cuisine: "Mexican", PriceLevel: ptrInt(1)}, 5),
		withRatings(models.Restaurant{ID: "b", Name: "Taco Stand", Cuisine: "Mexican", PriceLevel: ptrInt(2)}, 5),
		withRatings(models.Restaurant{ID: "c", Name: "Burger Bar", Cuisine: "American", PriceLevel: ptrInt(1)}, 5),
	}

	got := ApplyFilters(candidates, types.SearchCriteria{
		Name:       ptrString("taco"),
		PriceLevel: ptrInt(1),
		MinRating:  ptrFloat(4.0),
	})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("Expected filters to AND together, got %+v", got)
	}
}
