package services

import (
	"testing"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

func TestSortByRating(t *testing.T) {
	candidates := []models.Restaurant{
		withRatings(models.Restaurant{ID: "mid"}, 3, 4),  // 3.5
		{ID: "unrated"},                                  // derived 0
		withRatings(models.Restaurant{ID: "top"}, 5, 5), // 5.0
	}

	got := SortRestaurants(candidates, types.SearchCriteria{SortBy: types.SortByRating})
	want := []string{"top", "mid", "unrated"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestSortByRatingStableTies(t *testing.T) {
	candidates := []models.Restaurant{
		withRatings(models.Restaurant{ID: "first"}, 4),
		withRatings(models.Restaurant{ID: "second"}, 4),
	}

	got := SortRestaurants(candidates, types.SearchCriteria{SortBy: types.SortByRating})
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("Expected ties to keep input order, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestSortByName(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "b", Name: "Bravo"},
		{ID: "a", Name: "Alpha"},
		{ID: "c", Name: "Charlie"},
	}

	got := SortRestaurants(candidates, types.SearchCriteria{SortBy: types.SortByName})
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestSortByDistance(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "lajolla", Latitude: ptrFloat(32.8328), Longitude: ptrFloat(-117.2713)},
		{ID: "nocoords"},
		{ID: "downtown", Latitude: ptrFloat(32.7157), Longitude: ptrFloat(-117.1611)},
	}

	got := SortRestaurants(candidates, types.SearchCriteria{
		SortBy:    types.SortByDistance,
		Latitude:  ptrFloat(32.7157),
		Longitude: ptrFloat(-117.1611),
	})

	if got[0].ID != "downtown" || got[1].ID != "lajolla" {
		t.Errorf("Expected downtown then lajolla, got %s then %s", got[0].ID, got[1].ID)
	}
	if got[2].ID != "nocoords" {
		t.Errorf("Expected restaurants without coordinates last, got %s", got[2].ID)
	}
	if got[0].Distance != 0 {
		t.Errorf("Expected zero distance to reference point, got %f", got[0].Distance)
	}
}

func TestSortByDistanceWithoutReferenceIsPassthrough(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "b", Latitude: ptrFloat(32.8328), Longitude: ptrFloat(-117.2713)},
		{ID: "a", Latitude: ptrFloat(32.7157), Longitude: ptrFloat(-117.1611)},
	}

	got := SortRestaurants(candidates, types.SearchCriteria{SortBy: types.SortByDistance})
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("Expected passthrough without a reference point, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestSortUnknownKeyIsPassthrough(t *testing.T) {
	candidates := []models.Restaurant{
		{ID: "b", Name: "Bravo"},
		{ID: "a", Name: "Alpha"},
	}

	got := SortRestaurants(candidates, types.SearchCriteria{})
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("Expected passthrough without a sort key, got %s then %s", got[0].ID, got[1].ID)
	}
}
