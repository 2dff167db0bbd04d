package services

import (
	"context"
	"sort"

	"github.com/LiamMohler/FoodCritic/geo"
	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

// fakeStore is an in-memory RestaurantStore for engine tests.
type fakeStore struct {
	restaurants []models.Restaurant
	findErr     error
	saveCount   int
}

func (s *fakeStore) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			return &s.restaurants[i], nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindAllInRegion(ctx context.Context) ([]models.Restaurant, error) {
	out := make([]models.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeStore) FindAllInRegionPaged(ctx context.Context, offset, limit int) ([]models.Restaurant, int64, error) {
	all, _ := s.FindAllInRegion(ctx)
	total := int64(len(all))
	if offset >= len(all) {
		return []models.Restaurant{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (s *fakeStore) Save(ctx context.Context, restaurant *models.Restaurant) error {
	s.saveCount++
	for i := range s.restaurants {
		if s.restaurants[i].ID == restaurant.ID {
			s.restaurants[i] = *restaurant
			return nil
		}
	}
	s.restaurants = append(s.restaurants, *restaurant)
	return nil
}

func (s *fakeStore) DistinctCuisinesInRegion(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var cuisines []string
	for _, r := range s.restaurants {
		if r.Cuisine != "" && !seen[r.Cuisine] {
			seen[r.Cuisine] = true
			cuisines = append(cuisines, r.Cuisine)
		}
	}
	sort.Strings(cuisines)
	return cuisines, nil
}

func (s *fakeStore) DistinctNeighborhoodsInRegion(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var neighborhoods []string
	for _, r := range s.restaurants {
		label := ClassifyNeighborhood(r.Address)
		if !seen[label] {
			seen[label] = true
			neighborhoods = append(neighborhoods, label)
		}
	}
	sort.Strings(neighborhoods)
	return neighborhoods, nil
}

func (s *fakeStore) FindNearbyInRegion(ctx context.Context, lat, lng, radiusKm float64) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, r := range s.restaurants {
		if r.Latitude == nil || r.Longitude == nil {
			continue
		}
		d := geo.Haversine(lat, lng, *r.Latitude, *r.Longitude)
		if d <= radiusKm {
			r.Distance = d
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}

// fakePlaces is a canned PlaceDetailsFetcher.
type fakePlaces struct {
	details *types.GooglePlaceDetails
	err     error
	calls   int
}

func (p *fakePlaces) GetDetails(ctx context.Context, placeID string) (*types.GooglePlaceDetails, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.details, nil
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrBool(v bool) *bool        { return &v }
func ptrString(v string) *string  { return &v }

// withRatings attaches n reviews with the given scores.
func withRatings(r models.Restaurant, scores ...int) models.Restaurant {
	for i, score := range scores {
		r.Reviews = append(r.Reviews, models.Review{ID: uint(i + 1), Rating: score})
	}
	return r
}
