package services

import (
	"math"
	"sort"

	"github.com/LiamMohler/FoodCritic/geo"
	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

// SortRestaurants orders candidates by the requested key. Sorting is stable,
// so ties keep their input order. The distance key needs a reference point
// from the criteria; without one it is a passthrough.
func SortRestaurants(candidates []models.Restaurant, criteria types.SearchCriteria) []models.Restaurant {
	switch criteria.SortBy {
	case types.SortByRating:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].AverageRating() > candidates[j].AverageRating()
		})
	case types.SortByName:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Name < candidates[j].Name
		})
	case types.SortByDistance:
		if criteria.Latitude == nil || criteria.Longitude == nil {
			return candidates
		}
		lat, lng := *criteria.Latitude, *criteria.Longitude
		for i := range candidates {
			candidates[i].Distance = distanceTo(&candidates[i], lat, lng)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Distance < candidates[j].Distance
		})
	}
	return candidates
}

// distanceTo ranks restaurants without coordinates after every located one.
func distanceTo(r *models.Restaurant, lat, lng float64) float64 {
	if r.Latitude == nil || r.Longitude == nil {
		return math.Inf(1)
	}
	return geo.Haversine(lat, lng, *r.Latitude, *r.Longitude)
}
