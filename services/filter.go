package services

import (
	"strings"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

// ApplyFilters narrows candidates by every enabled criteria field, ANDed
// together, preserving input order. A restaurant missing a field an enabled
// filter needs is excluded rather than erroring.
func ApplyFilters(candidates []models.Restaurant, criteria types.SearchCriteria) []models.Restaurant {
	filtered := make([]models.Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if matchesCriteria(&r, criteria) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchesCriteria(r *models.Restaurant, criteria types.SearchCriteria) bool {
	if criteria.Name != nil && strings.TrimSpace(*criteria.Name) != "" {
		if !strings.Contains(strings.ToLower(r.Name), strings.ToLower(strings.TrimSpace(*criteria.Name))) {
			return false
		}
	}

	if criteria.Cuisine != nil && strings.TrimSpace(*criteria.Cuisine) != "" {
		if !strings.Contains(strings.ToLower(r.Cuisine), strings.ToLower(strings.TrimSpace(*criteria.Cuisine))) {
			return false
		}
	}

	if criteria.PriceLevel != nil {
		if r.PriceLevel == nil || *r.PriceLevel != *criteria.PriceLevel {
			return false
		}
	}

	if criteria.OpenNow != nil {
		if r.OpenNow == nil || *r.OpenNow != *criteria.OpenNow {
			return false
		}
	}

	if criteria.MinRating != nil {
		if r.AverageRating() < *criteria.MinRating {
			return false
		}
	}

	return true
}
