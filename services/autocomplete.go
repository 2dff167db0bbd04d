package services

import (
	"context"
	"strings"

	"github.com/LiamMohler/FoodCritic/types"
)

type suggestionKey struct {
	ID       string
	Type     types.SuggestionType
	Title    string
	Subtitle string
}

// Autocomplete builds ranked suggestions across restaurant names, cuisines
// and neighborhoods. Half of the limit is reserved for restaurant names and
// a quarter each for the other two pools; each pool is truncated to its
// share before the merged set is deduplicated and capped at limit. Unused
// quota is not redistributed.
func (d *Discovery) Autocomplete(ctx context.Context, input string, limit int) ([]types.AutocompleteSuggestion, error) {
	term := strings.ToLower(strings.TrimSpace(input))
	if term == "" || limit <= 0 {
		return []types.AutocompleteSuggestion{}, nil
	}

	restaurants, err := d.store.FindAllInRegion(ctx)
	if err != nil {
		return nil, err
	}
	cuisines, err := d.store.DistinctCuisinesInRegion(ctx)
	if err != nil {
		return nil, err
	}
	neighborhoods, err := d.store.DistinctNeighborhoodsInRegion(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[suggestionKey]bool)
	suggestions := make([]types.AutocompleteSuggestion, 0, limit)

	add := func(s types.AutocompleteSuggestion) {
		key := suggestionKey{ID: s.ID, Type: s.Type, Title: s.Title, Subtitle: s.Subtitle}
		if seen[key] {
			return
		}
		seen[key] = true
		suggestions = append(suggestions, s)
	}

	restaurantQuota := max(1, limit/2)
	for i := range restaurants {
		if restaurantQuota == 0 {
			break
		}
		r := restaurants[i]
		if !strings.Contains(strings.ToLower(r.Name), term) {
			continue
		}
		restaurantQuota--
		add(types.AutocompleteSuggestion{
			ID:         r.ID,
			Type:       types.SuggestionRestaurant,
			Title:      r.Name,
			Subtitle:   r.Cuisine + " • " + NeighborhoodFromAddress(r.Address),
			Restaurant: &r,
		})
	}

	cuisineQuota := max(1, limit/4)
	for _, cuisine := range cuisines {
		if cuisineQuota == 0 {
			break
		}
		if !strings.Contains(strings.ToLower(cuisine), term) {
			continue
		}
		cuisineQuota--
		add(types.AutocompleteSuggestion{
			ID:       "cuisine-" + slugify(cuisine),
			Type:     types.SuggestionCuisine,
			Title:    cuisine,
			Subtitle: "Cuisine type",
		})
	}

	neighborhoodQuota := max(1, limit/4)
	for _, neighborhood := range neighborhoods {
		if neighborhoodQuota == 0 {
			break
		}
		if !strings.Contains(strings.ToLower(neighborhood), term) {
			continue
		}
		neighborhoodQuota--
		add(types.AutocompleteSuggestion{
			ID:       "neighborhood-" + slugify(neighborhood),
			Type:     types.SuggestionNeighborhood,
			Title:    neighborhood,
			Subtitle: regionLabel + " area",
		})
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
