package types

import "github.com/LiamMohler/FoodCritic/models"

// Sort keys accepted by restaurant search.
const (
	SortByRating   = "rating"
	SortByName     = "name"
	SortByDistance = "distance"
)

// SearchCriteria narrows a restaurant listing. Every field is optional;
// a nil field places no constraint.
type SearchCriteria struct {
	Name       *string  `form:"name"`
	Cuisine    *string  `form:"cuisine"`
	PriceLevel *int     `form:"priceLevel"`
	OpenNow    *bool    `form:"openNow"`
	MinRating  *float64 `form:"minRating"`
	SortBy     string   `form:"sortBy" binding:"omitempty,oneof=rating name distance"`
	Latitude   *float64 `form:"lat"`
	Longitude  *float64 `form:"lng"`
}

type SuggestionType string

const (
	SuggestionRestaurant   SuggestionType = "restaurant"
	SuggestionCuisine      SuggestionType = "cuisine"
	SuggestionNeighborhood SuggestionType = "neighborhood"
)

// AutocompleteSuggestion is a tagged union over the three suggestion
// sources; Type discriminates, and only the restaurant variant carries
// the underlying record.
type AutocompleteSuggestion struct {
	ID         string             `json:"id"`
	Type       SuggestionType     `json:"type"`
	Title      string             `json:"title"`
	Subtitle   string             `json:"subtitle"`
	Restaurant *models.Restaurant `json:"restaurant,omitempty"`
}

// GooglePlacesSearchRequest is the proxy search request body.
type GooglePlacesSearchRequest struct {
	Latitude      float64  `json:"latitude" binding:"required"`
	Longitude     float64  `json:"longitude" binding:"required"`
	Radius        int      `json:"radius"`
	Query         string   `json:"query"`
	Type          string   `json:"type"`
	MinRating     *float64 `json:"minRating"`
	MinPriceLevel *int     `json:"minPriceLevel"`
	MaxPriceLevel *int     `json:"maxPriceLevel"`
	Cuisine       string   `json:"cuisine"`
	PageToken     string   `json:"pageToken"`
}

// GooglePlacesSuggestionsRequest is the proxy autocomplete request body.
type GooglePlacesSuggestionsRequest struct {
	Input     string   `json:"input" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    *int     `json:"radius"`
	Types     string   `json:"types"`
}
