package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/LiamMohler/FoodCritic/types"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// GooglePlacesClient handles Google Places API requests.
type GooglePlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesClient creates a client for the Places web service.
// An empty baseURL falls back to the production endpoint.
func NewGooglePlacesClient(apiKey, baseURL string) *GooglePlacesClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GooglePlacesClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetDetails fetches place details for a place_id. Only the fields the
// service consumes are requested. A non-OK API status or an empty result
// is returned as an error so callers can take their fallback path.
func (c *GooglePlacesClient) GetDetails(ctx context.Context, placeID string) (*types.GooglePlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,formatted_phone_number,website,rating,user_ratings_total,price_level,types,geometry,photos,opening_hours")
	params.Set("key", c.apiKey)

	var response types.GooglePlaceDetailsResponse
	if err := c.get(ctx, "/details/json?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	if response.Status != "OK" {
		return nil, fmt.Errorf("places details returned status %s: %s", response.Status, response.ErrorMessage)
	}
	if response.Result == nil {
		return nil, fmt.Errorf("places details returned empty result for place_id %s", placeID)
	}

	return response.Result, nil
}

// Search runs a text search around a coordinate and applies the request's
// rating, price and cuisine filters over the raw result set.
func (c *GooglePlacesClient) Search(ctx context.Context, req types.GooglePlacesSearchRequest) (*types.GooglePlacesSearchResponse, error) {
	params := url.Values{}
	if req.PageToken != "" {
		params.Set("pagetoken", req.PageToken)
	} else {
		query := req.Query
		if strings.TrimSpace(query) == "" {
			query = "restaurants"
		}
		placeType := req.Type
		if placeType == "" {
			placeType = "restaurant"
		}
		radius := req.Radius
		if radius <= 0 {
			radius = 5000
		}
		params.Set("query", query)
		params.Set("location", fmt.Sprintf("%f,%f", req.Latitude, req.Longitude))
		params.Set("radius", fmt.Sprintf("%d", radius))
		params.Set("type", placeType)
	}
	params.Set("key", c.apiKey)

	var response types.GooglePlacesSearchResponse
	if err := c.get(ctx, "/textsearch/json?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	if response.Status == "OK" {
		response.Results = filterResults(response.Results, req)
	}

	return &response, nil
}

// GetSuggestions proxies the Places autocomplete endpoint.
func (c *GooglePlacesClient) GetSuggestions(ctx context.Context, req types.GooglePlacesSuggestionsRequest) (*types.GooglePlacesSuggestionsResponse, error) {
	params := url.Values{}
	params.Set("input", req.Input)
	params.Set("key", c.apiKey)

	if req.Latitude != nil && req.Longitude != nil {
		params.Set("location", fmt.Sprintf("%f,%f", *req.Latitude, *req.Longitude))
		if req.Radius != nil {
			params.Set("radius", fmt.Sprintf("%d", *req.Radius))
		}
	}
	if strings.TrimSpace(req.Types) != "" {
		params.Set("types", req.Types)
	}

	var response types.GooglePlacesSuggestionsResponse
	if err := c.get(ctx, "/autocomplete/json?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// PhotoURL builds the redirect target for a Places photo reference.
func (c *GooglePlacesClient) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf("%s/photo?photoreference=%s&maxwidth=%d&key=%s",
		c.baseURL, url.QueryEscape(photoReference), maxWidth, c.apiKey)
}

func (c *GooglePlacesClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build Places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Google Places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Google Places API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse Google Places response: %w", err)
	}

	return nil
}

// filterResults narrows raw search results. The price filter here is the
// inclusive [min,max] range form; exact-equality price filtering applies
// only to locally stored restaurants.
func filterResults(results []types.GooglePlaceResult, req types.GooglePlacesSearchRequest) []types.GooglePlaceResult {
	if results == nil {
		return nil
	}

	filtered := make([]types.GooglePlaceResult, 0, len(results))
	for _, result := range results {
		if req.MinRating != nil {
			if result.Rating == nil || *result.Rating < *req.MinRating {
				continue
			}
		}

		if result.PriceLevel != nil {
			if req.MinPriceLevel != nil && *result.PriceLevel < *req.MinPriceLevel {
				continue
			}
			if req.MaxPriceLevel != nil && *result.PriceLevel > *req.MaxPriceLevel {
				continue
			}
		}

		if keyword := strings.ToLower(strings.TrimSpace(req.Cuisine)); keyword != "" {
			matches := false
			for _, t := range result.Types {
				if strings.Contains(strings.ToLower(t), keyword) {
					matches = true
					break
				}
			}
			if !matches && strings.Contains(strings.ToLower(result.Name), keyword) {
				matches = true
			}
			if !matches {
				continue
			}
		}

		filtered = append(filtered, result)
	}

	return filtered
}
