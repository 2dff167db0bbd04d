package services

import (
	"context"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

// RestaurantStore is the persistence surface the discovery engine runs on.
// All "in region" queries are pre-scoped to the configured geofence.
type RestaurantStore interface {
	// FindByID returns (nil, nil) when no record exists for the id.
	FindByID(ctx context.Context, id string) (*models.Restaurant, error)
	FindAllInRegion(ctx context.Context) ([]models.Restaurant, error)
	FindAllInRegionPaged(ctx context.Context, offset, limit int) ([]models.Restaurant, int64, error)
	// Save upserts by the restaurant's provider identity.
	Save(ctx context.Context, restaurant *models.Restaurant) error
	DistinctCuisinesInRegion(ctx context.Context) ([]string, error)
	DistinctNeighborhoodsInRegion(ctx context.Context) ([]string, error)
	// FindNearbyInRegion returns in-region restaurants within radiusKm of
	// the coordinate, ascending by distance, with Distance populated.
	FindNearbyInRegion(ctx context.Context, lat, lng, radiusKm float64) ([]models.Restaurant, error)
}

// PlaceDetailsFetcher is the slice of the external place-data provider the
// resolver consumes.
type PlaceDetailsFetcher interface {
	GetDetails(ctx context.Context, placeID string) (*types.GooglePlaceDetails, error)
}
