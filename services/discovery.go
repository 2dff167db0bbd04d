package services

import (
	"context"
	"log"

	"github.com/LiamMohler/FoodCritic/geo"
	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

// Discovery orchestrates geofenced retrieval, filtering, sorting and
// autocomplete. It is stateless between calls; everything flows from the
// store per request.
type Discovery struct {
	store RestaurantStore
	fence geo.Fence
}

func NewDiscovery(store RestaurantStore) *Discovery {
	return &Discovery{store: store, fence: geo.SanDiego}
}

// ListInRegion returns every in-region restaurant ordered by name.
func (d *Discovery) ListInRegion(ctx context.Context) ([]models.Restaurant, error) {
	return d.store.FindAllInRegion(ctx)
}

// ListInRegionPaged returns one page of the in-region listing plus the
// total in-region count.
func (d *Discovery) ListInRegionPaged(ctx context.Context, page, size int) ([]models.Restaurant, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return d.store.FindAllInRegionPaged(ctx, (page-1)*size, size)
}

// Search runs the in-region listing through the filter pipeline and sort
// engine.
func (d *Discovery) Search(ctx context.Context, criteria types.SearchCriteria) ([]models.Restaurant, error) {
	restaurants, err := d.store.FindAllInRegion(ctx)
	if err != nil {
		return nil, err
	}

	restaurants = ApplyFilters(restaurants, criteria)
	restaurants = SortRestaurants(restaurants, criteria)

	log.Printf("Found %d restaurants matching search criteria", len(restaurants))
	return restaurants, nil
}

// Nearby returns in-region restaurants within radiusKm of the coordinate,
// ascending by distance. Coordinates outside the region degrade to the
// full in-region listing instead of failing.
func (d *Discovery) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Restaurant, error) {
	if !d.fence.Contains(lat, lng) {
		log.Printf("Coordinates (%f, %f) are outside the service region, returning full listing", lat, lng)
		return d.ListInRegion(ctx)
	}
	return d.store.FindNearbyInRegion(ctx, lat, lng, radiusKm)
}

// SaveRestaurant upserts a restaurant record by id.
func (d *Discovery) SaveRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return d.store.Save(ctx, restaurant)
}

// Cuisines lists the distinct cuisine labels present in the region.
func (d *Discovery) Cuisines(ctx context.Context) ([]string, error) {
	return d.store.DistinctCuisinesInRegion(ctx)
}

// Neighborhoods lists the distinct neighborhood labels derived from
// in-region addresses.
func (d *Discovery) Neighborhoods(ctx context.Context) ([]string, error) {
	return d.store.DistinctNeighborhoodsInRegion(ctx)
}
