package services

import (
	"context"
	"log"
	"sync"

	"github.com/LiamMohler/FoodCritic/clients"
	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/types"
)

// PlaceResolver resolves a provider place id to a local restaurant record,
// creating one on first reference. Resolution is serialized per id so
// concurrent first-access creates at most one record.
type PlaceResolver struct {
	store  RestaurantStore
	places PlaceDetailsFetcher
	locks  sync.Map // place id -> *sync.Mutex
}

func NewPlaceResolver(store RestaurantStore, places PlaceDetailsFetcher) *PlaceResolver {
	return &PlaceResolver{store: store, places: places}
}

// ResolveOrCreate returns the local record for placeID, fetching and
// persisting it from the provider when unknown. Provider failures of any
// kind (network, timeout, non-OK status, empty payload) fall back to a
// minimal stub record; only persistence errors propagate.
func (pr *PlaceResolver) ResolveOrCreate(ctx context.Context, placeID string) (*models.Restaurant, error) {
	mu := pr.lockFor(placeID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := pr.store.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	details, err := pr.places.GetDetails(ctx, placeID)
	if err != nil {
		log.Printf("Failed to fetch place details for place_id %s: %v", placeID, err)
		return pr.saveStub(ctx, placeID)
	}

	restaurant := restaurantFromDetails(placeID, details)
	if err := pr.store.Save(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (pr *PlaceResolver) lockFor(placeID string) *sync.Mutex {
	mu, _ := pr.locks.LoadOrStore(placeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// saveStub persists the minimal fallback record so later calls resolve
// locally instead of retrying the provider.
func (pr *PlaceResolver) saveStub(ctx context.Context, placeID string) (*models.Restaurant, error) {
	stub := &models.Restaurant{
		ID:      placeID,
		Name:    "Restaurant",
		Cuisine: clients.DefaultCuisine,
	}
	if err := pr.store.Save(ctx, stub); err != nil {
		return nil, err
	}
	return stub, nil
}

func restaurantFromDetails(placeID string, details *types.GooglePlaceDetails) *models.Restaurant {
	restaurant := &models.Restaurant{
		ID:               placeID,
		Name:             details.Name,
		Cuisine:          clients.CuisineFromTypes(details.Types),
		Address:          details.FormattedAddress,
		Phone:            details.FormattedPhone,
		Website:          details.Website,
		PriceLevel:       details.PriceLevel,
		GoogleRating:     details.Rating,
		UserRatingsTotal: details.UserRatingsTotal,
		PlaceTypes:       details.Types,
	}

	if restaurant.Name == "" {
		restaurant.Name = "Restaurant"
	}

	// Latitude and longitude are set together or not at all.
	if details.Geometry != nil {
		lat := details.Geometry.Location.Lat
		lng := details.Geometry.Location.Lng
		restaurant.Latitude = &lat
		restaurant.Longitude = &lng
	}

	if details.OpeningHours != nil && details.OpeningHours.OpenNow != nil {
		openNow := *details.OpeningHours.OpenNow
		restaurant.OpenNow = &openNow
	}

	return restaurant
}
