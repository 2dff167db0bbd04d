package repository

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/LiamMohler/FoodCritic/geo"
	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantRepository implements services.RestaurantStore on GORM.
// Region scoping is pushed into the queries as a lat/lng bounding-box
// predicate; distance refinement happens in-process through geo.Haversine.
type RestaurantRepository struct {
	DB    *gorm.DB
	Fence geo.Fence
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db, Fence: geo.SanDiego}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.DB.WithContext(ctx).Preload("Reviews").First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAllInRegion(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.inRegion(ctx).
		Order("name ASC").
		Preload("Reviews").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) FindAllInRegionPaged(ctx context.Context, offset, limit int) ([]models.Restaurant, int64, error) {
	var total int64
	if err := r.inRegion(ctx).Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	err := r.inRegion(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Preload("Reviews").
		Find(&restaurants).Error
	return restaurants, total, err
}

// Save upserts by the provider place id, so a retried resolve never
// creates a second row.
func (r *RestaurantRepository) Save(ctx context.Context, restaurant *models.Restaurant) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(restaurant).Error
}

func (r *RestaurantRepository) DistinctCuisinesInRegion(ctx context.Context) ([]string, error) {
	var cuisines []string
	err := r.inRegion(ctx).
		Model(&models.Restaurant{}).
		Where("cuisine IS NOT NULL AND cuisine <> ''").
		Distinct().
		Order("cuisine ASC").
		Pluck("cuisine", &cuisines).Error
	return cuisines, err
}

// DistinctNeighborhoodsInRegion classifies in-process so the labels always
// match the services keyword table.
func (r *RestaurantRepository) DistinctNeighborhoodsInRegion(ctx context.Context) ([]string, error) {
	var addresses []string
	err := r.inRegion(ctx).
		Model(&models.Restaurant{}).
		Pluck("address", &addresses).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var neighborhoods []string
	for _, address := range addresses {
		label := services.ClassifyNeighborhood(address)
		if !seen[label] {
			seen[label] = true
			neighborhoods = append(neighborhoods, label)
		}
	}
	sort.Strings(neighborhoods)
	return neighborhoods, nil
}

// FindInBoundingBox returns region-scoped restaurants inside the given
// lat/lng box. Rows without coordinates never match.
func (r *RestaurantRepository) FindInBoundingBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.inRegion(ctx).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Preload("Reviews").
		Find(&restaurants).Error
	return restaurants, err
}

// FindNearbyInRegion pre-filters with a bounding box derived from the
// radius, then refines and orders by haversine distance.
func (r *RestaurantRepository) FindNearbyInRegion(ctx context.Context, lat, lng, radiusKm float64) ([]models.Restaurant, error) {
	// ~111 km per degree of latitude.
	radiusDeg := radiusKm / 111.0
	minLat := lat - radiusDeg
	maxLat := lat + radiusDeg
	lngDelta := radiusDeg / math.Cos(lat*math.Pi/180)
	minLng := lng - lngDelta
	maxLng := lng + lngDelta

	candidates, err := r.FindInBoundingBox(ctx, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.Restaurant, 0, len(candidates))
	for _, restaurant := range candidates {
		if restaurant.Latitude == nil || restaurant.Longitude == nil {
			continue
		}
		d := geo.Haversine(lat, lng, *restaurant.Latitude, *restaurant.Longitude)
		if d <= radiusKm {
			restaurant.Distance = d
			nearby = append(nearby, restaurant)
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby, nil
}

func (r *RestaurantRepository) inRegion(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", r.Fence.MinLat, r.Fence.MaxLat).
		Where("longitude BETWEEN ? AND ?", r.Fence.MinLng, r.Fence.MaxLng)
}
