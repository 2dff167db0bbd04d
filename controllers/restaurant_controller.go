package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/services"
	"github.com/LiamMohler/FoodCritic/types"
)

type RestaurantController struct {
	Discovery *services.Discovery
	Resolver  *services.PlaceResolver
}

type NearbyQuery struct {
	Latitude  float64 `form:"lat" binding:"required"`
	Longitude float64 `form:"lng" binding:"required"`
	RadiusKm  float64 `form:"radius"`
}

type AutocompleteQuery struct {
	Input string `form:"input" binding:"required"`
	Limit int    `form:"limit,default=10" binding:"min=0,max=50"`
}

type PagedQuery struct {
	Page int `form:"page,default=1" binding:"min=1"`
	Size int `form:"size,default=20" binding:"min=1,max=100"`
}

func NewRestaurantController(discovery *services.Discovery, resolver *services.PlaceResolver) *RestaurantController {
	return &RestaurantController{Discovery: discovery, Resolver: resolver}
}

// GetAllRestaurants godoc
// @Summary List all restaurants in the service region, ordered by name
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Router /restaurants [get]
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.Discovery.ListInRegion(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurantsPaged godoc
// @Summary List restaurants in the region one page at a time
// @Tags restaurants
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param size query integer false "Items per page (default: 20, max: 100)"
// @Router /restaurants/paged [get]
func (rc *RestaurantController) GetRestaurantsPaged(c *gin.Context) {
	var query PagedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurants, total, err := rc.Discovery.ListInRegionPaged(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
		"pagination": gin.H{
			"currentPage": query.Page,
			"pageSize":    query.Size,
			"totalItems":  total,
			"totalPages":  math.Ceil(float64(total) / float64(query.Size)),
		},
	})
}

// SearchRestaurants godoc
// @Summary Search restaurants in the region with optional filters and sorting
// @Tags restaurants
// @Produce json
// @Param name query string false "Name substring"
// @Param cuisine query string false "Cuisine substring"
// @Param priceLevel query integer false "Exact price level (0-4)"
// @Param openNow query boolean false "Only restaurants currently open"
// @Param minRating query number false "Minimum derived average rating"
// @Param sortBy query string false "Sort key: rating, name, distance"
// @Param lat query number false "Reference latitude for distance sort"
// @Param lng query number false "Reference longitude for distance sort"
// @Success 200 {array} models.Restaurant
// @Router /restaurants/search [get]
func (rc *RestaurantController) SearchRestaurants(c *gin.Context) {
	var criteria types.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurants, err := rc.Discovery.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetNearbyRestaurants godoc
// @Summary Find restaurants within a radius of a coordinate
// @Tags restaurants
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in kilometers (default: 5)"
// @Success 200 {array} models.Restaurant
// @Router /restaurants/nearby [get]
func (rc *RestaurantController) GetNearbyRestaurants(c *gin.Context) {
	var query NearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	radius := query.RadiusKm
	if radius <= 0 {
		radius = 5.0
	}

	restaurants, err := rc.Discovery.Nearby(c.Request.Context(), query.Latitude, query.Longitude, radius)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching nearby restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetAutocomplete godoc
// @Summary Autocomplete over restaurant names, cuisines and neighborhoods
// @Tags restaurants
// @Produce json
// @Param input query string true "Search input"
// @Param limit query integer false "Maximum suggestions (default: 10)"
// @Success 200 {array} types.AutocompleteSuggestion
// @Router /restaurants/autocomplete [get]
func (rc *RestaurantController) GetAutocomplete(c *gin.Context) {
	var query AutocompleteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := rc.Discovery.Autocomplete(c.Request.Context(), query.Input, query.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building suggestions"})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// GetRestaurant resolves a restaurant by its Google place_id, creating the
// local record from provider data on first reference.
func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id := c.Param("id")

	restaurant, err := rc.Resolver.ResolveOrCreate(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetCuisines lists the distinct cuisines present in the region.
func (rc *RestaurantController) GetCuisines(c *gin.Context) {
	cuisines, err := rc.Discovery.Cuisines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cuisines"})
		return
	}
	c.JSON(http.StatusOK, cuisines)
}

// GetNeighborhoods lists the distinct neighborhoods derived from in-region
// addresses.
func (rc *RestaurantController) GetNeighborhoods(c *gin.Context) {
	neighborhoods, err := rc.Discovery.Neighborhoods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching neighborhoods"})
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}

// CreateRestaurant is the administrative insertion path; resolver-created
// records are the normal one.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var input models.Restaurant
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ID == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and name are required"})
		return
	}

	// Coordinates come in pairs or not at all
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}

	if err := rc.Discovery.SaveRestaurant(c.Request.Context(), &input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving restaurant"})
		return
	}
	c.JSON(http.StatusCreated, input)
}
