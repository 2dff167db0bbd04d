package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LiamMohler/FoodCritic/clients"
	"github.com/LiamMohler/FoodCritic/types"
)

// PlacesController proxies the Google Places API so the frontend never
// handles the API key.
type PlacesController struct {
	Client *clients.GooglePlacesClient
}

func NewPlacesController(client *clients.GooglePlacesClient) *PlacesController {
	return &PlacesController{Client: client}
}

// SearchPlaces godoc
// @Summary Text search against Google Places with server-side filtering
// @Tags places
// @Accept json
// @Produce json
// @Param request body types.GooglePlacesSearchRequest true "Search request"
// @Router /google-places/search [post]
func (pc *PlacesController) SearchPlaces(c *gin.Context) {
	var req types.GooglePlacesSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := pc.Client.Search(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error searching places"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPlaceDetails fetches provider details for a single place.
func (pc *PlacesController) GetPlaceDetails(c *gin.Context) {
	placeID := c.Param("placeId")

	details, err := pc.Client.GetDetails(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching place details"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetPlacePhoto redirects to the provider photo URL for a photo reference.
func (pc *PlacesController) GetPlacePhoto(c *gin.Context) {
	reference := c.Query("photoReference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photoReference is required"})
		return
	}

	maxWidth, err := strconv.Atoi(c.DefaultQuery("maxWidth", "400"))
	if err != nil || maxWidth < 1 {
		maxWidth = 400
	}

	c.Redirect(http.StatusFound, pc.Client.PhotoURL(reference, maxWidth))
}

// GetPlaceSuggestions proxies provider autocomplete predictions.
func (pc *PlacesController) GetPlaceSuggestions(c *gin.Context) {
	var req types.GooglePlacesSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := pc.Client.GetSuggestions(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching suggestions"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
