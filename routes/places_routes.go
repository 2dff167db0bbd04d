package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LiamMohler/FoodCritic/controllers"
)

func SetupPlacesRoutes(r *gin.RouterGroup, placesController *controllers.PlacesController) {
	places := r.Group("/google-places")
	{
		places.POST("/search", placesController.SearchPlaces)
		places.GET("/details/:placeId", placesController.GetPlaceDetails)
		places.GET("/photo", placesController.GetPlacePhoto)
		places.POST("/suggestions", placesController.GetPlaceSuggestions)
	}
}
