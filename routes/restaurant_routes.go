package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LiamMohler/FoodCritic/controllers"
)

func SetupRestaurantRoutes(r *gin.RouterGroup, restaurantController *controllers.RestaurantController) {
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/paged", restaurantController.GetRestaurantsPaged)
		restaurants.GET("/search", restaurantController.SearchRestaurants)
		restaurants.GET("/nearby", restaurantController.GetNearbyRestaurants)
		restaurants.GET("/autocomplete", restaurantController.GetAutocomplete)
		restaurants.GET("/cuisines", restaurantController.GetCuisines)
		restaurants.GET("/neighborhoods", restaurantController.GetNeighborhoods)

		// Keep the wildcard last so the static paths above win
		restaurants.GET("/:id", restaurantController.GetRestaurant)
	}
}
