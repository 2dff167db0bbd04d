package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LiamMohler/FoodCritic/clients"
	"github.com/LiamMohler/FoodCritic/config"
	"github.com/LiamMohler/FoodCritic/controllers"
	"github.com/LiamMohler/FoodCritic/middleware"
	"github.com/LiamMohler/FoodCritic/repository"
	"github.com/LiamMohler/FoodCritic/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Wire the engine: repository -> services -> controllers
	placesConfig := config.GetPlacesConfig()
	placesClient := clients.NewGooglePlacesClient(placesConfig.APIKey, placesConfig.BaseURL)

	store := repository.NewRestaurantRepository(db)
	discovery := services.NewDiscovery(store)
	resolver := services.NewPlaceResolver(store, placesClient)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	restaurantController := controllers.NewRestaurantController(discovery, resolver)
	reviewController := controllers.NewReviewController(db, resolver)
	placesController := controllers.NewPlacesController(placesClient)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/google-login", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)

		// Discovery is readable without an account
		SetupRestaurantRoutes(public, restaurantController)
		SetupPlacesRoutes(public, placesController)

		public.GET("/restaurants/:id/reviews", reviewController.GetRestaurantReviews)
		public.GET("/reviews/recent", reviewController.GetRecentReviews)
		public.GET("/users/:userId/reviews", reviewController.GetUserReviews)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)

		SetupReviewRoutes(protected, reviewController)
		SetupUploadRoutes(protected, uploadController)

		// Admin-only insertion path
		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/restaurants", restaurantController.CreateRestaurant)
		}
	}
}
