package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LiamMohler/FoodCritic/controllers"
)

func SetupReviewRoutes(r *gin.RouterGroup, reviewController *controllers.ReviewController) {
	r.POST("/restaurants/:id/reviews", reviewController.CreateReview)

	reviews := r.Group("/reviews")
	{
		reviews.PUT("/:reviewId", reviewController.UpdateReview)
		reviews.DELETE("/:reviewId", reviewController.DeleteReview)
	}
}
