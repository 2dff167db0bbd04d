package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LiamMohler/FoodCritic/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		upload.POST("/review-image", uploadController.GetReviewImageUploadURL)
		upload.POST("/review-image/confirm", uploadController.ConfirmReviewImageUpload)
		upload.DELETE("/review-image", uploadController.DeleteReviewImage)
	}
}
