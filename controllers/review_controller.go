package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LiamMohler/FoodCritic/models"
	"github.com/LiamMohler/FoodCritic/services"
	"github.com/LiamMohler/FoodCritic/utils"
)

type ReviewController struct {
	DB       *gorm.DB
	Resolver *services.PlaceResolver
}

type CreateReviewRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=1000"`
	ImageURL string `json:"imageUrl" binding:"omitempty,max=1000,url"`
}

type UpdateReviewRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=1000"`
	ImageURL string `json:"imageUrl" binding:"omitempty,max=1000,url"`
}

func NewReviewController(db *gorm.DB, resolver *services.PlaceResolver) *ReviewController {
	return &ReviewController{DB: db, Resolver: resolver}
}

// GetRestaurantReviews lists reviews for a restaurant, newest first.
func (rc *ReviewController) GetRestaurantReviews(c *gin.Context) {
	restaurantID := c.Param("id")

	var reviews []models.Review
	if err := rc.DB.WithContext(c.Request.Context()).
		Preload("User").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Create a review for a restaurant, one per user
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant place_id"
// @Param review body CreateReviewRequest true "Review payload"
// @Router /restaurants/{id}/reviews [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	restaurantID := c.Param("id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Make sure the restaurant exists locally before attaching a review.
	// First reference pulls it from the provider.
	if _, err := rc.Resolver.ResolveOrCreate(c.Request.Context(), restaurantID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving restaurant"})
		return
	}

	var existing models.Review
	err := rc.DB.WithContext(c.Request.Context()).
		Where("user_id = ? AND restaurant_id = ?", user.UserID, restaurantID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this restaurant"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking existing review"})
		return
	}

	review := models.Review{
		UserID:       user.UserID,
		RestaurantID: restaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		ImageURL:     req.ImageURL,
	}

	if err := rc.DB.WithContext(c.Request.Context()).Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating review"})
		return
	}

	rc.DB.WithContext(c.Request.Context()).Preload("User").First(&review, review.ID)
	c.JSON(http.StatusCreated, review)
}

// UpdateReview replaces the caller's own review.
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review models.Review
	if err := rc.DB.WithContext(c.Request.Context()).First(&review, uint(reviewID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching review"})
		return
	}

	if review.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own reviews"})
		return
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.ImageURL = req.ImageURL

	if err := rc.DB.WithContext(c.Request.Context()).Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating review"})
		return
	}

	rc.DB.WithContext(c.Request.Context()).Preload("User").First(&review, review.ID)
	c.JSON(http.StatusOK, review)
}

// DeleteReview removes the caller's own review.
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.Review
	if err := rc.DB.WithContext(c.Request.Context()).First(&review, uint(reviewID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching review"})
		return
	}

	if review.UserID != user.UserID && user.Role != "ADMIN" {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own reviews"})
		return
	}

	if err := rc.DB.WithContext(c.Request.Context()).Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// GetRecentReviews lists the newest reviews across all restaurants.
func (rc *ReviewController) GetRecentReviews(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 50
	}

	var reviews []models.Review
	if err := rc.DB.WithContext(c.Request.Context()).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetUserReviews lists a user's reviews, newest first.
func (rc *ReviewController) GetUserReviews(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var reviews []models.Review
	if err := rc.DB.WithContext(c.Request.Context()).
		Preload("User").
		Where("user_id = ?", uint(userID)).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
