package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Restaurant is keyed by the Google Places place_id, not a surrogate key.
// Records created through the resolver reuse the provider identity directly.
type Restaurant struct {
	ID               string         `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Name             string         `json:"name" gorm:"not null"`
	Cuisine          string         `json:"cuisine" gorm:"type:varchar(50)"`
	Address          string         `json:"address" gorm:"type:varchar(500)"`
	Phone            string         `json:"phone" gorm:"type:varchar(20)"`
	Website          string         `json:"website" gorm:"type:varchar(500)"`
	Latitude         *float64       `json:"latitude" gorm:"type:decimal(10,8)"`
	Longitude        *float64       `json:"longitude" gorm:"type:decimal(11,8)"`
	PriceLevel       *int           `json:"priceLevel"`
	OpenNow          *bool          `json:"openNow"`
	GoogleRating     *float64       `json:"googleRating" gorm:"type:decimal(3,2)"`
	UserRatingsTotal *int           `json:"userRatingsTotal"`
	PlaceTypes       pq.StringArray `json:"placeTypes" gorm:"type:text[]"`
	Reviews          []Review       `json:"-" gorm:"foreignKey:RestaurantID"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	Distance         float64        `json:"distance,omitempty" gorm:"-"`
}

// AverageRating computes the mean of the attached reviews on demand.
// An empty review set yields 0.0; nothing is persisted.
func (r *Restaurant) AverageRating() float64 {
	if len(r.Reviews) == 0 {
		return 0.0
	}
	sum := 0
	for _, review := range r.Reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(r.Reviews))
}

// ReviewCount returns the number of attached reviews.
func (r *Restaurant) ReviewCount() int {
	return len(r.Reviews)
}

func (r Restaurant) MarshalJSON() ([]byte, error) {
	type alias Restaurant
	return json.Marshal(struct {
		alias
		AverageRating float64 `json:"averageRating"`
		ReviewCount   int     `json:"reviewCount"`
	}{
		alias:         alias(r),
		AverageRating: r.AverageRating(),
		ReviewCount:   r.ReviewCount(),
	})
}
