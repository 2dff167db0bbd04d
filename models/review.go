package models

import "time"

// Review holds a single user rating for a restaurant. The composite unique
// index keeps it to one review per (user, restaurant) pair.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"userId" gorm:"not null;uniqueIndex:idx_user_restaurant"`
	User         User      `json:"user" gorm:"foreignKey:UserID"`
	RestaurantID string    `json:"restaurantId" gorm:"not null;type:varchar(255);uniqueIndex:idx_user_restaurant"`
	Rating       int       `json:"rating" gorm:"not null;check:rating between 1 and 5"`
	Comment      string    `json:"comment" gorm:"type:varchar(1000)"`
	ImageURL     string    `json:"imageUrl" gorm:"type:varchar(1000)"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
