package models

import "time"

// Rating is a single user's 1-5 score for a store. The composite unique
// index is the final guard against duplicate (user, store) pairs; service
// level pre-checks are advisory only.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Value     int       `json:"value" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   uint      `json:"store_id" gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
