package services

import (
	"gorm.io/gorm"

	"store-ratings-api/models"
)

// DashboardService serves the admin and owner aggregate views.
type DashboardService struct {
	db      *gorm.DB
	users   *UserService
	stores  *StoreService
	ratings *RatingService
}

func NewDashboardService(db *gorm.DB, users *UserService, stores *StoreService, ratings *RatingService) *DashboardService {
	return &DashboardService{db: db, users: users, stores: stores, ratings: ratings}
}

// AdminStats is the platform-wide count view, no filtering.
type AdminStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// OwnerStats is the per-store view for the store's owner. Ratings are
// scoped strictly to the owner's own store.
type OwnerStats struct {
	AverageRating *float64      `json:"average_rating"`
	TotalRatings  int64         `json:"total_ratings"`
	Ratings       []RatingEntry `json:"ratings"`
}

func (s *DashboardService) AdminStats() (*AdminStats, error) {
	var stats AdminStats
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Store{}).Count(&stats.TotalStores).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Rating{}).Count(&stats.TotalRatings).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *DashboardService) OwnerStats(ownerID uint) (*OwnerStats, error) {
	owner, err := s.users.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner.Role != models.RoleStoreOwner {
		return nil, ErrNotStoreOwner
	}
	if owner.StoreID == nil {
		return nil, ErrOwnerHasNoStore
	}

	avg, total, err := s.stores.ratingStats(*owner.StoreID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ratings.ForStore(*owner.StoreID)
	if err != nil {
		return nil, err
	}
	return &OwnerStats{AverageRating: avg, TotalRatings: total, Ratings: entries}, nil
}
