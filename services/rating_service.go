package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"store-ratings-api/models"
	"store-ratings-api/validation"
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// RatingUser is the minimal user projection embedded in rating listings.
type RatingUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RatingEntry is one rating with its author, for store rating listings.
type RatingEntry struct {
	ID        uint       `json:"id"`
	Value     int        `json:"value"`
	User      RatingUser `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

// Create records a user's rating for a store. One rating per (user,
// store): the pre-check catches the common case, the composite unique
// index settles races.
func (s *RatingService) Create(userID, storeID uint, value float64) (*models.Rating, error) {
	if res := validation.Rating(value); !res.Valid {
		return nil, newValidationError(res.Error)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}
	if err := s.db.Model(&models.Store{}).Where("id = ?", storeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrStoreNotFound
	}

	if err := s.db.Model(&models.Rating{}).
		Where("user_id = ? AND store_id = ?", userID, storeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateRating
	}

	rating := models.Rating{Value: int(value), UserID: userID, StoreID: storeID}
	if err := s.db.Create(&rating).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rating_id": rating.ID,
		"user_id":   userID,
		"store_id":  storeID,
		"value":     rating.Value,
	}).Info("rating created")
	return &rating, nil
}

// Update changes the value of an existing rating. Only the rating's own
// user may update it; id, userID and storeID never change.
func (s *RatingService) Update(ratingID, userID uint, value float64) (*models.Rating, error) {
	if res := validation.Rating(value); !res.Valid {
		return nil, newValidationError(res.Error)
	}

	var rating models.Rating
	if err := s.db.First(&rating, ratingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	if rating.UserID != userID {
		return nil, ErrNotRatingOwner
	}

	if err := s.db.Model(&rating).Update("value", int(value)).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"rating_id": rating.ID, "value": rating.Value}).Info("rating updated")
	return &rating, nil
}

// GetByUserAndStore returns the single rating for a (user, store) pair.
func (s *RatingService) GetByUserAndStore(userID, storeID uint) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// ForStore lists a store's ratings newest-first with minimal author info.
func (s *RatingService) ForStore(storeID uint) ([]RatingEntry, error) {
	var ratings []models.Rating
	err := s.db.Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	entries := make([]RatingEntry, 0, len(ratings))
	for _, r := range ratings {
		entry := RatingEntry{
			ID:        r.ID,
			Value:     r.Value,
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			entry.User = RatingUser{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
