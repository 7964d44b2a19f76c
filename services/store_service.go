package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"store-ratings-api/models"
	"store-ratings-api/validation"
)

type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
}

type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	Search    string
	SortBy    string
	SortOrder string
}

// StoreSummary is a store plus its on-demand aggregates for listings.
type StoreSummary struct {
	models.Store
	AverageRating *float64 `json:"average_rating"`
	TotalRatings  int64    `json:"total_ratings"`
}

// RatingSummary is the caller's own rating on a store detail view.
type RatingSummary struct {
	ID    uint `json:"id"`
	Value int  `json:"value"`
}

// StoreDetails is the full store view: aggregates plus the caller's
// rating when they have one.
type StoreDetails struct {
	models.Store
	AverageRating *float64       `json:"average_rating"`
	TotalRatings  int64          `json:"total_ratings"`
	UserRating    *RatingSummary `json:"user_rating"`
}

// Create validates name, email and address with the same rules as users
// and persists the store with trimmed values.
func (s *StoreService) Create(in CreateStoreInput) (*models.Store, error) {
	if res := validation.Name(in.Name); !res.Valid {
		return nil, newValidationError(res.Error)
	}
	if res := validation.Email(in.Email); !res.Valid {
		return nil, newValidationError(res.Error)
	}
	if res := validation.Address(in.Address); !res.Valid {
		return nil, newValidationError(res.Error)
	}

	var count int64
	if err := s.db.Model(&models.Store{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateStoreEmail
	}

	store := models.Store{
		Name:    strings.TrimSpace(in.Name),
		Email:   in.Email,
		Address: strings.TrimSpace(in.Address),
	}
	if err := s.db.Create(&store).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateStoreEmail
		}
		return nil, err
	}

	logrus.WithField("store_id", store.ID).Info("store created")
	return &store, nil
}

func (s *StoreService) GetByID(id uint) (*models.Store, error) {
	var store models.Store
	if err := s.db.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

// List returns stores matching the filter, each with its aggregates.
// search ORs over name and address and replaces the field filters.
func (s *StoreService) List(f StoreFilter) ([]StoreSummary, error) {
	q := s.db.Model(&models.Store{})
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", needle, needle)
	} else {
		q = applyContains(q, "name", f.Name)
		q = applyContains(q, "email", f.Email)
		q = applyContains(q, "address", f.Address)
	}
	q = applySort(q, f.SortBy, f.SortOrder)

	var stores []models.Store
	if err := q.Find(&stores).Error; err != nil {
		return nil, err
	}

	summaries := make([]StoreSummary, 0, len(stores))
	for _, store := range stores {
		avg, total, err := s.ratingStats(store.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, StoreSummary{Store: store, AverageRating: avg, TotalRatings: total})
	}
	return summaries, nil
}

// AverageRating computes the mean rating for a store on demand. A store
// with no ratings yields nil, never zero.
func (s *StoreService) AverageRating(storeID uint) (*float64, error) {
	avg, _, err := s.ratingStats(storeID)
	return avg, err
}

// GetWithRatings returns the store, its aggregates and the caller's own
// rating. userID nil means an anonymous caller; UserRating stays nil both
// then and when the user simply has not rated this store.
func (s *StoreService) GetWithRatings(storeID uint, userID *uint) (*StoreDetails, error) {
	store, err := s.GetByID(storeID)
	if err != nil {
		return nil, err
	}

	avg, total, err := s.ratingStats(storeID)
	if err != nil {
		return nil, err
	}

	details := StoreDetails{Store: *store, AverageRating: avg, TotalRatings: total}
	if userID != nil {
		var rating models.Rating
		err := s.db.Where("user_id = ? AND store_id = ?", *userID, storeID).First(&rating).Error
		switch {
		case err == nil:
			details.UserRating = &RatingSummary{ID: rating.ID, Value: rating.Value}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no rating from this user, leave nil
		default:
			return nil, err
		}
	}
	return &details, nil
}

// Delete removes a store; the FK constraint cascades to its ratings.
func (s *StoreService) Delete(id uint) error {
	res := s.db.Delete(&models.Store{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStoreNotFound
	}
	logrus.WithField("store_id", id).Info("store deleted")
	return nil
}

func (s *StoreService) ratingStats(storeID uint) (*float64, int64, error) {
	var total int64
	if err := s.db.Model(&models.Rating{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}
	var avg float64
	err := s.db.Model(&models.Rating{}).Where("store_id = ?", storeID).
		Select("AVG(value)").Scan(&avg).Error
	if err != nil {
		return nil, 0, err
	}
	return &avg, total, nil
}
