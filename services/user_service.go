package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"store-ratings-api/auth"
	"store-ratings-api/models"
	"store-ratings-api/validation"
)

// UserService owns user lifecycle and lookup. All field rules run before
// any write; a validation failure never touches the database.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     models.Role
	StoreID  *uint
}

type UserFilter struct {
	Name      string
	Email     string
	Address   string
	Role      models.Role
	SortBy    string
	SortOrder string
}

// Create validates name, email, password and address in that order,
// enforces email uniqueness and persists the user with trimmed
// name/address and a bcrypt hash. The returned record never carries the
// hash back to the caller.
func (s *UserService) Create(in CreateUserInput) (*models.User, error) {
	if res := validation.Name(in.Name); !res.Valid {
		return nil, newValidationError(res.Error)
	}
	if res := validation.Email(in.Email); !res.Valid {
		return nil, newValidationError(res.Error)
	}
	if res := validation.Password(in.Password); !res.Valid {
		return nil, newValidationError(res.Error)
	}
	if res := validation.Address(in.Address); !res.Valid {
		return nil, newValidationError(res.Error)
	}

	role := in.Role
	if role == "" {
		role = models.RoleNormalUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	// Advisory pre-check; the unique index on email is the real guard.
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hash,
		Address:      strings.TrimSpace(in.Address),
		Role:         role,
		StoreID:      in.StoreID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user created")
	user.PasswordHash = ""
	return &user, nil
}

// GetByID returns a user with its store summary preloaded when present.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Store").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return &user, nil
}

// GetByEmail looks a user up by exact email. The password hash is kept on
// the record only when includePassword is set; the login flow is the sole
// caller that needs it.
func (s *UserService) GetByEmail(email string, includePassword bool) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !includePassword {
		user.PasswordHash = ""
	}
	return &user, nil
}

// UpdatePassword validates the new password, rejects a no-op change and
// stores the fresh hash. Nothing is written on any failure path.
func (s *UserService) UpdatePassword(userID uint, newPassword string) (*models.User, error) {
	if res := validation.Password(newPassword); !res.Valid {
		return nil, newValidationError(res.Error)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if auth.ComparePassword(newPassword, user.PasswordHash) {
		return nil, ErrSamePassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&user).Update("password_hash", hash).Error; err != nil {
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("password updated")
	user.PasswordHash = ""
	return &user, nil
}

// List returns users matching the filter. Name/email/address are
// case-insensitive substring matches, role is exact.
func (s *UserService) List(f UserFilter) ([]models.User, error) {
	q := s.db.Model(&models.User{}).Preload("Store")
	q = applyContains(q, "name", f.Name)
	q = applyContains(q, "email", f.Email)
	q = applyContains(q, "address", f.Address)
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	q = applySort(q, f.SortBy, f.SortOrder)

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Delete removes a user; the FK constraint cascades to their ratings.
func (s *UserService) Delete(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}
