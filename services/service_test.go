package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"store-ratings-api/models"
)

// newTestDB opens a fresh in-memory database per test, mirroring the
// startup migration so constraint behavior matches production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}))
	return db
}

func validUserInput(email string) CreateUserInput {
	return CreateUserInput{
		Name:     "Johnathan Maxwell Reviewer",
		Email:    email,
		Password: "Abcdefg1!",
		Address:  "1 Main St",
	}
}

func validStoreInput(email string) CreateStoreInput {
	return CreateStoreInput{
		Name:    "Corner Grocery and Provisions",
		Email:   email,
		Address: "42 Market Square",
	}
}

func seedUser(t *testing.T, users *UserService, email string) *models.User {
	t.Helper()
	user, err := users.Create(validUserInput(email))
	require.NoError(t, err)
	return user
}

func seedStore(t *testing.T, stores *StoreService, email string) *models.Store {
	t.Helper()
	store, err := stores.Create(validStoreInput(email))
	require.NoError(t, err)
	return store
}
