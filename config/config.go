package config

import (
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"store-ratings-api/models"
)

// Config holds everything read from the environment at startup. There is
// no package-level state; Load returns the value and callers inject it.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	GinMode   string

	// Seed admin, created on first boot when no SYSTEM_ADMIN exists.
	AdminName     string
	AdminEmail    string
	AdminPassword string
	AdminAddress  string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment, with an optional .env file layered under it.
func Load() Config {
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	return Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "store_ratings.db"),
		JWTSecret: getEnv("JWT_SECRET", "store_ratings_super_secret_2024"),
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
		GinMode:   getEnv("GIN_MODE", ""),

		AdminName:     getEnv("ADMIN_NAME", "Platform Administrator Account"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@storeratings.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin@1234"),
		AdminAddress:  getEnv("ADMIN_ADDRESS", "1 Admin Plaza"),
	}
}

// InitDB opens the sqlite database, enables FK enforcement so cascade
// deletes actually fire, and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Rating{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
