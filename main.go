package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"store-ratings-api/auth"
	"store-ratings-api/config"
	"store-ratings-api/models"
	"store-ratings-api/routes"
	"store-ratings-api/services"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	logrus.Info("database connected and migrated")

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(db)
	storeService := services.NewStoreService(db)
	ratingService := services.NewRatingService(db)
	dashboardService := services.NewDashboardService(db, userService, storeService, ratingService)

	if err := ensureAdmin(db, cfg, userService); err != nil {
		logrus.WithError(err).Fatal("failed to seed admin account")
	}

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Store Ratings API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, routes.Deps{
		Users:     userService,
		Stores:    storeService,
		Ratings:   ratingService,
		Dashboard: dashboardService,
		Tokens:    tokens,
	})

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}

// ensureAdmin creates the configured SYSTEM_ADMIN account on first boot
// so the platform has someone able to create stores and owners.
func ensureAdmin(db *gorm.DB, cfg config.Config, users *services.UserService) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleSystemAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := users.Create(services.CreateUserInput{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Address:  cfg.AdminAddress,
		Role:     models.RoleSystemAdmin,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return nil
		}
		return err
	}
	logrus.WithField("email", cfg.AdminEmail).Info("seed admin account created")
	return nil
}
