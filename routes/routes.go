package routes

import (
	"github.com/gin-gonic/gin"

	"store-ratings-api/auth"
	"store-ratings-api/handlers"
	"store-ratings-api/middleware"
	"store-ratings-api/models"
	"store-ratings-api/services"
)

// Deps carries the constructed services into route registration; routes
// hold no state of their own.
type Deps struct {
	Users     *services.UserService
	Stores    *services.StoreService
	Ratings   *services.RatingService
	Dashboard *services.DashboardService
	Tokens    *auth.TokenManager
}

func SetupRoutes(r *gin.Engine, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
	userHandler := handlers.NewUserHandler(deps.Users)
	storeHandler := handlers.NewStoreHandler(deps.Stores, deps.Ratings)
	ratingHandler := handlers.NewRatingHandler(deps.Ratings)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired(deps.Tokens))
	{
		authed.GET("/profile", authHandler.Profile)
		authed.PUT("/profile/password", authHandler.UpdatePassword)
		authed.GET("/stores", storeHandler.List)
		authed.GET("/stores/:id", storeHandler.Get)
	}

	// ── Normal user routes ─────────────────────────────────────────
	user := r.Group("/api")
	user.Use(middleware.AuthRequired(deps.Tokens), middleware.RoleRequired(models.RoleNormalUser))
	{
		user.POST("/stores/:id/ratings", ratingHandler.Create)
		user.PUT("/ratings/:id", ratingHandler.Update)
	}

	// ── Store owner routes ─────────────────────────────────────────
	owner := r.Group("/api/owner")
	owner.Use(middleware.AuthRequired(deps.Tokens), middleware.RoleRequired(models.RoleStoreOwner))
	{
		owner.GET("/dashboard", dashboardHandler.OwnerStats)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(deps.Tokens), middleware.RoleRequired(models.RoleSystemAdmin))
	{
		admin.POST("/users", userHandler.Create)
		admin.GET("/users", userHandler.List)
		admin.GET("/users/:id", userHandler.Get)
		admin.DELETE("/users/:id", userHandler.Delete)

		admin.POST("/stores", storeHandler.Create)
		admin.GET("/stores", storeHandler.List)
		admin.GET("/stores/:id/ratings", storeHandler.Ratings)
		admin.DELETE("/stores/:id", storeHandler.Delete)

		admin.GET("/dashboard", dashboardHandler.AdminStats)
	}
}
