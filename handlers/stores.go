package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store-ratings-api/middleware"
	"store-ratings-api/services"
)

type StoreHandler struct {
	stores  *services.StoreService
	ratings *services.RatingService
}

func NewStoreHandler(stores *services.StoreService, ratings *services.RatingService) *StoreHandler {
	return &StoreHandler{stores: stores, ratings: ratings}
}

type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// Create registers a new store (admin only).
func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	store, err := h.stores.Create(services.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Store created successfully", "store": store})
}

// List returns stores with aggregates. search ORs over name and address
// and takes precedence over the individual field filters.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.stores.List(services.StoreFilter{
		Name:      c.Query("name"),
		Email:     c.Query("email"),
		Address:   c.Query("address"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(stores), "stores": stores})
}

// Get returns one store with its aggregates and the caller's own rating.
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Invalid store id"})
		return
	}

	userID := middleware.GetUserID(c)
	details, err := h.stores.GetWithRatings(uint(id), &userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": details})
}

// Ratings lists a store's ratings newest-first (admin only).
func (h *StoreHandler) Ratings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Invalid store id"})
		return
	}

	if _, err := h.stores.GetByID(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	entries, err := h.ratings.ForStore(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "ratings": entries})
}

// Delete removes a store and, via cascade, its ratings (admin only).
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Invalid store id"})
		return
	}

	if err := h.stores.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}
