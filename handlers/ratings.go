package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store-ratings-api/middleware"
	"store-ratings-api/services"
)

type RatingHandler struct {
	ratings *services.RatingService
}

func NewRatingHandler(ratings *services.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// RatingRequest carries the value as a float pointer so "missing" and
// "not an integer" fail for the right reasons instead of binding noise.
type RatingRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// Create submits the caller's rating for a store.
func (h *RatingHandler) Create(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Invalid store id"})
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Rating value is required"})
		return
	}

	rating, err := h.ratings.Create(middleware.GetUserID(c), uint(storeID), *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rating submitted successfully", "rating": rating})
}

// Update changes the value of the caller's own rating.
func (h *RatingHandler) Update(c *gin.Context) {
	ratingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Invalid rating id"})
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "Rating value is required"})
		return
	}

	rating, err := h.ratings.Update(uint(ratingID), middleware.GetUserID(c), *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully", "rating": rating})
}
