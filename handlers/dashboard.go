package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-ratings-api/middleware"
	"store-ratings-api/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// AdminStats returns platform-wide user/store/rating counts.
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	stats, err := h.dashboard.AdminStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// OwnerStats returns the caller's own store aggregates and ratings.
func (h *DashboardHandler) OwnerStats(c *gin.Context) {
	stats, err := h.dashboard.OwnerStats(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
