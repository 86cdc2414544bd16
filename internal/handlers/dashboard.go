// internal/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabateks/dpp-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	garmentService   *services.GarmentService
	orderService     *services.OrderService
}

func NewDashboardHandler(dashboardService *services.DashboardService, garmentService *services.GarmentService, orderService *services.OrderService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		garmentService:   garmentService,
		orderService:     orderService,
	}
}

// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	overview, err := h.dashboardService.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GET /api/stats
func (h *DashboardHandler) GetGlobalStats(c *gin.Context) {
	totalGarments, err := h.garmentService.Count()
	if err != nil {
		h.statsError(c, err)
		return
	}

	totalOrders, err := h.orderService.Count()
	if err != nil {
		h.statsError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"total_garments": totalGarments,
		"total_orders":   totalOrders,
		"status":         "connected",
	})
}

func (h *DashboardHandler) statsError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
		"status":  "error",
	})
}
