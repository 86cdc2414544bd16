// internal/router/router.go
package router

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rabateks/dpp-backend/internal/config"
	"github.com/rabateks/dpp-backend/internal/handlers"
	"github.com/rabateks/dpp-backend/internal/middleware"
	"github.com/rabateks/dpp-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config, rng *rand.Rand) *gin.Engine {
	// Initialize services
	garmentService := services.NewGarmentService(db)
	orderService := services.NewOrderService(db, rng)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	garmentHandler := handlers.NewGarmentHandler(garmentService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, garmentService, orderService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	if cfg.Environment != "testing" {
		r.Use(middleware.GeneralRateLimit())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"company": cfg.App.Company,
			"version": cfg.App.Version,
		})
	})

	api := r.Group("/api")
	{
		garments := api.Group("/garments")
		{
			garments.GET("", garmentHandler.GetGarments)
			garments.POST("", garmentHandler.CreateGarment)
			garments.GET("/stats", garmentHandler.GetGarmentStats)
			garments.GET("/:id", garmentHandler.GetGarment)
			garments.PUT("/:id", garmentHandler.UpdateGarment)
			garments.DELETE("/:id", garmentHandler.DeleteGarment)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.POST("/random", orderHandler.CreateRandomOrders)
			orders.POST("/bulk-delete", orderHandler.BulkDeleteOrders)
			orders.GET("/stats", orderHandler.GetOrderStats)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		api.GET("/stats", dashboardHandler.GetGlobalStats)
		api.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	// Legacy path served by the garment page
	r.GET("/garment/api/stats", garmentHandler.GetGarmentStats)

	return r
}
