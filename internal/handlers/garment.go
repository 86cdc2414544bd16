// internal/handlers/garment.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rabateks/dpp-backend/internal/services"
	"github.com/rabateks/dpp-backend/internal/utils"
)

type GarmentHandler struct {
	garmentService *services.GarmentService
}

func NewGarmentHandler(garmentService *services.GarmentService) *GarmentHandler {
	return &GarmentHandler{garmentService: garmentService}
}

// GET /api/garments
func (h *GarmentHandler) GetGarments(c *gin.Context) {
	garments, err := h.garmentService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, garments)
}

// GET /api/garments/:id
func (h *GarmentHandler) GetGarment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid garment ID")
		return
	}

	garment, err := h.garmentService.Get(id)
	if err != nil {
		h.respondError(c, err, "fetching garment")
		return
	}
	c.JSON(http.StatusOK, garment)
}

// POST /api/garments
func (h *GarmentHandler) CreateGarment(c *gin.Context) {
	var req services.CreateGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Error creating garment: %v", err))
		return
	}

	garment, err := h.garmentService.Create(&req)
	if err != nil {
		h.respondError(c, err, "creating garment")
		return
	}

	utils.CreatedResponse(c, "Garment created successfully", gin.H{"garment": garment})
}

// PUT /api/garments/:id
func (h *GarmentHandler) UpdateGarment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid garment ID")
		return
	}

	var req services.UpdateGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Error updating garment: %v", err))
		return
	}

	garment, err := h.garmentService.Update(id, &req)
	if err != nil {
		h.respondError(c, err, "updating garment")
		return
	}

	utils.SuccessResponse(c, "Garment updated successfully", gin.H{"garment": garment})
}

// DELETE /api/garments/:id
func (h *GarmentHandler) DeleteGarment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid garment ID")
		return
	}

	if err := h.garmentService.Delete(id); err != nil {
		h.respondError(c, err, "deleting garment")
		return
	}

	utils.SuccessResponse(c, "Garment deleted successfully", nil)
}

// GET /api/garments/stats
func (h *GarmentHandler) GetGarmentStats(c *gin.Context) {
	stats, err := h.garmentService.Stats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *GarmentHandler) respondError(c *gin.Context, err error, action string) {
	switch {
	case err == services.ErrNotFound:
		utils.NotFoundResponse(c, "Garment not found")
	case services.IsValidationError(err) || services.IsConstraintError(err):
		utils.BadRequestResponse(c, fmt.Sprintf("Error %s: %v", action, err))
	default:
		utils.InternalErrorResponse(c, fmt.Sprintf("Error %s: %v", action, err))
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
