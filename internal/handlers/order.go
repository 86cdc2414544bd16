// internal/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabateks/dpp-backend/internal/services"
	"github.com/rabateks/dpp-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		h.respondError(c, err, "fetching order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Error creating order: %v", err))
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		h.respondError(c, err, "creating order")
		return
	}

	utils.CreatedResponse(c, "Order created successfully", gin.H{"order": order})
}

type createRandomOrdersRequest struct {
	Count int `json:"count"`
}

// POST /api/orders/random
func (h *OrderHandler) CreateRandomOrders(c *gin.Context) {
	req := createRandomOrdersRequest{Count: 1}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Error creating random orders: %v", err))
		return
	}

	orders, err := h.orderService.CreateRandom(req.Count)
	if err != nil {
		h.respondError(c, err, "creating random orders")
		return
	}

	utils.CreatedResponse(c, fmt.Sprintf("%d random orders created successfully", len(orders)), gin.H{"orders": orders})
}

// PUT /api/orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID")
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Error updating order: %v", err))
		return
	}

	order, err := h.orderService.Update(id, &req)
	if err != nil {
		h.respondError(c, err, "updating order")
		return
	}

	utils.SuccessResponse(c, "Order updated successfully", gin.H{"order": order})
}

// DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID")
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		h.respondError(c, err, "deleting order")
		return
	}

	utils.SuccessResponse(c, "Order deleted successfully", nil)
}

// POST /api/orders/bulk-delete
func (h *OrderHandler) BulkDeleteOrders(c *gin.Context) {
	deleted, err := h.orderService.DeleteAll()
	if err != nil {
		h.respondError(c, err, "deleting orders")
		return
	}

	utils.SuccessResponse(c, fmt.Sprintf("%d orders deleted successfully", deleted), gin.H{"deleted_count": deleted})
}

// GET /api/orders/stats
func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	counts, err := h.orderService.StatusCounts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *OrderHandler) respondError(c *gin.Context, err error, action string) {
	switch {
	case err == services.ErrNotFound:
		utils.NotFoundResponse(c, "Order not found")
	case services.IsValidationError(err) || services.IsConstraintError(err):
		utils.BadRequestResponse(c, fmt.Sprintf("Error %s: %v", action, err))
	default:
		utils.InternalErrorResponse(c, fmt.Sprintf("Error %s: %v", action, err))
	}
}
