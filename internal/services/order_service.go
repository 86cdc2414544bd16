// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/rabateks/dpp-backend/internal/database"
	"github.com/rabateks/dpp-backend/internal/models"
	"github.com/rabateks/dpp-backend/internal/utils"
)

// MaxRandomOrders is the hard cap on a single batch of generated orders.
const MaxRandomOrders = 50

type OrderService struct {
	db  *gorm.DB
	rng *rand.Rand
}

type CreateOrderRequest struct {
	OrderID            string             `json:"order_id"`
	Country            string             `json:"country" validate:"required"`
	Facility           string             `json:"facility" validate:"required"`
	PONumber           string             `json:"po_number" validate:"required"`
	StyleName          string             `json:"style_name" validate:"required"`
	ProductType        string             `json:"product_type" validate:"required"`
	FabricType         string             `json:"fabric_type"`
	FabricName         string             `json:"fabric_name"`
	FabricConstruction string             `json:"fabric_construction"`
	FabricWeight       float64            `json:"fabric_weight" validate:"min=0"`
	Quantity           int                `json:"quantity" validate:"min=0"`
	Status             models.OrderStatus `json:"status" validate:"omitempty,oneof=pending processing completed cancelled"`
}

type UpdateOrderRequest struct {
	Country            *string             `json:"country"`
	Facility           *string             `json:"facility"`
	PONumber           *string             `json:"po_number"`
	StyleName          *string             `json:"style_name"`
	ProductType        *string             `json:"product_type"`
	FabricType         *string             `json:"fabric_type"`
	FabricName         *string             `json:"fabric_name"`
	FabricConstruction *string             `json:"fabric_construction"`
	FabricWeight       *float64            `json:"fabric_weight" validate:"omitempty,min=0"`
	Quantity           *int                `json:"quantity" validate:"omitempty,min=0"`
	Status             *models.OrderStatus `json:"status" validate:"omitempty,oneof=pending processing completed cancelled"`
}

// NewOrderService wires the order repository. The random source backs the
// demo order generator; tests pass a seeded rand for determinism.
func NewOrderService(db *gorm.DB, rng *rand.Rand) *OrderService {
	return &OrderService{db: db, rng: rng}
}

func (s *OrderService) Create(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, firstValidationError(err)
	}

	order := &models.Order{
		OrderID:            req.OrderID,
		Country:            req.Country,
		Facility:           req.Facility,
		PONumber:           req.PONumber,
		StyleName:          req.StyleName,
		ProductType:        req.ProductType,
		FabricType:         req.FabricType,
		FabricName:         req.FabricName,
		FabricConstruction: req.FabricConstruction,
		FabricWeight:       req.FabricWeight,
		Quantity:           req.Quantity,
		Status:             req.Status,
	}
	if order.OrderID == "" {
		order.OrderID = models.NewOrderCode()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConstraintError{Constraint: "order_id"}
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// CreateRandom synthesizes and persists up to MaxRandomOrders demo orders in
// one transaction. Counts above the cap are clamped, not rejected.
func (s *OrderService) CreateRandom(count int) ([]models.Order, error) {
	if count > MaxRandomOrders {
		count = MaxRandomOrders
	}
	if count < 0 {
		count = 0
	}

	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		orders = append(orders, *SynthesizeOrder(s.rng))
	}

	if len(orders) == 0 {
		return orders, nil
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(&orders).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create random orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

// List returns every order, most recently created first.
func (s *OrderService) List() ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.Order("created_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Update(id uint, req *UpdateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, firstValidationError(err)
	}

	var order models.Order
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		applyOrderUpdate(&order, req)
		return tx.Save(&order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &order, nil
}

func (s *OrderService) Delete(id uint) error {
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// DeleteAll removes every order in a single transaction and returns the
// number of rows removed.
func (s *OrderService) DeleteAll() (int64, error) {
	var deleted int64
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Count(&deleted).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Order{}).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}
	return deleted, nil
}

func (s *OrderService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// StatusCounts returns the per-status breakdown used on the orders page.
func (s *OrderService) StatusCounts() (*models.OrderStatusCounts, error) {
	var counts models.OrderStatusCounts
	err := s.db.Model(&models.Order{}).
		Select("COUNT(*) AS total_orders, "+
			"COUNT(*) FILTER (WHERE status = ?) AS pending_orders, "+
			"COUNT(*) FILTER (WHERE status = ?) AS processing_orders, "+
			"COUNT(*) FILTER (WHERE status = ?) AS completed_orders",
			models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusCompleted).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute order status counts: %w", err)
	}
	return &counts, nil
}

func applyOrderUpdate(o *models.Order, req *UpdateOrderRequest) {
	if req.Country != nil {
		o.Country = *req.Country
	}
	if req.Facility != nil {
		o.Facility = *req.Facility
	}
	if req.PONumber != nil {
		o.PONumber = *req.PONumber
	}
	if req.StyleName != nil {
		o.StyleName = *req.StyleName
	}
	if req.ProductType != nil {
		o.ProductType = *req.ProductType
	}
	if req.FabricType != nil {
		o.FabricType = *req.FabricType
	}
	if req.FabricName != nil {
		o.FabricName = *req.FabricName
	}
	if req.FabricConstruction != nil {
		o.FabricConstruction = *req.FabricConstruction
	}
	if req.FabricWeight != nil {
		o.FabricWeight = *req.FabricWeight
	}
	if req.Quantity != nil {
		o.Quantity = *req.Quantity
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
}
