// internal/models/order.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is a production/delivery request. OrderID is the human-readable code
// shown to operators; it is assigned at creation time and never changes.
type Order struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	OrderID            string      `json:"order_id" gorm:"size:50;not null;uniqueIndex"`
	Country            string      `json:"country" gorm:"size:100;not null"`
	Facility           string      `json:"facility" gorm:"size:200;not null"`
	PONumber           string      `json:"po_number" gorm:"size:50;not null"`
	StyleName          string      `json:"style_name" gorm:"size:100;not null"`
	ProductType        string      `json:"product_type" gorm:"size:100;not null"`
	FabricType         string      `json:"fabric_type" gorm:"size:100"`
	FabricName         string      `json:"fabric_name" gorm:"size:100"`
	FabricConstruction string      `json:"fabric_construction" gorm:"size:100"`
	FabricWeight       float64     `json:"fabric_weight"` // grams
	Quantity           int         `json:"quantity" gorm:"not null"`
	Status             OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedDate        time.Time   `json:"created_date" gorm:"autoCreateTime"`
	UpdatedDate        time.Time   `json:"updated_date" gorm:"autoUpdateTime"`
}

// NewOrderCode returns an order code of the form ORD-XXXXXXXX, the suffix
// being the first eight hex characters of a random UUID, uppercased.
func NewOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// OrderStatusCounts is the per-status breakdown shown on the orders page.
type OrderStatusCounts struct {
	TotalOrders      int64 `json:"total_orders"`
	PendingOrders    int64 `json:"pending_orders"`
	ProcessingOrders int64 `json:"processing_orders"`
	CompletedOrders  int64 `json:"completed_orders"`
}
