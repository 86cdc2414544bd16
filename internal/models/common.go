// internal/models/common.go
package models

// OrderStatus is the lifecycle state of a production order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ModuleStatus is the operational state of a dashboard module descriptor.
type ModuleStatus string

const (
	ModuleStatusActive      ModuleStatus = "active"
	ModuleStatusOptimizing  ModuleStatus = "optimizing"
	ModuleStatusMaintenance ModuleStatus = "maintenance"
)
