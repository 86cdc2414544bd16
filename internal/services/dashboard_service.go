// internal/services/dashboard_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rabateks/dpp-backend/internal/models"
)

// recentLimit is how many of the latest garments and orders appear on the
// dashboard.
const recentLimit = 5

type DashboardService struct {
	db *gorm.DB
}

// DashboardOverview is the read model behind the dashboard page. It is
// recomputed from storage on every call; nothing here is cached.
type DashboardOverview struct {
	Stats          models.DashboardStats    `json:"stats"`
	Modules        []models.DashboardModule `json:"modules"`
	RecentGarments []models.Garment         `json:"recent_garments"`
	RecentOrders   []models.Order           `json:"recent_orders"`
	TotalGarments  int64                    `json:"total_garments"`
	TotalOrders    int64                    `json:"total_orders"`
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats reads the singleton snapshot row. The row is seeded at startup, so a
// missing row is treated as a storage fault rather than lazily recreated.
func (s *DashboardService) Stats() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.db.First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dashboard stats not seeded")
		}
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return &stats, nil
}

func (s *DashboardService) Modules() ([]models.DashboardModule, error) {
	var modules []models.DashboardModule
	if err := s.db.Find(&modules).Error; err != nil {
		return nil, fmt.Errorf("failed to list dashboard modules: %w", err)
	}
	return modules, nil
}

func (s *DashboardService) Overview() (*DashboardOverview, error) {
	stats, err := s.Stats()
	if err != nil {
		return nil, err
	}

	modules, err := s.Modules()
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		Stats:   *stats,
		Modules: modules,
	}

	if err := s.db.Order("created_date DESC").Limit(recentLimit).Find(&overview.RecentGarments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent garments: %w", err)
	}
	if err := s.db.Order("created_date DESC").Limit(recentLimit).Find(&overview.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}

	if err := s.db.Model(&models.Garment{}).Count(&overview.TotalGarments).Error; err != nil {
		return nil, fmt.Errorf("failed to count garments: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&overview.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return overview, nil
}
