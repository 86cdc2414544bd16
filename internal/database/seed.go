// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/rabateks/dpp-backend/internal/models"
)

// defaultStats are the seed values for the singleton dashboard snapshot.
var defaultStats = models.DashboardStats{
	ActiveDPPs:             15,
	ManufacturingProcesses: 7,
	TotalCO2Monthly:        156.8,
	MonthlyOperations:      1200000,
}

var defaultModules = []models.DashboardModule{
	{Name: "Fibre DPP", Description: "Fiber traceability and sustainability", Icon: "fas fa-seedling", URLPath: "/fibre", Color: "success"},
	{Name: "Yarn DPP", Description: "Yarn production and quality tracking", Icon: "fas fa-thread", URLPath: "/yarn", Color: "info"},
	{Name: "Fabric DPP", Description: "Fabric manufacturing and properties", Icon: "fas fa-cut", URLPath: "/fabric", Color: "warning"},
	{Name: "Garment DPP", Description: "Complete garment lifecycle tracking", Icon: "fas fa-tshirt", URLPath: "/garment", Color: "primary"},
	{Name: "Chemical & Dyes", Description: "Chemical usage and safety tracking", Icon: "fas fa-flask", URLPath: "/chemicals", Color: "danger"},
	{Name: "Energy & Utilities", Description: "Energy consumption monitoring", Icon: "fas fa-bolt", URLPath: "/energy", Color: "warning"},
	{Name: "Finishing", Description: "Finishing processes and quality", Icon: "fas fa-magic", URLPath: "/finishing", Color: "info"},
	{Name: "IT DPP", Description: "IT infrastructure and digital tracking", Icon: "fas fa-laptop", URLPath: "/it", Color: "dark"},
	{Name: "Logistics", Description: "Supply chain and logistics management", Icon: "fas fa-truck", URLPath: "/logistics", Color: "success"},
	{Name: "Office DPP", Description: "Office operations and administration", Icon: "fas fa-building", URLPath: "/office", Color: "secondary"},
	{Name: "Office Supplies", Description: "Office supplies and waste management", Icon: "fas fa-paperclip", URLPath: "/supplies", Color: "info"},
	{Name: "Order Delivery", Description: "Order processing and delivery tracking", Icon: "fas fa-shipping-fast", URLPath: "/orders", Color: "primary"},
	{Name: "Packaging", Description: "Packaging materials and sustainability", Icon: "fas fa-box", URLPath: "/packaging", Color: "warning"},
	{Name: "Retail Distribution", Description: "Retail and distribution management", Icon: "fas fa-store", URLPath: "/retail", Color: "success"},
	{Name: "Transport DPP", Description: "Transportation and carbon footprint", Icon: "fas fa-car", URLPath: "/transport", Color: "danger"},
}

// SeedInitialData is run once at startup and is idempotent: the module
// reference rows and the stats singleton are only created when absent.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var moduleCount int64
	if err := db.Model(&models.DashboardModule{}).Count(&moduleCount).Error; err != nil {
		return fmt.Errorf("failed to count dashboard modules: %w", err)
	}

	if moduleCount == 0 {
		modules := make([]models.DashboardModule, len(defaultModules))
		copy(modules, defaultModules)
		if err := WithTransaction(db, func(tx *gorm.DB) error {
			return tx.Create(&modules).Error
		}); err != nil {
			return fmt.Errorf("failed to seed dashboard modules: %w", err)
		}
		log.Printf("Seeded %d dashboard modules", len(modules))
	}

	if err := EnsureStatsSeeded(db); err != nil {
		return err
	}

	log.Println("Initial data seeding completed")
	return nil
}

// EnsureStatsSeeded creates the DashboardStats singleton with its seed values
// if no row exists yet.
func EnsureStatsSeeded(db *gorm.DB) error {
	var statsCount int64
	if err := db.Model(&models.DashboardStats{}).Count(&statsCount).Error; err != nil {
		return fmt.Errorf("failed to count dashboard stats: %w", err)
	}

	if statsCount == 0 {
		stats := defaultStats
		if err := WithTransaction(db, func(tx *gorm.DB) error {
			return tx.Create(&stats).Error
		}); err != nil {
			return fmt.Errorf("failed to seed dashboard stats: %w", err)
		}
		log.Println("Seeded dashboard stats singleton")
	}

	return nil
}
