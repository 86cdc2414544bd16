// internal/services/service_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rabateks/dpp-backend/internal/models"
)

// newTestDB opens an isolated in-memory database migrated to the current
// schema. Connections are capped at one so the in-memory store is shared.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Garment{},
		&models.Order{},
		&models.DashboardModule{},
		&models.DashboardStats{},
	))

	return db
}

func validGarmentRequest() *CreateGarmentRequest {
	return &CreateGarmentRequest{
		Country:            "Turkey",
		ProductionFacility: "Rabateks Textile Manufacturing",
		PONumber:           "PO-12345",
		StyleName:          "Style-1001",
		ProductType:        "T-Shirt",
		FabricType:         "Cotton",
		FabricName:         "Premium Cotton",
		FabricConstruction: "Jersey",
		FabricWeight:       180.5,
		Quantity:           1200,
		CarbonFootprint:    14.2,
	}
}

func validOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		Country:      "Vietnam",
		Facility:     "Global Textile Solutions",
		PONumber:     "PO-54321",
		StyleName:    "Style-2002",
		ProductType:  "Polo Shirt",
		FabricType:   "Cotton Blend",
		FabricWeight: 210.0,
		Quantity:     800,
	}
}
