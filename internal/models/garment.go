// internal/models/garment.go
package models

import "time"

// Garment is a manufactured product batch tracked by the garment DPP.
type Garment struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Country             string    `json:"country" gorm:"size:100;not null"`
	ProductionFacility  string    `json:"production_facility" gorm:"size:200;not null"`
	PONumber            string    `json:"po_number" gorm:"size:50;not null;uniqueIndex"`
	StyleName           string    `json:"style_name" gorm:"size:100;not null"`
	ProductType         string    `json:"product_type" gorm:"size:100;not null"`
	FabricType          string    `json:"fabric_type" gorm:"size:100;not null"`
	FabricName          string    `json:"fabric_name" gorm:"size:100"`
	FabricConstruction  string    `json:"fabric_construction" gorm:"size:100"`
	FabricWeight        float64   `json:"fabric_weight"` // grams
	Quantity            int       `json:"quantity" gorm:"not null"`
	CarbonFootprint     float64   `json:"carbon_footprint" gorm:"default:0"` // kg CO2
	SustainabilityScore int       `json:"sustainability_score" gorm:"default:50"`
	CreatedDate         time.Time `json:"created_date" gorm:"autoCreateTime"`
	UpdatedDate         time.Time `json:"updated_date" gorm:"autoUpdateTime"`
}

// GarmentStats is the aggregate view over the garments table. Averages and
// sums are rounded to two decimals and zero-valued when the table is empty.
type GarmentStats struct {
	TotalCount    int64   `json:"total_count"`
	TotalQuantity int64   `json:"total_quantity"`
	UniqueStyles  int64   `json:"unique_styles"`
	AvgWeight     float64 `json:"avg_weight"`
	TotalCarbon   float64 `json:"total_carbon"`
}
