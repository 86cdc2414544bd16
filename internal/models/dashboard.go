// internal/models/dashboard.go
package models

import "time"

// DashboardModule is a reference-data descriptor for one DPP category card on
// the dashboard. Seeded once at startup, read-mostly afterwards.
type DashboardModule struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"size:100;not null"`
	Description  string       `json:"description" gorm:"type:text"`
	Icon         string       `json:"icon" gorm:"size:50"`
	URLPath      string       `json:"url_path" gorm:"size:200"`
	Color        string       `json:"color" gorm:"size:20"`
	Status       ModuleStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	Metric1Label string       `json:"metric1_label" gorm:"size:50"`
	Metric1Value string       `json:"metric1_value" gorm:"size:20"`
	Metric2Label string       `json:"metric2_label" gorm:"size:50"`
	Metric2Value string       `json:"metric2_value" gorm:"size:20"`
	Metric3Label string       `json:"metric3_label" gorm:"size:50"`
	Metric3Value string       `json:"metric3_value" gorm:"size:20"`
	CreatedDate  time.Time    `json:"-" gorm:"autoCreateTime"`
}

// DashboardStats is the singleton snapshot row backing the dashboard header.
// Exactly one row exists after seeding.
type DashboardStats struct {
	ID                     uint      `json:"-" gorm:"primaryKey"`
	ActiveDPPs             int       `json:"active_dpps" gorm:"default:0"`
	ManufacturingProcesses int       `json:"manufacturing_processes" gorm:"default:0"`
	TotalCO2Monthly        float64   `json:"total_co2_monthly" gorm:"default:0"` // kg CO2
	MonthlyOperations      float64   `json:"monthly_operations" gorm:"default:0"`
	LastUpdated            time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}
