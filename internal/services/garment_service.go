// internal/services/garment_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/rabateks/dpp-backend/internal/database"
	"github.com/rabateks/dpp-backend/internal/models"
	"github.com/rabateks/dpp-backend/internal/utils"
)

type GarmentService struct {
	db *gorm.DB
}

type CreateGarmentRequest struct {
	Country             string  `json:"country" validate:"required"`
	ProductionFacility  string  `json:"production_facility" validate:"required"`
	PONumber            string  `json:"po_number" validate:"required"`
	StyleName           string  `json:"style_name" validate:"required"`
	ProductType         string  `json:"product_type" validate:"required"`
	FabricType          string  `json:"fabric_type" validate:"required"`
	FabricName          string  `json:"fabric_name"`
	FabricConstruction  string  `json:"fabric_construction"`
	FabricWeight        float64 `json:"fabric_weight" validate:"min=0"`
	Quantity            int     `json:"quantity" validate:"min=0"`
	CarbonFootprint     float64 `json:"carbon_footprint" validate:"min=0"`
	SustainabilityScore *int    `json:"sustainability_score" validate:"omitempty,min=0,max=100"`
}

type UpdateGarmentRequest struct {
	Country             *string  `json:"country"`
	ProductionFacility  *string  `json:"production_facility"`
	PONumber            *string  `json:"po_number"`
	StyleName           *string  `json:"style_name"`
	ProductType         *string  `json:"product_type"`
	FabricType          *string  `json:"fabric_type"`
	FabricName          *string  `json:"fabric_name"`
	FabricConstruction  *string  `json:"fabric_construction"`
	FabricWeight        *float64 `json:"fabric_weight" validate:"omitempty,min=0"`
	Quantity            *int     `json:"quantity" validate:"omitempty,min=0"`
	CarbonFootprint     *float64 `json:"carbon_footprint" validate:"omitempty,min=0"`
	SustainabilityScore *int     `json:"sustainability_score" validate:"omitempty,min=0,max=100"`
}

func NewGarmentService(db *gorm.DB) *GarmentService {
	return &GarmentService{db: db}
}

func (s *GarmentService) Create(req *CreateGarmentRequest) (*models.Garment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, firstValidationError(err)
	}

	garment := &models.Garment{
		Country:             req.Country,
		ProductionFacility:  req.ProductionFacility,
		PONumber:            req.PONumber,
		StyleName:           req.StyleName,
		ProductType:         req.ProductType,
		FabricType:          req.FabricType,
		FabricName:          req.FabricName,
		FabricConstruction:  req.FabricConstruction,
		FabricWeight:        req.FabricWeight,
		Quantity:            req.Quantity,
		CarbonFootprint:     req.CarbonFootprint,
		SustainabilityScore: 50,
	}
	if req.SustainabilityScore != nil {
		garment.SustainabilityScore = *req.SustainabilityScore
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(garment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConstraintError{Constraint: "po_number"}
		}
		return nil, fmt.Errorf("failed to create garment: %w", err)
	}

	return garment, nil
}

func (s *GarmentService) Get(id uint) (*models.Garment, error) {
	var garment models.Garment
	if err := s.db.First(&garment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch garment: %w", err)
	}
	return &garment, nil
}

// List returns every garment, most recently created first.
func (s *GarmentService) List() ([]models.Garment, error) {
	garments := []models.Garment{}
	if err := s.db.Order("created_date DESC").Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}
	return garments, nil
}

func (s *GarmentService) Update(id uint, req *UpdateGarmentRequest) (*models.Garment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, firstValidationError(err)
	}

	var garment models.Garment
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&garment, id).Error; err != nil {
			return err
		}
		applyGarmentUpdate(&garment, req)
		return tx.Save(&garment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConstraintError{Constraint: "po_number"}
		}
		return nil, fmt.Errorf("failed to update garment: %w", err)
	}

	return &garment, nil
}

func (s *GarmentService) Delete(id uint) error {
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var garment models.Garment
		if err := tx.First(&garment, id).Error; err != nil {
			return err
		}
		return tx.Delete(&garment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete garment: %w", err)
	}
	return nil
}

// Stats aggregates over the whole table. An empty table yields all-zero
// values rather than NULLs or an error.
func (s *GarmentService) Stats() (*models.GarmentStats, error) {
	var stats models.GarmentStats
	err := s.db.Model(&models.Garment{}).
		Select("COUNT(*) AS total_count, " +
			"COALESCE(SUM(quantity), 0) AS total_quantity, " +
			"COUNT(DISTINCT style_name) AS unique_styles, " +
			"COALESCE(AVG(fabric_weight), 0) AS avg_weight, " +
			"COALESCE(SUM(carbon_footprint), 0) AS total_carbon").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute garment stats: %w", err)
	}

	stats.AvgWeight = round2(stats.AvgWeight)
	stats.TotalCarbon = round2(stats.TotalCarbon)
	return &stats, nil
}

func (s *GarmentService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Garment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count garments: %w", err)
	}
	return count, nil
}

func applyGarmentUpdate(g *models.Garment, req *UpdateGarmentRequest) {
	if req.Country != nil {
		g.Country = *req.Country
	}
	if req.ProductionFacility != nil {
		g.ProductionFacility = *req.ProductionFacility
	}
	if req.PONumber != nil {
		g.PONumber = *req.PONumber
	}
	if req.StyleName != nil {
		g.StyleName = *req.StyleName
	}
	if req.ProductType != nil {
		g.ProductType = *req.ProductType
	}
	if req.FabricType != nil {
		g.FabricType = *req.FabricType
	}
	if req.FabricName != nil {
		g.FabricName = *req.FabricName
	}
	if req.FabricConstruction != nil {
		g.FabricConstruction = *req.FabricConstruction
	}
	if req.FabricWeight != nil {
		g.FabricWeight = *req.FabricWeight
	}
	if req.Quantity != nil {
		g.Quantity = *req.Quantity
	}
	if req.CarbonFootprint != nil {
		g.CarbonFootprint = *req.CarbonFootprint
	}
	if req.SustainabilityScore != nil {
		g.SustainabilityScore = *req.SustainabilityScore
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// firstValidationError maps a validator error to the service error taxonomy.
func firstValidationError(err error) error {
	if fieldErrs := utils.GetValidationErrors(err); len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field, Message: fieldErrs[0].Message}
	}
	return &ValidationError{Message: err.Error()}
}
