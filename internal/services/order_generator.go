// internal/services/order_generator.go
package services

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rabateks/dpp-backend/internal/models"
)

// Fixed enumerations sampled by the random order generator.
var (
	generatorCountries = []string{"Turkey", "Bangladesh", "Vietnam", "China", "India", "Pakistan"}

	generatorFacilities = []string{
		"Rabateks Textile Manufacturing",
		"Mango Apparel Facilities",
		"Global Textile Solutions",
		"Premium Garment Factory",
		"Sustainable Fashion Hub",
		"Modern Textile Complex",
	}

	generatorProductTypes = []string{"T-Shirt", "Polo Shirt", "Dress Shirt", "Casual Shirt", "Blouse", "Tank Top"}

	generatorFabricTypes = []string{"Cotton", "Polyester", "Cotton Blend", "Linen", "Viscose", "Modal"}

	generatorFabricNames = []string{"Premium Cotton", "Eco-Friendly Blend", "Organic Cotton", "Recycled Polyester", "Bamboo Fiber"}

	generatorConstructions = []string{"Jersey", "Poplin", "Twill", "Canvas", "Interlock", "Rib"}

	generatorStatuses = []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusCompleted,
	}
)

// SynthesizeOrder draws one plausible demo order from the fixed enumerations.
// The caller provides the random source so generation is reproducible under a
// seeded rand.
func SynthesizeOrder(rng *rand.Rand) *models.Order {
	return &models.Order{
		OrderID:            models.NewOrderCode(),
		Country:            pick(rng, generatorCountries),
		Facility:           pick(rng, generatorFacilities),
		PONumber:           fmt.Sprintf("PO-%d", 10000+rng.Intn(90000)),
		StyleName:          fmt.Sprintf("Style-%d", 1000+rng.Intn(9000)),
		ProductType:        pick(rng, generatorProductTypes),
		FabricType:         pick(rng, generatorFabricTypes),
		FabricName:         pick(rng, generatorFabricNames),
		FabricConstruction: pick(rng, generatorConstructions),
		FabricWeight:       round1(120 + rng.Float64()*180),
		Quantity:           100 + rng.Intn(4901),
		Status:             generatorStatuses[rng.Intn(len(generatorStatuses))],
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
