// internal/services/garment_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabateks/dpp-backend/internal/models"
)

func TestGarmentService_Create(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	garment, err := svc.Create(validGarmentRequest())
	require.NoError(t, err)

	assert.NotZero(t, garment.ID)
	assert.Equal(t, "PO-12345", garment.PONumber)
	assert.Equal(t, 50, garment.SustainabilityScore, "score defaults to 50 when omitted")
	assert.False(t, garment.CreatedDate.IsZero())
	assert.False(t, garment.UpdatedDate.IsZero())
}

func TestGarmentService_Create_MissingRequiredField(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	req := validGarmentRequest()
	req.Country = ""

	_, err := svc.Create(req)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestGarmentService_Create_DuplicatePONumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewGarmentService(db)

	_, err := svc.Create(validGarmentRequest())
	require.NoError(t, err)

	dup := validGarmentRequest()
	dup.StyleName = "Style-9999"
	_, err = svc.Create(dup)
	require.Error(t, err)
	assert.True(t, IsConstraintError(err))

	// The failed insert must not leave partial state behind.
	var count int64
	require.NoError(t, db.Model(&models.Garment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGarmentService_Get_NotFound(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	_, err := svc.Get(4242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGarmentService_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewGarmentService(db)

	first := validGarmentRequest()
	first.PONumber = "PO-10001"
	second := validGarmentRequest()
	second.PONumber = "PO-10002"

	a, err := svc.Create(first)
	require.NoError(t, err)
	// Force distinct created_date values; autoCreateTime can otherwise land
	// in the same tick.
	require.NoError(t, db.Model(a).Update("created_date", time.Now().Add(-time.Hour)).Error)
	b, err := svc.Create(second)
	require.NoError(t, err)

	garments, err := svc.List()
	require.NoError(t, err)
	require.Len(t, garments, 2)
	assert.Equal(t, b.ID, garments[0].ID)
	assert.Equal(t, a.ID, garments[1].ID)
}

func TestGarmentService_Update_Partial(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	created, err := svc.Create(validGarmentRequest())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	quantity := 4000
	updated, err := svc.Update(created.ID, &UpdateGarmentRequest{Quantity: &quantity})
	require.NoError(t, err)

	assert.Equal(t, 4000, updated.Quantity)
	assert.Equal(t, created.Country, updated.Country)
	assert.Equal(t, created.PONumber, updated.PONumber)
	assert.Equal(t, created.StyleName, updated.StyleName)
	assert.Equal(t, created.FabricWeight, updated.FabricWeight)
	assert.Equal(t, created.CarbonFootprint, updated.CarbonFootprint)
	assert.Equal(t, created.SustainabilityScore, updated.SustainabilityScore)
	assert.True(t, updated.UpdatedDate.After(created.UpdatedDate))
}

func TestGarmentService_Update_NotFound(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	quantity := 10
	_, err := svc.Update(999, &UpdateGarmentRequest{Quantity: &quantity})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGarmentService_Delete(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	created, err := svc.Create(validGarmentRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGarmentService_Delete_NotFound(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	err := svc.Delete(123456)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGarmentService_Stats_EmptyTable(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.EqualValues(t, 0, stats.TotalCount)
	assert.EqualValues(t, 0, stats.TotalQuantity)
	assert.EqualValues(t, 0, stats.UniqueStyles)
	assert.EqualValues(t, 0, stats.AvgWeight)
	assert.EqualValues(t, 0, stats.TotalCarbon)
}

func TestGarmentService_Stats_Aggregates(t *testing.T) {
	svc := NewGarmentService(newTestDB(t))

	specs := []struct {
		po     string
		style  string
		weight float64
		qty    int
		carbon float64
	}{
		{"PO-20001", "Style-A", 150.0, 100, 10.111},
		{"PO-20002", "Style-A", 200.5, 200, 20.222},
		{"PO-20003", "Style-B", 190.0, 300, 5.5},
	}
	for _, spec := range specs {
		req := validGarmentRequest()
		req.PONumber = spec.po
		req.StyleName = spec.style
		req.FabricWeight = spec.weight
		req.Quantity = spec.qty
		req.CarbonFootprint = spec.carbon
		_, err := svc.Create(req)
		require.NoError(t, err)
	}

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalCount)
	assert.EqualValues(t, 600, stats.TotalQuantity)
	assert.EqualValues(t, 2, stats.UniqueStyles)
	assert.InDelta(t, 180.17, stats.AvgWeight, 0.001, "average rounded to 2 decimals")
	assert.InDelta(t, 35.83, stats.TotalCarbon, 0.001, "sum rounded to 2 decimals")
}
