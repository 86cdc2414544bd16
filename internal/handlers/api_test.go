// internal/handlers/api_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rabateks/dpp-backend/internal/config"
	"github.com/rabateks/dpp-backend/internal/database"
	"github.com/rabateks/dpp-backend/internal/models"
	"github.com/rabateks/dpp-backend/internal/router"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(
		&models.Garment{},
		&models.Order{},
		&models.DashboardModule{},
		&models.DashboardStats{},
	))
	suite.Require().NoError(database.SeedInitialData(db))

	cfg := &config.Config{
		Environment: "testing",
		App:         config.AppConfig{Company: "Rabateks", Version: "1.0.0"},
	}

	suite.db = db
	suite.router = router.Initialize(db, cfg, rand.New(rand.NewSource(1)))
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func garmentPayload(po string) map[string]interface{} {
	return map[string]interface{}{
		"country":             "Turkey",
		"production_facility": "Rabateks Textile Manufacturing",
		"po_number":           po,
		"style_name":          "Style-1001",
		"product_type":        "T-Shirt",
		"fabric_type":         "Cotton",
		"fabric_weight":       180.5,
		"quantity":            1200,
		"carbon_footprint":    12.4,
	}
}

func (suite *APITestSuite) TestCreateAndFetchGarment() {
	w := suite.request("POST", "/api/garments", garmentPayload("PO-11111"))
	suite.Equal(http.StatusCreated, w.Code)

	body := suite.decode(w)
	suite.True(body["success"].(bool))
	suite.Equal("Garment created successfully", body["message"])

	garment := body["garment"].(map[string]interface{})
	id := int(garment["id"].(float64))
	suite.Equal("PO-11111", garment["po_number"])
	suite.EqualValues(50, garment["sustainability_score"])
	suite.NotEmpty(garment["created_date"], "timestamps serialize as ISO-8601 strings")

	w = suite.request("GET", fmt.Sprintf("/api/garments/%d", id), nil)
	suite.Equal(http.StatusOK, w.Code)
	fetched := suite.decode(w)
	suite.Equal("PO-11111", fetched["po_number"])
}

func (suite *APITestSuite) TestCreateGarment_DuplicatePONumber() {
	w := suite.request("POST", "/api/garments", garmentPayload("PO-22222"))
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request("POST", "/api/garments", garmentPayload("PO-22222"))
	suite.Equal(http.StatusBadRequest, w.Code)

	body := suite.decode(w)
	suite.False(body["success"].(bool))
}

func (suite *APITestSuite) TestCreateGarment_MissingField() {
	payload := garmentPayload("PO-33333")
	delete(payload, "country")

	w := suite.request("POST", "/api/garments", payload)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestGetGarment_NotFound() {
	w := suite.request("GET", "/api/garments/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestDeleteGarment_NotFound() {
	w := suite.request("DELETE", "/api/garments/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestUpdateGarment_Partial() {
	w := suite.request("POST", "/api/garments", garmentPayload("PO-44444"))
	suite.Equal(http.StatusCreated, w.Code)
	garment := suite.decode(w)["garment"].(map[string]interface{})
	id := int(garment["id"].(float64))

	w = suite.request("PUT", fmt.Sprintf("/api/garments/%d", id), map[string]interface{}{"quantity": 999})
	suite.Equal(http.StatusOK, w.Code)

	updated := suite.decode(w)["garment"].(map[string]interface{})
	suite.EqualValues(999, updated["quantity"])
	suite.Equal("PO-44444", updated["po_number"])
}

func (suite *APITestSuite) TestGarmentStats_EmptyTable() {
	for _, path := range []string{"/api/garments/stats", "/garment/api/stats"} {
		w := suite.request("GET", path, nil)
		suite.Equal(http.StatusOK, w.Code)

		stats := suite.decode(w)
		suite.EqualValues(0, stats["total_count"])
		suite.EqualValues(0, stats["total_quantity"])
		suite.EqualValues(0, stats["unique_styles"])
		suite.EqualValues(0, stats["avg_weight"])
		suite.EqualValues(0, stats["total_carbon"])
	}
}

func (suite *APITestSuite) TestListGarments_EmptyArray() {
	w := suite.request("GET", "/api/garments", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", strings.TrimSpace(w.Body.String()))
}

func (suite *APITestSuite) TestCreateRandomOrders_ClampedAtFifty() {
	w := suite.request("POST", "/api/orders/random", map[string]interface{}{"count": 200})
	suite.Equal(http.StatusCreated, w.Code)

	body := suite.decode(w)
	orders := body["orders"].([]interface{})
	suite.Len(orders, 50)
	suite.Equal("50 random orders created successfully", body["message"])
}

func (suite *APITestSuite) TestCreateRandomOrders_NegativeCount() {
	w := suite.request("POST", "/api/orders/random", map[string]interface{}{"count": -3})
	suite.Equal(http.StatusCreated, w.Code)

	body := suite.decode(w)
	suite.Empty(body["orders"].([]interface{}))
	suite.Equal("0 random orders created successfully", body["message"])
}

func (suite *APITestSuite) TestOrderLifecycle() {
	w := suite.request("POST", "/api/orders", map[string]interface{}{
		"country":      "Vietnam",
		"facility":     "Global Textile Solutions",
		"po_number":    "PO-55555",
		"style_name":   "Style-2002",
		"product_type": "Polo Shirt",
		"quantity":     800,
	})
	suite.Equal(http.StatusCreated, w.Code)

	order := suite.decode(w)["order"].(map[string]interface{})
	id := int(order["id"].(float64))
	suite.Regexp(`^ORD-[A-Z0-9]{8}$`, order["order_id"])
	suite.Equal("pending", order["status"])

	w = suite.request("PUT", fmt.Sprintf("/api/orders/%d", id), map[string]interface{}{"status": "completed"})
	suite.Equal(http.StatusOK, w.Code)
	updated := suite.decode(w)["order"].(map[string]interface{})
	suite.Equal("completed", updated["status"])

	w = suite.request("DELETE", fmt.Sprintf("/api/orders/%d", id), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request("GET", fmt.Sprintf("/api/orders/%d", id), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestOrderUpdate_InvalidStatus() {
	w := suite.request("POST", "/api/orders/random", map[string]interface{}{"count": 1})
	suite.Equal(http.StatusCreated, w.Code)
	order := suite.decode(w)["orders"].([]interface{})[0].(map[string]interface{})
	id := int(order["id"].(float64))

	w = suite.request("PUT", fmt.Sprintf("/api/orders/%d", id), map[string]interface{}{"status": "shipped"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestBulkDeleteOrders() {
	w := suite.request("POST", "/api/orders/random", map[string]interface{}{"count": 5})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request("POST", "/api/orders/bulk-delete", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	suite.True(body["success"].(bool))
	suite.EqualValues(5, body["deleted_count"])
	suite.Equal("5 orders deleted successfully", body["message"])

	w = suite.request("GET", "/api/orders", nil)
	suite.Equal(http.StatusOK, w.Code)
	var orders []interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &orders))
	suite.Empty(orders)
}

func (suite *APITestSuite) TestGlobalStats() {
	w := suite.request("POST", "/api/garments", garmentPayload("PO-66666"))
	suite.Equal(http.StatusCreated, w.Code)
	w = suite.request("POST", "/api/orders/random", map[string]interface{}{"count": 3})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request("GET", "/api/stats", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	suite.True(body["success"].(bool))
	suite.EqualValues(1, body["total_garments"])
	suite.EqualValues(3, body["total_orders"])
	suite.Equal("connected", body["status"])
}

func (suite *APITestSuite) TestDashboardOverview() {
	w := suite.request("GET", "/api/dashboard", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	stats := body["stats"].(map[string]interface{})
	suite.EqualValues(15, stats["active_dpps"])
	suite.Len(body["modules"].([]interface{}), 15)
	suite.EqualValues(0, body["total_garments"])
	suite.EqualValues(0, body["total_orders"])
}

func (suite *APITestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil)
	suite.Equal(http.StatusOK, w.Code)

	body := suite.decode(w)
	assert.Equal(suite.T(), "healthy", body["status"])
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
