package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/poppolabs/restaurant-catalog/controllers"
	"github.com/poppolabs/restaurant-catalog/models"
	"github.com/poppolabs/restaurant-catalog/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Menu{},
		&models.MenuItem{},
		&models.MenuFoodItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupRestaurantRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	restaurantCtrl := controllers.NewRestaurantController(db)
	router.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	router.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	router.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	router.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
	router.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRestaurantCRUD(t *testing.T) {
	db := setupTestDB(t)
	router := setupRestaurantRouter(db)

	// Create
	w := doJSON(t, router, "POST", "/restaurants", map[string]interface{}{
		"name":        "Poppo's Cafe",
		"description": "Neighborhood diner",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	data, ok := createResp["data"].(map[string]interface{})
	assert.True(t, ok)
	idFloat, ok := data["id"].(float64)
	assert.True(t, ok)
	restaurantID := int(idFloat)

	url := "/restaurants/" + strconv.Itoa(restaurantID)

	// Get by ID
	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Update
	w = doJSON(t, router, "PATCH", url, map[string]interface{}{
		"description": "Updated description",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete
	w = doJSON(t, router, "DELETE", url, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Gone afterwards
	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestaurantValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupRestaurantRouter(db)

	// Blank name is rejected
	w := doJSON(t, router, "POST", "/restaurants", map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errs, ok := resp["errors"].([]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, errs)

	// Names are globally unique
	w = doJSON(t, router, "POST", "/restaurants", map[string]interface{}{"name": "Casa del Poppo"})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, "POST", "/restaurants", map[string]interface{}{"name": "Casa del Poppo"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupRestaurantRouter(db)

	w := doJSON(t, router, "GET", "/restaurants/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "DELETE", "/restaurants/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
