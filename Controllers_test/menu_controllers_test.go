package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/poppolabs/restaurant-catalog/controllers"
	"github.com/poppolabs/restaurant-catalog/models"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	router.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	router.POST("/menus/:menu_id/items", menuCtrl.AddItemToMenu)
	return router
}

func TestMenuCRUD(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	restaurant := models.Restaurant{Name: "Poppo's Cafe"}
	assert.NoError(t, db.Create(&restaurant).Error)

	// Create
	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          "lunch",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	data := createResp["data"].(map[string]interface{})
	menuID := int(data["id"].(float64))
	url := "/menus/" + strconv.Itoa(menuID)

	// Get by ID
	w = doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Update
	w = doJSON(t, router, "PATCH", url, map[string]interface{}{"name": "brunch"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete
	w = doJSON(t, router, "DELETE", url, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMenuNameScopedToRestaurant(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	first := models.Restaurant{Name: "Poppo's Cafe"}
	second := models.Restaurant{Name: "Casa del Poppo"}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Create(&second).Error)

	// Both restaurants can have a "lunch" menu
	w := doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"restaurant_id": first.ID, "name": "lunch",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"restaurant_id": second.ID, "name": "lunch",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// But the same restaurant cannot have two
	w = doJSON(t, router, "POST", "/menus", map[string]interface{}{
		"restaurant_id": first.ID, "name": "lunch",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMenuListFilterByRestaurant(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	first := models.Restaurant{Name: "Poppo's Cafe"}
	second := models.Restaurant{Name: "Casa del Poppo"}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Create(&second).Error)
	assert.NoError(t, db.Create(&models.Menu{RestaurantID: first.ID, Name: "lunch"}).Error)
	assert.NoError(t, db.Create(&models.Menu{RestaurantID: first.ID, Name: "dinner"}).Error)
	assert.NoError(t, db.Create(&models.Menu{RestaurantID: second.ID, Name: "lunch"}).Error)

	w := doJSON(t, router, "GET", "/menus?restaurant_id="+strconv.Itoa(int(first.ID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	menus := resp["data"].([]interface{})
	assert.Len(t, menus, 2)
}

func TestAddItemToMenu(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	restaurant := models.Restaurant{Name: "Poppo's Cafe"}
	assert.NoError(t, db.Create(&restaurant).Error)
	menu := models.Menu{RestaurantID: restaurant.ID, Name: "lunch"}
	assert.NoError(t, db.Create(&menu).Error)
	item := models.MenuItem{Name: "Burger"}
	assert.NoError(t, db.Create(&item).Error)

	url := "/menus/" + strconv.Itoa(int(menu.ID)) + "/items"

	// Attach with a price
	w := doJSON(t, router, "POST", url, map[string]interface{}{
		"menu_item_id": item.ID,
		"price":        9.00,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var link models.MenuFoodItem
	assert.NoError(t, db.Where("menu_id = ? AND menu_item_id = ?", menu.ID, item.ID).First(&link).Error)
	assert.Equal(t, 9.00, link.Price)

	// Same pair twice is a constraint violation
	w = doJSON(t, router, "POST", url, map[string]interface{}{
		"menu_item_id": item.ID,
		"price":        12.00,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Unknown item resolves to 404
	w = doJSON(t, router, "POST", url, map[string]interface{}{
		"menu_item_id": 999,
		"price":        5.00,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemToMenuRejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	router := setupMenuRouter(db)

	restaurant := models.Restaurant{Name: "Poppo's Cafe"}
	assert.NoError(t, db.Create(&restaurant).Error)
	menu := models.Menu{RestaurantID: restaurant.ID, Name: "lunch"}
	assert.NoError(t, db.Create(&menu).Error)
	item := models.MenuItem{Name: "Burger"}
	assert.NoError(t, db.Create(&item).Error)

	w := doJSON(t, router, "POST", "/menus/"+strconv.Itoa(int(menu.ID))+"/items", map[string]interface{}{
		"menu_item_id": item.ID,
		"price":        -1.00,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errs := resp["errors"].([]interface{})
	assert.Contains(t, errs[0], "greater than or equal to 0")
}
