package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/poppolabs/restaurant-catalog/models"
	"github.com/poppolabs/restaurant-catalog/services"
	"github.com/poppolabs/restaurant-catalog/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant

	if err := rc.DB.Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID returns one restaurant with its menus and their items.
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	idStr := c.Param("restaurant_id")
	id, _ := strconv.Atoi(idStr)

	var restaurant models.Restaurant
	if err := rc.DB.Preload("Menus.MenuFoodItems.MenuItem").First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// CreateRestaurant
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondValidationErrors(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// UpdateRestaurant
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	idStr := c.Param("restaurant_id")
	id, _ := strconv.Atoi(idStr)

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondValidationErrors(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// DeleteRestaurant removes the restaurant and, through the FK constraints,
// its menus and their item links.
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	idStr := c.Param("restaurant_id")
	id, _ := strconv.Atoi(idStr)

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	if err := rc.DB.Delete(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportRestaurantData ingests a nested restaurants/menus/items payload
// under the restaurant_data key and hands it to the import engine.
// 200 when the batch succeeded, 422 with the result log when it did not,
// 400 when the restaurant_data key is absent.
func (rc *RestaurantController) ImportRestaurantData(c *gin.Context) {
	var body struct {
		RestaurantData *services.ImportPayload `json:"restaurant_data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.RestaurantData == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing required parameter: restaurant_data"))
		return
	}

	importer := services.NewImporter(rc.DB)
	result := importer.Import(*body.RestaurantData)

	if result.Success {
		c.JSON(http.StatusOK, result)
	} else {
		c.JSON(http.StatusUnprocessableEntity, result)
	}
}
