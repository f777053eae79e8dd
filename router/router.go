package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/poppolabs/restaurant-catalog/controllers"
	"github.com/poppolabs/restaurant-catalog/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	restaurantCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	itemCtrl := controllers.NewMenuItemController(db)
	exportCtrl := controllers.NewCatalogExportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// RESTAURANTS
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
	r.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)

	// Bulk import of nested restaurant data
	r.POST("/restaurants/import", restaurantCtrl.ImportRestaurantData)

	// MENUS
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	r.POST("/menus/:menu_id/items", menuCtrl.AddItemToMenu)

	// MENU ITEMS
	r.GET("/menu-items", itemCtrl.GetAllMenuItems)
	r.POST("/menu-items", itemCtrl.CreateMenuItem)
	r.GET("/menu-items/:item_id", itemCtrl.GetMenuItemByID)
	r.PATCH("/menu-items/:item_id", itemCtrl.UpdateMenuItem)
	r.DELETE("/menu-items/:item_id", itemCtrl.DeleteMenuItem)

	// EXPORT
	r.GET("/catalog/export", exportCtrl.ExportCatalog)

	return r
}
