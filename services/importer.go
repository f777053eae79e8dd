package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poppolabs/restaurant-catalog/models"
	"github.com/poppolabs/restaurant-catalog/utils"
	"gorm.io/gorm"
)

// itemListKeys are the recognized aliases for a menu's item list, checked
// in this order. The first key present in the payload wins.
var itemListKeys = []string{"menu_items", "dishes", "items", "food_items"}

type ImportPayload struct {
	Restaurants []RestaurantData `json:"restaurants"`
}

type RestaurantData struct {
	Name  string     `json:"name"`
	Menus []MenuData `json:"menus"`
}

type MenuData struct {
	Name  string
	Items []ItemData
}

// UnmarshalJSON resolves the item-list key aliases (see itemListKeys).
func (m *MenuData) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if nameRaw, ok := raw["name"]; ok {
		if err := json.Unmarshal(nameRaw, &m.Name); err != nil {
			return err
		}
	}
	for _, key := range itemListKeys {
		if itemsRaw, ok := raw[key]; ok {
			return json.Unmarshal(itemsRaw, &m.Items)
		}
	}
	return nil
}

type ItemData struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

const (
	LogSuccess = "success"
	LogWarning = "warning"
	LogFail    = "fail"
)

type ItemLog struct {
	Menu    string   `json:"menu"`
	Item    string   `json:"item"`
	Index   *int     `json:"index,omitempty"`
	Price   *float64 `json:"price,omitempty"`
	Result  string   `json:"result"`
	Message string   `json:"message"`
}

type ImportResult struct {
	Success      bool      `json:"success"`
	ItemLogs     []ItemLog `json:"item_logs"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

func (r *ImportResult) logSuccess(menuName, itemName string, price float64) {
	r.ItemLogs = append(r.ItemLogs, ItemLog{
		Menu:    menuName,
		Item:    itemName,
		Price:   &price,
		Result:  LogSuccess,
		Message: "Successfully added item to menu.",
	})
}

func (r *ImportResult) logWarning(menuName, itemName, message string, index int) {
	r.ItemLogs = append(r.ItemLogs, ItemLog{
		Menu:    menuName,
		Item:    itemName,
		Index:   &index,
		Result:  LogWarning,
		Message: message,
	})
	utils.InfoLogger.Printf("Import warning (ignored) for menu %s, item %s: %s", menuName, itemName, message)
}

func (r *ImportResult) logFailure(menuName, itemName, message string, index int) {
	r.Success = false
	r.ItemLogs = append(r.ItemLogs, ItemLog{
		Menu:    menuName,
		Item:    itemName,
		Index:   &index,
		Result:  LogFail,
		Message: message,
	})
	utils.InfoLogger.Printf("Import failure for menu %s, item %s: %s", menuName, itemName, message)
}

// Importer materializes a nested restaurants/menus/items payload into the
// catalog as one atomic batch. Entities are resolved by exact name match
// and reused when they already exist; nothing is normalized.
type Importer struct {
	DB *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{DB: db}
}

// Import walks the payload top to bottom inside a single transaction.
// Item-scoped problems (duplicate name within one list, item already on
// the menu, a MenuItem failing validation) are logged and skipped. A
// restaurant or menu that cannot be resolved, or a link that fails price
// validation, rolls the entire batch back, including rows already
// reported as success earlier in the same call.
func (imp *Importer) Import(payload ImportPayload) ImportResult {
	result := ImportResult{Success: true, ItemLogs: []ItemLog{}}

	err := imp.DB.Transaction(func(tx *gorm.DB) error {
		return imp.processRestaurants(tx, payload.Restaurants, &result)
	})
	if err != nil {
		result.Success = false
		result.ErrorMessage = fmt.Sprintf("Transaction failed: %s", err.Error())
	}

	return result
}

func (imp *Importer) processRestaurants(tx *gorm.DB, restaurants []RestaurantData, result *ImportResult) error {
	for _, restaurantData := range restaurants {
		var restaurant models.Restaurant
		err := tx.Where("name = ?", restaurantData.Name).First(&restaurant).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			restaurant = models.Restaurant{Name: restaurantData.Name}
			if err := tx.Create(&restaurant).Error; err != nil {
				return err
			}
			utils.InfoLogger.Printf("Created new Restaurant: %s", restaurant.Name)
		} else if err != nil {
			return err
		}

		if err := imp.processMenus(tx, &restaurant, restaurantData.Menus, result); err != nil {
			return err
		}
	}
	return nil
}

func (imp *Importer) processMenus(tx *gorm.DB, restaurant *models.Restaurant, menus []MenuData, result *ImportResult) error {
	for _, menuData := range menus {
		var menu models.Menu
		err := tx.Where("restaurant_id = ? AND name = ?", restaurant.ID, menuData.Name).First(&menu).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			menu = models.Menu{RestaurantID: restaurant.ID, Name: menuData.Name}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			utils.InfoLogger.Printf("Created new Menu: %s for %s", menu.Name, restaurant.Name)
		} else if err != nil {
			return err
		}

		if err := imp.processMenuItems(tx, &menu, menuData.Items, result); err != nil {
			return err
		}
	}
	return nil
}

func (imp *Importer) processMenuItems(tx *gorm.DB, menu *models.Menu, items []ItemData, result *ImportResult) error {
	// Names already handled for this menu in this call, to catch payloads
	// listing the same item twice in one list.
	processed := make(map[string]struct{}, len(items))

	for index, itemData := range items {
		if _, seen := processed[itemData.Name]; seen {
			result.logWarning(menu.Name, itemData.Name, "Duplicate item name in the same menu list. Skipping.", index)
			continue
		}
		processed[itemData.Name] = struct{}{}

		var menuItem models.MenuItem
		err := tx.Where("name = ?", itemData.Name).First(&menuItem).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			menuItem = models.MenuItem{Name: itemData.Name}
			if createErr := tx.Create(&menuItem).Error; createErr != nil {
				// Bad MenuItem: skip this entry, keep going with the rest.
				result.logFailure(menu.Name, itemData.Name,
					fmt.Sprintf("Failed to create MenuItem (validation error): %s", createErr.Error()), index)
				continue
			}
			utils.InfoLogger.Printf("Created new MenuItem: %s", menuItem.Name)
		} else if err != nil {
			return err
		}

		var existing models.MenuFoodItem
		err = tx.Where("menu_id = ? AND menu_item_id = ?", menu.ID, menuItem.ID).First(&existing).Error
		if err == nil {
			result.logFailure(menu.Name, itemData.Name, "Item already exists on this menu. Skipping.", index)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		foodItem := models.MenuFoodItem{
			MenuID:     menu.ID,
			MenuItemID: menuItem.ID,
			Price:      itemData.Price,
		}
		if createErr := tx.Create(&foodItem).Error; createErr != nil {
			// A bad link (e.g. negative price) is the one item-level error
			// that still aborts the whole batch.
			result.logFailure(menu.Name, itemData.Name,
				fmt.Sprintf("Failed to link item and set price (validation error): %s", createErr.Error()), index)
			return createErr
		}
		result.logSuccess(menu.Name, itemData.Name, itemData.Price)
	}
	return nil
}
