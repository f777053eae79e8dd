package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MenuFoodItem is the join record putting a MenuItem on a Menu at a price.
// A (menu, menu_item) pair appears at most once.
type MenuFoodItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MenuID     uint      `gorm:"not null;uniqueIndex:idx_menu_food_items_menu_item" json:"menu_id"`
	Menu       Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_menu_food_items_menu_item" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_item"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (mfi *MenuFoodItem) BeforeSave(tx *gorm.DB) error {
	if mfi.Price < 0 {
		return errors.New("price must be greater than or equal to 0")
	}
	return nil
}
