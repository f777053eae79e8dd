package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Menu struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_menus_restaurant_name" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	// Menu names repeat across restaurants (every place has a "lunch"),
	// so uniqueness is scoped to the owning restaurant.
	Name          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_menus_restaurant_name" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	MenuFoodItems []MenuFoodItem `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_food_items,omitempty"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

func (m *Menu) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("menu name can't be blank")
	}
	return nil
}
