package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MenuItem is unique by name across the whole catalog, not per menu.
// The same item can sit on many menus at different prices via MenuFoodItem.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (mi *MenuItem) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(mi.Name) == "" {
		return errors.New("menu item name can't be blank")
	}
	return nil
}
