package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Menus       []Menu    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menus,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("restaurant name can't be blank")
	}
	return nil
}
