package models

import (
	"time"

	"gorm.io/gorm"
)

type Ingredient struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	UserID    uint           `json:"user_id" gorm:"not null;index:idx_ingredients_user_name"`
	Name      string         `json:"name" gorm:"not null;index:idx_ingredients_user_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
