package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is scoped to its owner. The (user_id, name) index is intentionally
// non-unique: get-or-create keeps names unique per owner in practice.
type Tag struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	UserID    uint           `json:"user_id" gorm:"not null;index:idx_tags_user_name"`
	Name      string         `json:"name" gorm:"not null;index:idx_tags_user_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
