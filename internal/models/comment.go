package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	UIKitID   uuid.UUID `gorm:"column:ui_id;type:uuid;not null;index" json:"ui_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	UIKit UIKit `gorm:"foreignKey:UIKitID;constraint:OnDelete:CASCADE" json:"-"`
}
