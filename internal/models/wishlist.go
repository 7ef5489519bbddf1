package models

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist links a user to a kit they want. At most one row per (user, kit).
type Wishlist struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index;uniqueIndex:wishlists_user_kit_key" json:"user_id"`
	UIKitID   uuid.UUID `gorm:"column:ui_id;type:uuid;not null;index;uniqueIndex:wishlists_user_kit_key" json:"ui_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	UIKit UIKit `gorm:"foreignKey:UIKitID;constraint:OnDelete:CASCADE" json:"-"`
}
