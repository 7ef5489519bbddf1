package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifyPayment  NotificationType = "PAYMENT"
	NotifyComment  NotificationType = "COMMENT"
	NotifyLike     NotificationType = "LIKE"
	NotifyWishlist NotificationType = "WISHLIST"
	NotifySystem   NotificationType = "SYSTEM"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyPayment, NotifyComment, NotifyLike, NotifyWishlist, NotifySystem:
		return true
	}
	return false
}

// Notification is addressed to one recipient. UIKitID is nil for SYSTEM
// notifications that do not concern a listing.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type      NotificationType `gorm:"size:20;not null" json:"type"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	IsRead    bool             `gorm:"not null;default:false;index" json:"is_read"`
	UserID    uint             `gorm:"column:user_id;not null;index" json:"user_id"`
	UIKitID   *uuid.UUID       `gorm:"column:ui_id;type:uuid;index" json:"ui_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`

	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	UIKit *UIKit `gorm:"foreignKey:UIKitID;constraint:OnDelete:CASCADE" json:"-"`
}
