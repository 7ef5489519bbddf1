package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UIKit is a marketplace listing (a UI kit / design asset).
//
// Price is stored as text on purpose: currency formatting is an application
// concern and the column carries whatever the seller entered. Likes is a
// denormalized counter kept in step with the likes table by the engagement
// service; it is distinct from the Like relation itself.
type UIKit struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Price          string         `gorm:"size:50;not null" json:"price"`
	Author         string         `gorm:"size:255;not null" json:"author"`
	Category       string         `gorm:"size:100;not null;index" json:"category"`
	ImageSrc       string         `gorm:"type:text;not null" json:"image_src"`
	GoogleFileID   *string        `gorm:"size:255" json:"google_file_id,omitempty"`
	Color          *string        `gorm:"size:50" json:"color,omitempty"`
	Tags           datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Specifications datatypes.JSON `gorm:"type:jsonb" json:"specifications,omitempty"`
	Highlights     datatypes.JSON `gorm:"type:jsonb" json:"highlights,omitempty"`
	Showcase       datatypes.JSON `gorm:"type:jsonb" json:"showcase,omitempty"`
	Overview       *string        `gorm:"type:text" json:"overview,omitempty"`
	Downloads      int            `gorm:"not null;default:0" json:"downloads"`
	Likes          int            `gorm:"not null;default:0" json:"likes"`
	Rating         float64        `gorm:"not null;default:0" json:"rating"`
	CreatorID      *uint          `gorm:"index" json:"creator_id,omitempty"`
	FileType       *string        `gorm:"size:50" json:"file_type,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Listings outlive their creator: the FK nulls out on user deletion.
	Creator *User `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"creator,omitempty"`

	Payments      []Payment      `gorm:"foreignKey:UIKitID" json:"-"`
	LikeRows      []Like         `gorm:"foreignKey:UIKitID" json:"-"`
	Wishlists     []Wishlist     `gorm:"foreignKey:UIKitID" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:UIKitID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UIKitID" json:"-"`
}

func (UIKit) TableName() string {
	return "ui_kits"
}
