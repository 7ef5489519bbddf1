package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type UserStatus string

const (
	StatusActive    UserStatus = "ACTIVE"
	StatusInactive  UserStatus = "INACTIVE"
	StatusSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusSuspended
}

// User is a marketplace account. PasswordHash is nil for Google-only accounts.
type User struct {
	ID           uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	FullName     string     `gorm:"size:255;not null" json:"full_name"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash *string    `gorm:"size:255" json:"-"`
	GoogleID     *string    `gorm:"size:255;uniqueIndex" json:"-"`
	Role         UserRole   `gorm:"size:20;not null;default:'CUSTOMER'" json:"role"`
	Status       UserStatus `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Payments      []Payment      `gorm:"foreignKey:UserID" json:"-"`
	Kits          []UIKit        `gorm:"foreignKey:CreatorID" json:"-"`
	Likes         []Like         `gorm:"foreignKey:UserID" json:"-"`
	Wishlists     []Wishlist     `gorm:"foreignKey:UserID" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}
