package models

import "time"

// AuthOtp is a short-lived email verification code. It is intentionally not
// foreign-keyed to users so a code can be issued before the account exists.
type AuthOtp struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Otp       string    `gorm:"size:6;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AuthOtp) TableName() string {
	return "auth_otps"
}
