package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment records one purchase of one kit by one user.
// StripePaymentIntentID correlates with the payment gateway; Postgres keeps
// it unique across non-null values only, so gateway-less rows can coexist.
type Payment struct {
	ID                    uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Amount                float64       `gorm:"not null" json:"amount"`
	Status                PaymentStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	StripePaymentIntentID *string       `gorm:"size:255;uniqueIndex" json:"stripe_payment_intent_id,omitempty"`
	UserID                uint          `gorm:"not null;index" json:"user_id"`
	UIKitID               uuid.UUID     `gorm:"column:ui_id;type:uuid;not null;index" json:"ui_id"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	UIKit UIKit `gorm:"foreignKey:UIKitID;constraint:OnDelete:CASCADE" json:"-"`
}
