package dto

import (
	"encoding/json"
)

type CreateKitRequest struct {
	Title          string          `json:"title" validate:"required,max=255"`
	Price          string          `json:"price" validate:"required,max=50"`
	Author         string          `json:"author" validate:"required,max=255"`
	Category       string          `json:"category" validate:"required,max=100"`
	ImageSrc       string          `json:"image_src" validate:"required"`
	GoogleFileID   *string         `json:"google_file_id"`
	Color          *string         `json:"color"`
	Tags           json.RawMessage `json:"tags"`
	Specifications json.RawMessage `json:"specifications"`
	Highlights     json.RawMessage `json:"highlights"`
	Showcase       json.RawMessage `json:"showcase"`
	Overview       *string         `json:"overview"`
	FileType       *string         `json:"file_type"`
}

type UpdateKitRequest struct {
	Title          *string         `json:"title"`
	Price          *string         `json:"price"`
	Author         *string         `json:"author"`
	Category       *string         `json:"category"`
	ImageSrc       *string         `json:"image_src"`
	GoogleFileID   *string         `json:"google_file_id"`
	Color          *string         `json:"color"`
	Tags           json.RawMessage `json:"tags"`
	Specifications json.RawMessage `json:"specifications"`
	Highlights     json.RawMessage `json:"highlights"`
	Showcase       json.RawMessage `json:"showcase"`
	Overview       *string         `json:"overview"`
	Rating         *float64        `json:"rating"`
	FileType       *string         `json:"file_type"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type RecordPaymentRequest struct {
	UIKitID               string  `json:"ui_id" validate:"required,uuid4"`
	Amount                float64 `json:"amount" validate:"required,gt=0"`
	StripePaymentIntentID *string `json:"stripe_payment_intent_id"`
}

type PaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
}
