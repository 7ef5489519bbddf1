package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a request DTO's `validate` tags.
func Validate(s any) error {
	return validate.Struct(s)
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
