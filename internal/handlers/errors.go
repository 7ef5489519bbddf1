package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
)

// fail translates the store error taxonomy to HTTP; anything unmapped is a
// 500 with a generic body.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "Already exists")
	case errors.Is(err, store.ErrForeignKey):
		return respond(c, fiber.StatusConflict, "Referenced record does not exist")
	case errors.Is(err, store.ErrInvalidQuery):
		return respond(c, fiber.StatusBadRequest, err.Error())
	default:
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return respond(c, fiber.StatusBadRequest, message)
}
