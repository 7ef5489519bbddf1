package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/services"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	stores  *store.Stores
	service *services.CommentService
}

func NewCommentHandler(stores *store.Stores, service *services.CommentService) *CommentHandler {
	return &CommentHandler{stores: stores, service: service}
}

// ListForKit returns a kit's comments, author preloaded, newest first.
func (h *CommentHandler) ListForKit(c *fiber.Ctx) error {
	kitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	comments, err := h.stores.Comments.List(c.UserContext(), query.Query{
		Filter:  query.Eq("ui_id", kitID.String()),
		Orders:  []query.Order{{Field: "created_at", Desc: true}},
		Page:    parsePage(c),
		Include: []string{"user"},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments, "count": len(comments)})
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	kitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	comment, err := h.service.Add(c.UserContext(), userID, kitID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrKitNotFound):
			return respond(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrEmptyComment):
			return badRequest(c, err.Error())
		}
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	comment, err := h.service.Update(c.UserContext(), userID, commentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			return respond(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNotCommentOwner):
			return respond(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, services.ErrEmptyComment):
			return badRequest(c, err.Error())
		}
		return fail(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}

	isAdmin := middleware.CurrentRole(c) == string(models.RoleAdmin)
	if err := h.service.Delete(c.UserContext(), userID, isAdmin, commentID); err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			return respond(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNotCommentOwner):
			return respond(c, fiber.StatusForbidden, err.Error())
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
