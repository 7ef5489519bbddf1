package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/services"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EngagementHandler struct {
	stores  *store.Stores
	service *services.EngagementService
}

func NewEngagementHandler(stores *store.Stores, service *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{stores: stores, service: service}
}

func (h *EngagementHandler) ToggleLike(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	kitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	liked, err := h.service.ToggleLike(c.UserContext(), userID, kitID)
	if err != nil {
		if errors.Is(err, services.ErrKitNotFound) {
			return respond(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}

func (h *EngagementHandler) ToggleWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	kitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	wishlisted, err := h.service.ToggleWishlist(c.UserContext(), userID, kitID)
	if err != nil {
		if errors.Is(err, services.ErrKitNotFound) {
			return respond(c, fiber.StatusNotFound, err.Error())
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"wishlisted": wishlisted})
}

// MyLikes lists the caller's likes, kit preloaded, newest first.
func (h *EngagementHandler) MyLikes(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	likes, err := h.stores.Likes.List(c.UserContext(), query.Query{
		Filter:  query.Eq("user_id", userID),
		Orders:  []query.Order{{Field: "created_at", Desc: true}},
		Page:    parsePage(c),
		Include: []string{"kit"},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"likes": likes, "count": len(likes)})
}

func (h *EngagementHandler) MyWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	entries, err := h.stores.Wishlists.List(c.UserContext(), query.Query{
		Filter:  query.Eq("user_id", userID),
		Orders:  []query.Order{{Field: "created_at", Desc: true}},
		Page:    parsePage(c),
		Include: []string{"kit"},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"wishlist": entries, "count": len(entries)})
}
