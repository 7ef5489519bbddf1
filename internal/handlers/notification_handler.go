package handlers

import (
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	stores *store.Stores
}

func NewNotificationHandler(stores *store.Stores) *NotificationHandler {
	return &NotificationHandler{stores: stores}
}

// List returns the caller's notifications, newest first, with an unread count.
// ?unread=true narrows to unread only.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	filters := []query.Filter{query.Eq("user_id", userID)}
	if c.Query("unread") == "true" {
		filters = append(filters, query.Eq("is_read", false))
	}

	notifications, err := h.stores.Notifications.List(c.UserContext(), query.Query{
		Filter: query.And(filters...),
		Orders: []query.Order{{Field: "created_at", Desc: true}},
		Page:   parsePage(c),
	})
	if err != nil {
		return fail(c, err)
	}

	unread, err := h.stores.Notifications.Count(c.UserContext(),
		query.And(query.Eq("user_id", userID), query.Eq("is_read", false)))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"notifications": notifications, "unread": unread})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	n, err := h.stores.Notifications.ByIDOrFail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if n.UserID != userID {
		return respond(c, fiber.StatusForbidden, "Not your notification")
	}

	if err := h.stores.Notifications.MarkRead(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"read": true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	n, err := h.stores.Notifications.MarkAllRead(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	n, err := h.stores.Notifications.ByIDOrFail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if n.UserID != userID {
		return respond(c, fiber.StatusForbidden, "Not your notification")
	}

	if err := h.stores.Notifications.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// ClearRead deletes every read notification of the caller.
func (h *NotificationHandler) ClearRead(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	n, err := h.stores.Notifications.DeleteMany(c.UserContext(),
		query.And(query.Eq("user_id", userID), query.Eq("is_read", true)))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}
