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

type PaymentHandler struct {
	stores  *store.Stores
	service *services.PaymentService
}

func NewPaymentHandler(stores *store.Stores, service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{stores: stores, service: service}
}

func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	kitID, err := uuid.Parse(req.UIKitID)
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	payment, err := h.service.Record(c.UserContext(), userID, kitID, req.Amount, req.StripePaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrKitNotFound):
			return respond(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrDuplicateIntent):
			return respond(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrInvalidAmount):
			return badRequest(c, err.Error())
		}
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// SetStatus is the webhook/back-office hook that advances a payment through
// its lifecycle.
func (h *PaymentHandler) SetStatus(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid payment id")
	}

	var req dto.PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	payment, err := h.service.SetStatus(c.UserContext(), paymentID, models.PaymentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound):
			return respond(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			return respond(c, fiber.StatusConflict, err.Error())
		}
		return fail(c, err)
	}
	return c.JSON(payment)
}

// MyPayments lists the caller's purchase history, kit preloaded.
func (h *PaymentHandler) MyPayments(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	filters := []query.Filter{query.Eq("user_id", userID)}
	if status := c.Query("status"); status != "" {
		if !models.PaymentStatus(status).Valid() {
			return badRequest(c, "Unknown payment status")
		}
		filters = append(filters, query.Eq("status", status))
	}

	payments, err := h.stores.Payments.List(c.UserContext(), query.Query{
		Filter:  query.And(filters...),
		Orders:  []query.Order{{Field: "created_at", Desc: true}},
		Page:    parsePage(c),
		Include: []string{"kit"},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"payments": payments, "count": len(payments)})
}

// Revenue is the admin revenue report: per-status payment counts and sums.
func (h *PaymentHandler) Revenue(c *fiber.Ctx) error {
	rows, err := h.stores.Payments.GroupBy(c.UserContext(), store.GroupBySpec{
		By:     []string{"status"},
		Orders: []query.Order{{Field: "status"}},
		Agg: store.Aggregation{
			Count: true,
			Sum:   []string{"amount"},
			Avg:   []string{"amount"},
		},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"revenue": rows})
}
