package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
)

// UserHandler is the admin user-management surface plus the caller's own
// profile endpoint.
type UserHandler struct {
	stores *store.Stores
}

func NewUserHandler(stores *store.Stores) *UserHandler {
	return &UserHandler{stores: stores}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := h.stores.Users.ByIDOrFail(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toUserResponse(user))
}

// List supports ?role=, ?status=, ?search= (name or email substring) plus the
// shared order/skip/take/cursor parameters.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var filters []query.Filter
	if role := c.Query("role"); role != "" {
		filters = append(filters, query.Eq("role", role))
	}
	if status := c.Query("status"); status != "" {
		filters = append(filters, query.Eq("status", status))
	}
	if search := c.Query("search"); search != "" {
		filters = append(filters, query.Or(
			query.Contains("full_name", search),
			query.Contains("email", search),
		))
	}

	q := query.Query{
		Page:   parsePage(c),
		Cursor: c.Query("cursor"),
	}
	if len(filters) > 0 {
		q.Filter = query.And(filters...)
	}
	orders, err := parseOrders(c.Query("order"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	q.Orders = orders

	users, err := h.stores.Users.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}

	total, err := h.stores.Users.Count(c.UserContext(), q.Filter)
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"users": out, "total": total})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	user, err := h.stores.Users.ByIDOrFail(c.UserContext(), uint(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toUserResponse(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	changes := map[string]any{}
	if req.FullName != nil {
		changes["full_name"] = *req.FullName
	}
	if req.Role != nil {
		changes["role"] = *req.Role
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if len(changes) == 0 {
		return badRequest(c, "No fields to update")
	}

	if err := h.stores.Users.Update(c.UserContext(), uint(id), changes); err != nil {
		return fail(c, err)
	}
	user, err := h.stores.Users.ByIDOrFail(c.UserContext(), uint(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toUserResponse(user))
}

// SetStatusBulk flips the status of a batch of accounts in one statement.
func (h *UserHandler) SetStatusBulk(c *fiber.Ctx) error {
	var req dto.BulkUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	ids := make([]any, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		ids = append(ids, id)
	}
	n, err := h.stores.Users.UpdateMany(c.UserContext(),
		query.In("user_id", ids...),
		map[string]any{"status": req.Status})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	if err := h.stores.Users.Delete(c.UserContext(), uint(id)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
		Status:   string(u.Status),
	}
}

// Stats reports account counts per role and status.
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	rows, err := h.stores.Users.GroupBy(c.UserContext(), store.GroupBySpec{
		By:     []string{"role", "status"},
		Orders: []query.Order{{Field: "role"}, {Field: "status"}},
		Agg:    store.Aggregation{Count: true},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"accounts": rows})
}
