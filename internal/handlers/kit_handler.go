package handlers

import (
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/models"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/query"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KitHandler struct {
	stores *store.Stores
}

func NewKitHandler(stores *store.Stores) *KitHandler {
	return &KitHandler{stores: stores}
}

// List supports ?category=, ?author=, ?search= (title substring),
// ?min_rating=, ?order=field:asc|desc (repeatable, comma-separated),
// ?skip=, ?take=, ?cursor= and ?include= (comma-separated relations).
func (h *KitHandler) List(c *fiber.Ctx) error {
	var filters []query.Filter
	if category := c.Query("category"); category != "" {
		filters = append(filters, query.Eq("category", category))
	}
	if author := c.Query("author"); author != "" {
		filters = append(filters, query.Eq("author", author))
	}
	if search := c.Query("search"); search != "" {
		filters = append(filters, query.Contains("title", search))
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		f, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			return badRequest(c, "min_rating must be a number")
		}
		filters = append(filters, query.Gte("rating", f))
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

	if include := c.Query("include"); include != "" {
		q.Include = strings.Split(include, ",")
	}

	kits, err := h.stores.Kits.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"kits": kits, "count": len(kits)})
}

func (h *KitHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}
	kit, err := h.stores.Kits.ByIDOrFail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(kit)
}

func (h *KitHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateKitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	kit := models.UIKit{
		Title:          req.Title,
		Price:          req.Price,
		Author:         req.Author,
		Category:       req.Category,
		ImageSrc:       req.ImageSrc,
		GoogleFileID:   req.GoogleFileID,
		Color:          req.Color,
		Tags:           datatypes.JSON(req.Tags),
		Specifications: datatypes.JSON(req.Specifications),
		Highlights:     datatypes.JSON(req.Highlights),
		Showcase:       datatypes.JSON(req.Showcase),
		Overview:       req.Overview,
		FileType:       req.FileType,
		CreatorID:      &userID,
	}
	if err := h.stores.Kits.Create(c.UserContext(), &kit); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(kit)
}

func (h *KitHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	kit, err := h.stores.Kits.ByIDOrFail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	isAdmin := middleware.CurrentRole(c) == string(models.RoleAdmin)
	if !isAdmin && (kit.CreatorID == nil || *kit.CreatorID != userID) {
		return respond(c, fiber.StatusForbidden, "Not the kit creator")
	}

	var req dto.UpdateKitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	changes := kitChanges(&req)
	if len(changes) == 0 {
		return badRequest(c, "No fields to update")
	}
	if err := h.stores.Kits.Update(c.UserContext(), id, changes); err != nil {
		return fail(c, err)
	}

	updated, err := h.stores.Kits.ByIDOrFail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

func (h *KitHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid kit id")
	}

	kit, err := h.stores.Kits.ByIDOrFail(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	isAdmin := middleware.CurrentRole(c) == string(models.RoleAdmin)
	if !isAdmin && (kit.CreatorID == nil || *kit.CreatorID != userID) {
		return respond(c, fiber.StatusForbidden, "Not the kit creator")
	}

	if err := h.stores.Kits.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// Stats reports catalog totals plus per-category buckets: kit count, average
// rating and total downloads.
func (h *KitHandler) Stats(c *fiber.Ctx) error {
	totals, err := h.stores.Kits.Aggregate(c.UserContext(), nil, store.Aggregation{
		Count: true,
		Avg:   []string{"rating"},
		Sum:   []string{"downloads", "likes"},
	})
	if err != nil {
		return fail(c, err)
	}

	rows, err := h.stores.Kits.GroupBy(c.UserContext(), store.GroupBySpec{
		By:     []string{"category"},
		Orders: []query.Order{{Field: "category"}},
		Agg: store.Aggregation{
			Count: true,
			Avg:   []string{"rating"},
			Sum:   []string{"downloads"},
		},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"totals": totals, "categories": rows})
}

func kitChanges(req *dto.UpdateKitRequest) map[string]any {
	changes := map[string]any{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.Author != nil {
		changes["author"] = *req.Author
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.ImageSrc != nil {
		changes["image_src"] = *req.ImageSrc
	}
	if req.GoogleFileID != nil {
		changes["google_file_id"] = *req.GoogleFileID
	}
	if req.Color != nil {
		changes["color"] = *req.Color
	}
	if req.Overview != nil {
		changes["overview"] = *req.Overview
	}
	if len(req.Tags) > 0 {
		changes["tags"] = datatypes.JSON(req.Tags)
	}
	if len(req.Specifications) > 0 {
		changes["specifications"] = datatypes.JSON(req.Specifications)
	}
	if len(req.Highlights) > 0 {
		changes["highlights"] = datatypes.JSON(req.Highlights)
	}
	if len(req.Showcase) > 0 {
		changes["showcase"] = datatypes.JSON(req.Showcase)
	}
	if req.Rating != nil {
		changes["rating"] = *req.Rating
	}
	if req.FileType != nil {
		changes["file_type"] = *req.FileType
	}
	return changes
}

func parsePage(c *fiber.Ctx) query.Page {
	skip, _ := strconv.Atoi(c.Query("skip", "0"))
	take, _ := strconv.Atoi(c.Query("take", "0"))
	return query.Page{Skip: skip, Take: take}
}

func parseOrders(raw string) ([]query.Order, error) {
	if raw == "" {
		return nil, nil
	}
	var orders []query.Order
	for _, part := range strings.Split(raw, ",") {
		field, dir, found := strings.Cut(part, ":")
		order := query.Order{Field: strings.TrimSpace(field)}
		if found {
			switch strings.ToLower(strings.TrimSpace(dir)) {
			case "asc":
			case "desc":
				order.Desc = true
			default:
				return nil, fiber.NewError(fiber.StatusBadRequest, "order direction must be asc or desc")
			}
		}
		orders = append(orders, order)
	}
	return orders, nil
}
