package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wearlog/internal/models"
	"github.com/example/wearlog/internal/services"
	"github.com/example/wearlog/internal/utils"
)

// CatalogHandler manages catalog item creation and search.
type CatalogHandler struct {
	catalog     *services.CatalogService
	searchLimit int
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService, searchLimit int) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, searchLimit: searchLimit}
}

// CreateItemRequest is the create-item payload.
type CreateItemRequest struct {
	Brand    string  `json:"brand" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Category *string `json:"category"`
}

// CreateItem upserts the brand and the item, returning the candidate shape
// the picker consumes.
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var payload CreateItemRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	brand, err := h.catalog.UpsertBrand(payload.Brand)
	if err != nil {
		return mapServiceError(err)
	}

	item, err := h.catalog.UpsertItem(brand.ID, payload.Name, payload.Category)
	if err != nil {
		return mapServiceError(err)
	}

	candidate := models.Candidate{
		ID:        item.ID,
		BrandName: brand.Name,
		ItemName:  item.Name,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "item": candidate})
}

// SearchItems returns catalog candidates matching q, or the recent feed when
// q is empty.
func (h *CatalogHandler) SearchItems(c *fiber.Ctx) error {
	candidates, err := h.catalog.Search(c.Query("q"), h.searchLimit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "items": candidates})
}

// mapServiceError converts validation failures to 400s and lets store errors
// propagate to the default 500 handler with the raw message.
func mapServiceError(err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	}
	return err
}
