package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/wearlog/internal/services"
	"github.com/example/wearlog/internal/utils"
)

// OutfitHandler manages outfit creation and the home feed.
type OutfitHandler struct {
	outfits *services.OutfitService
}

// NewOutfitHandler constructs OutfitHandler.
func NewOutfitHandler(outfits *services.OutfitService) *OutfitHandler {
	return &OutfitHandler{outfits: outfits}
}

// CreateOutfitRequest is the create-outfit payload. ItemIDs reference
// existing catalog items.
type CreateOutfitRequest struct {
	Date      string   `json:"date" validate:"required"`
	Memo      *string  `json:"memo"`
	Tags      *string  `json:"tags"`
	ImageURL  *string  `json:"imageUrl"`
	PublicFlg bool     `json:"publicFlg"`
	ItemIDs   []string `json:"itemIds"`
}

// CreateOutfit records a new outfit and its item links.
func (h *OutfitHandler) CreateOutfit(c *fiber.Ctx) error {
	var payload CreateOutfitRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	itemIDs := make([]uuid.UUID, 0, len(payload.ItemIDs))
	for _, raw := range payload.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid item id: "+raw)
		}
		itemIDs = append(itemIDs, id)
	}

	outfit, err := h.outfits.Create(services.OutfitDraft{
		Date:      payload.Date,
		Memo:      payload.Memo,
		Tags:      payload.Tags,
		ImageURL:  payload.ImageURL,
		PublicFlg: payload.PublicFlg,
		ItemIDs:   itemIDs,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"ok":       true,
		"outfitId": outfit.ID,
		"shareId":  outfit.ShareID,
	})
}

// ListOutfits returns the paginated newest-first outfit feed.
func (h *OutfitHandler) ListOutfits(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	outfits, total, err := h.outfits.ListRecent(pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    outfits,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
