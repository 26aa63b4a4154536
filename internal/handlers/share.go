package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wearlog/internal/services"
)

// ShareHandler serves the public read-only outfit view.
type ShareHandler struct {
	outfits *services.OutfitService
}

// NewShareHandler constructs ShareHandler.
func NewShareHandler(outfits *services.OutfitService) *ShareHandler {
	return &ShareHandler{outfits: outfits}
}

// ShareView resolves a share id. Missing and private outfits both render a
// bare message so nothing about the outfit's contents leaks.
func (h *ShareHandler) ShareView(c *fiber.Ctx) error {
	view, err := h.outfits.GetByShareID(c.Params("shareId"))
	if err != nil {
		if errors.Is(err, services.ErrOutfitNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}
		if errors.Is(err, services.ErrOutfitPrivate) {
			return fiber.NewError(fiber.StatusForbidden, "Private")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": view})
}
