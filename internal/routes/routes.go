package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/wearlog/internal/config"
	"github.com/example/wearlog/internal/handlers"
	"github.com/example/wearlog/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	catalogService := services.NewCatalogService(db)
	outfitService := services.NewOutfitService(db, cfg.ShareIDLength, cfg.ShareIDAttempts)

	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.SearchLimit)
	outfitHandler := handlers.NewOutfitHandler(outfitService)
	shareHandler := handlers.NewShareHandler(outfitService)

	api := app.Group("/api")

	items := api.Group("/items")
	items.Get("/search", catalogHandler.SearchItems)
	items.Post("/create", catalogHandler.CreateItem)

	outfits := api.Group("/outfits")
	outfits.Get("/", outfitHandler.ListOutfits)
	outfits.Post("/create", outfitHandler.CreateOutfit)

	// Public share view
	app.Get("/s/:shareId", shareHandler.ShareView)
}
