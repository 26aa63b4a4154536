package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/wearlog/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	catalogService := services.NewCatalogService(db)
	outfitService := services.NewOutfitService(db, 10, 2)

	catalogHandler := NewCatalogHandler(catalogService, 30)
	outfitHandler := NewOutfitHandler(outfitService)
	shareHandler := NewShareHandler(outfitService)

	app := fiber.New()
	app.Get("/api/items/search", catalogHandler.SearchItems)
	app.Post("/api/items/create", catalogHandler.CreateItem)
	app.Get("/api/outfits", outfitHandler.ListOutfits)
	app.Post("/api/outfits/create", outfitHandler.CreateOutfit)
	app.Get("/s/:shareId", shareHandler.ShareView)

	return app, mock
}

func postJSON(t *testing.T, app *fiber.App, target, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}
