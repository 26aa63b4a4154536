package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOutfitMissingDateReturns400(t *testing.T) {
	app, _ := newTestApp(t)

	status := postJSON(t, app, "/api/outfits/create", `{"publicFlg":true}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateOutfitInvalidItemIDReturns400(t *testing.T) {
	app, _ := newTestApp(t)

	status := postJSON(t, app, "/api/outfits/create",
		`{"date":"2024-01-01","itemIds":["not-a-uuid"]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateOutfitReturnsShareID(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "outfits"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO "outfit_items"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	itemID := uuid.New()
	req := httptest.NewRequest("POST", "/api/outfits/create",
		strings.NewReader(`{"date":"2024-01-01","publicFlg":true,"itemIds":["`+itemID.String()+`"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		OK       bool      `json:"ok"`
		OutfitID uuid.UUID `json:"outfitId"`
		ShareID  string    `json:"shareId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.NotEqual(t, uuid.Nil, body.OutfitID)
	assert.Len(t, body.ShareID, 10)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOutfitStoreFailureReturns500(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "outfits"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	status := postJSON(t, app, "/api/outfits/create", `{"date":"2024-01-01"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOutfitsReturnsFeed(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "outfits"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "outfits"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "public_flg", "share_id"}).
			AddRow(uuid.New().String(), "2024-01-01", true, "abc123XYZ0"))

	req := httptest.NewRequest("GET", "/api/outfits", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ShareID string `json:"share_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "abc123XYZ0", body.Data[0].ShareID)

	require.NoError(t, mock.ExpectationsWereMet())
}
