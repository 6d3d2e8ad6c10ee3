package bets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"
	"bet-board/feature/bets/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, dbName string) (*fiber.App, *Service) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	registry := game.NewRegistry(
		game.Config{ID: game.Day, MinNumber: 0, MaxNumber: 99, Table: "bets_day"},
		game.Config{ID: "mini", MinNumber: 0, MaxNumber: 9, Table: "bets_mini"},
	)
	s := store.New(db)
	if err := s.Migrate(context.Background(), registry); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := NewService(registry, s, zap.NewNop())
	app := fiber.New()
	NewHandler(svc, game.Day).RegisterRoutes(app)
	return app, svc
}

func TestHandleSaveBets_InsertsAndReportsCounts(t *testing.T) {
	app, _ := setupTestApp(t, "db_h_save")

	body := `{"bets":[{"number":5,"amount":10},{"number":7,"amount":2}]}`
	req := httptest.NewRequest("POST", "/api/save-bets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(2), out["insertedCount"])
	assert.Equal(t, float64(0), out["updatedCount"])
	assert.Contains(t, out["message"], "2 bets processed")
}

func TestHandleSaveBets_UpdatesExistingNumbers(t *testing.T) {
	app, svc := setupTestApp(t, "db_h_update")

	_, err := svc.SaveBets(context.Background(), game.Day, []models.Entry{{Number: 5, Amount: 10}})
	require.NoError(t, err)

	body := `{"bets":[{"number":5,"amount":3}]}`
	req := httptest.NewRequest("POST", "/api/save-bets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(0), out["insertedCount"])
	assert.Equal(t, float64(1), out["updatedCount"])

	bets, err := svc.ListBets(context.Background(), game.Day)
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, float64(3), bets[0].Amount)
}

func TestHandleSaveBets_BadRequests(t *testing.T) {
	app, _ := setupTestApp(t, "db_h_badreq")

	tests := []struct {
		name string
		path string
		body string
	}{
		{"MalformedJSON", "/api/save-bets", `{"bets": not-json`},
		{"MissingBetsField", "/api/save-bets", `{}`},
		{"OutOfBounds", "/api/save-bets?game=mini", `{"bets":[{"number":10,"amount":1}]}`},
		{"NonPositiveAmount", "/api/save-bets", `{"bets":[{"number":5,"amount":0}]}`},
		{"UnknownGame", "/api/save-bets?game=weekly", `{"bets":[{"number":5,"amount":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var out map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestHandleListBets(t *testing.T) {
	app, svc := setupTestApp(t, "db_h_list")

	_, err := svc.SaveBets(context.Background(), game.Day, []models.Entry{
		{Number: 1, Amount: 2},
		{Number: 9, Amount: 4},
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/bets", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Bets []models.Bet `json:"bets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Bets, 2)
}

func TestHandleDeleteBet(t *testing.T) {
	app, svc := setupTestApp(t, "db_h_delete")

	_, err := svc.SaveBets(context.Background(), game.Day, []models.Entry{{Number: 5, Amount: 1}})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/bets/5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Absent now
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/bets/5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Not an integer
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/bets/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Out of bounds for the game
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/bets/500", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDeleteAllBets(t *testing.T) {
	app, svc := setupTestApp(t, "db_h_deleteall")

	_, err := svc.SaveBets(context.Background(), game.Day, []models.Entry{
		{Number: 1, Amount: 1},
		{Number: 2, Amount: 2},
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/delete-all-bets", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(2), out["deletedCount"])

	bets, err := svc.ListBets(context.Background(), game.Day)
	require.NoError(t, err)
	assert.Empty(t, bets)
}
