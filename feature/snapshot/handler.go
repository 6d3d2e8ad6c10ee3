package snapshot

import (
	"errors"

	"bet-board/core/logger"
	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service     *Service
	defaultGame game.ID
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, defaultGame game.ID) *Handler {
	return &Handler{service: service, defaultGame: defaultGame}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/snapshots")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleList)
}

func (h *Handler) gameID(c *fiber.Ctx) game.ID {
	return game.ID(c.Query("game", string(h.defaultGame)))
}

// HandleExport exports a game's bet table to object storage.
// @Summary Export snapshot
// @Description Writes the game's full bet table as a JSON object to the snapshot bucket.
// @Tags snapshots
// @Produce json
// @Param game query string false "Game identifier (day, night, open)" default(day)
// @Success 201 {object} map[string]any "Object name and exported count"
// @Failure 400 {object} map[string]string "Unknown game"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/snapshots [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	object, count, err := h.service.Export(c.Context(), h.gameID(c))
	if err != nil {
		l.Error("snapshot export failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Snapshot exported successfully.",
		"object":  object,
		"count":   count,
	})
}

// HandleList lists a game's stored snapshots.
// @Summary List snapshots
// @Description Lists the snapshot objects stored for a game.
// @Tags snapshots
// @Produce json
// @Param game query string false "Game identifier (day, night, open)" default(day)
// @Success 200 {object} map[string][]Info "Stored snapshots"
// @Failure 400 {object} map[string]string "Unknown game"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	infos, err := h.service.List(c.Context(), h.gameID(c))
	if err != nil {
		l.Error("snapshot listing failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"snapshots": infos})
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, models.ErrUnknownGame) {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
