package bets

import (
	"errors"
	"fmt"
	"strconv"

	"bet-board/core/logger"
	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bets.
type Handler struct {
	service     *Service
	defaultGame game.ID
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, defaultGame game.ID) *Handler {
	return &Handler{service: service, defaultGame: defaultGame}
}

// RegisterRoutes registers the bets routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/bets", h.HandleListBets)
	group.Post("/save-bets", h.HandleSaveBets)
	group.Delete("/delete-all-bets", h.HandleDeleteAllBets)
	group.Delete("/bets/:number", h.HandleDeleteBet)
}

// saveRequest is the POST /api/save-bets body.
type saveRequest struct {
	Bets []models.Entry `json:"bets"`
}

// gameID resolves the game query parameter, falling back to the configured
// default for single-game deployments.
func (h *Handler) gameID(c *fiber.Ctx) game.ID {
	return game.ID(c.Query("game", string(h.defaultGame)))
}

// HandleListBets returns all saved bets for a game.
// @Summary List bets
// @Description Returns all stored bets for a game, most recent first.
// @Tags bets
// @Produce json
// @Param game query string false "Game identifier (day, night, open)" default(day)
// @Success 200 {object} map[string][]models.Bet "Stored bets"
// @Failure 400 {object} map[string]string "Unknown game"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/bets [get]
func (h *Handler) HandleListBets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	bets, err := h.service.ListBets(c.Context(), h.gameID(c))
	if err != nil {
		l.Error("listing bets failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"bets": bets})
}

// HandleSaveBets reconciles a batch of bets into a game's partition.
// @Summary Save bets
// @Description Merges a batch of (number, amount) entries: existing numbers get their amount replaced, new numbers are inserted. All-or-nothing.
// @Tags bets
// @Accept json
// @Produce json
// @Param game query string false "Game identifier (day, night, open)" default(day)
// @Param body body saveRequest true "Batch of bets"
// @Success 201 {object} map[string]any "Counts of inserted and updated rows"
// @Failure 400 {object} map[string]string "Invalid format, number or amount"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/save-bets [post]
func (h *Handler) HandleSaveBets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req saveRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidFormat, err))
	}
	if req.Bets == nil {
		return respondError(c, fmt.Errorf("%w: expected an array of bets", models.ErrInvalidFormat))
	}

	result, err := h.service.SaveBets(c.Context(), h.gameID(c), req.Bets)
	if err != nil {
		l.Error("saving bets failed", zap.Error(err))
		return respondError(c, err)
	}

	processed := result.InsertedCount + result.UpdatedCount
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       fmt.Sprintf("%d bets processed successfully (%d updated).", processed, result.UpdatedCount),
		"insertedCount": result.InsertedCount,
		"updatedCount":  result.UpdatedCount,
	})
}

// HandleDeleteAllBets empties a game's partition.
// @Summary Delete all bets
// @Description Removes every stored bet for a game.
// @Tags bets
// @Produce json
// @Param game query string false "Game identifier (day, night, open)" default(day)
// @Success 200 {object} map[string]any "Removed count"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/delete-all-bets [delete]
func (h *Handler) HandleDeleteAllBets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	removed, err := h.service.DeleteAllBets(c.Context(), h.gameID(c))
	if err != nil {
		l.Error("deleting all bets failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "All bets have been deleted successfully.",
		"deletedCount": removed,
	})
}

// HandleDeleteBet removes the bet for a single number.
// @Summary Delete one bet
// @Description Removes the stored bet for one number in a game.
// @Tags bets
// @Produce json
// @Param number path int true "Bet number"
// @Param game query string false "Game identifier (day, night, open)" default(day)
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Invalid number"
// @Failure 404 {object} map[string]string "Bet not found"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/bets/{number} [delete]
func (h *Handler) HandleDeleteBet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %q is not an integer", models.ErrInvalidNumber, c.Params("number")))
	}

	if err := h.service.DeleteBet(c.Context(), h.gameID(c), number); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			l.Error("deleting bet failed", zap.Error(err))
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Bet deleted successfully."})
}

// respondError maps a domain error to its HTTP status and error body.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrUnknownGame),
		errors.Is(err, models.ErrInvalidNumber),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidFormat):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
