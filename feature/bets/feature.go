package bets

import (
	"bet-board/feature/bets/game"
	"bet-board/feature/bets/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the bets feature.
func NewFeature(db *gorm.DB, registry *game.Registry, defaultGame game.ID, logger *zap.Logger) *Feature {
	svc := NewService(registry, store.New(db), logger)
	h := NewHandler(svc, defaultGame)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bets"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
