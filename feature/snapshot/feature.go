package snapshot

import (
	"bet-board/core/storage"
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
	enabled bool
}

// NewFeature creates the snapshot feature. A nil storage client disables it
// without failing startup.
func NewFeature(client storage.Client, bucket string, db *gorm.DB, registry *game.Registry, defaultGame game.ID, logger *zap.Logger) *Feature {
	if client == nil {
		return &Feature{enabled: false}
	}
	svc := NewService(client, bucket, registry, store.New(db), logger)
	h := NewHandler(svc, defaultGame)
	return &Feature{service: svc, handler: h, enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
