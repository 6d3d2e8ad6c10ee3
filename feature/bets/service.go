package bets

import (
	"context"
	"fmt"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"
	"bet-board/feature/bets/reconcile"
	"bet-board/feature/bets/store"

	"go.uber.org/zap"
)

// Service exposes the bet operations consumed by the HTTP handler and the
// CLI. Game identifiers are resolved through the registry before any
// storage access.
type Service struct {
	registry *game.Registry
	store    store.Store
	engine   *reconcile.Engine
	logger   *zap.Logger
}

// NewService creates a bets service.
func NewService(registry *game.Registry, st store.Store, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		store:    st,
		engine:   reconcile.NewEngine(registry, st, logger),
		logger:   logger,
	}
}

// ListBets returns the stored bets for a game, most recent first.
func (s *Service) ListBets(ctx context.Context, gameID game.ID) ([]models.Bet, error) {
	g, err := s.registry.Resolve(gameID)
	if err != nil {
		return nil, err
	}
	return s.store.ListAll(ctx, g)
}

// SaveBets reconciles a batch of entries into the game's partition.
func (s *Service) SaveBets(ctx context.Context, gameID game.ID, entries []models.Entry) (models.SaveResult, error) {
	return s.engine.Reconcile(ctx, gameID, entries)
}

// DeleteAllBets empties the game's partition and returns the removed count.
func (s *Service) DeleteAllBets(ctx context.Context, gameID game.ID) (int64, error) {
	g, err := s.registry.Resolve(gameID)
	if err != nil {
		return 0, err
	}

	removed, err := s.store.DeleteAll(ctx, g)
	if err != nil {
		return 0, err
	}

	s.logger.Info("partition cleared",
		zap.String("game", string(g.ID)),
		zap.Int64("removed", removed))
	return removed, nil
}

// DeleteBet removes the bet for one number. It fails with ErrInvalidNumber
// when the number is out of bounds and ErrNotFound when no row exists.
func (s *Service) DeleteBet(ctx context.Context, gameID game.ID, number int) error {
	g, err := s.registry.Resolve(gameID)
	if err != nil {
		return err
	}
	if !g.ValidNumber(number) {
		return fmt.Errorf("%w: %d is outside [%d, %d] for game %q",
			models.ErrInvalidNumber, number, g.MinNumber, g.MaxNumber, g.ID)
	}

	removed, err := s.store.DeleteByNumber(ctx, g, number)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: number %d in game %q", models.ErrNotFound, number, g.ID)
	}
	return nil
}
