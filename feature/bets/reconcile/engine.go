package reconcile

import (
	"context"
	"fmt"
	"math"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"
	"bet-board/feature/bets/store"

	"go.uber.org/zap"
)

// Engine merges incoming bet batches against a game's stored rows.
// It owns no state of its own; each Reconcile call is one unit of work
// against the injected store.
type Engine struct {
	registry *game.Registry
	store    store.Store
	logger   *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(registry *game.Registry, st store.Store, logger *zap.Logger) *Engine {
	return &Engine{registry: registry, store: st, logger: logger}
}

// Reconcile applies a batch of (number, amount) entries to gameID's
// partition: numbers already stored get their amount replaced, new numbers
// are inserted. Both halves run in one transaction; on any storage failure
// the whole batch rolls back and no row is touched.
//
// Validation happens before any write. The entire batch is rejected on the
// first out-of-bounds number or non-positive amount. An empty batch is a
// no-op success.
//
// When the same number appears more than once in a batch the last
// occurrence wins; earlier ones are dropped before the store sees the
// batch.
func (e *Engine) Reconcile(ctx context.Context, gameID game.ID, entries []models.Entry) (models.SaveResult, error) {
	var result models.SaveResult

	g, err := e.registry.Resolve(gameID)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		if !g.ValidNumber(entry.Number) {
			return result, fmt.Errorf("%w: %d is outside [%d, %d] for game %q",
				models.ErrInvalidNumber, entry.Number, g.MinNumber, g.MaxNumber, g.ID)
		}
		if entry.Amount <= 0 || math.IsNaN(entry.Amount) || math.IsInf(entry.Amount, 0) {
			return result, fmt.Errorf("%w: %v for number %d",
				models.ErrInvalidAmount, entry.Amount, entry.Number)
		}
	}

	batch := dedupe(entries)
	if len(batch) == 0 {
		return result, nil
	}

	numbers := make([]int, 0, len(batch))
	for _, entry := range batch {
		numbers = append(numbers, entry.Number)
	}

	err = e.store.Atomic(ctx, func(tx store.Store) error {
		existing, err := tx.ExistingNumbers(ctx, g, numbers)
		if err != nil {
			return err
		}

		var toInsert, toUpdate []models.Entry
		for _, entry := range batch {
			if _, ok := existing[entry.Number]; ok {
				toUpdate = append(toUpdate, entry)
			} else {
				toInsert = append(toInsert, entry)
			}
		}

		if _, err := tx.UpdateAmounts(ctx, g, toUpdate); err != nil {
			return err
		}
		if _, err := tx.InsertMany(ctx, g, toInsert); err != nil {
			return err
		}

		result.InsertedCount = len(toInsert)
		result.UpdatedCount = len(toUpdate)
		return nil
	})
	if err != nil {
		e.logger.Error("reconcile aborted, batch rolled back",
			zap.String("game", string(g.ID)),
			zap.Int("batch_size", len(batch)),
			zap.Error(err))
		return models.SaveResult{}, err
	}

	e.logger.Info("batch reconciled",
		zap.String("game", string(g.ID)),
		zap.Int("inserted", result.InsertedCount),
		zap.Int("updated", result.UpdatedCount))
	return result, nil
}

// dedupe collapses duplicate numbers, keeping each number's last amount at
// the position of its first occurrence.
func dedupe(entries []models.Entry) []models.Entry {
	if len(entries) < 2 {
		return entries
	}

	index := make(map[int]int, len(entries))
	out := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		if i, seen := index[entry.Number]; seen {
			out[i].Amount = entry.Amount
			continue
		}
		index[entry.Number] = len(out)
		out = append(out, entry)
	}
	return out
}
