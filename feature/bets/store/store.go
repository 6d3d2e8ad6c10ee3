package store

import (
	"context"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"
)

// Store is the adapter contract the reconciliation engine and the bets
// service run against. All writes to a game partition go through it.
//
// Multi-row mutations invoked from inside Atomic execute as one unit; the
// engine relies on that for its all-or-nothing guarantee.
type Store interface {
	// ExistingNumbers returns the subset of numbers that already have a row
	// in the game's partition, as a membership set.
	ExistingNumbers(ctx context.Context, g game.Config, numbers []int) (map[int]struct{}, error)

	// InsertMany creates one row per entry. The caller guarantees the
	// numbers are not present yet.
	InsertMany(ctx context.Context, g game.Config, entries []models.Entry) (int64, error)

	// UpdateAmounts replaces the stored amount for each entry's number.
	// Rows for absent numbers are not created; the affected count reflects
	// only matched rows.
	UpdateAmounts(ctx context.Context, g game.Config, entries []models.Entry) (int64, error)

	// DeleteByNumber removes the row for number, reporting whether one
	// existed.
	DeleteByNumber(ctx context.Context, g game.Config, number int) (bool, error)

	// DeleteAll empties the game's partition and returns the removed count.
	DeleteAll(ctx context.Context, g game.Config) (int64, error)

	// ListAll returns the partition's rows, most recent first.
	ListAll(ctx context.Context, g game.Config) ([]models.Bet, error)

	// Atomic runs fn against a transaction-scoped store. If fn returns an
	// error the transaction is rolled back and nothing fn did is visible.
	Atomic(ctx context.Context, fn func(Store) error) error
}
