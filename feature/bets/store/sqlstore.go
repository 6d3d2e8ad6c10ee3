package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"

	"gorm.io/gorm"
)

// betRow mirrors the per-game bet table layout. The table itself is chosen
// per call via game.Config, so the struct carries no TableName.
type betRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Number    int       `gorm:"column:number"`
	Amount    float64   `gorm:"column:amount"`
	Timestamp time.Time `gorm:"column:timestamp"`
}

// SQLStore is the GORM-backed Store implementation.
type SQLStore struct {
	db *gorm.DB
}

// New creates a store over an established GORM connection.
func New(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the bet table for every registered game if it does not
// exist yet. Number uniqueness, number bounds and amount positivity are
// enforced at the storage level in addition to the application layer.
func (s *SQLStore) Migrate(ctx context.Context, registry *game.Registry) error {
	for _, g := range registry.Configs() {
		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			number INTEGER NOT NULL UNIQUE CHECK(number >= %d AND number <= %d),
			amount %s NOT NULL CHECK(amount > 0),
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`, g.Table, s.pkDDL(), g.MinNumber, g.MaxNumber, s.realDDL())

		if err := s.db.WithContext(ctx).Exec(ddl).Error; err != nil {
			return wrapStorage(fmt.Sprintf("migrate %s", g.Table), err)
		}
	}
	return nil
}

// pkDDL returns the dialect-specific auto-increment primary key column.
func (s *SQLStore) pkDDL() string {
	if s.db.Dialector.Name() == "mysql" {
		return "BIGINT PRIMARY KEY AUTO_INCREMENT"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// realDDL returns the dialect-specific floating point column type.
func (s *SQLStore) realDDL() string {
	if s.db.Dialector.Name() == "mysql" {
		return "DOUBLE"
	}
	return "REAL"
}

// ExistingNumbers implements Store.
func (s *SQLStore) ExistingNumbers(ctx context.Context, g game.Config, numbers []int) (map[int]struct{}, error) {
	existing := make(map[int]struct{}, len(numbers))
	if len(numbers) == 0 {
		return existing, nil
	}

	var found []int
	err := s.db.WithContext(ctx).
		Table(g.Table).
		Where("number IN ?", numbers).
		Pluck("number", &found).Error
	if err != nil {
		return nil, wrapStorage("query existing numbers", err)
	}

	for _, n := range found {
		existing[n] = struct{}{}
	}
	return existing, nil
}

// InsertMany implements Store.
func (s *SQLStore) InsertMany(ctx context.Context, g game.Config, entries []models.Entry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	now := time.Now()
	rows := make([]betRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, betRow{Number: e.Number, Amount: e.Amount, Timestamp: now})
	}

	result := s.db.WithContext(ctx).Table(g.Table).Create(&rows)
	if result.Error != nil {
		return 0, wrapStorage("insert bets", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateAmounts implements Store.
func (s *SQLStore) UpdateAmounts(ctx context.Context, g game.Config, entries []models.Entry) (int64, error) {
	var affected int64
	for _, e := range entries {
		result := s.db.WithContext(ctx).
			Table(g.Table).
			Where("number = ?", e.Number).
			Update("amount", e.Amount)
		if result.Error != nil {
			return affected, wrapStorage("update bet amount", result.Error)
		}
		affected += result.RowsAffected
	}
	return affected, nil
}

// DeleteByNumber implements Store.
func (s *SQLStore) DeleteByNumber(ctx context.Context, g game.Config, number int) (bool, error) {
	result := s.db.WithContext(ctx).
		Table(g.Table).
		Where("number = ?", number).
		Delete(&betRow{})
	if result.Error != nil {
		return false, wrapStorage("delete bet", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll implements Store.
func (s *SQLStore) DeleteAll(ctx context.Context, g game.Config) (int64, error) {
	result := s.db.WithContext(ctx).
		Table(g.Table).
		Where("1 = 1").
		Delete(&betRow{})
	if result.Error != nil {
		return 0, wrapStorage("delete all bets", result.Error)
	}
	return result.RowsAffected, nil
}

// ListAll implements Store.
func (s *SQLStore) ListAll(ctx context.Context, g game.Config) ([]models.Bet, error) {
	var rows []betRow
	err := s.db.WithContext(ctx).
		Table(g.Table).
		Order("timestamp DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStorage("list bets", err)
	}

	bets := make([]models.Bet, 0, len(rows))
	for _, r := range rows {
		bets = append(bets, models.Bet{
			ID:        r.ID,
			Number:    r.Number,
			Amount:    r.Amount,
			Timestamp: r.Timestamp,
		})
	}
	return bets, nil
}

// Atomic implements Store. fn sees a store bound to the transaction; any
// error rolls the whole unit back.
func (s *SQLStore) Atomic(ctx context.Context, fn func(Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLStore{db: tx})
	})
	if err != nil && !errors.Is(err, models.ErrStorage) {
		// Transaction machinery errors (begin/commit) surface here without
		// having passed through a wrapped operation.
		return wrapStorage("transaction", err)
	}
	return err
}

// wrapStorage tags a storage-layer failure so callers can classify it with
// errors.Is(err, models.ErrStorage) while keeping the driver error chain.
func wrapStorage(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}
