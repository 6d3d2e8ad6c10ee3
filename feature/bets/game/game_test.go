package game_test

import (
	"testing"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r := game.DefaultRegistry()

	tests := []struct {
		name    string
		id      game.ID
		wantErr bool
	}{
		{"Day", game.Day, false},
		{"Night", game.Night, false},
		{"Open", game.Open, false},
		{"Unknown", "weekly", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := r.Resolve(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrUnknownGame)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, cfg.ID)
			assert.NotEmpty(t, cfg.Table)
		})
	}
}

func TestConfig_ValidNumber(t *testing.T) {
	cfg := game.Config{ID: "test", MinNumber: 0, MaxNumber: 9, Table: "bets_test"}

	tests := []struct {
		name   string
		number int
		want   bool
	}{
		{"LowerBound", 0, true},
		{"UpperBound", 9, true},
		{"Middle", 5, true},
		{"BelowRange", -1, false},
		{"AboveRange", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.ValidNumber(tt.number))
		})
	}
}

func TestRegistry_ValidateNumber(t *testing.T) {
	r := game.DefaultRegistry()

	ok, err := r.ValidateNumber(game.Day, 99)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ValidateNumber(game.Open, 99)
	require.NoError(t, err)
	assert.False(t, ok, "open tops out at 90")

	_, err = r.ValidateNumber("weekly", 5)
	assert.ErrorIs(t, err, models.ErrUnknownGame)
}

func TestRegistry_IDs_PreservesOrder(t *testing.T) {
	r := game.NewRegistry(
		game.Config{ID: "b", MinNumber: 0, MaxNumber: 1, Table: "b"},
		game.Config{ID: "a", MinNumber: 0, MaxNumber: 1, Table: "a"},
		game.Config{ID: "b", MinNumber: 5, MaxNumber: 6, Table: "dup"},
	)

	assert.Equal(t, []game.ID{"b", "a"}, r.IDs())

	// First registration wins on duplicates
	cfg, err := r.Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, "b", cfg.Table)
}
