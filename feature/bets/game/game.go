package game

import (
	"fmt"

	"bet-board/feature/bets/models"
)

// ID identifies a game variant. Only the identifiers registered in a
// Registry are valid; raw strings coming from transport must go through
// Resolve before they reach any storage access path.
type ID string

// Registered game variants.
const (
	Day   ID = "day"
	Night ID = "night"
	Open  ID = "open"
)

// Config holds the static parameters of one game variant.
type Config struct {
	// ID is the game identifier.
	ID ID

	// MinNumber is the lowest playable number, inclusive.
	MinNumber int

	// MaxNumber is the highest playable number, inclusive.
	MaxNumber int

	// Table is the storage partition holding this game's bets.
	Table string
}

// ValidNumber reports whether n is playable in this game.
func (c Config) ValidNumber(n int) bool {
	return n >= c.MinNumber && n <= c.MaxNumber
}

// Registry maps game identifiers to their configurations. It is built once
// at startup and read-only afterwards.
type Registry struct {
	games map[ID]Config
	order []ID
}

// NewRegistry builds a registry from the given configurations.
// Registration order is preserved for iteration.
func NewRegistry(configs ...Config) *Registry {
	r := &Registry{games: make(map[ID]Config, len(configs))}
	for _, c := range configs {
		if _, dup := r.games[c.ID]; dup {
			continue
		}
		r.games[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

// DefaultRegistry returns the registry with the stock game variants.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Config{ID: Day, MinNumber: 0, MaxNumber: 99, Table: "bets_day"},
		Config{ID: Night, MinNumber: 0, MaxNumber: 99, Table: "bets_night"},
		Config{ID: Open, MinNumber: 0, MaxNumber: 90, Table: "bets_open"},
	)
}

// Resolve returns the configuration for id.
func (r *Registry) Resolve(id ID) (Config, error) {
	c, ok := r.games[id]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", models.ErrUnknownGame, id)
	}
	return c, nil
}

// ValidateNumber reports whether n is playable in the game identified by id.
// It fails with ErrUnknownGame when id is not registered.
func (r *Registry) ValidateNumber(id ID, n int) (bool, error) {
	c, err := r.Resolve(id)
	if err != nil {
		return false, err
	}
	return c.ValidNumber(n), nil
}

// IDs returns the registered game identifiers in registration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Configs returns the registered configurations in registration order.
func (r *Registry) Configs() []Config {
	out := make([]Config, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.games[id])
	}
	return out
}
