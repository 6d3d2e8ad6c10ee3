package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"

	"github.com/google/uuid"
)

// PersistState tracks whether a staged bet's number exists on the server
// and whether local edits postdate the last successful save.
type PersistState int

const (
	// StateUnsaved means the number has never been saved.
	StateUnsaved PersistState = iota
	// StateSaved means the entry matches the server.
	StateSaved
	// StateSavedModified means the number exists on the server but the
	// local amount has changed since the last save.
	StateSavedModified
)

// String implements fmt.Stringer.
func (s PersistState) String() string {
	switch s {
	case StateUnsaved:
		return "unsaved"
	case StateSaved:
		return "saved"
	case StateSavedModified:
		return "saved-modified"
	default:
		return "unknown"
	}
}

// StagedBet is a client-held bet entry awaiting a save round-trip.
type StagedBet struct {
	// TempID is a locally generated token identifying the entry until the
	// save round-trip confirms it.
	TempID string

	// Number and Amount carry the same semantics as a stored Bet.
	Number int
	Amount float64

	// State is the entry's persistence state.
	State PersistState
}

// ErrSaveInFlight means a save round-trip is already outstanding. The
// caller must wait for it to settle before retrying; the model performs no
// queuing of its own.
var ErrSaveInFlight = errors.New("a save is already in flight")

// Remote is the network boundary the staging board saves through. APIClient
// implements it against the REST surface; tests substitute a double.
type Remote interface {
	ListBets(ctx context.Context) ([]models.Bet, error)
	SaveBets(ctx context.Context, entries []models.Entry) (models.SaveResult, error)
	DeleteBet(ctx context.Context, number int) error
	DeleteAllBets(ctx context.Context) (int64, error)
}

// Board is the pre-submission mirror of one game's bets for one session.
// Duplicate local entries accumulate their amounts (unlike the server,
// which replaces the stored amount on update — the batch sent by Save
// carries the locally accumulated totals as the authoritative new values).
//
// Board is not safe for concurrent use; it models a single user session
// driven by discrete actions.
type Board struct {
	game     game.Config
	remote   Remote
	byNumber map[int]*StagedBet
	saving   bool
}

// NewBoard creates an empty staging board for one game.
func NewBoard(g game.Config, remote Remote) *Board {
	return &Board{
		game:     g,
		remote:   remote,
		byNumber: make(map[int]*StagedBet),
	}
}

// AddOrMerge stages a bet. If the number is already staged the amount is
// added to the existing entry; a previously saved entry becomes
// saved-modified. Validation failures leave the board untouched.
func (b *Board) AddOrMerge(number int, amount float64) error {
	if !b.game.ValidNumber(number) {
		return fmt.Errorf("%w: %d is outside [%d, %d] for game %q",
			models.ErrInvalidNumber, number, b.game.MinNumber, b.game.MaxNumber, b.game.ID)
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: %v for number %d", models.ErrInvalidAmount, amount, number)
	}

	if existing, ok := b.byNumber[number]; ok {
		existing.Amount += amount
		if existing.State == StateSaved {
			existing.State = StateSavedModified
		}
		return nil
	}

	b.byNumber[number] = &StagedBet{
		TempID: uuid.NewString(),
		Number: number,
		Amount: amount,
		State:  StateUnsaved,
	}
	return nil
}

// DeleteLocal removes the staged bet identified by tempID. If the entry was
// ever saved the remote row is deleted first; on remote failure the local
// entry is kept and the failure returned.
func (b *Board) DeleteLocal(ctx context.Context, tempID string) error {
	bet := b.findByTempID(tempID)
	if bet == nil {
		return fmt.Errorf("%w: staged bet %q", models.ErrNotFound, tempID)
	}

	if bet.State != StateUnsaved {
		if err := b.remote.DeleteBet(ctx, bet.Number); err != nil {
			return err
		}
	}

	delete(b.byNumber, bet.Number)
	return nil
}

// Save sends every entry that is not in the saved state as one batch and
// marks them saved on success. On failure nothing changes locally; the
// caller decides whether to retry. Only one save may be outstanding at a
// time.
func (b *Board) Save(ctx context.Context) (models.SaveResult, error) {
	if b.saving {
		return models.SaveResult{}, ErrSaveInFlight
	}

	pending := b.pending()
	if len(pending) == 0 {
		return models.SaveResult{}, nil
	}

	entries := make([]models.Entry, 0, len(pending))
	for _, bet := range pending {
		entries = append(entries, models.Entry{Number: bet.Number, Amount: bet.Amount})
	}

	b.saving = true
	defer func() { b.saving = false }()

	result, err := b.remote.SaveBets(ctx, entries)
	if err != nil {
		return models.SaveResult{}, err
	}

	for _, bet := range pending {
		bet.State = StateSaved
	}
	return result, nil
}

// DeleteAllRemote issues the game's delete-all and clears the board on
// success only.
func (b *Board) DeleteAllRemote(ctx context.Context) (int64, error) {
	removed, err := b.remote.DeleteAllBets(ctx)
	if err != nil {
		return 0, err
	}
	b.byNumber = make(map[int]*StagedBet)
	return removed, nil
}

// Load replaces the board with the server's current bets, all marked
// saved. Intended as the initial hydration on session start.
func (b *Board) Load(ctx context.Context) error {
	bets, err := b.remote.ListBets(ctx)
	if err != nil {
		return err
	}

	fresh := make(map[int]*StagedBet, len(bets))
	for _, bet := range bets {
		fresh[bet.Number] = &StagedBet{
			TempID: strconv.FormatInt(bet.ID, 10),
			Number: bet.Number,
			Amount: bet.Amount,
			State:  StateSaved,
		}
	}
	b.byNumber = fresh
	return nil
}

// Bets returns a snapshot of the staged bets ordered by number.
func (b *Board) Bets() []StagedBet {
	out := make([]StagedBet, 0, len(b.byNumber))
	for _, bet := range b.byNumber {
		out = append(out, *bet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// HasUnsaved reports whether any entry still needs a save round-trip.
// UIs use it to disable the save action when the board is clean.
func (b *Board) HasUnsaved() bool {
	return len(b.pending()) > 0
}

// pending returns the entries needing a save, ordered by number.
func (b *Board) pending() []*StagedBet {
	var out []*StagedBet
	for _, bet := range b.byNumber {
		if bet.State != StateSaved {
			out = append(out, bet)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (b *Board) findByTempID(tempID string) *StagedBet {
	for _, bet := range b.byNumber {
		if bet.TempID == tempID {
			return bet
		}
	}
	return nil
}
