package client

import (
	"context"
	"fmt"
	"math"
	"testing"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var boardGame = game.Config{ID: "day", MinNumber: 0, MaxNumber: 99, Table: "bets_day"}

// remoteMock is a mock implementation of Remote
type remoteMock struct {
	mock.Mock
}

func (m *remoteMock) ListBets(ctx context.Context) ([]models.Bet, error) {
	args := m.Called(ctx)
	if bets, ok := args.Get(0).([]models.Bet); ok {
		return bets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *remoteMock) SaveBets(ctx context.Context, entries []models.Entry) (models.SaveResult, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(models.SaveResult), args.Error(1)
}

func (m *remoteMock) DeleteBet(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *remoteMock) DeleteAllBets(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestBoard_AddOrMerge_AccumulatesAmounts(t *testing.T) {
	b := NewBoard(boardGame, new(remoteMock))

	require.NoError(t, b.AddOrMerge(5, 10))
	require.NoError(t, b.AddOrMerge(5, 3))

	bets := b.Bets()
	require.Len(t, bets, 1)
	assert.Equal(t, 5, bets[0].Number)
	assert.Equal(t, float64(13), bets[0].Amount, "local merge adds, unlike the server's replace")
	assert.Equal(t, StateUnsaved, bets[0].State)
}

func TestBoard_AddOrMerge_Validation(t *testing.T) {
	b := NewBoard(boardGame, new(remoteMock))

	assert.ErrorIs(t, b.AddOrMerge(100, 1), models.ErrInvalidNumber)
	assert.ErrorIs(t, b.AddOrMerge(-1, 1), models.ErrInvalidNumber)
	assert.ErrorIs(t, b.AddOrMerge(5, 0), models.ErrInvalidAmount)
	assert.ErrorIs(t, b.AddOrMerge(5, -2), models.ErrInvalidAmount)
	assert.ErrorIs(t, b.AddOrMerge(5, math.NaN()), models.ErrInvalidAmount)
	assert.ErrorIs(t, b.AddOrMerge(5, math.Inf(1)), models.ErrInvalidAmount)

	assert.Empty(t, b.Bets(), "failed validation must not mutate the board")
}

func TestBoard_Save_MarksEntriesSaved(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	require.NoError(t, b.AddOrMerge(5, 10))
	require.NoError(t, b.AddOrMerge(7, 2))

	remote.On("SaveBets", mock.Anything, []models.Entry{
		{Number: 5, Amount: 10},
		{Number: 7, Amount: 2},
	}).Return(models.SaveResult{InsertedCount: 2}, nil)

	result, err := b.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.InsertedCount)

	for _, bet := range b.Bets() {
		assert.Equal(t, StateSaved, bet.State)
	}
	assert.False(t, b.HasUnsaved())
	remote.AssertExpectations(t)
}

func TestBoard_Save_OnlySendsDirtyEntries(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	require.NoError(t, b.AddOrMerge(5, 10))
	remote.On("SaveBets", mock.Anything, []models.Entry{{Number: 5, Amount: 10}}).
		Return(models.SaveResult{InsertedCount: 1}, nil).Once()
	_, err := b.Save(context.Background())
	require.NoError(t, err)

	// A saved entry touched again flips to saved-modified and is resent
	// with its accumulated total.
	require.NoError(t, b.AddOrMerge(5, 3))
	require.NoError(t, b.AddOrMerge(9, 1))

	bets := b.Bets()
	assert.Equal(t, StateSavedModified, bets[0].State)

	remote.On("SaveBets", mock.Anything, []models.Entry{
		{Number: 5, Amount: 13},
		{Number: 9, Amount: 1},
	}).Return(models.SaveResult{InsertedCount: 1, UpdatedCount: 1}, nil).Once()

	_, err = b.Save(context.Background())
	require.NoError(t, err)
	remote.AssertExpectations(t)
}

func TestBoard_Save_EmptyPendingIsNoOp(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	result, err := b.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SaveResult{}, result)
	remote.AssertNotCalled(t, "SaveBets")
}

func TestBoard_Save_FailureKeepsState(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	require.NoError(t, b.AddOrMerge(5, 10))
	remote.On("SaveBets", mock.Anything, mock.Anything).
		Return(models.SaveResult{}, fmt.Errorf("%w: connection refused", models.ErrStorage))

	_, err := b.Save(context.Background())
	require.Error(t, err)

	bets := b.Bets()
	require.Len(t, bets, 1)
	assert.Equal(t, StateUnsaved, bets[0].State, "failed save leaves entries dirty for retry")
	assert.True(t, b.HasUnsaved())
}

func TestBoard_Save_RejectsConcurrentSave(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)
	require.NoError(t, b.AddOrMerge(5, 10))

	// Trigger a second save from inside the first round-trip.
	remote.On("SaveBets", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := b.Save(context.Background())
			assert.ErrorIs(t, err, ErrSaveInFlight)
		}).
		Return(models.SaveResult{InsertedCount: 1}, nil)

	_, err := b.Save(context.Background())
	require.NoError(t, err)
}

func TestBoard_DeleteLocal_UnsavedStaysLocal(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	require.NoError(t, b.AddOrMerge(5, 10))
	tempID := b.Bets()[0].TempID

	require.NoError(t, b.DeleteLocal(context.Background(), tempID))
	assert.Empty(t, b.Bets())
	remote.AssertNotCalled(t, "DeleteBet")
}

func TestBoard_DeleteLocal_SavedIssuesRemoteDelete(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	require.NoError(t, b.AddOrMerge(5, 10))
	remote.On("SaveBets", mock.Anything, mock.Anything).Return(models.SaveResult{InsertedCount: 1}, nil)
	_, err := b.Save(context.Background())
	require.NoError(t, err)

	remote.On("DeleteBet", mock.Anything, 5).Return(nil)
	require.NoError(t, b.DeleteLocal(context.Background(), b.Bets()[0].TempID))
	assert.Empty(t, b.Bets())
	remote.AssertExpectations(t)
}

func TestBoard_DeleteLocal_RemoteFailureKeepsEntry(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)

	require.NoError(t, b.AddOrMerge(5, 10))
	remote.On("SaveBets", mock.Anything, mock.Anything).Return(models.SaveResult{InsertedCount: 1}, nil)
	_, err := b.Save(context.Background())
	require.NoError(t, err)

	remote.On("DeleteBet", mock.Anything, 5).Return(fmt.Errorf("%w: timeout", models.ErrStorage))
	err = b.DeleteLocal(context.Background(), b.Bets()[0].TempID)
	require.Error(t, err)
	assert.Len(t, b.Bets(), 1, "entry survives a failed remote delete")
}

func TestBoard_DeleteLocal_UnknownTempID(t *testing.T) {
	b := NewBoard(boardGame, new(remoteMock))
	assert.ErrorIs(t, b.DeleteLocal(context.Background(), "nope"), models.ErrNotFound)
}

func TestBoard_DeleteAllRemote(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)
	require.NoError(t, b.AddOrMerge(5, 10))

	remote.On("DeleteAllBets", mock.Anything).Return(int64(3), nil)
	removed, err := b.DeleteAllRemote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.Empty(t, b.Bets())
}

func TestBoard_DeleteAllRemote_FailureKeepsBoard(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)
	require.NoError(t, b.AddOrMerge(5, 10))

	remote.On("DeleteAllBets", mock.Anything).Return(int64(0), fmt.Errorf("%w: down", models.ErrStorage))
	_, err := b.DeleteAllRemote(context.Background())
	require.Error(t, err)
	assert.Len(t, b.Bets(), 1)
}

func TestBoard_Load_ReplacesBoard(t *testing.T) {
	remote := new(remoteMock)
	b := NewBoard(boardGame, remote)
	require.NoError(t, b.AddOrMerge(50, 1))

	remote.On("ListBets", mock.Anything).Return([]models.Bet{
		{ID: 10, Number: 5, Amount: 13},
		{ID: 11, Number: 7, Amount: 2},
	}, nil)

	require.NoError(t, b.Load(context.Background()))

	bets := b.Bets()
	require.Len(t, bets, 2)
	assert.Equal(t, "10", bets[0].TempID)
	assert.Equal(t, StateSaved, bets[0].State)
	assert.False(t, b.HasUnsaved(), "hydrated entries count as saved")
}
