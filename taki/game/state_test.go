package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/event"
	"github.com/taki-online/server/taki/game"
)

func newTestState() (*game.State, *event.DummyListener) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.StateChanged.AddListener(listener)
	return game.NewState(bus), listener
}

func stateChanges(listener *event.DummyListener) []event.StateChangedPayload {
	changes := make([]event.StateChangedPayload, 0)
	for _, payload := range listener.ReceivedPayloads() {
		if change, ok := payload.(event.StateChangedPayload); ok {
			changes = append(changes, change)
		}
	}
	return changes
}

func TestChangeCommandsNotifyOnceAndIgnoreEqualValues(t *testing.T) {
	state, listener := newTestState()

	state.ChangeTurn(game.SeatOne)
	state.ChangeTurn(game.SeatOne)
	state.ChangeActiveColor(color.Red)
	state.ChangeActiveColor(color.Red)
	state.ChangeDirection(game.CounterClockwise)
	state.ChangeStatus(game.StatusPaused)

	changes := stateChanges(listener)
	require.Equal(t, []event.StateChangedPayload{
		{Aspect: event.AspectTurnState, Value: "seat1"},
		{Aspect: event.AspectActiveColor, Value: "red"},
		{Aspect: event.AspectTurnDirection, Value: "counter_clockwise"},
		{Aspect: event.AspectGameStatus, Value: "paused"},
	}, changes)
}

func TestIsValidMoveDuringChainOnlyAllowsPlusTwo(t *testing.T) {
	state, _ := newTestState()
	top := card.NewPlusTwoCard(color.Red)
	state.ChangeActiveColor(color.Red)
	state.StartChain(game.SeatOne)

	require.True(t, state.IsValidMove(card.NewPlusTwoCard(color.Blue), top))
	require.False(t, state.IsValidMove(card.NewNumberCard(color.Red, 5), top))
	require.False(t, state.IsValidMove(card.NewChangeColorCard(), top))
}

func TestIsValidMoveDuringSequenceLocksToSequenceColor(t *testing.T) {
	state, _ := newTestState()
	top := card.NewTakiCard(color.Green)
	state.ChangeActiveColor(color.Green)
	state.OpenSequence(color.Green, game.SeatOne)

	require.True(t, state.IsValidMove(card.NewNumberCard(color.Green, 9), top))
	require.True(t, state.IsValidMove(card.NewStopCard(color.Green), top))
	require.True(t, state.IsValidMove(card.NewChangeColorCard(), top))
	require.False(t, state.IsValidMove(card.NewNumberCard(color.Red, 9), top))
}

func TestChainPenaltyEscalatesWithCount(t *testing.T) {
	state, _ := newTestState()
	state.StartChain(game.SeatOne)
	require.Equal(t, 2, state.Chain().Penalty())
	state.GrowChain()
	state.GrowChain()
	require.Equal(t, 6, state.Chain().Penalty())
	state.BreakChain()
	require.False(t, state.Chain().Active)
	require.Equal(t, game.InteractionNormal, state.Interaction())
}

func TestDeclareWinnerRefusedWhileObligationsPending(t *testing.T) {
	state, _ := newTestState()
	state.StartChain(game.SeatOne)
	require.ErrorIs(t, state.DeclareWinner(game.SeatOne, "alice"), game.ErrObligationsPending)

	state.BreakChain()
	state.OpenSequence(color.Red, game.SeatOne)
	require.ErrorIs(t, state.DeclareWinner(game.SeatOne, "alice"), game.ErrObligationsPending)

	state.CloseSequence()
	require.NoError(t, state.DeclareWinner(game.SeatOne, "alice"))
	require.Equal(t, game.StatusOver, state.Status())
	require.Equal(t, game.SeatOne, state.Winner())
	require.Equal(t, game.SeatNone, state.Turn())
}

func TestSnapshotRestoreRoundTripsWithoutNotifications(t *testing.T) {
	state, listener := newTestState()
	state.ChangeTurn(game.SeatTwo)
	state.ChangeActiveColor(color.Blue)
	state.StartChain(game.SeatTwo)
	state.GrowChain()

	snapshot := state.Snapshot()
	state.BreakChain()
	state.ChangeTurn(game.SeatOne)
	state.ChangeActiveColor(color.Red)

	notificationsBefore := len(listener.ReceivedPayloads())
	state.Restore(snapshot)
	require.Len(t, listener.ReceivedPayloads(), notificationsBefore)

	require.Equal(t, game.SeatTwo, state.Turn())
	require.Equal(t, color.Blue, state.ActiveColor())
	require.True(t, state.Chain().Active)
	require.Equal(t, 2, state.Chain().Count)
	require.Equal(t, game.InteractionPlusTwoChain, state.Interaction())

	// Restoring twice is idempotent.
	state.Restore(snapshot)
	require.Equal(t, snapshot, state.Snapshot())
}
