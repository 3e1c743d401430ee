package game_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/event"
	"github.com/taki-online/server/taki/game"
)

type turnRecorder struct {
	mu      sync.Mutex
	started []game.Seat
	expired []game.Seat
}

func (r *turnRecorder) onStart(seat game.Seat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, seat)
}

func (r *turnRecorder) onExpire(seat game.Seat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expired = append(r.expired, seat)
}

func (r *turnRecorder) expiredSeats() []game.Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]game.Seat(nil), r.expired...)
}

func newTestTurns(limit time.Duration, countdownFor func(game.Seat) bool) (*game.Turns, *game.State, *turnRecorder, *event.DummyListener) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.TurnStarted.AddListener(listener)
	state := game.NewState(bus)
	turns := game.NewTurns(state, bus, limit)
	recorder := &turnRecorder{}
	nameOf := func(seat game.Seat) string { return seat.String() }
	turns.Bind(nameOf, countdownFor, recorder.onStart, recorder.onExpire)
	return turns, state, recorder, listener
}

func everySeat(game.Seat) bool { return true }

func TestEndTurnTogglesBetweenSeats(t *testing.T) {
	turns, state, _, _ := newTestTurns(0, everySeat)
	turns.StartTurn(game.SeatOne)
	require.Equal(t, game.SeatOne, state.Turn())
	turns.EndTurn()
	require.Equal(t, game.SeatTwo, state.Turn())
	turns.EndTurn()
	require.Equal(t, game.SeatOne, state.Turn())
}

func TestSkipTurnKeepsTheSeatAndMarksTheNotification(t *testing.T) {
	turns, state, recorder, listener := newTestTurns(0, everySeat)
	turns.StartTurn(game.SeatOne)
	turns.SkipTurn()
	require.Equal(t, game.SeatOne, state.Turn())
	require.Equal(t, []game.Seat{game.SeatOne, game.SeatOne}, recorder.started)

	payloads := listener.ReceivedPayloads()
	require.Len(t, payloads, 2)
	require.False(t, payloads[0].(event.TurnStartedPayload).Skipped)
	require.True(t, payloads[1].(event.TurnStartedPayload).Skipped)
}

func TestGateResetRunsBeforeTheTurnNotification(t *testing.T) {
	bus := event.NewBus()
	state := game.NewState(bus)
	turns := game.NewTurns(state, bus, 0)
	order := make([]string, 0, 2)
	listener := event.NewDummyListener()
	bus.TurnStarted.AddListener(listener)
	turns.Bind(
		func(seat game.Seat) string {
			order = append(order, "name")
			return seat.String()
		},
		everySeat,
		func(game.Seat) { order = append(order, "reset") },
		func(game.Seat) {},
	)
	turns.StartTurn(game.SeatOne)
	require.Equal(t, "reset", order[0])
}

func TestCountdownExpiresForHumanSeats(t *testing.T) {
	turns, _, recorder, _ := newTestTurns(20*time.Millisecond, everySeat)
	turns.StartTurn(game.SeatOne)
	require.Eventually(t, func() bool {
		return len(recorder.expiredSeats()) == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, []game.Seat{game.SeatOne}, recorder.expiredSeats())
}

func TestCountdownDisabledForBotSeats(t *testing.T) {
	noSeat := func(game.Seat) bool { return false }
	turns, _, recorder, _ := newTestTurns(10*time.Millisecond, noSeat)
	turns.StartTurn(game.SeatOne)
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, recorder.expiredSeats())
}

func TestPauseHoldsTheCountdown(t *testing.T) {
	turns, _, recorder, _ := newTestTurns(30*time.Millisecond, everySeat)
	turns.StartTurn(game.SeatOne)
	turns.Pause()
	time.Sleep(60 * time.Millisecond)
	require.Empty(t, recorder.expiredSeats())

	turns.Resume()
	require.Eventually(t, func() bool {
		return len(recorder.expiredSeats()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStopKillsTheCountdown(t *testing.T) {
	turns, _, recorder, _ := newTestTurns(10*time.Millisecond, everySeat)
	turns.StartTurn(game.SeatOne)
	turns.Stop()
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, recorder.expiredSeats())
}
