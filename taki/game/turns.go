package game

import (
	"time"

	"github.com/taki-online/server/taki/event"
)

// Turns switches the current seat, runs the optional per-turn countdown for
// human seats and suspends cleanly across pauses. With two seats, advancing
// is a toggle; a skip restarts the same seat's turn.
//
// The countdown is a plain time.AfterFunc. Expiry is delivered through
// onExpire, which the resolver treats as an implicit draw followed by end
// turn; the callback revalidates under the match lock, so a late fire after
// the turn already ended is harmless.
type Turns struct {
	state *State
	bus   *event.Bus
	limit time.Duration // 0 disables the countdown

	nameOf       func(Seat) string
	countdownFor func(Seat) bool
	onStart      func(Seat)
	onExpire     func(Seat)

	timer     *time.Timer
	deadline  time.Time
	remaining time.Duration
	paused    bool
}

func NewTurns(state *State, bus *event.Bus, limit time.Duration) *Turns {
	return &Turns{state: state, bus: bus, limit: limit}
}

// Bind wires the resolver callbacks. onStart runs after the seat switch and
// before observers hear TurnStarted, so the turn-flow gate is already reset
// when the notification goes out.
func (t *Turns) Bind(nameOf func(Seat) string, countdownFor func(Seat) bool, onStart, onExpire func(Seat)) {
	t.nameOf = nameOf
	t.countdownFor = countdownFor
	t.onStart = onStart
	t.onExpire = onExpire
}

func (t *Turns) StartTurn(seat Seat) {
	t.startTurn(seat, false)
}

// EndTurn hands the turn to the other seat.
func (t *Turns) EndTurn() {
	t.startTurn(t.state.Turn().Other(), false)
}

// SkipTurn burns the opponent's next turn: the current seat acts again on a
// fresh turn.
func (t *Turns) SkipTurn() {
	t.startTurn(t.state.Turn(), true)
}

// Pause freezes the countdown, remembering how much of it was left.
func (t *Turns) Pause() {
	if t.paused {
		return
	}
	t.paused = true
	t.remaining = 0
	if t.timer != nil {
		t.remaining = time.Until(t.deadline)
		if t.remaining < 0 {
			t.remaining = 0
		}
	}
	t.stopClock()
}

// Resume restarts the countdown with whatever time was left at pause.
func (t *Turns) Resume() {
	if !t.paused {
		return
	}
	t.paused = false
	if t.remaining > 0 {
		t.startClock(t.state.Turn(), t.remaining)
	}
	t.remaining = 0
}

// Stop kills the countdown for good (game over, room abandoned).
func (t *Turns) Stop() {
	t.stopClock()
}

func (t *Turns) startTurn(seat Seat, skipped bool) {
	t.state.ChangeTurn(seat)
	if t.onStart != nil {
		t.onStart(seat)
	}
	t.bus.TurnStarted.Emit(event.TurnStartedPayload{
		Seat:       int(seat),
		PlayerName: t.nameOf(seat),
		Skipped:    skipped,
	})
	t.stopClock()
	if t.limit > 0 && t.countdownFor(seat) {
		t.startClock(seat, t.limit)
	}
}

func (t *Turns) startClock(seat Seat, wait time.Duration) {
	t.deadline = time.Now().Add(wait)
	t.timer = time.AfterFunc(wait, func() {
		t.onExpire(seat)
	})
}

func (t *Turns) stopClock() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
