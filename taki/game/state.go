package game

import (
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/event"
)

// Seat identifies one of the two places at the table. SeatNone marks the
// neutral state between matches and after a win.
type Seat int

const (
	SeatNone Seat = -1
	SeatOne  Seat = 0
	SeatTwo  Seat = 1
)

func (s Seat) Other() Seat {
	switch s {
	case SeatOne:
		return SeatTwo
	case SeatTwo:
		return SeatOne
	}
	return SeatNone
}

func (s Seat) Valid() bool {
	return s == SeatOne || s == SeatTwo
}

func (s Seat) String() string {
	switch s {
	case SeatOne:
		return "seat1"
	case SeatTwo:
		return "seat2"
	}
	return "neutral"
}

type Interaction int

const (
	InteractionNormal Interaction = iota
	InteractionColorSelection
	InteractionTakiSequence
	InteractionPlusTwoChain
)

func (i Interaction) String() string {
	switch i {
	case InteractionColorSelection:
		return "color_selection"
	case InteractionTakiSequence:
		return "taki_sequence"
	case InteractionPlusTwoChain:
		return "plus_two_chain"
	}
	return "normal"
}

type Status int

const (
	StatusActive Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game_over"
	}
	return "active"
}

// Direction is cosmetic with two seats, but it is tracked, toggled by
// ChangeDirection cards and carried through snapshots.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) Toggle() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter_clockwise"
	}
	return "clockwise"
}

// ChainState tracks a run of consecutively played PlusTwo cards.
type ChainState struct {
	Active    bool
	Count     int
	Initiator Seat
}

// Penalty is the forced draw owed by whoever breaks the chain.
func (c ChainState) Penalty() int {
	return c.Count * 2
}

// SequenceState tracks an open Taki/SuperTaki run. While active, legality
// narrows to cards of Color (or wild-type cards).
type SequenceState struct {
	Active    bool
	Color     color.Color
	Count     int
	Initiator Seat
}

// Snapshot is a full copy of the state machine, captured on pause and
// restored on resume.
type Snapshot struct {
	Turn        Seat
	Interaction Interaction
	Status      Status
	ActiveColor color.Color
	Direction   Direction
	Chain       ChainState
	Sequence    SequenceState
	Winner      Seat
}

// State is the multi-axis state machine of one match: whose turn it is,
// which special interaction is open, overall status, the color to match,
// direction, and the chain/sequence counters. Mutation goes through the
// Change commands, which no-op on equal values and notify otherwise.
type State struct {
	bus         *event.Bus
	turn        Seat
	interaction Interaction
	status      Status
	activeColor color.Color
	direction   Direction
	chain       ChainState
	sequence    SequenceState
	winner      Seat
}

func NewState(bus *event.Bus) *State {
	return &State{
		bus:    bus,
		turn:   SeatNone,
		winner: SeatNone,
	}
}

func (s *State) Turn() Seat                { return s.turn }
func (s *State) Interaction() Interaction  { return s.interaction }
func (s *State) Status() Status            { return s.status }
func (s *State) ActiveColor() color.Color  { return s.activeColor }
func (s *State) Direction() Direction      { return s.direction }
func (s *State) Chain() ChainState         { return s.chain }
func (s *State) Sequence() SequenceState   { return s.sequence }
func (s *State) Winner() Seat              { return s.winner }

func (s *State) ChangeTurn(seat Seat) {
	if s.turn == seat {
		return
	}
	s.turn = seat
	s.notify(event.AspectTurnState, seat.String())
}

func (s *State) ChangeInteraction(interaction Interaction) {
	if s.interaction == interaction {
		return
	}
	s.interaction = interaction
	s.notify(event.AspectInteractionState, interaction.String())
}

func (s *State) ChangeStatus(status Status) {
	if s.status == status {
		return
	}
	s.status = status
	s.notify(event.AspectGameStatus, status.String())
}

func (s *State) ChangeActiveColor(activeColor color.Color) {
	if s.activeColor == activeColor {
		return
	}
	s.activeColor = activeColor
	value := "unset"
	if activeColor != nil {
		value = activeColor.Name()
	}
	s.notify(event.AspectActiveColor, value)
}

func (s *State) ChangeDirection(direction Direction) {
	if s.direction == direction {
		return
	}
	s.direction = direction
	s.notify(event.AspectTurnDirection, direction.String())
}

// IsValidMove decides legality of playing c on topCard. The normal
// CanPlayOn matching is overridden while a chain or sequence is open.
func (s *State) IsValidMove(c card.Card, topCard card.Card) bool {
	if s.chain.Active {
		return c.Type() == card.PlusTwo
	}
	if s.sequence.Active {
		return c.IsWild() || c.Color() == s.sequence.Color
	}
	return c.CanPlayOn(topCard, s.activeColor)
}

func (s *State) StartChain(initiator Seat) {
	s.chain = ChainState{Active: true, Count: 1, Initiator: initiator}
	s.ChangeInteraction(InteractionPlusTwoChain)
}

func (s *State) GrowChain() {
	s.chain.Count++
}

func (s *State) BreakChain() {
	s.chain = ChainState{}
	s.ChangeInteraction(InteractionNormal)
}

func (s *State) OpenSequence(sequenceColor color.Color, initiator Seat) {
	s.sequence = SequenceState{
		Active:    true,
		Color:     sequenceColor,
		Count:     1,
		Initiator: initiator,
	}
	s.ChangeInteraction(InteractionTakiSequence)
}

func (s *State) ExtendSequence() {
	s.sequence.Count++
}

func (s *State) CloseSequence() {
	s.sequence = SequenceState{}
	s.ChangeInteraction(InteractionNormal)
}

// DeclareWinner closes the match. It must never run while a chain or
// sequence is unresolved; win evaluation is deferred until those clear.
func (s *State) DeclareWinner(seat Seat, name string) error {
	if s.chain.Active || s.sequence.Active {
		return ErrObligationsPending
	}
	s.winner = seat
	s.ChangeStatus(StatusOver)
	s.ChangeTurn(SeatNone)
	s.ChangeInteraction(InteractionNormal)
	s.bus.PlayerWon.Emit(event.PlayerWonPayload{
		Seat:       int(seat),
		PlayerName: name,
	})
	return nil
}

// Snapshot copies every axis and counter of the machine.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Turn:        s.turn,
		Interaction: s.interaction,
		Status:      s.status,
		ActiveColor: s.activeColor,
		Direction:   s.direction,
		Chain:       s.chain,
		Sequence:    s.sequence,
		Winner:      s.winner,
	}
}

// Restore rewinds the machine to a snapshot without emitting change
// notifications; resuming from pause must not replay transitions.
func (s *State) Restore(snapshot Snapshot) {
	s.turn = snapshot.Turn
	s.interaction = snapshot.Interaction
	s.status = snapshot.Status
	s.activeColor = snapshot.ActiveColor
	s.direction = snapshot.Direction
	s.chain = snapshot.Chain
	s.sequence = snapshot.Sequence
	s.winner = snapshot.Winner
}

func (s *State) notify(aspect, value string) {
	s.bus.StateChanged.Emit(event.StateChangedPayload{
		Aspect: aspect,
		Value:  value,
	})
}
