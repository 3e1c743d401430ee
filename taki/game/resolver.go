package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/event"
)

const startingHandSize = 8

// gate is the per-turn bookkeeping of the strict turn flow: exactly one
// action (play or draw) per turn unless a special card grants another, and
// End Turn only once the budget is spent.
type gate struct {
	canPlay     bool
	canDraw     bool
	canEnd      bool
	actionsLeft int
}

type seatState struct {
	player Player
	hand   *Hand
}

// Config wires a match. Every collaborator is required; construction fails
// instead of limping along with partial wiring.
type Config struct {
	Players   [2]Player
	Cards     []card.Card // defaults to the full catalog
	Rand      *rand.Rand
	TurnLimit time.Duration // 0 disables the human turn countdown
	Logger    *logrus.Logger
}

// Resolver owns the rules of a single match: it validates every play and
// draw against the state machine, dispatches card effects, drives the
// PlusTwo chain and TAKI sequence protocols, and decides when the turn may
// end and when a winner exists. Human screens and the computer driver are
// both just callers of its operations.
type Resolver struct {
	mu    sync.Mutex
	id    uuid.UUID
	log   *logrus.Entry
	bus   *event.Bus
	state *State
	deck  *Deck
	turns *Turns
	seats [2]seatState
	gate  gate

	started bool
	paused  *pausedMatch
	starter card.Card
}

// pausedMatch is the full snapshot taken on pause; resume restores it
// exactly, chain and sequence counters included.
type pausedMatch struct {
	state Snapshot
	gate  gate
}

func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.Players[SeatOne] == nil || cfg.Players[SeatTwo] == nil {
		return nil, fmt.Errorf("resolver needs two players")
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("resolver needs a random source")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("resolver needs a logger")
	}
	cards := cfg.Cards
	if cards == nil {
		var err error
		cards, err = card.Catalog()
		if err != nil {
			return nil, err
		}
	}
	bus := event.NewBus()
	state := NewState(bus)
	r := &Resolver{
		id:    uuid.New(),
		bus:   bus,
		state: state,
		deck:  NewDeck(cards, cfg.Rand),
		turns: NewTurns(state, bus, cfg.TurnLimit),
	}
	r.log = cfg.Logger.WithField("match", r.id.String())
	for seat := SeatOne; seat <= SeatTwo; seat++ {
		r.seats[seat] = seatState{player: cfg.Players[seat], hand: NewHand()}
	}
	r.turns.Bind(r.nameOf, r.countdownFor, r.resetGate, r.expire)
	return r, nil
}

func (r *Resolver) ID() uuid.UUID {
	return r.id
}

// Bus exposes the match notifications. Register listeners before Start.
func (r *Resolver) Bus() *event.Bus {
	return r.bus
}

// Start deals both hands, flips the starting card and opens seat one's
// turn. Wild cards are not allowed to start the discard pile; they go back
// under the draw pile until a colored card comes up.
func (r *Resolver) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return fmt.Errorf("match already started")
	}
	r.started = true
	for seat := SeatOne; seat <= SeatTwo; seat++ {
		r.seats[seat].hand.AddCards(r.deck.DrawMany(startingHandSize))
	}
	for {
		flipped, err := r.deck.Draw()
		if err != nil {
			return err
		}
		if flipped.IsWild() {
			r.deck.PlaceBottom(flipped)
			continue
		}
		r.starter = flipped
		r.deck.Discard(flipped)
		r.state.ChangeActiveColor(flipped.Color())
		break
	}
	r.log.WithField("starter", r.starter.ID()).Info("match started")
	r.turns.StartTurn(SeatOne)
	r.prompt()
	return nil
}

// Play resolves one card played by seat. Invalid attempts mutate nothing
// and leave the turn flow untouched.
func (r *Resolver) Play(seat Seat, c card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.play(seat, c); err != nil {
		return err
	}
	r.prompt()
	return nil
}

// Draw resolves seat's draw action. While a PlusTwo chain is open this is
// the explicit chain break: the full penalty is drawn and the turn ends.
func (r *Resolver) Draw(seat Seat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.draw(seat); err != nil {
		return err
	}
	r.prompt()
	return nil
}

// EndTurn hands the turn over once the action budget is spent.
func (r *Resolver) EndTurn(seat Seat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guardActor(seat); err != nil {
		return err
	}
	if !r.gate.canEnd {
		return ErrEndTurnNotAvailable
	}
	r.turns.EndTurn()
	r.prompt()
	return nil
}

// PickColor answers an open color selection (ChangeColor card).
func (r *Resolver) PickColor(seat Seat, chosen color.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.pickColor(seat, chosen); err != nil {
		return err
	}
	r.prompt()
	return nil
}

// CloseSequence ends the initiator's open TAKI sequence. The last card of
// the sequence is then resolved for its own effect as though just played.
func (r *Resolver) CloseSequence(seat Seat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.closeSequence(seat); err != nil {
		return err
	}
	r.prompt()
	return nil
}

// Pause freezes timers and captures a full snapshot of the state machine
// and the turn-flow gate, in-flight chain/sequence counters included.
func (r *Resolver) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state.Status() {
	case StatusPaused:
		return ErrAlreadyPaused
	case StatusOver:
		return ErrGameNotActive
	}
	r.paused = &pausedMatch{state: r.state.Snapshot(), gate: r.gate}
	r.turns.Pause()
	r.state.ChangeStatus(StatusPaused)
	r.log.Info("match paused")
	return nil
}

// Resume restores the pause snapshot exactly and restarts the countdown
// with the time that was left.
func (r *Resolver) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Status() != StatusPaused || r.paused == nil {
		return ErrNotPaused
	}
	r.state.Restore(r.paused.state)
	r.gate = r.paused.gate
	r.paused = nil
	r.turns.Resume()
	r.log.Info("match resumed")
	r.prompt()
	return nil
}

// Abort closes the match without a winner (disconnect, room abandoned).
func (r *Resolver) Abort() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns.Stop()
	r.state.ChangeTurn(SeatNone)
	r.state.ChangeInteraction(InteractionNormal)
	r.state.ChangeStatus(StatusOver)
}

func (r *Resolver) play(seat Seat, c card.Card) error {
	if err := r.guardActor(seat); err != nil {
		return err
	}
	if r.state.Interaction() == InteractionColorSelection {
		return ErrColorChoicePending
	}
	if !r.gate.canPlay {
		return ErrActionNotAvailable
	}
	hand := r.seats[seat].hand
	if !hand.Contains(c) {
		return ErrCardNotInHand
	}
	top, _ := r.deck.PeekTop()
	if !r.state.IsValidMove(c, top) {
		r.log.WithFields(logrus.Fields{"seat": seat, "card": c.ID()}).Debug("invalid move attempt")
		return ErrInvalidMove
	}
	hand.RemoveCard(c)
	r.deck.Discard(c)

	if r.state.Sequence().Active {
		if !c.IsWild() {
			r.state.ChangeActiveColor(c.Color())
		}
		r.state.ExtendSequence()
		r.bus.CardPlayed.Emit(event.CardPlayedPayload{
			Seat:          int(seat),
			PlayerName:    r.nameOf(seat),
			Card:          c,
			InSequence:    true,
			SequenceCount: r.state.Sequence().Count,
		})
		if c.Type() != card.Number {
			// Effects inside a sequence fire only for the closing card.
			r.log.WithField("card", c.ID()).Debug("special card played mid-sequence, no effect")
		}
		return nil
	}

	if !c.IsWild() {
		r.state.ChangeActiveColor(c.Color())
	}

	switch c.Type() {
	case card.Taki:
		r.openSequence(seat, c, c.Color())
	case card.SuperTaki:
		sequenceColor := r.state.ActiveColor()
		if sequenceColor == nil {
			sequenceColor = MostFrequentColor(hand.Cards())
		}
		r.state.ChangeActiveColor(sequenceColor)
		r.openSequence(seat, c, sequenceColor)
	default:
		r.bus.CardPlayed.Emit(event.CardPlayedPayload{
			Seat:       int(seat),
			PlayerName: r.nameOf(seat),
			Card:       c,
		})
		r.resolveEffect(seat, c)
	}
	return nil
}

func (r *Resolver) openSequence(seat Seat, c card.Card, sequenceColor color.Color) {
	r.state.OpenSequence(sequenceColor, seat)
	r.gate.canPlay = true
	r.gate.canDraw = false
	r.gate.canEnd = false
	r.bus.CardPlayed.Emit(event.CardPlayedPayload{
		Seat:          int(seat),
		PlayerName:    r.nameOf(seat),
		Card:          c,
		InSequence:    true,
		SequenceCount: 1,
	})
}

// resolveEffect applies a card's effect at its resolution point: played
// outside a sequence, or the closing card of one. Taki/SuperTaki never
// reach here.
func (r *Resolver) resolveEffect(seat Seat, c card.Card) {
	switch c.Type() {
	case card.Plus:
		// One mandatory extra action before End Turn, even on an empty hand.
		r.gate.actionsLeft++
		r.completeAction(seat)
	case card.Stop:
		r.completeAction(seat)
		if r.state.Status() == StatusOver {
			return
		}
		r.turns.SkipTurn()
	case card.ChangeDirection:
		r.state.ChangeDirection(r.state.Direction().Toggle())
		r.completeAction(seat)
	case card.ChangeColor:
		r.state.ChangeInteraction(InteractionColorSelection)
		r.gate.canPlay = false
		r.gate.canDraw = false
		r.gate.canEnd = false
	case card.PlusTwo:
		if r.state.Chain().Active {
			r.state.GrowChain()
		} else {
			r.state.StartChain(seat)
		}
		r.completeAction(seat)
	default:
		r.completeAction(seat)
	}
}

func (r *Resolver) draw(seat Seat) error {
	if err := r.guardActor(seat); err != nil {
		return err
	}
	if r.state.Interaction() == InteractionColorSelection {
		return ErrColorChoicePending
	}
	if r.state.Sequence().Active {
		return ErrDrawDuringSequence
	}
	if !r.gate.canDraw {
		return ErrActionNotAvailable
	}
	if r.state.Chain().Active {
		return r.breakChain(seat)
	}
	hand := r.seats[seat].hand
	drawn, err := r.deck.Draw()
	requested, got := 1, 1
	if err != nil {
		got = 0
		r.log.Warn("draw pile and discard pile are both exhausted")
	} else {
		hand.AddCards([]card.Card{drawn})
	}
	r.gate.canDraw = false
	r.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       int(seat),
		PlayerName: r.nameOf(seat),
		Requested:  requested,
		Drawn:      got,
	})
	r.completeAction(seat)
	return nil
}

// breakChain is the only way a chain ends: the responder draws the full
// escalated penalty and the turn passes. Best effort on an exhausted deck.
func (r *Resolver) breakChain(seat Seat) error {
	penalty := r.state.Chain().Penalty()
	cards := r.deck.DrawMany(penalty)
	r.seats[seat].hand.AddCards(cards)
	r.state.BreakChain()
	if len(cards) < penalty {
		r.log.WithFields(logrus.Fields{"penalty": penalty, "drawn": len(cards)}).
			Warn("deck exhausted while drawing chain penalty")
	}
	r.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       int(seat),
		PlayerName: r.nameOf(seat),
		Requested:  penalty,
		Drawn:      len(cards),
	})
	r.bus.ChainBroken.Emit(event.ChainBrokenPayload{
		Seat:       int(seat),
		PlayerName: r.nameOf(seat),
		Penalty:    penalty,
		Drawn:      len(cards),
	})
	r.gate = gate{}
	if r.declareFirstEmptyHand() {
		return nil
	}
	r.turns.EndTurn()
	return nil
}

func (r *Resolver) pickColor(seat Seat, chosen color.Color) error {
	if err := r.guardActor(seat); err != nil {
		return err
	}
	if r.state.Interaction() != InteractionColorSelection {
		return ErrNoColorChoice
	}
	if chosen == nil {
		return fmt.Errorf("a color must be named")
	}
	r.state.ChangeActiveColor(chosen)
	r.state.ChangeInteraction(InteractionNormal)
	r.bus.ColorPicked.Emit(event.ColorPickedPayload{
		Seat:       int(seat),
		PlayerName: r.nameOf(seat),
		Color:      chosen,
	})
	r.completeAction(seat)
	return nil
}

func (r *Resolver) closeSequence(seat Seat) error {
	if err := r.guardActor(seat); err != nil {
		return err
	}
	sequence := r.state.Sequence()
	if !sequence.Active {
		return ErrNoOpenSequence
	}
	if sequence.Initiator != seat {
		return ErrNotSequenceOwner
	}
	last, _ := r.deck.PeekTop()
	r.state.CloseSequence()
	r.bus.SequenceClosed.Emit(event.SequenceClosedPayload{
		Seat:       int(seat),
		PlayerName: r.nameOf(seat),
		LastCard:   last,
		Count:      sequence.Count,
	})
	switch last.Type() {
	case card.Taki, card.SuperTaki:
		// A sequence closed on its own opener resolves to nothing.
		r.completeAction(seat)
	default:
		r.resolveEffect(seat, last)
	}
	return nil
}

// completeAction spends one unit of the turn's action budget and gates End
// Turn accordingly, then evaluates the win condition.
func (r *Resolver) completeAction(seat Seat) {
	r.gate.actionsLeft--
	if r.gate.actionsLeft > 0 {
		r.gate.canPlay = true
		r.gate.canDraw = true
		r.gate.canEnd = false
	} else {
		r.gate.canPlay = false
		r.gate.canDraw = false
		r.gate.canEnd = true
	}
	r.tryWin(seat)
}

// tryWin declares seat the winner only once every obligation has cleared:
// no chain, no sequence, no pending color choice, no mandatory action left.
func (r *Resolver) tryWin(seat Seat) bool {
	if !r.seats[seat].hand.Empty() {
		return false
	}
	if r.gate.actionsLeft > 0 || r.state.Interaction() != InteractionNormal {
		return false
	}
	if r.state.Chain().Active || r.state.Sequence().Active {
		return false
	}
	r.declareWinner(seat)
	return true
}

// declareFirstEmptyHand re-evaluates deferred wins after a chain resolves:
// a player who emptied their hand into the chain wins only now.
func (r *Resolver) declareFirstEmptyHand() bool {
	for seat := SeatOne; seat <= SeatTwo; seat++ {
		if r.seats[seat].hand.Empty() {
			r.declareWinner(seat)
			return true
		}
	}
	return false
}

func (r *Resolver) declareWinner(seat Seat) {
	r.turns.Stop()
	if err := r.state.DeclareWinner(seat, r.nameOf(seat)); err != nil {
		// Guarded by the callers; reaching this is a rules bug.
		r.log.WithField("seat", seat).Error(err)
	}
}

// expire handles the turn countdown running out: the equivalent of the
// player drawing and ending the turn, with open interactions settled first.
func (r *Resolver) expire(seat Seat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Status() != StatusActive || r.state.Turn() != seat {
		return
	}
	r.log.WithField("seat", seat).Info("turn time limit expired")
	for i := 0; i < 8; i++ {
		if r.state.Status() != StatusActive || r.state.Turn() != seat {
			break
		}
		switch {
		case r.state.Interaction() == InteractionColorSelection:
			_ = r.pickColor(seat, MostFrequentColor(r.seats[seat].hand.Cards()))
		case r.state.Sequence().Active:
			_ = r.closeSequence(seat)
		case r.gate.canDraw:
			_ = r.draw(seat)
		case r.gate.canEnd:
			r.turns.EndTurn()
		default:
			return
		}
	}
	r.prompt()
}

func (r *Resolver) guardActor(seat Seat) error {
	if r.state.Status() != StatusActive {
		return ErrGameNotActive
	}
	if r.state.Turn() != seat {
		return ErrNotYourTurn
	}
	return nil
}

// resetGate opens a fresh turn: one action, End Turn locked.
func (r *Resolver) resetGate(Seat) {
	r.gate = gate{canPlay: true, canDraw: true, actionsLeft: 1}
}

func (r *Resolver) prompt() {
	if r.state.Status() != StatusActive {
		return
	}
	seat := r.state.Turn()
	if !seat.Valid() {
		return
	}
	r.bus.ActionRequired.Emit(event.ActionRequiredPayload{
		Seat:       int(seat),
		PlayerName: r.nameOf(seat),
	})
}

func (r *Resolver) nameOf(seat Seat) string {
	return r.seats[seat].player.Name()
}

func (r *Resolver) countdownFor(seat Seat) bool {
	return !r.seats[seat].player.Bot()
}

// MostFrequentColor is the shared color heuristic: the color appearing most
// in hand, wild cards counting toward every color. Blue for empty hands.
func MostFrequentColor(cards []card.Card) color.Color {
	if len(cards) == 0 {
		return color.Blue
	}
	colorCounts := make(map[color.Color]int)
	for _, c := range cards {
		if c.Color() == nil {
			for _, anyColor := range color.All {
				colorCounts[anyColor]++
			}
		} else {
			colorCounts[c.Color()]++
		}
	}
	var (
		mostFrequentColor       color.Color
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.All {
		if colorCounts[availableColor] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[availableColor]
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}
