package game

import (
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

// View is the read-only picture one seat gets of the match: its own hand,
// the public table state, and which actions the gate currently allows it.
// Legal is the hand filtered through the same IsValidMove used on play, so
// decision makers and the engine can never disagree on legality.
type View struct {
	Seat          Seat
	Hand          []card.Card
	Legal         []card.Card
	Top           card.Card
	ActiveColor   color.Color
	Interaction   Interaction
	Status        Status
	Direction     Direction
	ChainCount    int
	ChainPenalty  int
	SequenceColor color.Color
	SequenceCount int
	SequenceOwner bool
	OpponentCards int
	DrawPileCount int
	CanPlay       bool
	CanDraw       bool
	CanEnd        bool
}

// View builds seat's current view. Legal and the Can* flags are zero unless
// it is seat's turn.
func (r *Resolver) View(seat Seat) View {
	r.mu.Lock()
	defer r.mu.Unlock()
	top, _ := r.deck.PeekTop()
	chain := r.state.Chain()
	sequence := r.state.Sequence()
	view := View{
		Seat:          seat,
		Hand:          r.seats[seat].hand.Cards(),
		Top:           top,
		ActiveColor:   r.state.ActiveColor(),
		Interaction:   r.state.Interaction(),
		Status:        r.state.Status(),
		Direction:     r.state.Direction(),
		ChainCount:    chain.Count,
		ChainPenalty:  chain.Penalty(),
		SequenceColor: sequence.Color,
		SequenceCount: sequence.Count,
		SequenceOwner: sequence.Active && sequence.Initiator == seat,
		OpponentCards: r.seats[seat.Other()].hand.Size(),
		DrawPileCount: r.deck.DrawCount(),
	}
	if r.state.Turn() == seat && r.state.Status() == StatusActive {
		view.CanPlay = r.gate.canPlay
		view.CanDraw = r.gate.canDraw
		view.CanEnd = r.gate.canEnd
		for _, handCard := range view.Hand {
			if r.state.IsValidMove(handCard, top) {
				view.Legal = append(view.Legal, handCard)
			}
		}
	}
	return view
}

// CurrentSeat reports whose turn it is.
func (r *Resolver) CurrentSeat() Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Turn()
}

// MatchStatus reports the overall status axis.
func (r *Resolver) MatchStatus() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Status()
}

// Winner reports the winning seat, SeatNone while the match runs.
func (r *Resolver) Winner() Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Winner()
}

// StartingCard is the card that opened the discard pile.
func (r *Resolver) StartingCard() card.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starter
}

// HandOf exposes a seat's hand for the initial state broadcast.
func (r *Resolver) HandOf(seat Seat) []card.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats[seat].hand.Cards()
}

// DrawPileCount reports the size of the draw pile.
func (r *Resolver) DrawPileCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deck.DrawCount()
}

// PlayerName resolves a seat to its occupant's name.
func (r *Resolver) PlayerName(seat Seat) string {
	if !seat.Valid() {
		return ""
	}
	return r.seats[seat].player.Name()
}
