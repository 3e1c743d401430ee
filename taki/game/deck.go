package game

import (
	"math/rand"

	"github.com/taki-online/server/taki/card"
)

// Deck holds the draw pile and the discard pile. The top of the discard
// pile is the active card of the match. A card is always in exactly one of
// {draw pile, discard pile, a hand}; the deck never mints new cards.
type Deck struct {
	rng     *rand.Rand
	draw    []card.Card
	discard []card.Card
}

// NewDeck shuffles cards into the draw pile using rng. rng is required so
// matches can be replayed deterministically under test.
func NewDeck(cards []card.Card, rng *rand.Rand) *Deck {
	deck := &Deck{
		rng:  rng,
		draw: append(make([]card.Card, 0, len(cards)), cards...),
	}
	deck.Shuffle()
	return deck
}

// Shuffle randomizes the draw pile in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw removes and returns the next card of the draw pile. An empty draw
// pile is reshuffled transparently from the discard pile, preserving the
// top discard in place. Returns ErrDeckExhausted when both piles are out.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.draw) == 0 {
		d.reshuffle()
	}
	if len(d.draw) == 0 {
		return card.Card{}, ErrDeckExhausted
	}
	drawn := d.draw[0]
	d.draw = d.draw[1:]
	return drawn, nil
}

// DrawMany draws up to amount cards, one Draw at a time, stopping early if
// the deck runs dry. Short returns are not an error; callers check the
// returned length.
func (d *Deck) DrawMany(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := d.Draw()
		if err != nil {
			break
		}
		cards = append(cards, drawn)
	}
	return cards
}

// PlaceBottom returns a card under the draw pile. Used when the flipped
// starting card is not allowed to start the match.
func (d *Deck) PlaceBottom(c card.Card) {
	d.draw = append(d.draw, c)
}

// Discard pushes a card onto the discard pile, making it the active card.
func (d *Deck) Discard(c card.Card) {
	d.discard = append(d.discard, c)
}

// PeekTop returns the active card without removing it.
func (d *Deck) PeekTop() (card.Card, bool) {
	if len(d.discard) == 0 {
		return card.Card{}, false
	}
	return d.discard[len(d.discard)-1], true
}

func (d *Deck) DrawCount() int {
	return len(d.draw)
}

func (d *Deck) DiscardCount() int {
	return len(d.discard)
}

// reshuffle moves every discard except the top one back into the draw pile.
// Needs at least two discards, otherwise there is nothing to recycle.
func (d *Deck) reshuffle() {
	if len(d.discard) < 2 {
		return
	}
	top := d.discard[len(d.discard)-1]
	d.draw = append(d.draw, d.discard[:len(d.discard)-1]...)
	d.discard = d.discard[:0]
	d.discard = append(d.discard, top)
	d.Shuffle()
}
