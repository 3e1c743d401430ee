// Package player provides the computer opponent: a pure decision maker
// consuming the same game view and legality rules as the human path, and a
// driver that feeds its decisions into the resolver behind a thinking
// delay.
package player

import (
	"math/rand"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

// specialBias is how often the computer prefers a special card over a
// number card when both are playable.
const specialBias = 0.7

type DecisionKind int

const (
	DecisionPlay DecisionKind = iota
	DecisionDraw
	DecisionEndTurn
	DecisionPickColor
	DecisionCloseSequence
)

// Decision is one resolver operation the computer wants to take.
type Decision struct {
	Kind  DecisionKind
	Card  card.Card
	Color color.Color
}

type Computer struct {
	name string
	rng  *rand.Rand
}

func NewComputer(name string, rng *rand.Rand) *Computer {
	return &Computer{name: name, rng: rng}
}

func (c *Computer) Name() string {
	return c.name
}

func (c *Computer) Bot() bool {
	return true
}

// MakeDecision picks the computer's next action, in strict priority order:
// answer a color selection, continue or break a PlusTwo chain, extend or
// close an own sequence, then the normal play-or-draw turn.
func (c *Computer) MakeDecision(view game.View) Decision {
	if view.Interaction == game.InteractionColorSelection {
		return Decision{Kind: DecisionPickColor, Color: game.MostFrequentColor(view.Hand)}
	}
	if view.ChainCount > 0 {
		// Always keep the chain alive while holding a PlusTwo.
		for _, handCard := range view.Legal {
			if handCard.Type() == card.PlusTwo {
				return Decision{Kind: DecisionPlay, Card: handCard}
			}
		}
		return Decision{Kind: DecisionDraw}
	}
	if view.SequenceOwner {
		// Greedily extend with any random legal card, then close.
		if len(view.Legal) > 0 {
			return Decision{Kind: DecisionPlay, Card: view.Legal[c.rng.Intn(len(view.Legal))]}
		}
		return Decision{Kind: DecisionCloseSequence}
	}
	if view.CanPlay && len(view.Legal) > 0 {
		return Decision{Kind: DecisionPlay, Card: c.pickCard(view.Legal)}
	}
	if view.CanDraw {
		return Decision{Kind: DecisionDraw}
	}
	return Decision{Kind: DecisionEndTurn}
}

func (c *Computer) pickCard(legal []card.Card) card.Card {
	var specials, numbers []card.Card
	for _, legalCard := range legal {
		if legalCard.Type() == card.Number {
			numbers = append(numbers, legalCard)
		} else {
			specials = append(specials, legalCard)
		}
	}
	if len(specials) > 0 && (len(numbers) == 0 || c.rng.Float64() < specialBias) {
		return specials[c.rng.Intn(len(specials))]
	}
	return numbers[c.rng.Intn(len(numbers))]
}
