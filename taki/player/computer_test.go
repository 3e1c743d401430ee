package player_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
	"github.com/taki-online/server/taki/player"
)

func newComputer() *player.Computer {
	return player.NewComputer("Takito", rand.New(rand.NewSource(3)))
}

func TestComputerAnswersColorSelectionWithMostFrequentColor(t *testing.T) {
	computer := newComputer()
	view := game.View{
		Interaction: game.InteractionColorSelection,
		Hand: []card.Card{
			card.NewNumberCard(color.Green, 3),
			card.NewNumberCard(color.Green, 7),
			card.NewNumberCard(color.Red, 5),
		},
	}
	decision := computer.MakeDecision(view)
	require.Equal(t, player.DecisionPickColor, decision.Kind)
	require.Equal(t, color.Green, decision.Color)
}

func TestComputerKeepsAPlusTwoChainAlive(t *testing.T) {
	computer := newComputer()
	bluePlusTwo := card.NewPlusTwoCard(color.Blue)
	view := game.View{
		ChainCount: 1,
		CanPlay:    true,
		CanDraw:    true,
		Legal:      []card.Card{bluePlusTwo},
	}
	decision := computer.MakeDecision(view)
	require.Equal(t, player.DecisionPlay, decision.Kind)
	require.True(t, decision.Card.Equal(bluePlusTwo))
}

func TestComputerBreaksTheChainWithoutAPlusTwo(t *testing.T) {
	computer := newComputer()
	view := game.View{
		ChainCount: 2,
		CanPlay:    true,
		CanDraw:    true,
		Legal:      []card.Card{},
	}
	decision := computer.MakeDecision(view)
	require.Equal(t, player.DecisionDraw, decision.Kind)
}

func TestComputerExtendsItsOwnSequenceThenCloses(t *testing.T) {
	computer := newComputer()
	redSeven := card.NewNumberCard(color.Red, 7)
	extending := game.View{
		SequenceOwner: true,
		SequenceCount: 1,
		CanPlay:       true,
		Legal:         []card.Card{redSeven},
	}
	decision := computer.MakeDecision(extending)
	require.Equal(t, player.DecisionPlay, decision.Kind)
	require.True(t, decision.Card.Equal(redSeven))

	exhausted := game.View{
		SequenceOwner: true,
		SequenceCount: 2,
		CanPlay:       true,
		Legal:         nil,
	}
	decision = computer.MakeDecision(exhausted)
	require.Equal(t, player.DecisionCloseSequence, decision.Kind)
}

func TestComputerDrawsWhenNothingIsPlayable(t *testing.T) {
	computer := newComputer()
	view := game.View{
		CanPlay: true,
		CanDraw: true,
		Legal:   nil,
	}
	require.Equal(t, player.DecisionDraw, computer.MakeDecision(view).Kind)
}

func TestComputerEndsTheTurnWithTheBudgetSpent(t *testing.T) {
	computer := newComputer()
	view := game.View{CanEnd: true}
	require.Equal(t, player.DecisionEndTurn, computer.MakeDecision(view).Kind)
}

func TestComputerPlaysOnlyLegalCards(t *testing.T) {
	computer := newComputer()
	legal := []card.Card{
		card.NewNumberCard(color.Red, 7),
		card.NewStopCard(color.Red),
		card.NewTakiCard(color.Red),
	}
	view := game.View{CanPlay: true, Legal: legal}
	for i := 0; i < 50; i++ {
		decision := computer.MakeDecision(view)
		require.Equal(t, player.DecisionPlay, decision.Kind)
		found := false
		for _, legalCard := range legal {
			if decision.Card.Equal(legalCard) {
				found = true
			}
		}
		require.True(t, found)
	}
}
