package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

func TestHandRemovesOneCopyAtATime(t *testing.T) {
	redFive := card.NewNumberCard(color.Red, 5)
	hand := game.NewHand()
	hand.AddCards([]card.Card{redFive, redFive})

	require.True(t, hand.RemoveCard(redFive))
	require.True(t, hand.Contains(redFive))
	require.True(t, hand.RemoveCard(redFive))
	require.False(t, hand.RemoveCard(redFive))
	require.True(t, hand.Empty())
}

func TestHandCardsReturnsACopy(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewTakiCard(color.Blue)})

	cards := hand.Cards()
	cards[0] = card.NewSuperTakiCard()
	require.True(t, hand.Contains(card.NewTakiCard(color.Blue)))
	require.Equal(t, 1, hand.Size())
}
