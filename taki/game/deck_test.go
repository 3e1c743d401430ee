package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestDeckConservesEveryCard(t *testing.T) {
	cards, err := card.Catalog()
	require.NoError(t, err)
	deck := game.NewDeck(cards, newTestRand())

	seen := map[string]int{}
	for {
		drawn, err := deck.Draw()
		if err != nil {
			break
		}
		seen[drawn.ID()]++
	}

	expected := map[string]int{}
	for _, c := range cards {
		expected[c.ID()]++
	}
	require.Equal(t, expected, seen)
}

func TestDeckReshufflesDiscardsPreservingTop(t *testing.T) {
	cards := []card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewNumberCard(color.Blue, 7),
	}
	deck := game.NewDeck(cards, newTestRand())
	for i := 0; i < 2; i++ {
		drawn, err := deck.Draw()
		require.NoError(t, err)
		deck.Discard(drawn)
	}
	top, ok := deck.PeekTop()
	require.True(t, ok)
	require.Equal(t, 0, deck.DrawCount())

	// The next draw recycles every discard except the active card.
	drawn, err := deck.Draw()
	require.NoError(t, err)
	require.False(t, drawn.Equal(top))

	topAfter, ok := deck.PeekTop()
	require.True(t, ok)
	require.True(t, top.Equal(topAfter))
}

func TestDeckDrawManyIsBestEffort(t *testing.T) {
	cards := []card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewNumberCard(color.Blue, 7),
		card.NewNumberCard(color.Green, 3),
	}
	deck := game.NewDeck(cards, newTestRand())
	drawn := deck.DrawMany(5)
	require.Len(t, drawn, 3)
	require.Equal(t, 0, deck.DrawCount())
}

func TestDeckExhaustionIsAnError(t *testing.T) {
	deck := game.NewDeck(nil, newTestRand())
	_, err := deck.Draw()
	require.ErrorIs(t, err, game.ErrDeckExhausted)
}

func TestDeckPlaceBottomGoesUnderTheDrawPile(t *testing.T) {
	cards := []card.Card{card.NewNumberCard(color.Red, 5)}
	deck := game.NewDeck(cards, newTestRand())
	wild := card.NewSuperTakiCard()
	deck.PlaceBottom(wild)

	first, err := deck.Draw()
	require.NoError(t, err)
	require.True(t, first.Equal(card.NewNumberCard(color.Red, 5)))
	second, err := deck.Draw()
	require.NoError(t, err)
	require.True(t, second.Equal(wild))
}
