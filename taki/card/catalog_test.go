package card_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

func TestCatalogComposition(t *testing.T) {
	cards, err := card.Catalog()
	require.NoError(t, err)
	require.Len(t, cards, card.CatalogSize)

	byType := map[card.Type]int{}
	byColor := map[string]int{}
	wilds := 0
	for _, c := range cards {
		byType[c.Type()]++
		if c.IsWild() {
			wilds++
		} else {
			byColor[c.Color().Name()]++
		}
	}

	require.Equal(t, 64, byType[card.Number])
	require.Equal(t, 8, byType[card.Plus])
	require.Equal(t, 8, byType[card.Stop])
	require.Equal(t, 8, byType[card.ChangeDirection])
	require.Equal(t, 8, byType[card.PlusTwo])
	require.Equal(t, 8, byType[card.Taki])
	require.Equal(t, 4, byType[card.ChangeColor])
	require.Equal(t, 2, byType[card.SuperTaki])
	require.Equal(t, 6, wilds)
	for _, cardColor := range color.All {
		require.Equal(t, 26, byColor[cardColor.Name()], cardColor.Name())
	}
}

func TestCatalogHasNoNumberTwo(t *testing.T) {
	cards, err := card.Catalog()
	require.NoError(t, err)
	for _, c := range cards {
		if c.Type() == card.Number {
			require.NotEqual(t, 2, c.Number())
		}
	}
}
