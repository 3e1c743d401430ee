package card_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

func TestIdentifierRoundTrip(t *testing.T) {
	cards := []card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewPlusTwoCard(color.Green),
		card.NewTakiCard(color.Blue),
		card.NewChangeColorCard(),
		card.NewSuperTakiCard(),
	}
	for _, original := range cards {
		decoded, err := card.ByID(original.ID())
		require.NoError(t, err, original.ID())
		require.True(t, original.Equal(decoded), original.ID())
	}
}

func TestIdentifierSharedBetweenCopies(t *testing.T) {
	require.Equal(t, card.NewStopCard(color.Red).ID(), card.NewStopCard(color.Red).ID())
}

func TestByIDRejectsMalformedTokens(t *testing.T) {
	malformed := []string{
		"",
		"red:number",
		"red:number:five",
		"purple:number:5",
		"red:laser:0",
		"wild:number:5",
		"red:supertaki:0",
		"red:stop:3",
	}
	for _, token := range malformed {
		t.Run(token, func(t *testing.T) {
			_, err := card.ByID(token)
			require.Error(t, err)
		})
	}
}
