package card_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

func TestCanPlayOn(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		topCard        card.Card
		activeColor    color.Color
		expectedResult bool
	}{
		{
			description:    "change_color_card_is_always_playable",
			candidateCard:  card.NewChangeColorCard(),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "super_taki_card_is_always_playable",
			candidateCard:  card.NewSuperTakiCard(),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_card_matching_active_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_card_matching_number_not_color",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_card_matching_nothing",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "active_color_overrides_printed_color_of_top_card",
			candidateCard:  card.NewNumberCard(color.Green, 2),
			topCard:        card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Green,
			expectedResult: true,
		},
		{
			description:    "special_card_matching_special_type",
			candidateCard:  card.NewStopCard(color.Red),
			topCard:        card.NewStopCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "plus_two_on_plus_two_of_other_color",
			candidateCard:  card.NewPlusTwoCard(color.Red),
			topCard:        card.NewPlusTwoCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "special_card_not_matching_type_or_color",
			candidateCard:  card.NewPlusCard(color.Red),
			topCard:        card.NewStopCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "special_card_matching_active_color",
			candidateCard:  card.NewPlusCard(color.Blue),
			topCard:        card.NewStopCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_on_special_of_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			topCard:        card.NewTakiCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_does_not_match_special_by_number",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topCard:        card.NewTakiCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := scenario.candidateCard.CanPlayOn(scenario.topCard, scenario.activeColor)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestContinuesTurn(t *testing.T) {
	require.True(t, card.NewTakiCard(color.Red).ContinuesTurn())
	require.True(t, card.NewSuperTakiCard().ContinuesTurn())
	require.False(t, card.NewPlusCard(color.Red).ContinuesTurn())
	require.False(t, card.NewNumberCard(color.Red, 5).ContinuesTurn())
}

func TestWildCardsCarryNoColor(t *testing.T) {
	require.True(t, card.NewChangeColorCard().IsWild())
	require.True(t, card.NewSuperTakiCard().IsWild())
	require.False(t, card.NewTakiCard(color.Green).IsWild())
}
