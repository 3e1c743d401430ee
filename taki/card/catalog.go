package card

import (
	"fmt"

	"github.com/taki-online/server/taki/card/color"
)

// CatalogSize is the fixed number of cards in a TAKI deck.
const CatalogSize = 110

var numbers = []int{1, 3, 4, 5, 6, 7, 8, 9}

// Catalog builds the full 110 card set:
// 8 numbers x 4 colors x 2 copies, 5 special types x 4 colors x 2 copies,
// 4 ChangeColor and 2 SuperTaki wilds. The count is validated so a broken
// composition fails at load time instead of surfacing mid-game.
func Catalog() ([]Card, error) {
	cards := make([]Card, 0, CatalogSize)
	for _, cardColor := range color.All {
		for _, number := range numbers {
			numberCard := NewNumberCard(cardColor, number)
			cards = append(cards, numberCard, numberCard)
		}
		cards = append(cards, createSpecialCards(cardColor)...)
	}
	changeColorCard := NewChangeColorCard()
	superTakiCard := NewSuperTakiCard()
	cards = append(cards,
		changeColorCard, changeColorCard, changeColorCard, changeColorCard,
		superTakiCard, superTakiCard,
	)
	if len(cards) != CatalogSize {
		return nil, fmt.Errorf("card catalog has %d cards, want %d", len(cards), CatalogSize)
	}
	return cards, nil
}

func createSpecialCards(cardColor color.Color) []Card {
	plusCard := NewPlusCard(cardColor)
	stopCard := NewStopCard(cardColor)
	changeDirectionCard := NewChangeDirectionCard(cardColor)
	plusTwoCard := NewPlusTwoCard(cardColor)
	takiCard := NewTakiCard(cardColor)

	return []Card{
		plusCard, plusCard,
		stopCard, stopCard,
		changeDirectionCard, changeDirectionCard,
		plusTwoCard, plusTwoCard,
		takiCard, takiCard,
	}
}
