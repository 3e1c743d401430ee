package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taki-online/server/taki/card/color"
)

const wildColorToken = "wild"

// ID encodes the card as a stable string token: "<color>:<type>:<number>".
// Tokens are what crosses the wire; two copies of the same card share one.
func (c Card) ID() string {
	colorToken := wildColorToken
	if c.color != nil {
		colorToken = c.color.Name()
	}
	return fmt.Sprintf("%s:%s:%d", colorToken, c.typ, c.number)
}

var typesByName = map[string]Type{
	"number":          Number,
	"plus":            Plus,
	"stop":            Stop,
	"changedirection": ChangeDirection,
	"changecolor":     ChangeColor,
	"plustwo":         PlusTwo,
	"taki":            Taki,
	"supertaki":       SuperTaki,
}

// ByID decodes a token produced by ID. Unknown tokens are an error, never a
// zero card; the network layer surfaces them as a desync.
func ByID(id string) (Card, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return Card{}, fmt.Errorf("invalid card identifier '%s'", id)
	}
	cardType, ok := typesByName[parts[1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid card type in identifier '%s'", id)
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card number in identifier '%s'", id)
	}
	if parts[0] == wildColorToken {
		if cardType != ChangeColor && cardType != SuperTaki {
			return Card{}, fmt.Errorf("non-wild card type in wild identifier '%s'", id)
		}
		return Card{typ: cardType}, nil
	}
	cardColor, err := color.ByName(parts[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid color in identifier '%s'", id)
	}
	if cardType == ChangeColor || cardType == SuperTaki {
		return Card{}, fmt.Errorf("wild card type in colored identifier '%s'", id)
	}
	if cardType != Number && number != 0 {
		return Card{}, fmt.Errorf("invalid number in identifier '%s'", id)
	}
	return Card{color: cardColor, typ: cardType, number: number}, nil
}
