package card

import (
	"fmt"

	"github.com/taki-online/server/taki/card/color"
)

type Type int

const (
	Number Type = iota
	Plus
	Stop
	ChangeDirection
	ChangeColor
	PlusTwo
	Taki
	SuperTaki
)

var typeNames = map[Type]string{
	Number:          "number",
	Plus:            "plus",
	Stop:            "stop",
	ChangeDirection: "changedirection",
	ChangeColor:     "changecolor",
	PlusTwo:         "plustwo",
	Taki:            "taki",
	SuperTaki:       "supertaki",
}

func (t Type) String() string {
	return typeNames[t]
}

// Card is an immutable value. Wild cards (ChangeColor, SuperTaki) carry a
// nil color. Number is zero for everything but number cards.
type Card struct {
	color  color.Color
	typ    Type
	number int
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{color: cardColor, typ: Number, number: number}
}

func NewPlusCard(cardColor color.Color) Card {
	return Card{color: cardColor, typ: Plus}
}

func NewStopCard(cardColor color.Color) Card {
	return Card{color: cardColor, typ: Stop}
}

func NewChangeDirectionCard(cardColor color.Color) Card {
	return Card{color: cardColor, typ: ChangeDirection}
}

func NewPlusTwoCard(cardColor color.Color) Card {
	return Card{color: cardColor, typ: PlusTwo}
}

func NewTakiCard(cardColor color.Color) Card {
	return Card{color: cardColor, typ: Taki}
}

func NewChangeColorCard() Card {
	return Card{typ: ChangeColor}
}

func NewSuperTakiCard() Card {
	return Card{typ: SuperTaki}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Type() Type {
	return c.typ
}

func (c Card) Number() int {
	return c.number
}

func (c Card) IsWild() bool {
	return c.color == nil
}

// ContinuesTurn reports whether playing this card leaves the turn open
// (Taki and SuperTaki open a sequence instead of ending the turn).
func (c Card) ContinuesTurn() bool {
	return c.typ == Taki || c.typ == SuperTaki
}

func (c Card) Equal(other Card) bool {
	return c.color == other.color && c.typ == other.typ && c.number == other.number
}

// CanPlayOn reports whether the card may be played on top of topCard while
// activeColor must be matched. Pure; evaluated as an OR of four rules.
func (c Card) CanPlayOn(topCard Card, activeColor color.Color) bool {
	if c.IsWild() {
		return true
	}
	if activeColor != nil && c.color == activeColor {
		return true
	}
	if c.typ == Number && topCard.typ == Number && c.number == topCard.number {
		return true
	}
	if c.typ != Number && c.typ == topCard.typ {
		return true
	}
	return false
}

func (c Card) String() string {
	if c.IsWild() {
		return fmt.Sprintf("(*%s)", c.typ)
	}
	if c.typ == Number {
		return c.color.Paintf("[%d %s]", c.number, c.color.Name())
	}
	return c.color.Paintf("[%s %s]", c.typ, c.color.Name())
}
