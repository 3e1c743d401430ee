// Package protocol defines the client-facing message shapes of a TAKI
// match: per-turn move messages and the one-time initial state broadcast.
// Cards cross the wire as string tokens; hands are delimiter-joined token
// lists. Decoding is strict so a desynced peer is detected instead of
// silently corrupting a hand.
package protocol

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/taki-online/server/taki/card"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const handDelimiter = ","

// Action types a move message can carry.
const (
	ActionPlayCard      = "PLAY_CARD"
	ActionDrawCard      = "DRAW_CARD"
	ActionEndTurn       = "END_TURN"
	ActionChooseColor   = "CHOOSE_COLOR"
	ActionCloseSequence = "CLOSE_SEQUENCE"
)

var ErrEmptyHand = errors.New("hand arrived empty")

// Move is a single action taken on a turn.
type Move struct {
	ActionType     string `json:"actionType"`
	CardIdentifier string `json:"cardIdentifier,omitempty"`
	Color          string `json:"color,omitempty"`
}

func (m Move) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func UnmarshalMove(data []byte) (Move, error) {
	var move Move
	if err := json.Unmarshal(data, &move); err != nil {
		return Move{}, fmt.Errorf("malformed move message: %w", err)
	}
	switch move.ActionType {
	case ActionPlayCard, ActionDrawCard, ActionEndTurn, ActionChooseColor, ActionCloseSequence:
	default:
		return Move{}, fmt.Errorf("unknown action type '%s'", move.ActionType)
	}
	return move, nil
}

// InitialState is broadcast once by the authoritative side when a match
// starts; both peers seed their state machines from it.
type InitialState struct {
	StartingCardIdentifier string `json:"startingCardIdentifier"`
	DrawPileCount          int    `json:"drawPileCount"`
	Player1Hand            string `json:"player1Hand"`
	Player2Hand            string `json:"player2Hand"`
	MasterActor            string `json:"masterActor"`
}

func (s InitialState) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalInitialState(data []byte) (InitialState, error) {
	var state InitialState
	if err := json.Unmarshal(data, &state); err != nil {
		return InitialState{}, fmt.Errorf("malformed initial state: %w", err)
	}
	return state, nil
}

// EncodeHand serializes a hand as delimiter-joined card tokens.
func EncodeHand(cards []card.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.ID()
	}
	return strings.Join(tokens, handDelimiter)
}

// DecodeHand parses a serialized hand. An empty payload or an unresolvable
// token is a desync and is reported as an error.
func DecodeHand(serialized string) ([]card.Card, error) {
	if serialized == "" {
		return nil, ErrEmptyHand
	}
	tokens := strings.Split(serialized, handDelimiter)
	cards := make([]card.Card, 0, len(tokens))
	for _, token := range tokens {
		c, err := card.ByID(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
