package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/protocol"
)

func TestMoveRoundTrip(t *testing.T) {
	move := protocol.Move{
		ActionType:     protocol.ActionPlayCard,
		CardIdentifier: card.NewPlusTwoCard(color.Red).ID(),
	}
	data, err := move.Marshal()
	require.NoError(t, err)

	decoded, err := protocol.UnmarshalMove(data)
	require.NoError(t, err)
	require.Equal(t, move, decoded)
}

func TestUnmarshalMoveRejectsUnknownActions(t *testing.T) {
	_, err := protocol.UnmarshalMove([]byte(`{"actionType":"TELEPORT"}`))
	require.Error(t, err)

	_, err = protocol.UnmarshalMove([]byte(`not json`))
	require.Error(t, err)
}

func TestInitialStateRoundTrip(t *testing.T) {
	hand := []card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewTakiCard(color.Blue),
		card.NewSuperTakiCard(),
	}
	state := protocol.InitialState{
		StartingCardIdentifier: card.NewNumberCard(color.Green, 7).ID(),
		DrawPileCount:          93,
		Player1Hand:            protocol.EncodeHand(hand),
		Player2Hand:            protocol.EncodeHand(hand),
		MasterActor:            "alice",
	}
	data, err := state.Marshal()
	require.NoError(t, err)

	decoded, err := protocol.UnmarshalInitialState(data)
	require.NoError(t, err)
	require.Equal(t, state, decoded)

	decodedHand, err := protocol.DecodeHand(decoded.Player1Hand)
	require.NoError(t, err)
	require.Equal(t, hand, decodedHand)
}

func TestDecodeHandDetectsDesync(t *testing.T) {
	_, err := protocol.DecodeHand("")
	require.ErrorIs(t, err, protocol.ErrEmptyHand)

	_, err = protocol.DecodeHand("red:number:5,red:laser:0")
	require.Error(t, err)
}
